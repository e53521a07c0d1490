package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnknownSymbol = errors.New("market: unknown symbol")
	ErrUpstream      = errors.New("market: quote provider failed")
)

// Quote is a point-in-time price for a symbol.
type Quote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Source string  `json:"source"`
	Cached bool    `json:"cached"`
}

type Quoter interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}

const alphaVantageURL = "https://www.alphavantage.co/query"

// AlphaVantage fetches GLOBAL_QUOTE prices.
type AlphaVantage struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewAlphaVantage(apiKey string) *AlphaVantage {
	return &AlphaVantage{
		APIKey:  apiKey,
		BaseURL: alphaVantageURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol string `json:"01. symbol"`
		Price  string `json:"05. price"`
	} `json:"Global Quote"`
	Note string `json:"Note"`
}

func (a *AlphaVantage) Quote(ctx context.Context, symbol string) (Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)
	q.Set("apikey", a.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Quote{}, err
	}
	resp, err := a.Client.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("%w: status %s", ErrUpstream, resp.Status)
	}

	var result globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Quote{}, fmt.Errorf("%w: decode: %w", ErrUpstream, err)
	}
	if result.Note != "" {
		// rate limited
		return Quote{}, fmt.Errorf("%w: %s", ErrUpstream, result.Note)
	}
	if result.GlobalQuote.Price == "" {
		return Quote{}, ErrUnknownSymbol
	}
	price, err := strconv.ParseFloat(result.GlobalQuote.Price, 64)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: price %q: %w", ErrUpstream, result.GlobalQuote.Price, err)
	}
	return Quote{Symbol: symbol, Price: price, Source: "alphavantage"}, nil
}
