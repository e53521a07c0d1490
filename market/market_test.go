package market

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

func TestReferencePrice(t *testing.T) {
	testCases := []struct {
		symbol string
		want   float64
		ok     bool
	}{
		{"AAPL", 191.32, true},
		{"tsla", 245.93, true},
		{" msft ", 415.12, true},
		{"NOPE", 0, false},
	}
	for _, tc := range testCases {
		got, ok := ReferencePrice(tc.symbol)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ReferencePrice(%q) = %v, %v; want %v, %v", tc.symbol, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAvailableStocks_ReturnsCopy(t *testing.T) {
	a := AvailableStocks()
	a[0].Price = 1
	if b := AvailableStocks(); b[0].Price == 1 {
		t.Errorf("AvailableStocks() exposes the shared table")
	}
	if len(a) != 5 {
		t.Errorf("len(AvailableStocks()) = %d, want 5", len(a))
	}
}

func TestReference_Quote(t *testing.T) {
	q, err := Reference{}.Quote(context.Background(), "googl")
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if q.Symbol != "GOOGL" || q.Price != 165.76 {
		t.Errorf("Quote() = %+v", q)
	}
	if _, err := (Reference{}).Quote(context.Background(), "ZZZ"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Quote(unknown) error = %v, want %v", err, ErrUnknownSymbol)
	}
}

func TestAlphaVantage_Quote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "GLOBAL_QUOTE" {
			t.Errorf("function = %q, want GLOBAL_QUOTE", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "k" {
			t.Errorf("apikey = %q, want k", got)
		}
		switch r.URL.Query().Get("symbol") {
		case "IBM":
			fmt.Fprint(w, `{"Global Quote": {"01. symbol": "IBM", "05. price": "182.5000"}}`)
		case "LIMIT":
			fmt.Fprint(w, `{"Note": "Thank you for using Alpha Vantage!"}`)
		case "BROKEN":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			fmt.Fprint(w, `{"Global Quote": {}}`)
		}
	}))
	defer srv.Close()

	av := NewAlphaVantage("k")
	av.BaseURL = srv.URL

	q, err := av.Quote(context.Background(), "ibm")
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if q.Symbol != "IBM" || q.Price != 182.5 || q.Source != "alphavantage" {
		t.Errorf("Quote() = %+v", q)
	}

	testCases := []struct {
		symbol string
		want   error
	}{
		{"UNKNOWN", ErrUnknownSymbol},
		{"LIMIT", ErrUpstream},
		{"BROKEN", ErrUpstream},
	}
	for _, tc := range testCases {
		if _, err := av.Quote(context.Background(), tc.symbol); !errors.Is(err, tc.want) {
			t.Errorf("Quote(%q) error = %v, want %v", tc.symbol, err, tc.want)
		}
	}
}

type countingQuoter struct {
	calls int
	price float64
}

func (c *countingQuoter) Quote(_ context.Context, symbol string) (Quote, error) {
	c.calls++
	return Quote{Symbol: symbol, Price: c.price, Source: "test"}, nil
}

func TestCached_Quote(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	caches := map[string]Cache{
		"memory": NewMemoryCache(),
		"redis":  NewRedisCache(rdb),
	}
	for name, cache := range caches {
		t.Run(name, func(t *testing.T) {
			next := &countingQuoter{price: 10}
			c := NewCached(next, cache, time.Minute, zerolog.Nop())

			first, err := c.Quote(context.Background(), "abc")
			if err != nil {
				t.Fatalf("Quote() error = %v", err)
			}
			if first.Cached {
				t.Errorf("first Quote() reported cached")
			}
			second, err := c.Quote(context.Background(), "ABC")
			if err != nil {
				t.Fatalf("Quote() error = %v", err)
			}
			if !second.Cached || second.Price != 10 {
				t.Errorf("second Quote() = %+v, want cached price 10", second)
			}
			if next.calls != 1 {
				t.Errorf("upstream calls = %d, want 1", next.calls)
			}
		})
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, ok, _ := c.Get(ctx, "k"); !ok || v != "v" {
		t.Errorf("Get() = %q, %v; want v, true", v, ok)
	}
	now = now.Add(2 * time.Minute)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Errorf("Get() after ttl returned a value")
	}
}
