// Package market provides the static reference stock table and live quotes.
package market

import (
	"context"
	"slices"
	"strings"

	"cash-track/models"
)

var referenceStocks = []models.ReferenceStock{
	{Symbol: "AAPL", Name: "Apple Inc.", Price: 191.32},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Price: 415.12},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: 165.76},
	{Symbol: "AMZN", Name: "Amazon.com, Inc.", Price: 180.45},
	{Symbol: "TSLA", Name: "Tesla, Inc.", Price: 245.93},
}

// AvailableStocks returns a copy of the reference table.
func AvailableStocks() []models.ReferenceStock {
	return slices.Clone(referenceStocks)
}

// ReferencePrice looks up the reference price of symbol, case-insensitively.
func ReferencePrice(symbol string) (float64, bool) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	for _, s := range referenceStocks {
		if s.Symbol == symbol {
			return s.Price, true
		}
	}
	return 0, false
}

// Reference quotes from the static table.
type Reference struct{}

func (Reference) Quote(_ context.Context, symbol string) (Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	price, ok := ReferencePrice(symbol)
	if !ok {
		return Quote{}, ErrUnknownSymbol
	}
	return Quote{Symbol: symbol, Price: price, Source: "reference"}, nil
}
