package repository

import (
	"context"
	"slices"
	"strings"

	"cash-track/database"
	"cash-track/market"
	"cash-track/models"
)

func normalizeTicker(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}

// Stocks returns the user's positions sorted by ticker.
func (r *Repository) Stocks(ctx context.Context, userID string) []models.Stock {
	stocks := readAll[models.Stock](ctx, r, userID, database.Stocks)
	slices.SortFunc(stocks, func(a, b models.Stock) int { return strings.Compare(a.Ticker, b.Ticker) })
	return stocks
}

// AddStock writes a position keyed by its upper-cased ticker, replacing
// any existing position for that ticker. Without an explicit current
// price the reference price is used, then the purchase price.
func (r *Repository) AddStock(ctx context.Context, userID string, in models.NewStock) (models.Stock, error) {
	if userID == "" {
		return models.Stock{}, ErrUnauthenticated
	}
	if err := in.Validate(); err != nil {
		return models.Stock{}, invalid(err)
	}

	s := models.Stock{
		Ticker:        normalizeTicker(in.Ticker),
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		CurrentPrice:  in.PurchasePrice,
	}
	switch ref, known := market.ReferencePrice(s.Ticker); {
	case in.CurrentPrice != nil:
		s.CurrentPrice = *in.CurrentPrice
	case known:
		s.CurrentPrice = ref
	}

	if err := r.write(ctx, userID, database.Stocks, s.Ticker, s); err != nil {
		return models.Stock{}, err
	}
	return s, nil
}

func (r *Repository) DeleteStock(ctx context.Context, userID, ticker string) (bool, error) {
	return r.remove(ctx, userID, database.Stocks, normalizeTicker(ticker))
}
