// Package database holds the keyed persistence store used by the record
// repository, with postgres (gorm), redis and in-memory adapters.
package database

import (
	"context"
	"fmt"
)

// Collections, one per record kind, namespaced under each user.
const (
	Transactions = "transactions"
	Stocks       = "stocks"
	Investments  = "investments"
	SavingsGoals = "savings_goals"
	Posts        = "posts"
)

var (
	ErrMissingOwner = fmt.Errorf("database: user id is required")
	ErrMissingKey   = fmt.Errorf("database: collection and key are required")
)

// Store is a per-user, per-collection key/value store. Values are opaque
// encoded records.
type Store interface {
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, userID, collection, key string, value []byte) error
	// Get returns every entry of the collection. A missing collection is
	// an empty map, not an error.
	Get(ctx context.Context, userID, collection string) (map[string][]byte, error)
	// Delete removes key and reports whether it existed.
	Delete(ctx context.Context, userID, collection, key string) (bool, error)
	// NextID atomically allocates the next sequence number of the
	// collection, starting at 1.
	NextID(ctx context.Context, userID, collection string) (int64, error)
}

func checkScope(userID, collection string) error {
	if userID == "" {
		return ErrMissingOwner
	}
	if collection == "" {
		return ErrMissingKey
	}
	return nil
}

func checkKey(userID, collection, key string) error {
	if err := checkScope(userID, collection); err != nil {
		return err
	}
	if key == "" {
		return ErrMissingKey
	}
	return nil
}
