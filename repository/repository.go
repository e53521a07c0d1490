// Package repository implements per-user CRUD over transactions, stock
// positions, investments and savings goals, plus the shared post board,
// on top of a database.Store.
//
// Reads fail open: a store error is logged and served as an empty
// collection. Writes fail closed with ErrStore.
package repository

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"cash-track/database"
)

var (
	ErrUnauthenticated = errors.New("user must be authenticated")
	ErrNotFound        = errors.New("record not found")
	ErrInvalid         = errors.New("invalid input")
	ErrStore           = errors.New("store write failed")
)

// Id prefixes per collection.
const (
	transactionPrefix = ""
	investmentPrefix  = "inv"
	goalPrefix        = "goal"
	postPrefix        = ""
)

type Repository struct {
	store database.Store
	log   zerolog.Logger
	now   func() time.Time
}

type Option func(*Repository)

func WithLogger(l zerolog.Logger) Option {
	return func(r *Repository) { r.log = l }
}

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

func New(store database.Store, opts ...Option) *Repository {
	r := &Repository{store: store, log: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) timestamp() time.Time {
	return r.now().UTC()
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalid, err)
}

// readAll decodes every record of a collection. Undecodable entries are
// skipped.
func readAll[T any](ctx context.Context, r *Repository, userID, collection string) []T {
	if userID == "" {
		return []T{}
	}
	raw, err := r.store.Get(ctx, userID, collection)
	if err != nil {
		r.log.Warn().Err(err).
			Str("user_id", userID).
			Str("collection", collection).
			Msg("store read failed, serving empty collection")
		return []T{}
	}
	out := make([]T, 0, len(raw))
	for key, value := range raw {
		var rec T
		if err := json.Unmarshal(value, &rec); err != nil {
			r.log.Warn().Err(err).
				Str("user_id", userID).
				Str("collection", collection).
				Str("key", key).
				Msg("skipping undecodable record")
			continue
		}
		out = append(out, rec)
	}
	return out
}

// readOne loads a single record for a read-modify-write. Unlike readAll a
// store failure is an error here, the caller is about to write.
func readOne[T any](ctx context.Context, r *Repository, userID, collection, key string) (T, error) {
	var rec T
	raw, err := r.store.Get(ctx, userID, collection)
	if err != nil {
		return rec, fmt.Errorf("%w: %w", ErrStore, err)
	}
	value, ok := raw[key]
	if !ok {
		return rec, ErrNotFound
	}
	if err := json.Unmarshal(value, &rec); err != nil {
		return rec, fmt.Errorf("%w: decode %s/%s: %w", ErrStore, collection, key, err)
	}
	return rec, nil
}

func (r *Repository) write(ctx context.Context, userID, collection, key string, rec any) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: encode %s/%s: %w", ErrStore, collection, key, err)
	}
	if err := r.store.Set(ctx, userID, collection, key, b); err != nil {
		r.log.Error().Err(err).
			Str("user_id", userID).
			Str("collection", collection).
			Str("key", key).
			Msg("store write failed")
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	return nil
}

func (r *Repository) remove(ctx context.Context, userID, collection, key string) (bool, error) {
	if userID == "" {
		return false, ErrUnauthenticated
	}
	if key == "" {
		return false, nil
	}
	removed, err := r.store.Delete(ctx, userID, collection, key)
	if err != nil {
		r.log.Error().Err(err).
			Str("user_id", userID).
			Str("collection", collection).
			Str("key", key).
			Msg("store delete failed")
		return false, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return removed, nil
}

func (r *Repository) nextID(ctx context.Context, userID, collection, prefix string) (string, error) {
	n, err := r.store.NextID(ctx, userID, collection)
	if err != nil {
		return "", fmt.Errorf("%w: allocate id: %w", ErrStore, err)
	}
	return prefix + strconv.FormatInt(n, 10), nil
}

// compareIDs orders ids by their numeric suffix, then lexically.
func compareIDs(prefix string) func(a, b string) int {
	seq := func(id string) int64 {
		n, err := strconv.ParseInt(strings.TrimPrefix(id, prefix), 10, 64)
		if err != nil {
			return -1
		}
		return n
	}
	return func(a, b string) int {
		if c := cmp.Compare(seq(a), seq(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	}
}
