package repository

import (
	"context"
	"math"
	"slices"
	"strings"

	"cash-track/database"
	"cash-track/models"
)

const defaultIncomeCategory = "Other"

// Transactions returns the user's transactions in creation order.
func (r *Repository) Transactions(ctx context.Context, userID string) []models.Transaction {
	txns := readAll[models.Transaction](ctx, r, userID, database.Transactions)
	byID := compareIDs(transactionPrefix)
	slices.SortFunc(txns, func(a, b models.Transaction) int { return byID(a.ID, b.ID) })
	return txns
}

// AddTransaction stores a new transaction. The amount sign follows the
// type: income is stored positive, expense negative.
func (r *Repository) AddTransaction(ctx context.Context, userID string, in models.NewTransaction) (models.Transaction, error) {
	if userID == "" {
		return models.Transaction{}, ErrUnauthenticated
	}
	if err := in.Validate(); err != nil {
		return models.Transaction{}, invalid(err)
	}

	amount := math.Abs(in.Amount)
	if in.Type == models.TypeExpense {
		amount = -amount
	}
	date := r.timestamp()
	if in.Date != nil {
		date = in.Date.UTC()
	}

	id, err := r.nextID(ctx, userID, database.Transactions, transactionPrefix)
	if err != nil {
		return models.Transaction{}, err
	}
	t := models.Transaction{
		ID:       id,
		Title:    in.Title,
		Content:  in.Content,
		Amount:   amount,
		Type:     in.Type,
		Category: in.Category,
		Date:     date,
	}
	if err := r.write(ctx, userID, database.Transactions, t.ID, t); err != nil {
		return models.Transaction{}, err
	}
	return t, nil
}

// AddIncome records income; the category defaults to "Other".
func (r *Repository) AddIncome(ctx context.Context, userID string, in models.NewTransaction) (models.Transaction, error) {
	in.Type = models.TypeIncome
	if strings.TrimSpace(in.Category) == "" {
		in.Category = defaultIncomeCategory
	}
	return r.AddTransaction(ctx, userID, in)
}

// AddExpense records spend; the title defaults to the category.
func (r *Repository) AddExpense(ctx context.Context, userID string, in models.NewTransaction) (models.Transaction, error) {
	in.Type = models.TypeExpense
	if strings.TrimSpace(in.Title) == "" {
		in.Title = in.Category
	}
	return r.AddTransaction(ctx, userID, in)
}

func (r *Repository) DeleteTransaction(ctx context.Context, userID, id string) (bool, error) {
	return r.remove(ctx, userID, database.Transactions, id)
}
