package repository

import (
	"context"
	"slices"

	"cash-track/database"
	"cash-track/models"
)

func (r *Repository) Investments(ctx context.Context, userID string) []models.Investment {
	invs := readAll[models.Investment](ctx, r, userID, database.Investments)
	byID := compareIDs(investmentPrefix)
	slices.SortFunc(invs, func(a, b models.Investment) int { return byID(a.ID, b.ID) })
	return invs
}

func (r *Repository) AddInvestment(ctx context.Context, userID string, in models.NewInvestment) (models.Investment, error) {
	if userID == "" {
		return models.Investment{}, ErrUnauthenticated
	}
	if err := in.Validate(); err != nil {
		return models.Investment{}, invalid(err)
	}

	id, err := r.nextID(ctx, userID, database.Investments, investmentPrefix)
	if err != nil {
		return models.Investment{}, err
	}
	inv := models.Investment{
		ID:            id,
		Type:          in.Type,
		Name:          in.Name,
		Description:   in.Description,
		PurchaseValue: in.PurchaseValue,
		CurrentValue:  in.CurrentValue,
		PurchaseDate:  in.PurchaseDate.UTC(),
		LastUpdated:   r.timestamp(),
		Location:      in.Location,
		CustomType:    in.CustomType,
	}
	if in.Quantity != nil {
		q := *in.Quantity
		inv.Quantity = &q
	}
	if err := r.write(ctx, userID, database.Investments, inv.ID, inv); err != nil {
		return models.Investment{}, err
	}
	return inv, nil
}

// UpdateInvestment merges patch into the stored investment and refreshes
// LastUpdated, even for an empty patch.
func (r *Repository) UpdateInvestment(ctx context.Context, userID, id string, patch models.InvestmentPatch) (models.Investment, error) {
	if userID == "" {
		return models.Investment{}, ErrUnauthenticated
	}
	if err := patch.Validate(); err != nil {
		return models.Investment{}, invalid(err)
	}
	inv, err := readOne[models.Investment](ctx, r, userID, database.Investments, id)
	if err != nil {
		return models.Investment{}, err
	}
	patch.Apply(&inv)
	inv.LastUpdated = r.timestamp()
	if err := r.write(ctx, userID, database.Investments, inv.ID, inv); err != nil {
		return models.Investment{}, err
	}
	return inv, nil
}

func (r *Repository) DeleteInvestment(ctx context.Context, userID, id string) (bool, error) {
	return r.remove(ctx, userID, database.Investments, id)
}
