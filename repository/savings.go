package repository

import (
	"context"
	"slices"
	"strings"

	"cash-track/database"
	"cash-track/models"
)

// SavingsGoals returns stored goals without derived fields; see
// finance.GoalProgress.
func (r *Repository) SavingsGoals(ctx context.Context, userID string) []models.SavingsGoal {
	goals := readAll[models.SavingsGoal](ctx, r, userID, database.SavingsGoals)
	byID := compareIDs(goalPrefix)
	slices.SortFunc(goals, func(a, b models.SavingsGoal) int { return byID(a.ID, b.ID) })
	return goals
}

func (r *Repository) AddSavingsGoal(ctx context.Context, userID string, in models.NewSavingsGoal) (models.SavingsGoal, error) {
	if userID == "" {
		return models.SavingsGoal{}, ErrUnauthenticated
	}
	if err := in.Validate(); err != nil {
		return models.SavingsGoal{}, invalid(err)
	}

	id, err := r.nextID(ctx, userID, database.SavingsGoals, goalPrefix)
	if err != nil {
		return models.SavingsGoal{}, err
	}
	now := r.timestamp()
	g := models.SavingsGoal{
		ID:            id,
		Name:          in.Name,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		Deadline:      in.Deadline.UTC(),
		Category:      in.Category,
		Priority:      in.Priority,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if strings.TrimSpace(g.Category) == "" {
		g.Category = models.DefaultGoalCategory
	}
	if g.Priority == "" {
		g.Priority = models.PriorityMedium
	}
	if err := r.write(ctx, userID, database.SavingsGoals, g.ID, g); err != nil {
		return models.SavingsGoal{}, err
	}
	return g, nil
}

// UpdateSavingsGoal merges patch into the stored goal and refreshes
// UpdatedAt.
func (r *Repository) UpdateSavingsGoal(ctx context.Context, userID, id string, patch models.SavingsGoalPatch) (models.SavingsGoal, error) {
	if userID == "" {
		return models.SavingsGoal{}, ErrUnauthenticated
	}
	if err := patch.Validate(); err != nil {
		return models.SavingsGoal{}, invalid(err)
	}
	g, err := readOne[models.SavingsGoal](ctx, r, userID, database.SavingsGoals, id)
	if err != nil {
		return models.SavingsGoal{}, err
	}
	patch.Apply(&g)
	g.UpdatedAt = r.timestamp()
	if err := r.write(ctx, userID, database.SavingsGoals, g.ID, g); err != nil {
		return models.SavingsGoal{}, err
	}
	return g, nil
}

func (r *Repository) DeleteSavingsGoal(ctx context.Context, userID, id string) (bool, error) {
	return r.remove(ctx, userID, database.SavingsGoals, id)
}
