package models

import "time"

// Goal priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const DefaultGoalCategory = "Other"

// SavingsGoal is a stored savings target. Progress is never stored,
// see SavingsGoalView.
type SavingsGoal struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Deadline      time.Time `json:"deadline"`
	Category      string    `json:"category"`
	Priority      string    `json:"priority"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SavingsGoalView is a goal with its derived fields.
type SavingsGoalView struct {
	SavingsGoal
	Progress        float64 `json:"progress"`
	RemainingAmount float64 `json:"remaining_amount"`
}

// NewSavingsGoal is the input of a goal add. Empty Category and Priority
// take the defaults.
type NewSavingsGoal struct {
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Deadline      time.Time
	Category      string
	Priority      string
}

func (n NewSavingsGoal) Validate() error {
	if err := requireText("name", n.Name); err != nil {
		return err
	}
	if err := requireNonNegative("target_amount", n.TargetAmount); err != nil {
		return err
	}
	if err := requireNonNegative("current_amount", n.CurrentAmount); err != nil {
		return err
	}
	if n.Deadline.IsZero() {
		return invalid("deadline", "is required")
	}
	if n.Priority != "" {
		return validPriority(n.Priority)
	}
	return nil
}

// SavingsGoalPatch lists the mutable fields of a goal.
type SavingsGoalPatch struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *time.Time
	Category      *string
	Priority      *string
}

func (p SavingsGoalPatch) Validate() error {
	if p.Name != nil {
		if err := requireText("name", *p.Name); err != nil {
			return err
		}
	}
	if p.TargetAmount != nil {
		if err := requireNonNegative("target_amount", *p.TargetAmount); err != nil {
			return err
		}
	}
	if p.CurrentAmount != nil {
		if err := requireNonNegative("current_amount", *p.CurrentAmount); err != nil {
			return err
		}
	}
	if p.Deadline != nil && p.Deadline.IsZero() {
		return invalid("deadline", "must be a valid date")
	}
	if p.Category != nil {
		if err := requireText("category", *p.Category); err != nil {
			return err
		}
	}
	if p.Priority != nil {
		return validPriority(*p.Priority)
	}
	return nil
}

// Apply merges the patch into g. It does not touch UpdatedAt.
func (p SavingsGoalPatch) Apply(g *SavingsGoal) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.Deadline != nil {
		g.Deadline = p.Deadline.UTC()
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.Priority != nil {
		g.Priority = *p.Priority
	}
}

func validPriority(p string) error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	}
	return invalid("priority", "must be low, medium or high")
}
