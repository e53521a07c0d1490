package models

import "time"

// Transaction kinds.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single income or expense entry. Income amounts are
// stored positive and expense amounts negative.
type Transaction struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Amount   float64   `json:"amount"`
	Type     string    `json:"type"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

// NewTransaction carries the caller supplied fields of a transaction.
// A nil Date means "now".
type NewTransaction struct {
	Title    string
	Content  string
	Amount   float64
	Type     string
	Category string
	Date     *time.Time
}

func (n NewTransaction) Validate() error {
	if err := requireText("title", n.Title); err != nil {
		return err
	}
	if n.Type != TypeIncome && n.Type != TypeExpense {
		return invalid("type", "must be income or expense")
	}
	if err := requireText("category", n.Category); err != nil {
		return err
	}
	return requireFinite("amount", n.Amount)
}

// TransactionSummary totals a set of transactions. Expenses are absolute.
type TransactionSummary struct {
	Income           float64 `json:"income"`
	Expenses         float64 `json:"expenses"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transaction_count"`
}

// CategoryTotal is the spend of one expense category.
type CategoryTotal struct {
	Category string
	Amount   float64
}
