// Package finance computes the read-time derived values of stored
// records. Arithmetic runs on decimals and is converted back to float64
// only at the edge; rounding is left to the caller.
package finance

import (
	"math"

	"github.com/shopspring/decimal"

	"cash-track/models"
)

// Decimal converts v to a decimal. Non-finite values count as zero.
func Decimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// Float converts d to float64, saturating at the float64 range so the
// result always encodes to JSON.
func Float(d decimal.Decimal) float64 {
	f := d.InexactFloat64()
	switch {
	case math.IsInf(f, 1):
		return math.MaxFloat64
	case math.IsInf(f, -1):
		return -math.MaxFloat64
	}
	return f
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return Float(Decimal(v).Round(2))
}

// EnrichStock attaches value, cost basis and profit to a position.
func EnrichStock(s models.Stock) models.StockPosition {
	qty := Decimal(s.Quantity)
	value := qty.Mul(Decimal(s.CurrentPrice))
	cost := qty.Mul(Decimal(s.PurchasePrice))
	return models.StockPosition{
		Stock:        s,
		CurrentValue: Float(value),
		CostBasis:    Float(cost),
		Profit:       Float(value.Sub(cost)),
	}
}

func EnrichStocks(stocks []models.Stock) []models.StockPosition {
	out := make([]models.StockPosition, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, EnrichStock(s))
	}
	return out
}

// Summarize totals income and expenses. Expenses are summed as absolute
// values whatever the stored sign.
func Summarize(txns []models.Transaction) models.TransactionSummary {
	income, expenses := decimal.Zero, decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case models.TypeIncome:
			income = income.Add(Decimal(t.Amount))
		case models.TypeExpense:
			expenses = expenses.Add(Decimal(t.Amount).Abs())
		}
	}
	return models.TransactionSummary{
		Income:           Float(income),
		Expenses:         Float(expenses),
		Balance:          Float(income.Sub(expenses)),
		TransactionCount: len(txns),
	}
}

// ExpenseBreakdown groups expenses by category. Categories keep the order
// in which they first appear in txns.
func ExpenseBreakdown(txns []models.Transaction) []models.CategoryTotal {
	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if t.Type != models.TypeExpense {
			continue
		}
		sum, seen := totals[t.Category]
		if !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] = sum.Add(Decimal(t.Amount).Abs())
	}
	out := make([]models.CategoryTotal, 0, len(order))
	for _, c := range order {
		out = append(out, models.CategoryTotal{Category: c, Amount: Float(totals[c])})
	}
	return out
}

// GoalProgress derives progress (percent, unclamped) and the remaining
// amount (never negative) of a goal. A zero target has zero progress.
func GoalProgress(g models.SavingsGoal) models.SavingsGoalView {
	target, current := Decimal(g.TargetAmount), Decimal(g.CurrentAmount)
	progress := decimal.Zero
	if target.IsPositive() {
		progress = current.Div(target).Mul(decimal.NewFromInt(100)).Round(2)
	}
	remaining := target.Sub(current)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return models.SavingsGoalView{
		SavingsGoal:     g,
		Progress:        Float(progress),
		RemainingAmount: Float(remaining),
	}
}

func GoalsProgress(goals []models.SavingsGoal) []models.SavingsGoalView {
	out := make([]models.SavingsGoalView, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalProgress(g))
	}
	return out
}
