// Package dashboard composes the record collections of a user into the
// dashboard overview payload. It never writes.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"cash-track/finance"
	"cash-track/market"
	"cash-track/models"
)

// Reader is the read side of the record repository.
type Reader interface {
	Transactions(ctx context.Context, userID string) []models.Transaction
	Stocks(ctx context.Context, userID string) []models.Stock
	Investments(ctx context.Context, userID string) []models.Investment
	SavingsGoals(ctx context.Context, userID string) []models.SavingsGoal
}

type Service struct {
	records Reader
}

func New(records Reader) *Service {
	return &Service{records: records}
}

var netWorthLabels = []string{"Assets", "Liabilities"}

// Overview builds the dashboard payload of userID. Intermediate values
// are kept exact; only the returned aggregates are rounded.
func (s *Service) Overview(ctx context.Context, userID string) models.Overview {
	txns := s.records.Transactions(ctx, userID)
	summary := finance.Summarize(txns)
	stocks := finance.EnrichStocks(s.records.Stocks(ctx, userID))
	investments := s.records.Investments(ctx, userID)
	goals := finance.GoalsProgress(s.records.SavingsGoals(ctx, userID))

	stockValue := decimal.Zero
	for _, p := range stocks {
		stockValue = stockValue.Add(finance.Decimal(p.CurrentValue))
	}
	investmentValue := decimal.Zero
	for _, inv := range investments {
		investmentValue = investmentValue.Add(finance.Decimal(inv.CurrentValue))
	}

	income := finance.Decimal(summary.Income)
	expenses := finance.Decimal(summary.Expenses)
	deficit := income.Sub(expenses)
	savings := decimal.Max(deficit, decimal.Zero)
	liabilities := decimal.Max(expenses.Sub(income), decimal.Zero)
	netWorth := stockValue.Add(investmentValue)
	assets := netWorth.Add(savings)

	breakdown := finance.ExpenseBreakdown(txns)
	expenseLabels := make([]string, 0, len(breakdown))
	expenseData := make([]float64, 0, len(breakdown))
	for _, c := range breakdown {
		expenseLabels = append(expenseLabels, c.Category)
		expenseData = append(expenseData, finance.Round2(c.Amount))
	}

	return models.Overview{
		NetWorth:             round(netWorth),
		TotalSavings:         round(savings),
		TotalNetWorth:        round(netWorth.Add(savings)),
		Deficit:              round(deficit),
		TotalStockValue:      round(stockValue),
		TotalInvestmentValue: round(investmentValue),
		Summary: models.TransactionSummary{
			Income:           round(income),
			Expenses:         round(expenses),
			Balance:          round(deficit),
			TransactionCount: summary.TransactionCount,
		},
		ExpenseBreakdown: models.Breakdown{Labels: expenseLabels, Data: expenseData},
		NetWorthBreakdown: models.Breakdown{
			Labels: append([]string(nil), netWorthLabels...),
			Data:   []float64{round(assets), round(liabilities)},
		},
		StockData:       stocks,
		InvestmentData:  investments,
		SavingsGoals:    goals,
		AvailableStocks: market.AvailableStocks(),
	}
}

func round(d decimal.Decimal) float64 {
	return finance.Float(d.Round(2))
}
