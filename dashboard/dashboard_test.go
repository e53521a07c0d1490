package dashboard

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"cash-track/database"
	"cash-track/models"
	"cash-track/repository"
)

func seed(t *testing.T, userID string) *repository.Repository {
	t.Helper()
	ctx := context.Background()
	r := repository.New(database.NewMemory())

	for _, in := range []models.NewTransaction{
		{Title: "Grocery Shopping", Category: "Food", Amount: 85.50, Type: models.TypeExpense},
		{Title: "Freelance Payment", Category: "Work", Amount: 500, Type: models.TypeIncome},
		{Title: "Gas Station", Category: "Transportation", Amount: 45.25, Type: models.TypeExpense},
		{Title: "Restaurant", Category: "Food", Amount: 20.111, Type: models.TypeExpense},
	} {
		if _, err := r.AddTransaction(ctx, userID, in); err != nil {
			t.Fatalf("AddTransaction() error = %v", err)
		}
	}
	for _, in := range []models.NewStock{
		{Ticker: "AAPL", Quantity: 12, PurchasePrice: 150.10},
		{Ticker: "TSLA", Quantity: 3, PurchasePrice: 280},
	} {
		if _, err := r.AddStock(ctx, userID, in); err != nil {
			t.Fatalf("AddStock() error = %v", err)
		}
	}
	_, err := r.AddInvestment(ctx, userID, models.NewInvestment{
		Type: "bond", Name: "Treasury", PurchaseValue: 1000, CurrentValue: 1050.5,
		PurchaseDate: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("AddInvestment() error = %v", err)
	}
	_, err = r.AddSavingsGoal(ctx, userID, models.NewSavingsGoal{
		Name: "Car", TargetAmount: 200, CurrentAmount: 250,
		Deadline: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("AddSavingsGoal() error = %v", err)
	}
	return r
}

func TestOverview(t *testing.T) {
	got := New(seed(t, "u1")).Overview(context.Background(), "u1")

	// stocks: 12*191.32 + 3*245.93 = 2295.84 + 737.79
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"total_stock_value", got.TotalStockValue, 3033.63},
		{"total_investment_value", got.TotalInvestmentValue, 1050.5},
		{"net_worth", got.NetWorth, 4084.13},
		{"total_savings", got.TotalSavings, 349.14},
		{"total_net_worth", got.TotalNetWorth, 4433.27},
		{"deficit", got.Deficit, 349.14},
		{"summary.income", got.Summary.Income, 500},
		{"summary.expenses", got.Summary.Expenses, 150.86},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	wantExpenses := models.Breakdown{Labels: []string{"Food", "Transportation"}, Data: []float64{105.61, 45.25}}
	if diff := cmp.Diff(wantExpenses, got.ExpenseBreakdown); diff != "" {
		t.Errorf("expense_breakdown mismatch (-want +got):\n%s", diff)
	}
	wantNetWorth := models.Breakdown{Labels: []string{"Assets", "Liabilities"}, Data: []float64{4433.27, 0}}
	if diff := cmp.Diff(wantNetWorth, got.NetWorthBreakdown); diff != "" {
		t.Errorf("net_worth_breakdown mismatch (-want +got):\n%s", diff)
	}

	if len(got.StockData) != 2 || got.StockData[0].Ticker != "AAPL" || got.StockData[1].Profit != -102.21 {
		t.Errorf("stock_data = %+v", got.StockData)
	}
	if len(got.SavingsGoals) != 1 || got.SavingsGoals[0].Progress != 125 || got.SavingsGoals[0].RemainingAmount != 0 {
		t.Errorf("savings_goals = %+v", got.SavingsGoals)
	}
	if len(got.InvestmentData) != 1 || len(got.AvailableStocks) != 5 {
		t.Errorf("investment_data = %d entries, available_stocks = %d", len(got.InvestmentData), len(got.AvailableStocks))
	}
	if got.Summary.TransactionCount != 4 {
		t.Errorf("transaction_count = %d, want 4", got.Summary.TransactionCount)
	}
}

func TestOverview_Deficit(t *testing.T) {
	ctx := context.Background()
	r := repository.New(database.NewMemory())
	if _, err := r.AddIncome(ctx, "u1", models.NewTransaction{Title: "Salary", Amount: 100}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.AddExpense(ctx, "u1", models.NewTransaction{Category: "Rent", Amount: 250.555}); err != nil {
		t.Fatal(err)
	}

	got := New(r).Overview(ctx, "u1")
	if got.Deficit != -150.56 {
		t.Errorf("deficit = %v, want -150.56", got.Deficit)
	}
	if got.TotalSavings != 0 {
		t.Errorf("total_savings = %v, want 0", got.TotalSavings)
	}
	if want := []float64{0, 150.56}; !cmp.Equal(want, got.NetWorthBreakdown.Data) {
		t.Errorf("net_worth_breakdown.data = %v, want %v", got.NetWorthBreakdown.Data, want)
	}
}

func TestOverview_EmptyUser(t *testing.T) {
	got := New(repository.New(database.NewMemory())).Overview(context.Background(), "")
	if got.NetWorth != 0 || got.TotalNetWorth != 0 || got.Deficit != 0 {
		t.Errorf("empty overview has values: %+v", got)
	}
	if got.StockData == nil || got.InvestmentData == nil || got.SavingsGoals == nil {
		t.Errorf("collections must be empty, not nil, to encode as []")
	}
	if got.ExpenseBreakdown.Labels == nil || got.ExpenseBreakdown.Data == nil {
		t.Errorf("breakdown arrays must be empty, not nil")
	}
	if len(got.NetWorthBreakdown.Data) != 2 {
		t.Errorf("net_worth_breakdown.data has %d entries, want 2", len(got.NetWorthBreakdown.Data))
	}
}

func TestOverview_RoundsToTwoDecimals(t *testing.T) {
	got := New(seed(t, "u1")).Overview(context.Background(), "u1")
	values := []float64{
		got.NetWorth, got.TotalSavings, got.TotalNetWorth, got.Deficit,
		got.TotalStockValue, got.TotalInvestmentValue,
		got.Summary.Income, got.Summary.Expenses, got.Summary.Balance,
	}
	values = append(values, got.ExpenseBreakdown.Data...)
	values = append(values, got.NetWorthBreakdown.Data...)
	for _, v := range values {
		if scaled := v * 100; math.Abs(scaled-math.Round(scaled)) > 1e-6 {
			t.Errorf("%v has more than two decimals", v)
		}
	}
}

// staticReader serves fixed records, standing in for a store holding
// values written before input bounds were enforced.
type staticReader struct {
	txns   []models.Transaction
	stocks []models.Stock
}

func (s staticReader) Transactions(context.Context, string) []models.Transaction {
	return s.txns
}

func (s staticReader) Stocks(context.Context, string) []models.Stock {
	return s.stocks
}

func (staticReader) Investments(context.Context, string) []models.Investment {
	return []models.Investment{}
}

func (staticReader) SavingsGoals(context.Context, string) []models.SavingsGoal {
	return []models.SavingsGoal{}
}

func TestOverview_HugeValuesStayEncodable(t *testing.T) {
	testCases := []struct {
		name    string
		records staticReader
	}{
		{"income overflow", staticReader{txns: []models.Transaction{
			{ID: "1", Type: models.TypeIncome, Category: "Other", Amount: 1.7e308},
			{ID: "2", Type: models.TypeIncome, Category: "Other", Amount: 1.7e308},
		}}},
		{"stock overflow", staticReader{stocks: []models.Stock{
			{Ticker: "BIG", Quantity: 1e200, PurchasePrice: 1, CurrentPrice: 1e200},
		}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := New(tc.records).Overview(context.Background(), "u1")
			if _, err := json.Marshal(got); err != nil {
				t.Fatalf("overview does not encode: %v", err)
			}
			if math.IsInf(got.NetWorth, 0) || math.IsInf(got.Summary.Income, 0) {
				t.Errorf("overview overflowed: %+v", got)
			}
		})
	}
}

func TestOverview_AtAmountCap(t *testing.T) {
	ctx := context.Background()
	r := repository.New(database.NewMemory())
	for i := 0; i < 3; i++ {
		if _, err := r.AddIncome(ctx, "u1", models.NewTransaction{Title: "Bonus", Amount: models.MaxAmount}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := r.AddStock(ctx, "u1", models.NewStock{Ticker: "BIG", Quantity: models.MaxAmount, PurchasePrice: models.MaxAmount}); err != nil {
		t.Fatal(err)
	}

	got := New(r).Overview(ctx, "u1")
	if got.Summary.Income != 3e15 {
		t.Errorf("summary.income = %v, want 3e15", got.Summary.Income)
	}
	if got.TotalStockValue != 1e30 {
		t.Errorf("total_stock_value = %v, want 1e30", got.TotalStockValue)
	}
}
