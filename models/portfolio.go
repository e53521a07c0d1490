package models

// Breakdown is a chart series: parallel label and value arrays.
type Breakdown struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// Overview is the dashboard payload. Monetary aggregates are rounded to
// two decimals; per-entity collections are passed through as computed.
type Overview struct {
	NetWorth             float64            `json:"net_worth"`
	TotalSavings         float64            `json:"total_savings"`
	TotalNetWorth        float64            `json:"total_net_worth"`
	Deficit              float64            `json:"deficit"`
	TotalStockValue      float64            `json:"total_stock_value"`
	TotalInvestmentValue float64            `json:"total_investment_value"`
	Summary              TransactionSummary `json:"summary"`
	ExpenseBreakdown     Breakdown          `json:"expense_breakdown"`
	NetWorthBreakdown    Breakdown          `json:"net_worth_breakdown"`
	StockData            []StockPosition    `json:"stock_data"`
	InvestmentData       []Investment       `json:"investment_data"`
	SavingsGoals         []SavingsGoalView  `json:"savings_goals"`
	AvailableStocks      []ReferenceStock   `json:"available_stocks"`
}
