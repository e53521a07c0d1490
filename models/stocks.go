package models

// Stock is a stock position, one per ticker per user.
type Stock struct {
	Ticker        string  `json:"ticker"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentPrice  float64 `json:"current_price"`
}

// NewStock is the input of a stock add. CurrentPrice is optional.
type NewStock struct {
	Ticker        string
	Quantity      float64
	PurchasePrice float64
	CurrentPrice  *float64
}

func (n NewStock) Validate() error {
	if err := requireText("ticker", n.Ticker); err != nil {
		return err
	}
	if err := requireNonNegative("quantity", n.Quantity); err != nil {
		return err
	}
	if n.Quantity == 0 {
		return invalid("quantity", "must be greater than zero")
	}
	if err := requireNonNegative("purchase_price", n.PurchasePrice); err != nil {
		return err
	}
	if n.CurrentPrice != nil {
		return requireNonNegative("current_price", *n.CurrentPrice)
	}
	return nil
}

// StockPosition is a Stock with its read-time derived values.
type StockPosition struct {
	Stock
	CurrentValue float64 `json:"current_value"`
	CostBasis    float64 `json:"cost_basis"`
	Profit       float64 `json:"profit"`
}

// ReferenceStock is an entry of the static symbol table.
type ReferenceStock struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}
