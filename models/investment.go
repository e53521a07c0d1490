package models

import "time"

// Investment is a non-stock holding: property, fund, bond, crypto and so on.
type Investment struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PurchaseValue float64   `json:"purchase_value"`
	CurrentValue  float64   `json:"current_value"`
	PurchaseDate  time.Time `json:"purchase_date"`
	LastUpdated   time.Time `json:"last_updated"`
	Quantity      *float64  `json:"quantity,omitempty"`
	Location      string    `json:"location,omitempty"`
	CustomType    string    `json:"custom_type,omitempty"`
}

type NewInvestment struct {
	Type          string
	Name          string
	Description   string
	PurchaseValue float64
	CurrentValue  float64
	PurchaseDate  time.Time
	Quantity      *float64
	Location      string
	CustomType    string
}

func (n NewInvestment) Validate() error {
	if err := requireText("type", n.Type); err != nil {
		return err
	}
	if err := requireText("name", n.Name); err != nil {
		return err
	}
	if err := requireNonNegative("purchase_value", n.PurchaseValue); err != nil {
		return err
	}
	if err := requireNonNegative("current_value", n.CurrentValue); err != nil {
		return err
	}
	if n.PurchaseDate.IsZero() {
		return invalid("purchase_date", "is required")
	}
	if n.Quantity != nil {
		return requireNonNegative("quantity", *n.Quantity)
	}
	return nil
}

// InvestmentPatch lists the mutable fields of an investment. Nil fields
// are left untouched.
type InvestmentPatch struct {
	Type          *string
	Name          *string
	Description   *string
	PurchaseValue *float64
	CurrentValue  *float64
	PurchaseDate  *time.Time
	Quantity      *float64
	Location      *string
	CustomType    *string
}

func (p InvestmentPatch) Validate() error {
	if p.Type != nil {
		if err := requireText("type", *p.Type); err != nil {
			return err
		}
	}
	if p.Name != nil {
		if err := requireText("name", *p.Name); err != nil {
			return err
		}
	}
	if p.PurchaseValue != nil {
		if err := requireNonNegative("purchase_value", *p.PurchaseValue); err != nil {
			return err
		}
	}
	if p.CurrentValue != nil {
		if err := requireNonNegative("current_value", *p.CurrentValue); err != nil {
			return err
		}
	}
	if p.PurchaseDate != nil && p.PurchaseDate.IsZero() {
		return invalid("purchase_date", "must be a valid date")
	}
	if p.Quantity != nil {
		return requireNonNegative("quantity", *p.Quantity)
	}
	return nil
}

// Apply merges the patch into inv. It does not touch LastUpdated.
func (p InvestmentPatch) Apply(inv *Investment) {
	if p.Type != nil {
		inv.Type = *p.Type
	}
	if p.Name != nil {
		inv.Name = *p.Name
	}
	if p.Description != nil {
		inv.Description = *p.Description
	}
	if p.PurchaseValue != nil {
		inv.PurchaseValue = *p.PurchaseValue
	}
	if p.CurrentValue != nil {
		inv.CurrentValue = *p.CurrentValue
	}
	if p.PurchaseDate != nil {
		inv.PurchaseDate = p.PurchaseDate.UTC()
	}
	if p.Quantity != nil {
		q := *p.Quantity
		inv.Quantity = &q
	}
	if p.Location != nil {
		inv.Location = *p.Location
	}
	if p.CustomType != nil {
		inv.CustomType = *p.CustomType
	}
}
