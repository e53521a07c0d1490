package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cash-track/models"
)

// investmentRequest is the body of an add. Required fields are listed
// in the order they are reported missing.
type investmentRequest struct {
	Type          *string `json:"type" binding:"required"`
	Name          *string `json:"name" binding:"required"`
	Description   *string `json:"description"`
	PurchaseValue *Number `json:"purchase_value" binding:"required,gte=0"`
	CurrentValue  *Number `json:"current_value" binding:"required,gte=0"`
	PurchaseDate  *string `json:"purchase_date" binding:"required"`
	Quantity      *Number `json:"quantity" binding:"omitempty,gte=0"`
	Location      *string `json:"location"`
	CustomType    *string `json:"custom_type"`
}

func (r investmentRequest) empty() bool {
	return investmentPatchRequest(r).empty()
}

// investmentPatchRequest is the body of an update; every field is optional.
type investmentPatchRequest struct {
	Type          *string `json:"type"`
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	PurchaseValue *Number `json:"purchase_value" binding:"omitempty,gte=0"`
	CurrentValue  *Number `json:"current_value" binding:"omitempty,gte=0"`
	PurchaseDate  *string `json:"purchase_date"`
	Quantity      *Number `json:"quantity" binding:"omitempty,gte=0"`
	Location      *string `json:"location"`
	CustomType    *string `json:"custom_type"`
}

func (r investmentPatchRequest) empty() bool {
	return r.Type == nil && r.Name == nil && r.Description == nil &&
		r.PurchaseValue == nil && r.CurrentValue == nil && r.PurchaseDate == nil &&
		r.Quantity == nil && r.Location == nil && r.CustomType == nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (h *Handler) ListInvestments(c *gin.Context) {
	c.JSON(http.StatusOK, h.records.Investments(c.Request.Context(), userID(c)))
}

func (h *Handler) AddInvestment(c *gin.Context) {
	var req investmentRequest
	if !bind(c, &req, func(missing []string) string {
		if req.empty() {
			return "No data provided"
		}
		return "Missing required field: " + missing[0]
	}) {
		return
	}
	purchased, ok := requiredDate(c, "purchase_date", *req.PurchaseDate)
	if !ok {
		return
	}

	inv, err := h.records.AddInvestment(c.Request.Context(), userID(c), models.NewInvestment{
		Type:          *req.Type,
		Name:          *req.Name,
		Description:   deref(req.Description),
		PurchaseValue: float64(*req.PurchaseValue),
		CurrentValue:  float64(*req.CurrentValue),
		PurchaseDate:  purchased,
		Quantity:      req.Quantity.float(),
		Location:      deref(req.Location),
		CustomType:    deref(req.CustomType),
	})
	if err != nil {
		fail(c, err, "Investment not found")
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// UpdateInvestment merges the supplied fields into an investment.
func (h *Handler) UpdateInvestment(c *gin.Context) {
	var req investmentPatchRequest
	if !bind(c, &req, nil) {
		return
	}
	if req.empty() {
		badRequest(c, "No data provided")
		return
	}
	patch := models.InvestmentPatch{
		Type:          req.Type,
		Name:          req.Name,
		Description:   req.Description,
		PurchaseValue: req.PurchaseValue.float(),
		CurrentValue:  req.CurrentValue.float(),
		Quantity:      req.Quantity.float(),
		Location:      req.Location,
		CustomType:    req.CustomType,
	}
	if req.PurchaseDate != nil {
		t, ok := requiredDate(c, "purchase_date", *req.PurchaseDate)
		if !ok {
			return
		}
		patch.PurchaseDate = &t
	}

	inv, err := h.records.UpdateInvestment(c.Request.Context(), userID(c), c.Param("id"), patch)
	if err != nil {
		fail(c, err, "Investment not found")
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *Handler) DeleteInvestment(c *gin.Context) {
	removed, err := h.records.DeleteInvestment(c.Request.Context(), userID(c), c.Param("id"))
	deleted(c, removed, err, "Investment deleted successfully", "Investment not found")
}
