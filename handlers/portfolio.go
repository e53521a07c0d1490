package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cash-track/finance"
	"cash-track/models"
)

type stockRequest struct {
	Ticker        string  `json:"ticker" binding:"required"`
	Quantity      *Number `json:"quantity" binding:"required,gt=0"`
	PurchasePrice *Number `json:"purchase_price" binding:"required,gte=0"`
	CurrentPrice  *Number `json:"current_price" binding:"omitempty,gte=0"`
}

// AddStock creates or replaces the position for a ticker and answers
// with its derived values.
func (h *Handler) AddStock(c *gin.Context) {
	const required = "ticker, quantity and purchase_price are required"
	var req stockRequest
	if !bind(c, &req, requires(required)) {
		return
	}
	if strings.TrimSpace(req.Ticker) == "" {
		badRequest(c, required)
		return
	}

	s, err := h.records.AddStock(c.Request.Context(), userID(c), models.NewStock{
		Ticker:        req.Ticker,
		Quantity:      float64(*req.Quantity),
		PurchasePrice: float64(*req.PurchasePrice),
		CurrentPrice:  req.CurrentPrice.float(),
	})
	if err != nil {
		fail(c, err, "Stock position not found")
		return
	}
	c.JSON(http.StatusCreated, finance.EnrichStock(s))
}

func (h *Handler) ListStocks(c *gin.Context) {
	c.JSON(http.StatusOK, finance.EnrichStocks(h.records.Stocks(c.Request.Context(), userID(c))))
}

func (h *Handler) DeleteStock(c *gin.Context) {
	removed, err := h.records.DeleteStock(c.Request.Context(), userID(c), c.Param("ticker"))
	deleted(c, removed, err, "Stock position deleted successfully", "Stock position not found")
}
