package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cash-track/market"
)

// StockOptions lists the reference symbols. It is public.
func (h *Handler) StockOptions(c *gin.Context) {
	c.JSON(http.StatusOK, market.AvailableStocks())
}

// GetQuote returns the latest price of a symbol from the quote provider.
func (h *Handler) GetQuote(c *gin.Context) {
	q, err := h.quotes.Quote(c.Request.Context(), c.Param("symbol"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, q)
	case errors.Is(err, market.ErrUnknownSymbol):
		c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch stock data"})
	}
}
