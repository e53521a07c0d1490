package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cash-track/models"
)

type incomeRequest struct {
	Source   string  `json:"source" binding:"required_without=Title"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Content  string  `json:"content"`
	Amount   *Number `json:"amount" binding:"required"`
	Date     string  `json:"date"`
}

type expenseRequest struct {
	Source   string  `json:"source"`
	Title    string  `json:"title"`
	Category string  `json:"category" binding:"required"`
	Content  string  `json:"content"`
	Amount   *Number `json:"amount" binding:"required"`
	Date     string  `json:"date"`
}

func transactionInput(title, category, content string, amount Number, date string) models.NewTransaction {
	return models.NewTransaction{
		Title:    title,
		Content:  content,
		Amount:   float64(amount),
		Category: category,
		Date:     optionalDate(date),
	}
}

// AddIncome records income. The amount is stored positive whatever its
// sign on the wire.
func (h *Handler) AddIncome(c *gin.Context) {
	const required = "source and amount are required"
	var req incomeRequest
	if !bind(c, &req, requires(required)) {
		return
	}
	source := firstNonEmpty(req.Source, req.Title)
	if source == "" {
		badRequest(c, required)
		return
	}

	in := transactionInput(source, req.Category, req.Content, *req.Amount, req.Date)
	t, err := h.records.AddIncome(c.Request.Context(), userID(c), in)
	if err != nil {
		fail(c, err, "Transaction not found")
		return
	}
	c.JSON(http.StatusCreated, t)
}

// AddExpense records spend. The amount is stored negative.
func (h *Handler) AddExpense(c *gin.Context) {
	const required = "category and amount are required"
	var req expenseRequest
	if !bind(c, &req, requires(required)) {
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		badRequest(c, required)
		return
	}

	title := firstNonEmpty(req.Title, req.Source, req.Category)
	in := transactionInput(title, req.Category, req.Content, *req.Amount, req.Date)
	t, err := h.records.AddExpense(c.Request.Context(), userID(c), in)
	if err != nil {
		fail(c, err, "Transaction not found")
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) ListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, h.records.Transactions(c.Request.Context(), userID(c)))
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	removed, err := h.records.DeleteTransaction(c.Request.Context(), userID(c), c.Param("id"))
	deleted(c, removed, err, "Transaction deleted successfully", "Transaction not found")
}
