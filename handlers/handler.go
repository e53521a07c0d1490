package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cash-track/auth"
	"cash-track/market"
	"cash-track/models"
	"cash-track/repository"
)

// Overviewer builds the dashboard payload of a user.
type Overviewer interface {
	Overview(ctx context.Context, userID string) models.Overview
}

// Handler serves the HTTP API. All state lives behind the injected
// dependencies.
type Handler struct {
	records   *repository.Repository
	dashboard Overviewer
	quotes    market.Quoter
	verifier  auth.Verifier
}

func New(records *repository.Repository, dashboard Overviewer, quotes market.Quoter, verifier auth.Verifier) *Handler {
	return &Handler{records: records, dashboard: dashboard, quotes: quotes, verifier: verifier}
}

// Register mounts every route on r. requireAuth guards the routes that
// act on a user's records.
func (h *Handler) Register(r gin.IRouter, requireAuth gin.HandlerFunc) {
	r.GET("/health", h.Health)

	dash := r.Group("/dashboard")
	dash.GET("/stocks/options", h.StockOptions)
	{
		d := dash.Group("", requireAuth)
		d.GET("/overview", h.Overview)

		d.POST("/income", h.AddIncome)
		d.POST("/expense", h.AddExpense)
		d.GET("/transactions", h.ListTransactions)
		d.DELETE("/transaction/:id", h.DeleteTransaction)

		d.GET("/stocks", h.ListStocks)
		d.POST("/stock", h.AddStock)
		d.POST("/stocks", h.AddStock)
		d.DELETE("/stock/:ticker", h.DeleteStock)
		d.DELETE("/stocks/:ticker", h.DeleteStock)
		d.GET("/stocks/quote/:symbol", h.GetQuote)

		d.GET("/investments", h.ListInvestments)
		d.POST("/investment", h.AddInvestment)
		d.PUT("/investment/:id", h.UpdateInvestment)
		d.DELETE("/investment/:id", h.DeleteInvestment)

		d.GET("/savings", h.ListSavingsGoals)
	}

	savings := r.Group("/savings", requireAuth)
	savings.GET("/", h.ListSavingsGoals)
	savings.POST("/", h.AddSavingsGoal)
	savings.PUT("/:id", h.UpdateSavingsGoal)
	savings.DELETE("/:id", h.DeleteSavingsGoal)

	users := r.Group("/users")
	users.POST("/login", h.Login)
	users.GET("/me", requireAuth, h.Me)

	account := r.Group("/auth", requireAuth)
	account.GET("/profile", h.Profile)
	account.POST("/verify", h.VerifyToken)

	posts := r.Group("/posts")
	posts.GET("/", h.ListPosts)
	posts.POST("/", h.AddPost)
	posts.DELETE("/:id", h.DeletePost)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Overview(c.Request.Context(), userID(c)))
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// fail maps a repository error to its response. notFound is the message
// used for ErrNotFound.
func fail(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, repository.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, repository.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// deleted writes the response of a delete operation.
func deleted(c *gin.Context, removed bool, err error, ok, notFound string) {
	if err != nil {
		fail(c, err, notFound)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": ok})
}
