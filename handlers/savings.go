package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cash-track/finance"
	"cash-track/models"
)

type savingsGoalRequest struct {
	Name          *string `json:"name" binding:"required"`
	TargetAmount  *Number `json:"target_amount" binding:"required,gte=0"`
	CurrentAmount *Number `json:"current_amount" binding:"omitempty,gte=0"`
	Deadline      *string `json:"deadline" binding:"required"`
	Category      *string `json:"category"`
	Priority      *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type savingsGoalPatchRequest struct {
	Name          *string `json:"name"`
	TargetAmount  *Number `json:"target_amount" binding:"omitempty,gte=0"`
	CurrentAmount *Number `json:"current_amount" binding:"omitempty,gte=0"`
	Deadline      *string `json:"deadline"`
	Category      *string `json:"category"`
	Priority      *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

func (h *Handler) ListSavingsGoals(c *gin.Context) {
	goals := h.records.SavingsGoals(c.Request.Context(), userID(c))
	c.JSON(http.StatusOK, finance.GoalsProgress(goals))
}

func (h *Handler) AddSavingsGoal(c *gin.Context) {
	var req savingsGoalRequest
	if !bind(c, &req, func(missing []string) string {
		return "Missing required fields: " + strings.Join(missing, ", ")
	}) {
		return
	}
	deadline, ok := requiredDate(c, "deadline", *req.Deadline)
	if !ok {
		return
	}

	in := models.NewSavingsGoal{
		Name:         *req.Name,
		TargetAmount: float64(*req.TargetAmount),
		Deadline:     deadline,
		Category:     deref(req.Category),
		Priority:     deref(req.Priority),
	}
	if req.CurrentAmount != nil {
		in.CurrentAmount = float64(*req.CurrentAmount)
	}
	g, err := h.records.AddSavingsGoal(c.Request.Context(), userID(c), in)
	if err != nil {
		fail(c, err, "Savings goal not found")
		return
	}
	c.JSON(http.StatusCreated, finance.GoalProgress(g))
}

// UpdateSavingsGoal merges the supplied fields into a goal.
func (h *Handler) UpdateSavingsGoal(c *gin.Context) {
	var req savingsGoalPatchRequest
	if !bind(c, &req, nil) {
		return
	}
	patch := models.SavingsGoalPatch{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount.float(),
		CurrentAmount: req.CurrentAmount.float(),
		Category:      req.Category,
		Priority:      req.Priority,
	}
	if req.Deadline != nil {
		t, ok := requiredDate(c, "deadline", *req.Deadline)
		if !ok {
			return
		}
		patch.Deadline = &t
	}

	g, err := h.records.UpdateSavingsGoal(c.Request.Context(), userID(c), c.Param("id"), patch)
	if err != nil {
		fail(c, err, "Savings goal not found")
		return
	}
	c.JSON(http.StatusOK, finance.GoalProgress(g))
}

func (h *Handler) DeleteSavingsGoal(c *gin.Context) {
	removed, err := h.records.DeleteSavingsGoal(c.Request.Context(), userID(c), c.Param("id"))
	deleted(c, removed, err, "Savings goal deleted", "Savings goal not found")
}
