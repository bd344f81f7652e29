package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kasku/internal/middleware"
	"github.com/kasku/internal/service"
	"github.com/kasku/pkg/response"
)

// BudgetHandler handles budget API requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// UpsertBudget sets a category limit, creating it on first use
// POST /api/v1/budgets
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.budgetService.UpsertBudget(userID, &req); err != nil {
		if errors.Is(err, service.ErrValidation) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to save budget")
		return
	}

	response.Created(c, gin.H{"message": "budget saved"})
}

// GetBudgets lists budgets with current-month spending
// GET /api/v1/budgets
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID := middleware.GetUserID(c)

	progress, err := h.budgetService.GetProgress(userID, time.Now())
	if err != nil {
		response.InternalError(c, "failed to load budgets")
		return
	}

	response.Success(c, progress)
}

// RegisterRoutes registers budget routes
func (h *BudgetHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	budgets := rg.Group("/budgets")
	budgets.Use(authMiddleware)
	{
		budgets.POST("", h.UpsertBudget)
		budgets.GET("", h.GetBudgets)
	}
}
