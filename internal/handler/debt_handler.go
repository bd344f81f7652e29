package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kasku/internal/middleware"
	"github.com/kasku/internal/repository"
	"github.com/kasku/internal/service"
	"github.com/kasku/pkg/response"
)

// DebtHandler handles debt API requests
type DebtHandler struct {
	debtService *service.DebtService
}

// NewDebtHandler creates a new DebtHandler
func NewDebtHandler(debtService *service.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// CreateDebt records a debt or receivable
// POST /api/v1/debts
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	debt, err := h.debtService.CreateDebt(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to save debt")
		return
	}

	response.Created(c, debt)
}

// GetDebts lists unpaid debts, nearest due date first
// GET /api/v1/debts
func (h *DebtHandler) GetDebts(c *gin.Context) {
	userID := middleware.GetUserID(c)

	debts, err := h.debtService.GetUnpaidDebts(userID)
	if err != nil {
		response.InternalError(c, "failed to load debts")
		return
	}

	response.Success(c, debts)
}

// MarkPaid settles a debt
// PATCH /api/v1/debts/:id
func (h *DebtHandler) MarkPaid(c *gin.Context) {
	userID := middleware.GetUserID(c)

	debtID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid debt id")
		return
	}

	if err := h.debtService.MarkPaid(userID, uint(debtID)); err != nil {
		if errors.Is(err, repository.ErrDebtNotFound) {
			response.NotFound(c, "debt not found")
			return
		}
		response.InternalError(c, "failed to update debt")
		return
	}

	response.Success(c, gin.H{"message": "debt settled"})
}

// RegisterRoutes registers debt routes
func (h *DebtHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	debts := rg.Group("/debts")
	debts.Use(authMiddleware)
	{
		debts.POST("", h.CreateDebt)
		debts.GET("", h.GetDebts)
		debts.PATCH("/:id", h.MarkPaid)
	}
}
