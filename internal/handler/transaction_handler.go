package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kasku/internal/middleware"
	"github.com/kasku/internal/repository"
	"github.com/kasku/internal/service"
	"github.com/kasku/pkg/response"
)

// TransactionHandler handles income/expense API requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction records an entry and adjusts the account balance
// POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tx, err := h.transactionService.CreateTransaction(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			response.BadRequest(c, err.Error())
		case errors.Is(err, repository.ErrAccountNotFound):
			response.NotFound(c, "account not found")
		default:
			response.InternalError(c, "failed to save transaction")
		}
		return
	}

	response.Created(c, tx)
}

// GetTransactions lists the user's latest entries
// GET /api/v1/transactions
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID := middleware.GetUserID(c)

	rows, err := h.transactionService.GetRecentTransactions(userID)
	if err != nil {
		response.InternalError(c, "failed to load transactions")
		return
	}

	response.Success(c, rows)
}

// GetCategories lists the category catalog
// GET /api/v1/categories
func (h *TransactionHandler) GetCategories(c *gin.Context) {
	categories, err := h.transactionService.GetCategories()
	if err != nil {
		response.InternalError(c, "failed to load categories")
		return
	}
	response.Success(c, categories)
}

// RegisterRoutes registers transaction routes
func (h *TransactionHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	transactions := rg.Group("/transactions")
	transactions.Use(authMiddleware)
	{
		transactions.POST("", h.CreateTransaction)
		transactions.GET("", h.GetTransactions)
	}

	categories := rg.Group("/categories")
	categories.Use(authMiddleware)
	{
		categories.GET("", h.GetCategories)
	}
}
