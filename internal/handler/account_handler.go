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

// AccountHandler handles account API requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccount handles account creation
// POST /api/v1/accounts
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.CreateAccount(userID, &req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, account)
}

// GetAccounts handles listing the user's accounts
// GET /api/v1/accounts
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	userID := middleware.GetUserID(c)

	accounts, err := h.accountService.GetAccounts(userID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, accounts)
}

// GetAccount handles getting a single account
// GET /api/v1/accounts/:id
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)

	accountID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid account id")
		return
	}

	account, err := h.accountService.GetAccountByID(userID, uint(accountID))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			response.NotFound(c, "account not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, account)
}

// RegisterRoutes registers account routes
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	accounts := rg.Group("/accounts")
	accounts.Use(authMiddleware)
	{
		accounts.POST("", h.CreateAccount)
		accounts.GET("", h.GetAccounts)
		accounts.GET("/:id", h.GetAccount)
	}
}
