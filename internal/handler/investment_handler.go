package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/kasku/internal/gemini"
	"github.com/kasku/internal/middleware"
	"github.com/kasku/internal/repository"
	"github.com/kasku/internal/service"
	"github.com/kasku/pkg/response"
)

// InvestmentHandler handles trade and portfolio API requests
type InvestmentHandler struct {
	investmentService *service.InvestmentService
	geminiClient      *gemini.Client
}

// NewInvestmentHandler creates a new InvestmentHandler. geminiClient
// may be nil when no API key is configured; the scan endpoint then
// reports the feature as unavailable.
func NewInvestmentHandler(investmentService *service.InvestmentService, geminiClient *gemini.Client) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
		geminiClient:      geminiClient,
	}
}

// SubmitTrade records a buy or sell and adjusts the funding account
// POST /api/v1/investments
func (h *InvestmentHandler) SubmitTrade(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.SubmitTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trade, err := h.investmentService.SubmitTrade(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			response.BadRequest(c, err.Error())
		case errors.Is(err, repository.ErrAccountNotFound):
			response.NotFound(c, "account not found")
		default:
			middleware.LogError("submit trade failed: %v", err)
			response.InternalError(c, "failed to record trade")
		}
		return
	}

	response.Created(c, trade)
}

// GetTrades returns the trade history, newest first
// GET /api/v1/investments
func (h *InvestmentHandler) GetTrades(c *gin.Context) {
	userID := middleware.GetUserID(c)

	trades, err := h.investmentService.GetTrades(userID)
	if err != nil {
		response.InternalError(c, "failed to load trades")
		return
	}

	response.Success(c, trades)
}

// GetPortfolio recomputes open positions from the full trade history
// GET /api/v1/investments/portfolio
func (h *InvestmentHandler) GetPortfolio(c *gin.Context) {
	userID := middleware.GetUserID(c)

	positions, err := h.investmentService.GetPortfolio(userID)
	if err != nil {
		response.InternalError(c, "failed to compute portfolio")
		return
	}

	response.Success(c, positions)
}

// ScanTrade extracts candidate trade fields from a trading-app
// screenshot. The result is pre-fill data only; nothing is persisted.
// POST /api/v1/investments/scan
func (h *InvestmentHandler) ScanTrade(c *gin.Context) {
	if h.geminiClient == nil {
		response.InternalError(c, "api key not configured")
		return
	}

	image, mimeType, err := readUploadedImage(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	scan, err := h.geminiClient.ScanTradeImage(c.Request.Context(), image, mimeType)
	if err != nil {
		if errors.Is(err, gemini.ErrUndetected) {
			response.Unprocessable(c, "no trade detected in image")
			return
		}
		middleware.LogError("trade scan failed: %v", err)
		response.InternalError(c, "failed to scan image")
		return
	}

	response.Success(c, scan)
}

// RegisterRoutes registers investment routes
func (h *InvestmentHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	investments := rg.Group("/investments")
	investments.Use(authMiddleware)
	{
		investments.POST("", h.SubmitTrade)
		investments.GET("", h.GetTrades)
		investments.GET("/portfolio", h.GetPortfolio)
		investments.POST("/scan", h.ScanTrade)
	}
}

// readUploadedImage reads the multipart "file" field and its declared
// content type
func readUploadedImage(c *gin.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", errors.New("image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", errors.New("failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", errors.New("failed to read uploaded file")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return data, mimeType, nil
}
