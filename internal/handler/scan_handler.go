package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kasku/internal/gemini"
	"github.com/kasku/internal/middleware"
	"github.com/kasku/pkg/response"
)

// ScanHandler handles receipt scan API requests
type ScanHandler struct {
	geminiClient *gemini.Client
}

// NewScanHandler creates a new ScanHandler. geminiClient may be nil
// when no API key is configured.
func NewScanHandler(geminiClient *gemini.Client) *ScanHandler {
	return &ScanHandler{geminiClient: geminiClient}
}

// ScanReceipt extracts the total, date and merchant from a shopping
// receipt photo. The result is pre-fill data for the transaction form;
// nothing is persisted.
// POST /api/v1/scan
func (h *ScanHandler) ScanReceipt(c *gin.Context) {
	if h.geminiClient == nil {
		response.InternalError(c, "api key not configured")
		return
	}

	image, mimeType, err := readUploadedImage(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	scan, err := h.geminiClient.ScanReceiptImage(c.Request.Context(), image, mimeType)
	if err != nil {
		if errors.Is(err, gemini.ErrUndetected) {
			response.Unprocessable(c, "no receipt detected in image")
			return
		}
		middleware.LogError("receipt scan failed: %v", err)
		response.InternalError(c, "failed to scan image")
		return
	}

	response.Success(c, scan)
}

// RegisterRoutes registers scan routes
func (h *ScanHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	scan := rg.Group("/scan")
	scan.Use(authMiddleware)
	{
		scan.POST("", h.ScanReceipt)
	}
}
