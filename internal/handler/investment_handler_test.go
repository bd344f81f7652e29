package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kasku/internal/handler"
	"github.com/kasku/internal/middleware"
	"github.com/kasku/internal/models"
	"github.com/kasku/internal/repository"
	"github.com/kasku/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAuth injects a fixed user without touching JWT or Redis
func stubAuth(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, userID)
		c.Next()
	}
}

func setupRouter(t *testing.T) (*gin.Engine, *models.Account) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Account{}, &models.Asset{}, &models.Trade{}))

	user := &models.User{Email: "test@example.com", PasswordHash: "x", FullName: "Test"}
	require.NoError(t, db.Create(user).Error)
	account := &models.Account{UserID: user.ID, Name: "RDN", Type: models.AccountTypeBank, Balance: 100_000_000}
	require.NoError(t, db.Create(account).Error)

	svc := service.NewInvestmentService(
		repository.NewAccountRepository(db),
		repository.NewAssetRepository(db),
		repository.NewTradeRepository(db),
	)

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.NewInvestmentHandler(svc, nil).RegisterRoutes(v1, stubAuth(user.ID))
	return router, account
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestSubmitTradeEndpoint(t *testing.T) {
	router, account := setupRouter(t)

	w := postJSON(router, "/api/v1/investments", gin.H{
		"account_id":  account.ID,
		"ticker":      "bbca",
		"asset_class": "Stock",
		"side":        "BUY",
		"price":       10250,
		"quantity":    10,
		"date":        "2024-12-17",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "created", resp.Message)

	var trade models.Trade
	require.NoError(t, json.Unmarshal(resp.Data, &trade))
	assert.Equal(t, "BBCA", trade.AssetTicker)
	assert.Equal(t, float64(1000), trade.Quantity)
}

func TestSubmitTradeEndpoint_ValidationError(t *testing.T) {
	router, account := setupRouter(t)

	w := postJSON(router, "/api/v1/investments", gin.H{
		"account_id": account.ID,
		"ticker":     "BBCA",
		"side":       "HOLD",
		"price":      100,
		"quantity":   1,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, -1, resp.Code)
}

func TestSubmitTradeEndpoint_UnknownAccount(t *testing.T) {
	router, _ := setupRouter(t)

	w := postJSON(router, "/api/v1/investments", gin.H{
		"account_id": 9999,
		"ticker":     "BBCA",
		"side":       "BUY",
		"price":      100,
		"quantity":   1,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPortfolioEndpoint(t *testing.T) {
	router, account := setupRouter(t)

	for _, trade := range []gin.H{
		{"side": "BUY", "price": 100, "quantity": 10, "date": "2024-01-01"},
		{"side": "BUY", "price": 200, "quantity": 10, "date": "2024-01-02"},
		{"side": "SELL", "price": 999, "quantity": 5, "date": "2024-01-03"},
	} {
		trade["account_id"] = account.ID
		trade["ticker"] = "BTC"
		trade["asset_class"] = "Crypto"
		w := postJSON(router, "/api/v1/investments", trade)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/investments/portfolio", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var positions []struct {
		Ticker        string  `json:"ticker"`
		TotalQuantity float64 `json:"total_quantity"`
		AverageCost   float64 `json:"average_cost"`
		TotalValue    float64 `json:"total_value"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &positions))
	require.Len(t, positions, 1)
	assert.Equal(t, "BTC", positions[0].Ticker)
	assert.InDelta(t, 15, positions[0].TotalQuantity, 1e-9)
	assert.InDelta(t, 150, positions[0].AverageCost, 1e-9)
	assert.InDelta(t, 2250, positions[0].TotalValue, 1e-9)
}

func TestScanEndpoint_WithoutAPIKey(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/investments/scan", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "api key not configured", resp.Message)
}

func TestTradeHistoryEndpoint(t *testing.T) {
	router, account := setupRouter(t)

	for i, date := range []string{"2024-01-01", "2024-02-01"} {
		w := postJSON(router, "/api/v1/investments", gin.H{
			"account_id":  account.ID,
			"ticker":      fmt.Sprintf("TKR%d", i),
			"asset_class": "Crypto",
			"side":        "BUY",
			"price":       100,
			"quantity":    1,
			"date":        date,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/investments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var rows []models.TradeRow
	require.NoError(t, json.Unmarshal(resp.Data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "TKR1", rows[0].AssetTicker)
}
