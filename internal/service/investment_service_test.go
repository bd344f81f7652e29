package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kasku/internal/models"
	"github.com/kasku/internal/repository"
)

// setupInvestmentTest creates an isolated in-memory database with one
// user and one funded account.
func setupInvestmentTest(t *testing.T) (*InvestmentService, *repository.AccountRepository, *models.Account) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Account{}, &models.Asset{}, &models.Trade{})
	require.NoError(t, err)

	user := &models.User{Email: "test@example.com", PasswordHash: "x", FullName: "Test"}
	require.NoError(t, db.Create(user).Error)

	account := &models.Account{UserID: user.ID, Name: "RDN", Type: models.AccountTypeBank, Balance: 100_000_000}
	require.NoError(t, db.Create(account).Error)

	accountRepo := repository.NewAccountRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	tradeRepo := repository.NewTradeRepository(db)

	svc := NewInvestmentService(accountRepo, assetRepo, tradeRepo)
	return svc, accountRepo, account
}

func TestSubmitTrade_Validation(t *testing.T) {
	svc, _, account := setupInvestmentTest(t)

	tests := []struct {
		name string
		req  SubmitTradeRequest
	}{
		{"missing account", SubmitTradeRequest{Ticker: "BBCA", Side: models.TradeSideBuy, Price: 100, Quantity: 1}},
		{"missing ticker", SubmitTradeRequest{AccountID: account.ID, Side: models.TradeSideBuy, Price: 100, Quantity: 1}},
		{"blank ticker", SubmitTradeRequest{AccountID: account.ID, Ticker: "   ", Side: models.TradeSideBuy, Price: 100, Quantity: 1}},
		{"zero price", SubmitTradeRequest{AccountID: account.ID, Ticker: "BBCA", Side: models.TradeSideBuy, Price: 0, Quantity: 1}},
		{"negative price", SubmitTradeRequest{AccountID: account.ID, Ticker: "BBCA", Side: models.TradeSideBuy, Price: -5, Quantity: 1}},
		{"zero quantity", SubmitTradeRequest{AccountID: account.ID, Ticker: "BBCA", Side: models.TradeSideBuy, Price: 100, Quantity: 0}},
		{"bad side", SubmitTradeRequest{AccountID: account.ID, Ticker: "BBCA", Side: "HOLD", Price: 100, Quantity: 1}},
		{"bad date", SubmitTradeRequest{AccountID: account.ID, Ticker: "BBCA", Side: models.TradeSideBuy, Price: 100, Quantity: 1, Date: "17-12-2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitTrade(account.UserID, &tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestSubmitTrade_RejectsForeignAccount(t *testing.T) {
	svc, _, account := setupInvestmentTest(t)

	_, err := svc.SubmitTrade(account.UserID+1, &SubmitTradeRequest{
		AccountID: account.ID,
		Ticker:    "BBCA",
		Side:      models.TradeSideBuy,
		Price:     10250,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestSubmitTrade_StockLotConversion(t *testing.T) {
	svc, accountRepo, account := setupInvestmentTest(t)

	trade, err := svc.SubmitTrade(account.UserID, &SubmitTradeRequest{
		AccountID:  account.ID,
		Ticker:     " bbca ",
		AssetClass: models.AssetClassStock,
		Side:       models.TradeSideBuy,
		Price:      10250,
		Quantity:   10, // lots
		Date:       "2024-12-17",
	})
	require.NoError(t, err)

	assert.Equal(t, "BBCA", trade.AssetTicker)
	assert.Equal(t, float64(1000), trade.Quantity)
	assert.Equal(t, float64(10_250_000), trade.TotalAmount)
	assert.NotEmpty(t, trade.ReferenceID)

	// Buy spends the notional from the funding account
	updated, err := accountRepo.GetByIDAndUserID(account.ID, account.UserID)
	require.NoError(t, err)
	assert.InDelta(t, 100_000_000-10_250_000, updated.Balance, 0.001)
}

func TestSubmitTrade_CryptoKeepsUnitQuantity(t *testing.T) {
	svc, accountRepo, account := setupInvestmentTest(t)

	trade, err := svc.SubmitTrade(account.UserID, &SubmitTradeRequest{
		AccountID:  account.ID,
		Ticker:     "BTC",
		AssetClass: models.AssetClassCrypto,
		Side:       models.TradeSideSell,
		Price:      1_000_000,
		Quantity:   0.5,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.5, trade.Quantity)
	assert.Equal(t, float64(500_000), trade.TotalAmount)

	// Sell returns the proceeds to the funding account
	updated, err := accountRepo.GetByIDAndUserID(account.ID, account.UserID)
	require.NoError(t, err)
	assert.InDelta(t, 100_000_000+500_000, updated.Balance, 0.001)
}

func TestSubmitTrade_DefaultsAssetClassToStock(t *testing.T) {
	svc, _, account := setupInvestmentTest(t)

	trade, err := svc.SubmitTrade(account.UserID, &SubmitTradeRequest{
		AccountID: account.ID,
		Ticker:    "ANTM",
		Side:      models.TradeSideBuy,
		Price:     1500,
		Quantity:  2,
	})
	require.NoError(t, err)

	// Stock lot conversion applied even when the class was omitted
	assert.Equal(t, float64(200), trade.Quantity)
}

func TestGetPortfolio_AverageCostAcrossTrades(t *testing.T) {
	svc, _, account := setupInvestmentTest(t)

	submit := func(side models.TradeSide, price, qty float64, date string) {
		t.Helper()
		_, err := svc.SubmitTrade(account.UserID, &SubmitTradeRequest{
			AccountID:  account.ID,
			Ticker:     "BTC",
			AssetClass: models.AssetClassCrypto,
			Side:       side,
			Price:      price,
			Quantity:   qty,
			Date:       date,
		})
		require.NoError(t, err)
	}

	submit(models.TradeSideBuy, 100, 10, "2024-01-01")
	submit(models.TradeSideBuy, 200, 10, "2024-01-02")
	submit(models.TradeSideSell, 999, 5, "2024-01-03")

	positions, err := svc.GetPortfolio(account.UserID)
	require.NoError(t, err)
	require.Len(t, positions, 1)

	pos := positions[0]
	assert.Equal(t, "BTC", pos.Ticker)
	assert.InDelta(t, 15, pos.TotalQuantity, 1e-9)
	// Selling never moves the average cost
	assert.InDelta(t, 150, pos.AverageCost, 1e-9)
	assert.InDelta(t, 2250, pos.TotalValue, 1e-9)
}

func TestGetPortfolio_ExcludesClosedPositions(t *testing.T) {
	svc, _, account := setupInvestmentTest(t)

	for _, step := range []struct {
		ticker string
		side   models.TradeSide
		qty    float64
	}{
		{"BTC", models.TradeSideBuy, 2},
		{"BTC", models.TradeSideSell, 2},
		{"ETH", models.TradeSideBuy, 3},
	} {
		_, err := svc.SubmitTrade(account.UserID, &SubmitTradeRequest{
			AccountID:  account.ID,
			Ticker:     step.ticker,
			AssetClass: models.AssetClassCrypto,
			Side:       step.side,
			Price:      100,
			Quantity:   step.qty,
		})
		require.NoError(t, err)
	}

	positions, err := svc.GetPortfolio(account.UserID)
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "ETH", positions[0].Ticker)
}

func TestGetTrades_NewestFirst(t *testing.T) {
	svc, _, account := setupInvestmentTest(t)

	for _, date := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		_, err := svc.SubmitTrade(account.UserID, &SubmitTradeRequest{
			AccountID:  account.ID,
			Ticker:     "BTC",
			AssetClass: models.AssetClassCrypto,
			Side:       models.TradeSideBuy,
			Price:      100,
			Quantity:   1,
			Date:       date,
		})
		require.NoError(t, err)
	}

	rows, err := svc.GetTrades(account.UserID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].TradeDate.After(rows[1].TradeDate))
	assert.True(t, rows[1].TradeDate.After(rows[2].TradeDate))
}
