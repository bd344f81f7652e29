package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kasku/internal/models"
	"github.com/kasku/internal/portfolio"
	"github.com/kasku/internal/repository"
)

var (
	// ErrValidation marks a rejected submission; the wrapped message
	// names the offending field
	ErrValidation = errors.New("validation failed")
)

// InvestmentService records trades and derives the portfolio
type InvestmentService struct {
	accountRepo *repository.AccountRepository
	assetRepo   *repository.AssetRepository
	tradeRepo   *repository.TradeRepository
}

// NewInvestmentService creates a new InvestmentService
func NewInvestmentService(
	accountRepo *repository.AccountRepository,
	assetRepo *repository.AssetRepository,
	tradeRepo *repository.TradeRepository,
) *InvestmentService {
	return &InvestmentService{
		accountRepo: accountRepo,
		assetRepo:   assetRepo,
		tradeRepo:   tradeRepo,
	}
}

// SubmitTradeRequest represents a raw trade submission. Fields arrive
// untrusted whether typed by hand or pre-filled from a screenshot scan.
type SubmitTradeRequest struct {
	AccountID  uint              `json:"account_id"`
	Ticker     string            `json:"ticker"`
	AssetClass models.AssetClass `json:"asset_class"`
	Side       models.TradeSide  `json:"side"`
	Price      float64           `json:"price"`
	Quantity   float64           `json:"quantity"`
	Date       string            `json:"date"`
}

// SubmitTrade validates and normalizes a submission, registers the
// ticker in the asset catalog, appends the trade and applies the
// signed notional to the funding account. The trade insert and the
// balance update are two independent writes; a failure between them
// is surfaced, not rolled back.
func (s *InvestmentService) SubmitTrade(userID uint, req *SubmitTradeRequest) (*models.Trade, error) {
	if req.AccountID == 0 {
		return nil, fmt.Errorf("%w: account is required", ErrValidation)
	}
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker is required", ErrValidation)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price is required", ErrValidation)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity is required", ErrValidation)
	}
	if req.Side != models.TradeSideBuy && req.Side != models.TradeSideSell {
		return nil, fmt.Errorf("%w: side must be BUY or SELL", ErrValidation)
	}

	class := req.AssetClass
	if class == "" {
		class = models.AssetClassStock
	}

	tradeDate, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	account, err := s.accountRepo.GetByIDAndUserID(req.AccountID, userID)
	if err != nil {
		return nil, err
	}

	// Auto-register the ticker so manual entry never fails on an
	// unknown asset; duplicates are ignored.
	if err := s.assetRepo.Ensure(&models.Asset{Ticker: ticker, Name: ticker, Type: class}); err != nil {
		return nil, fmt.Errorf("failed to register asset: %w", err)
	}

	units := portfolio.ConvertQuantity(class, req.Quantity)
	notional := portfolio.Notional(req.Price, units)

	trade := &models.Trade{
		UserID:      userID,
		AccountID:   account.ID,
		ReferenceID: uuid.New().String(),
		AssetTicker: ticker,
		Side:        req.Side,
		Price:       req.Price,
		Quantity:    units,
		TotalAmount: notional,
		TradeDate:   tradeDate,
	}
	if err := s.tradeRepo.Create(trade); err != nil {
		return nil, fmt.Errorf("failed to record trade: %w", err)
	}

	delta := portfolio.BalanceDelta(req.Side, notional)
	if err := s.accountRepo.AddToBalance(account.ID, delta); err != nil {
		return nil, fmt.Errorf("trade recorded but balance update failed: %w", err)
	}

	return trade, nil
}

// GetPortfolio recomputes all open positions from the full trade
// history. Nothing is cached between calls.
func (s *InvestmentService) GetPortfolio(userID uint) ([]portfolio.Position, error) {
	trades, err := s.tradeRepo.GetHistoryByUserID(userID)
	if err != nil {
		return nil, err
	}
	return portfolio.Compute(trades), nil
}

// GetTrades returns the display trade history, newest first
func (s *InvestmentService) GetTrades(userID uint) ([]models.TradeRow, error) {
	return s.tradeRepo.GetRowsByUserID(userID)
}

// parseDate parses a YYYY-MM-DD submission date, defaulting to today
// when absent
func parseDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", value)
}
