package repository

import (
	"github.com/kasku/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TradeRepository handles trade log data access
type TradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// Create appends a trade to the log
func (r *TradeRepository) Create(trade *models.Trade) error {
	return r.db.Create(trade).Error
}

// GetHistoryByUserID retrieves the full trade history for a user in
// accounting order: trade date ascending, ties broken by insertion id
func (r *TradeRepository) GetHistoryByUserID(userID uint) ([]models.Trade, error) {
	var trades []models.Trade
	result := r.db.Where("user_id = ?", userID).
		Order("trade_date ASC, id ASC").
		Find(&trades)
	return trades, result.Error
}

// GetRowsByUserID retrieves trades joined with the asset catalog for
// display, newest first
func (r *TradeRepository) GetRowsByUserID(userID uint) ([]models.TradeRow, error) {
	var rows []models.TradeRow
	err := r.db.Model(&models.Trade{}).
		Select("trades.id, trades.asset_ticker, assets.name AS asset_name, assets.type AS asset_type, " +
			"trades.side, trades.price, trades.quantity, trades.total_amount, trades.trade_date").
		Joins("JOIN assets ON trades.asset_ticker = assets.ticker").
		Where("trades.user_id = ?", userID).
		Order("trades.trade_date DESC, trades.id DESC").
		Scan(&rows).Error
	return rows, err
}

// GetBatch retrieves trades with id greater than afterID, oldest first.
// Used by the notional audit sweep.
func (r *TradeRepository) GetBatch(afterID uint, limit int) ([]models.Trade, error) {
	var trades []models.Trade
	result := r.db.Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&trades)
	return trades, result.Error
}

// AssetRepository handles asset catalog access
type AssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new AssetRepository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Ensure registers a ticker in the asset catalog. Duplicate
// registration is a no-op, not an error.
func (r *AssetRepository) Ensure(asset *models.Asset) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(asset).Error
}

// GetByTicker retrieves one catalog entry
func (r *AssetRepository) GetByTicker(ticker string) (*models.Asset, error) {
	var asset models.Asset
	result := r.db.Where("ticker = ?", ticker).First(&asset)
	if result.Error != nil {
		return nil, result.Error
	}
	return &asset, nil
}
