package models

import (
	"time"
)

// TradeSide represents the trade direction
type TradeSide string

const (
	TradeSideBuy  TradeSide = "BUY"
	TradeSideSell TradeSide = "SELL"
)

// Trade represents one buy/sell event. Quantity is stored in natural
// units (lot conversion happens before persistence) and TotalAmount is
// the notional at trade time, kept redundantly for audit and display.
type Trade struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	AccountID   uint      `gorm:"index;not null" json:"account_id"`
	ReferenceID string    `gorm:"size:50;index" json:"reference_id"`
	AssetTicker string    `gorm:"size:20;not null;index" json:"asset_ticker"`
	Side        TradeSide `gorm:"size:10;not null" json:"side"`
	Price       float64   `gorm:"type:decimal(20,8);not null" json:"price"`
	Quantity    float64   `gorm:"type:decimal(20,8);not null" json:"quantity"`
	TotalAmount float64   `gorm:"type:decimal(20,8);not null" json:"total_amount"`
	TradeDate   time.Time `gorm:"index;not null" json:"trade_date"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
	Asset   Asset   `gorm:"foreignKey:AssetTicker;references:Ticker" json:"-"`
}

// TableName specifies the table name for Trade model
func (Trade) TableName() string {
	return "trades"
}

// TradeRow is the read shape joined with the asset catalog
type TradeRow struct {
	ID          uint       `json:"id"`
	AssetTicker string     `json:"asset_ticker"`
	AssetName   string     `json:"asset_name"`
	AssetType   AssetClass `json:"asset_type"`
	Side        TradeSide  `json:"side"`
	Price       float64    `json:"price"`
	Quantity    float64    `json:"quantity"`
	TotalAmount float64    `json:"total_amount"`
	TradeDate   time.Time  `json:"trade_date"`
}
