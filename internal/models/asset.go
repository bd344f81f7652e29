package models

// AssetClass controls how a submitted quantity is interpreted:
// stocks are entered in lots, everything else in natural units
type AssetClass string

const (
	AssetClassStock      AssetClass = "Stock"
	AssetClassCrypto     AssetClass = "Crypto"
	AssetClassGold       AssetClass = "Gold"
	AssetClassMutualFund AssetClass = "Mutual Fund"
)

// Asset is one entry in the asset catalog; trades reference it by ticker.
// Registration is idempotent, duplicate tickers are ignored on insert.
type Asset struct {
	Ticker string     `gorm:"primaryKey;size:20" json:"ticker"`
	Name   string     `gorm:"size:100;not null" json:"name"`
	Type   AssetClass `gorm:"size:20;not null" json:"type"`
}

// TableName specifies the table name for Asset model
func (Asset) TableName() string {
	return "assets"
}
