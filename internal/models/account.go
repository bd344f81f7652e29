package models

import (
	"time"

	"gorm.io/gorm"
)

// AccountType represents the kind of funding account
type AccountType string

const (
	AccountTypeBank    AccountType = "Bank"
	AccountTypeEWallet AccountType = "E-Wallet"
	AccountTypeCash    AccountType = "Cash"
)

// Account represents a cash account whose balance is mutated by
// transaction and trade deltas
type Account struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index;not null" json:"user_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Type      AccountType    `gorm:"size:20;not null" json:"type"`
	Balance   float64        `gorm:"type:decimal(20,2);default:0" json:"balance"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for Account model
func (Account) TableName() string {
	return "accounts"
}
