package models

import (
	"time"
)

// CategoryKind represents the direction of a category
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "Income"
	CategoryKindExpense CategoryKind = "Expense"
)

// Category represents a transaction category (shared catalog)
type Category struct {
	ID   uint         `gorm:"primaryKey" json:"id"`
	Name string       `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Type CategoryKind `gorm:"size:10;not null" json:"type"`
}

// TableName specifies the table name for Category model
func (Category) TableName() string {
	return "categories"
}

// DefaultCategories is the shared category catalog seeded at startup
var DefaultCategories = []Category{
	{Name: "Gaji", Type: CategoryKindIncome},
	{Name: "Bonus", Type: CategoryKindIncome},
	{Name: "Makanan", Type: CategoryKindExpense},
	{Name: "Transportasi", Type: CategoryKindExpense},
	{Name: "Belanja", Type: CategoryKindExpense},
	{Name: "Tagihan", Type: CategoryKindExpense},
	{Name: "Hiburan", Type: CategoryKindExpense},
	{Name: "Lainnya", Type: CategoryKindExpense},
}

// Transaction represents one income or expense entry against an account
type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	AccountID       uint      `gorm:"index;not null" json:"account_id"`
	CategoryID      *uint     `gorm:"index" json:"category_id"`
	Amount          float64   `gorm:"type:decimal(20,2);not null" json:"amount"`
	TransactionDate time.Time `gorm:"index;not null" json:"transaction_date"`
	Notes           string    `gorm:"size:255" json:"notes"`
	CreatedAt       time.Time `json:"created_at"`

	// Relations
	Account  Account   `gorm:"foreignKey:AccountID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName specifies the table name for Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionRow is the read shape joined with account and category names
type TransactionRow struct {
	ID              uint         `json:"id"`
	Amount          float64      `json:"amount"`
	TransactionDate time.Time    `json:"transaction_date"`
	Notes           string       `json:"notes"`
	AccountName     string       `json:"account_name"`
	CategoryName    string       `json:"category_name"`
	Type            CategoryKind `json:"type"`
}
