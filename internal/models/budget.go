package models

import (
	"time"
)

// Budget represents a monthly spending limit for one category
type Budget struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null;uniqueIndex:idx_budget_user_category" json:"user_id"`
	CategoryID  uint      `gorm:"not null;uniqueIndex:idx_budget_user_category" json:"category_id"`
	AmountLimit float64   `gorm:"type:decimal(20,2);not null" json:"amount_limit"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName specifies the table name for Budget model
func (Budget) TableName() string {
	return "budgets"
}

// BudgetProgress is the read shape with current-month spending attached
type BudgetProgress struct {
	ID           uint    `json:"id"`
	AmountLimit  float64 `json:"amount_limit"`
	CategoryName string  `json:"category_name"`
	Spent        float64 `json:"spent"`
}
