package models

import (
	"time"
)

// DebtType distinguishes money owed from money lent
type DebtType string

const (
	DebtTypeDebt       DebtType = "Debt"
	DebtTypeReceivable DebtType = "Receivable"
)

// Debt represents a debt or receivable against a named person
type Debt struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	PersonName string    `gorm:"size:100;not null" json:"person_name"`
	Amount     float64   `gorm:"type:decimal(20,2);not null" json:"amount"`
	DueDate    time.Time `gorm:"index" json:"due_date"`
	Type       DebtType  `gorm:"size:20;not null" json:"type"`
	IsPaid     bool      `gorm:"default:false" json:"is_paid"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for Debt model
func (Debt) TableName() string {
	return "debts"
}
