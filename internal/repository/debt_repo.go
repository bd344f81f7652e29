package repository

import (
	"errors"

	"github.com/kasku/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDebtNotFound = errors.New("debt not found")
)

// DebtRepository handles debt data access
type DebtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new DebtRepository
func NewDebtRepository(db *gorm.DB) *DebtRepository {
	return &DebtRepository{db: db}
}

// Create creates a new debt record
func (r *DebtRepository) Create(debt *models.Debt) error {
	return r.db.Create(debt).Error
}

// GetUnpaidByUserID retrieves unpaid debts for a user, nearest due date first
func (r *DebtRepository) GetUnpaidByUserID(userID uint) ([]models.Debt, error) {
	var debts []models.Debt
	result := r.db.Where("user_id = ? AND is_paid = ?", userID, false).
		Order("due_date ASC").
		Find(&debts)
	return debts, result.Error
}

// MarkPaid marks a debt as settled
func (r *DebtRepository) MarkPaid(id, userID uint) error {
	result := r.db.Model(&models.Debt{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_paid", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDebtNotFound
	}
	return nil
}
