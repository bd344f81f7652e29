package repository

import (
	"errors"
	"time"

	"github.com/kasku/internal/models"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// BudgetRepository handles budget data access
type BudgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// GetByUserAndCategory retrieves the budget for one (user, category) pair
func (r *BudgetRepository) GetByUserAndCategory(userID, categoryID uint) (*models.Budget, error) {
	var budget models.Budget
	result := r.db.Where("user_id = ? AND category_id = ?", userID, categoryID).First(&budget)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return &budget, nil
}

// Create creates a new budget
func (r *BudgetRepository) Create(budget *models.Budget) error {
	return r.db.Create(budget).Error
}

// UpdateLimit updates the amount limit of an existing budget
func (r *BudgetRepository) UpdateLimit(id uint, amountLimit float64) error {
	return r.db.Model(&models.Budget{}).Where("id = ?", id).Update("amount_limit", amountLimit).Error
}

// ProgressByUserID retrieves all budgets for a user together with the
// summed transaction amounts of each category inside [monthStart, monthEnd)
func (r *BudgetRepository) ProgressByUserID(userID uint, monthStart, monthEnd time.Time) ([]models.BudgetProgress, error) {
	var rows []models.BudgetProgress
	err := r.db.Model(&models.Budget{}).
		Select("budgets.id, budgets.amount_limit, categories.name AS category_name, "+
			"COALESCE(SUM(transactions.amount), 0) AS spent").
		Joins("JOIN categories ON budgets.category_id = categories.id").
		Joins("LEFT JOIN transactions ON transactions.category_id = categories.id "+
			"AND transactions.user_id = budgets.user_id "+
			"AND transactions.transaction_date >= ? AND transactions.transaction_date < ?", monthStart, monthEnd).
		Where("budgets.user_id = ?", userID).
		Group("budgets.id, budgets.amount_limit, categories.name").
		Scan(&rows).Error
	return rows, err
}
