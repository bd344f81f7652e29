package repository

import (
	"errors"

	"github.com/kasku/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// TransactionRepository handles transaction data access
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create creates a new transaction
func (r *TransactionRepository) Create(tx *models.Transaction) error {
	return r.db.Create(tx).Error
}

// GetRecentByUserID retrieves the most recent transactions for a user,
// joined with account and category names
func (r *TransactionRepository) GetRecentByUserID(userID uint, limit int) ([]models.TransactionRow, error) {
	var rows []models.TransactionRow
	err := r.db.Model(&models.Transaction{}).
		Select("transactions.id, transactions.amount, transactions.transaction_date, transactions.notes, " +
			"accounts.name AS account_name, categories.name AS category_name, categories.type AS type").
		Joins("JOIN accounts ON transactions.account_id = accounts.id").
		Joins("LEFT JOIN categories ON transactions.category_id = categories.id").
		Where("transactions.user_id = ?", userID).
		Order("transactions.transaction_date DESC, transactions.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// CategoryRepository handles category catalog access
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List retrieves all categories
func (r *CategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	result := r.db.Order("name ASC").Find(&categories)
	return categories, result.Error
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	result := r.db.First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return &category, nil
}

// Seed inserts the default category catalog, skipping existing names
func (r *CategoryRepository) Seed(categories []models.Category) error {
	for i := range categories {
		err := r.db.Where("name = ?", categories[i].Name).
			FirstOrCreate(&categories[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}
