package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/kasku/internal/models"
	"github.com/kasku/internal/repository"
)

// BudgetService handles monthly budget limits and progress
type BudgetService struct {
	budgetRepo   *repository.BudgetRepository
	categoryRepo *repository.CategoryRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo *repository.BudgetRepository, categoryRepo *repository.CategoryRepository) *BudgetService {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// UpsertBudgetRequest represents the create-or-update budget request
type UpsertBudgetRequest struct {
	CategoryID uint    `json:"category_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
}

// UpsertBudget sets the limit for one (user, category) pair, creating
// the budget on first use
func (s *BudgetService) UpsertBudget(userID uint, req *UpsertBudgetRequest) error {
	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return fmt.Errorf("%w: unknown category", ErrValidation)
		}
		return err
	}

	existing, err := s.budgetRepo.GetByUserAndCategory(userID, req.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrBudgetNotFound) {
			return s.budgetRepo.Create(&models.Budget{
				UserID:      userID,
				CategoryID:  req.CategoryID,
				AmountLimit: req.Amount,
			})
		}
		return err
	}
	return s.budgetRepo.UpdateLimit(existing.ID, req.Amount)
}

// GetProgress returns each budget with the amount spent in the current
// calendar month
func (s *BudgetService) GetProgress(userID uint, now time.Time) ([]models.BudgetProgress, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	return s.budgetRepo.ProgressByUserID(userID, monthStart, monthEnd)
}
