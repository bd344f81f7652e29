package service

import (
	"fmt"

	"github.com/kasku/internal/models"
	"github.com/kasku/internal/portfolio"
	"github.com/kasku/internal/repository"
)

// TransactionService records income/expense entries and keeps account
// balances in step with them
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	accountRepo     *repository.AccountRepository
	categoryRepo    *repository.CategoryRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	accountRepo *repository.AccountRepository,
	categoryRepo *repository.CategoryRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

// CreateTransactionRequest represents the create transaction request
type CreateTransactionRequest struct {
	AccountID  uint                `json:"account_id"`
	CategoryID *uint               `json:"category_id"`
	Amount     float64             `json:"amount"`
	Date       string              `json:"date"`
	Notes      string              `json:"notes"`
	Type       models.CategoryKind `json:"type"`
}

// CreateTransaction stores the entry and applies the signed amount to
// the account balance as a second, independent write.
func (s *TransactionService) CreateTransaction(userID uint, req *CreateTransactionRequest) (*models.Transaction, error) {
	if req.AccountID == 0 {
		return nil, fmt.Errorf("%w: account is required", ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount is required", ErrValidation)
	}
	if req.Type != models.CategoryKindIncome && req.Type != models.CategoryKindExpense {
		return nil, fmt.Errorf("%w: type must be Income or Expense", ErrValidation)
	}

	txDate, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	account, err := s.accountRepo.GetByIDAndUserID(req.AccountID, userID)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:          userID,
		AccountID:       account.ID,
		CategoryID:      req.CategoryID,
		Amount:          req.Amount,
		TransactionDate: txDate,
		Notes:           req.Notes,
	}
	if err := s.transactionRepo.Create(tx); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	delta := portfolio.TransactionDelta(req.Type, req.Amount)
	if err := s.accountRepo.AddToBalance(account.ID, delta); err != nil {
		return nil, fmt.Errorf("transaction recorded but balance update failed: %w", err)
	}

	return tx, nil
}

// GetRecentTransactions returns the latest entries for a user
func (s *TransactionService) GetRecentTransactions(userID uint) ([]models.TransactionRow, error) {
	return s.transactionRepo.GetRecentByUserID(userID, 10)
}

// GetCategories returns the category catalog
func (s *TransactionService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.List()
}
