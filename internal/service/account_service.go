package service

import (
	"github.com/kasku/internal/models"
	"github.com/kasku/internal/repository"
)

// AccountService handles cash account operations
type AccountService struct {
	accountRepo *repository.AccountRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo *repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// CreateAccountRequest represents the create account request
type CreateAccountRequest struct {
	Name    string             `json:"name" binding:"required,max=100"`
	Type    models.AccountType `json:"type" binding:"required,oneof=Bank E-Wallet Cash"`
	Balance float64            `json:"balance" binding:"omitempty,gte=0"`
}

// CreateAccount creates a new cash account with an opening balance
func (s *AccountService) CreateAccount(userID uint, req *CreateAccountRequest) (*models.Account, error) {
	account := &models.Account{
		UserID:  userID,
		Name:    req.Name,
		Type:    req.Type,
		Balance: req.Balance,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccounts returns all accounts for a user
func (s *AccountService) GetAccounts(userID uint) ([]models.Account, error) {
	return s.accountRepo.GetByUserID(userID)
}

// GetAccountByID returns one account scoped to its owner
func (s *AccountService) GetAccountByID(userID, accountID uint) (*models.Account, error) {
	return s.accountRepo.GetByIDAndUserID(accountID, userID)
}
