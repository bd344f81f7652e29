package service

import (
	"fmt"

	"github.com/kasku/internal/models"
	"github.com/kasku/internal/repository"
)

// DebtService handles debts and receivables
type DebtService struct {
	debtRepo *repository.DebtRepository
}

// NewDebtService creates a new DebtService
func NewDebtService(debtRepo *repository.DebtRepository) *DebtService {
	return &DebtService{debtRepo: debtRepo}
}

// CreateDebtRequest represents the create debt request
type CreateDebtRequest struct {
	Name   string          `json:"name"`
	Amount float64         `json:"amount"`
	Date   string          `json:"date"`
	Type   models.DebtType `json:"type"`
}

// CreateDebt records a new debt or receivable
func (s *DebtService) CreateDebt(userID uint, req *CreateDebtRequest) (*models.Debt, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: person name is required", ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount is required", ErrValidation)
	}
	if req.Type != models.DebtTypeDebt && req.Type != models.DebtTypeReceivable {
		return nil, fmt.Errorf("%w: type must be Debt or Receivable", ErrValidation)
	}

	dueDate, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	debt := &models.Debt{
		UserID:     userID,
		PersonName: req.Name,
		Amount:     req.Amount,
		DueDate:    dueDate,
		Type:       req.Type,
	}
	if err := s.debtRepo.Create(debt); err != nil {
		return nil, err
	}
	return debt, nil
}

// GetUnpaidDebts returns open debts ordered by nearest due date
func (s *DebtService) GetUnpaidDebts(userID uint) ([]models.Debt, error) {
	return s.debtRepo.GetUnpaidByUserID(userID)
}

// MarkPaid settles a debt
func (s *DebtService) MarkPaid(userID, debtID uint) error {
	return s.debtRepo.MarkPaid(debtID, userID)
}
