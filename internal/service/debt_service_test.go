package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kasku/internal/models"
	"github.com/kasku/internal/repository"
)

func setupDebtTest(t *testing.T) *DebtService {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Debt{}))
	return NewDebtService(repository.NewDebtRepository(db))
}

func TestCreateDebt_Validation(t *testing.T) {
	svc := setupDebtTest(t)

	_, err := svc.CreateDebt(1, &CreateDebtRequest{Amount: 100, Type: models.DebtTypeDebt})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateDebt(1, &CreateDebtRequest{Name: "Andi", Type: models.DebtTypeDebt})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateDebt(1, &CreateDebtRequest{Name: "Andi", Amount: 100, Type: "Loan"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDebtLifecycle(t *testing.T) {
	svc := setupDebtTest(t)

	later, err := svc.CreateDebt(1, &CreateDebtRequest{
		Name: "Andi", Amount: 200_000, Date: "2025-02-01", Type: models.DebtTypeDebt,
	})
	require.NoError(t, err)
	sooner, err := svc.CreateDebt(1, &CreateDebtRequest{
		Name: "Sari", Amount: 50_000, Date: "2025-01-15", Type: models.DebtTypeReceivable,
	})
	require.NoError(t, err)

	// Ordered by nearest due date
	debts, err := svc.GetUnpaidDebts(1)
	require.NoError(t, err)
	require.Len(t, debts, 2)
	assert.Equal(t, sooner.ID, debts[0].ID)
	assert.Equal(t, later.ID, debts[1].ID)

	require.NoError(t, svc.MarkPaid(1, sooner.ID))

	debts, err = svc.GetUnpaidDebts(1)
	require.NoError(t, err)
	require.Len(t, debts, 1)
	assert.Equal(t, later.ID, debts[0].ID)

	// Settling someone else's debt is rejected
	assert.ErrorIs(t, svc.MarkPaid(2, later.ID), repository.ErrDebtNotFound)
}
