package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "monexel/internal/errors"
	"monexel/internal/models"
)

// balanceService computes net balances over the ledger. It is a pure
// read-aggregation layer; it never writes.
type balanceService struct {
	db *gorm.DB
}

// NewBalanceService creates a new BalanceServicer.
func NewBalanceService(db *gorm.DB) BalanceServicer {
	return &balanceService{db: db}
}

// LifetimeNetBalance computes income + borrowed - expense over every record
// the user ever logged. This is the figure the expense admission check
// compares against; it may be negative.
func (s *balanceService) LifetimeNetBalance(tx *gorm.DB, userID uint) (decimal.Decimal, error) {
	if tx == nil {
		tx = s.db
	}

	income, err := sumAmounts(tx.Model(&models.Income{}).Where("user_id = ?", userID))
	if err != nil {
		return decimal.Zero, err
	}

	borrowed, err := sumAmounts(tx.Model(&models.BorrowedMoney{}).Where("user_id = ?", userID))
	if err != nil {
		return decimal.Zero, err
	}

	expense, err := sumAmounts(tx.Model(&models.Expense{}).Where("user_id = ?", userID))
	if err != nil {
		return decimal.Zero, err
	}

	return income.Add(borrowed).Sub(expense), nil
}

// WindowedTotals computes the independent per-kind sums over [start, end]
// (inclusive both ends; borrowed money is keyed on its borrowed date) and
// the windowed net balance derived from them.
func (s *balanceService) WindowedTotals(userID uint, start, end time.Time) (*LedgerTotals, error) {
	income, err := sumAmounts(s.db.Model(&models.Income{}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end))
	if err != nil {
		return nil, err
	}

	expense, err := sumAmounts(s.db.Model(&models.Expense{}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end))
	if err != nil {
		return nil, err
	}

	borrowed, err := sumAmounts(s.db.Model(&models.BorrowedMoney{}).
		Where("user_id = ? AND borrowed_date BETWEEN ? AND ?", userID, start, end))
	if err != nil {
		return nil, err
	}

	return &LedgerTotals{
		TotalIncome:   income,
		TotalExpense:  expense,
		TotalBorrowed: borrowed,
		NetBalance:    income.Add(borrowed).Sub(expense),
	}, nil
}

// sumAmounts totals the amount column of the scoped query in Go with exact
// decimal arithmetic. Summing in SQL would go through the driver's float
// representation on some backends and drift.
func sumAmounts(q *gorm.DB) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	if err := q.Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return decimal.Sum(decimal.Zero, amounts...), nil
}
