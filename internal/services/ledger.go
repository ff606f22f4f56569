package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "monexel/internal/errors"
	"monexel/internal/models"
)

// applyWindow scopes a ledger query to an optional closed date interval.
// Records dated exactly on either bound are included.
func applyWindow(q *gorm.DB, column string, window DateRange) *gorm.DB {
	if window.Start != nil {
		q = q.Where(column+" >= ?", *window.Start)
	}
	if window.End != nil {
		q = q.Where(column+" <= ?", *window.End)
	}
	return q
}

// validateAmount enforces the shared monetary input rules: strictly
// positive, at most two fractional digits.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if amount.Exponent() < -2 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not have more than two decimal places")
	}
	return nil
}

// requireUser verifies that the referenced user exists. Ledger writes check
// ownership explicitly rather than leaning on database constraints alone.
func requireUser(db *gorm.DB, userID uint) error {
	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// normalizeDate truncates a timestamp to its calendar day. Ledger records
// carry dates, not times of day.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
