package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "monexel/internal/errors"
)

// dashboardService produces the aggregated summary shown on the dashboard.
type dashboardService struct {
	db      *gorm.DB
	balance BalanceServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB, balance BalanceServicer) DashboardServicer {
	return &dashboardService{db: db, balance: balance}
}

// GetSummary returns the windowed income, expense, and borrowed totals for
// a user along with the windowed net balance. The window is inclusive on
// both ends. Nothing is persisted; the summary is always computed live.
func (s *dashboardService) GetSummary(userID uint, start, end time.Time) (*LedgerTotals, error) {
	if start.After(end) {
		return nil, apperrors.ErrInvalidDateRange
	}
	if err := requireUser(s.db, userID); err != nil {
		return nil, err
	}

	return s.balance.WindowedTotals(userID, start, end)
}
