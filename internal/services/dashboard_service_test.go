package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"monexel/internal/testutil"
)

func TestGetSummary(t *testing.T) {
	t.Run("month_with_all_three_kinds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db, NewBalanceService(db))
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)

		testutil.CreateTestIncome(t, db, user.ID, decimal.RequireFromString("500.00"), testutil.Date(2025, time.March, 3))
		testutil.CreateTestBorrowedMoney(t, db, user.ID, decimal.RequireFromString("100.00"), testutil.Date(2025, time.March, 8))
		testutil.CreateTestExpense(t, db, user.ID, category.ID, decimal.RequireFromString("200.00"), testutil.Date(2025, time.March, 15))

		summary, err := svc.GetSummary(user.ID, testutil.Date(2025, time.March, 1), testutil.Date(2025, time.March, 31))
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, decimal.RequireFromString("500.00"), summary.TotalIncome)
		testutil.AssertDecimalEqual(t, decimal.RequireFromString("200.00"), summary.TotalExpense)
		testutil.AssertDecimalEqual(t, decimal.RequireFromString("100.00"), summary.TotalBorrowed)
		testutil.AssertDecimalEqual(t, decimal.RequireFromString("400.00"), summary.NetBalance)
	})

	t.Run("excludes_other_months", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db, NewBalanceService(db))
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestIncome(t, db, user.ID, decimal.RequireFromString("999.00"), testutil.Date(2025, time.February, 28))
		testutil.CreateTestIncome(t, db, user.ID, decimal.RequireFromString("50.00"), testutil.Date(2025, time.March, 1))

		summary, err := svc.GetSummary(user.ID, testutil.Date(2025, time.March, 1), testutil.Date(2025, time.March, 31))
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, decimal.RequireFromString("50.00"), summary.TotalIncome)
	})

	t.Run("start_after_end", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db, NewBalanceService(db))
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetSummary(user.ID, testutil.Date(2025, time.March, 31), testutil.Date(2025, time.March, 1))
		testutil.AssertAppError(t, err, "INVALID_DATE_RANGE")
	})

	t.Run("single_day_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db, NewBalanceService(db))
		user := testutil.CreateTestUser(t, db)
		day := testutil.Date(2025, time.March, 10)

		testutil.CreateTestIncome(t, db, user.ID, decimal.RequireFromString("42.00"), day)

		summary, err := svc.GetSummary(user.ID, day, day)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, decimal.RequireFromString("42.00"), summary.TotalIncome)
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db, NewBalanceService(db))

		_, err := svc.GetSummary(99999, testutil.Date(2025, time.March, 1), testutil.Date(2025, time.March, 31))
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
