package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"monexel/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date builds a UTC midnight timestamp, the form ledger dates are stored in.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
		Phone:    fmt.Sprintf("+1555%07d", nextID()),
		Role:     "USER",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category owned by the given user.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID uint) *models.Category {
	t.Helper()
	return createCategory(t, db, models.UserOwner(userID))
}

// CreateTestSystemCategory creates a category available to every user.
func CreateTestSystemCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return createCategory(t, db, models.SystemOwner())
}

func createCategory(t *testing.T, db *gorm.DB, owner models.Owner) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:        fmt.Sprintf("Test Category %d", nextID()),
		Description: "fixture category",
		CreatedBy:   owner,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestIncome creates an income record with the given amount.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID uint, amount decimal.Decimal, date time.Time) *models.Income {
	t.Helper()

	income := &models.Income{
		Source: fmt.Sprintf("Test Source %d", nextID()),
		Amount: amount,
		Date:   date,
		UserID: userID,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestExpense creates an expense record with the given amount,
// bypassing the admission check.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, categoryID uint, amount decimal.Decimal, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Title:      fmt.Sprintf("Test Expense %d", nextID()),
		Amount:     amount,
		Date:       date,
		CategoryID: categoryID,
		UserID:     userID,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBorrowedMoney creates a borrowed-money record with the given amount.
func CreateTestBorrowedMoney(t *testing.T, db *gorm.DB, userID uint, amount decimal.Decimal, borrowedDate time.Time) *models.BorrowedMoney {
	t.Helper()

	borrowed := &models.BorrowedMoney{
		Amount:       amount,
		BorrowedFrom: fmt.Sprintf("Test Lender %d", nextID()),
		BorrowedDate: borrowedDate,
		DueDate:      borrowedDate.AddDate(0, 1, 0),
		UserID:       userID,
	}
	if err := db.Create(borrowed).Error; err != nil {
		t.Fatalf("failed to create test borrowed money: %v", err)
	}
	return borrowed
}
