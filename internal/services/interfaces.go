package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"monexel/internal/models"
	"monexel/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password, phone, role string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetAllUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	UpdateUser(id uint, name, email, phone string) (*models.User, error)
	DeleteUser(id uint) error
	AttemptLogin(email, password string) (*models.User, error)
	UpdatePassword(email, newPassword string) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name, description string, owner models.Owner) (*models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
	GetAllCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoriesByUser(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	UpdateCategory(id uint, name, description string) (*models.Category, error)
	DeleteCategory(id uint) error
}

// DateRange is an optional closed interval; both bounds are inclusive.
// A nil bound leaves that side of the window open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	CreateIncome(userID uint, source string, amount decimal.Decimal, date time.Time, description string) (*models.Income, error)
	GetIncomeByID(userID, incomeID uint) (*models.Income, error)
	GetUserIncomes(userID uint, window DateRange, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
	UpdateIncome(userID, incomeID uint, source string, amount decimal.Decimal, date time.Time, description string) (*models.Income, error)
	DeleteIncome(userID, incomeID uint) error
}

// ExpenseServicer defines the contract for expense-related business logic,
// including the funds-sufficiency admission check on creation.
type ExpenseServicer interface {
	AddExpense(userID, categoryID uint, title string, amount decimal.Decimal, date time.Time) (*models.Expense, error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	GetUserExpenses(userID uint, window DateRange, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	UpdateExpense(userID, expenseID, categoryID uint, title string, amount decimal.Decimal, date time.Time) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
}

// BorrowedMoneyServicer defines the contract for borrowed-money business logic.
type BorrowedMoneyServicer interface {
	CreateBorrowedMoney(userID uint, amount decimal.Decimal, borrowedFrom string, borrowedDate, dueDate time.Time) (*models.BorrowedMoney, error)
	GetBorrowedMoneyByID(userID, borrowedID uint) (*models.BorrowedMoney, error)
	GetUserBorrowedMoney(userID uint, window DateRange, page pagination.PageRequest) (*pagination.PageResponse[models.BorrowedMoney], error)
	UpdateBorrowedMoney(userID, borrowedID uint, amount decimal.Decimal, borrowedFrom string, borrowedDate, dueDate time.Time) (*models.BorrowedMoney, error)
	DeleteBorrowedMoney(userID, borrowedID uint) error
}

// LedgerTotals holds the windowed sums reported on the dashboard.
// NetBalance here is the windowed figure, distinct from the lifetime
// balance used for expense admission.
type LedgerTotals struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpense  decimal.Decimal `json:"total_expense"`
	TotalBorrowed decimal.Decimal `json:"total_borrowed"`
	NetBalance    decimal.Decimal `json:"net_balance"`
}

// BalanceServicer evaluates net balances over the ledger.
type BalanceServicer interface {
	// LifetimeNetBalance computes income + borrowed - expense over the
	// user's entire history. It takes the DB handle so admission can run
	// it inside the same transaction that persists the expense.
	LifetimeNetBalance(tx *gorm.DB, userID uint) (decimal.Decimal, error)
	// WindowedTotals computes the per-kind sums over [start, end],
	// inclusive on both ends.
	WindowedTotals(userID uint, start, end time.Time) (*LedgerTotals, error)
}

// DashboardServicer produces the aggregated dashboard summary.
type DashboardServicer interface {
	GetSummary(userID uint, start, end time.Time) (*LedgerTotals, error)
}
