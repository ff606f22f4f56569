package services

import (
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "monexel/internal/errors"
	"monexel/internal/models"
	"monexel/internal/pagination"
)

// expenseService handles expense-related business logic, including the
// funds-sufficiency admission check.
type expenseService struct {
	db      *gorm.DB
	balance BalanceServicer

	// admissionLocks serializes the read-balance-then-insert sequence per
	// user. Without it, two concurrent admissions can each observe
	// sufficient funds and together overdraw the ledger.
	admissionLocks sync.Map // map[uint]*sync.Mutex
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, balance BalanceServicer) ExpenseServicer {
	return &expenseService{db: db, balance: balance}
}

func (s *expenseService) userLock(userID uint) *sync.Mutex {
	lock, _ := s.admissionLocks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// AddExpense admits and persists a new expense. Admission requires that the
// user and category exist, that a private category belongs to the spending
// user, and that the user's lifetime net balance covers the amount. An
// amount exactly equal to the balance is admitted.
func (s *expenseService) AddExpense(userID, categoryID uint, title string, amount decimal.Decimal, date time.Time) (*models.Expense, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense title is required")
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := requireUser(s.db, userID); err != nil {
		return nil, err
	}

	category, err := s.lookupCategory(categoryID)
	if err != nil {
		return nil, err
	}
	if ownerID, ok := category.CreatedBy.UserID(); ok && ownerID != userID {
		return nil, apperrors.ErrCategoryNotOwned
	}

	// Serialize check-then-insert per user, and keep both steps in one
	// database transaction, so a concurrent admission for the same user
	// sees the committed expense before its own balance read.
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	expense := &models.Expense{
		Title:      title,
		Amount:     amount,
		Date:       normalizeDate(date),
		CategoryID: category.ID,
		UserID:     userID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		netBalance, txErr := s.balance.LifetimeNetBalance(tx, userID)
		if txErr != nil {
			return txErr
		}
		if netBalance.LessThan(amount) {
			return apperrors.ErrInsufficientFunds
		}
		if txErr := tx.Create(expense).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	expense.Category = *category
	return expense, nil
}

// GetExpenseByID retrieves an expense by ID for a specific user.
func (s *expenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Preload("Category").Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// GetUserExpenses retrieves a paginated list of a user's expenses,
// optionally restricted to a date window.
func (s *expenseService) GetUserExpenses(userID uint, window DateRange, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := applyWindow(s.db.Model(&models.Expense{}).Where("user_id = ?", userID), "date", window)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Preload("Category").Scopes(pagination.Paginate(page)).Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateExpense updates an existing expense. The category reference is
// re-validated (including the private-category ownership rule) but no funds
// check is applied; admission gates creation only.
func (s *expenseService) UpdateExpense(userID, expenseID, categoryID uint, title string, amount decimal.Decimal, date time.Time) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	category, err := s.lookupCategory(categoryID)
	if err != nil {
		return nil, err
	}
	if ownerID, ok := category.CreatedBy.UserID(); ok && ownerID != userID {
		return nil, apperrors.ErrCategoryNotOwned
	}

	expense.Title = title
	expense.Amount = amount
	expense.Date = normalizeDate(date)
	expense.CategoryID = category.ID
	expense.Category = *category

	if err := s.db.Omit("Category").Save(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// DeleteExpense deletes an expense.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *expenseService) lookupCategory(categoryID uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}
