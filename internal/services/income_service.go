package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "monexel/internal/errors"
	"monexel/internal/models"
	"monexel/internal/pagination"
)

// incomeService handles income-related business logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncome records a new income entry for a user.
func (s *incomeService) CreateIncome(userID uint, source string, amount decimal.Decimal, date time.Time, description string) (*models.Income, error) {
	if source == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income source is required")
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := requireUser(s.db, userID); err != nil {
		return nil, err
	}

	income := &models.Income{
		Source:      source,
		Amount:      amount,
		Date:        normalizeDate(date),
		Description: description,
		UserID:      userID,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return income, nil
}

// GetIncomeByID retrieves an income record by ID for a specific user.
func (s *incomeService) GetIncomeByID(userID, incomeID uint) (*models.Income, error) {
	var income models.Income
	if err := s.db.Where("id = ? AND user_id = ?", incomeID, userID).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// GetUserIncomes retrieves a paginated list of a user's income records,
// optionally restricted to a date window.
func (s *incomeService) GetUserIncomes(userID uint, window DateRange, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	base := applyWindow(s.db.Model(&models.Income{}).Where("user_id = ?", userID), "date", window)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := base.Scopes(pagination.Paginate(page)).Order("date DESC").Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateIncome updates an existing income record.
func (s *incomeService) UpdateIncome(userID, incomeID uint, source string, amount decimal.Decimal, date time.Time, description string) (*models.Income, error) {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	income.Source = source
	income.Amount = amount
	income.Date = normalizeDate(date)
	income.Description = description

	if err := s.db.Save(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return income, nil
}

// DeleteIncome deletes an income record.
func (s *incomeService) DeleteIncome(userID, incomeID uint) error {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
