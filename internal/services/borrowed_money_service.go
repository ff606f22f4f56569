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

// borrowedMoneyService handles borrowed-money business logic.
type borrowedMoneyService struct {
	db *gorm.DB
}

// NewBorrowedMoneyService creates a new BorrowedMoneyServicer.
func NewBorrowedMoneyService(db *gorm.DB) BorrowedMoneyServicer {
	return &borrowedMoneyService{db: db}
}

// CreateBorrowedMoney records money borrowed from a lender.
func (s *borrowedMoneyService) CreateBorrowedMoney(userID uint, amount decimal.Decimal, borrowedFrom string, borrowedDate, dueDate time.Time) (*models.BorrowedMoney, error) {
	if borrowedFrom == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "lender name is required")
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := requireUser(s.db, userID); err != nil {
		return nil, err
	}

	borrowed := &models.BorrowedMoney{
		Amount:       amount,
		BorrowedFrom: borrowedFrom,
		BorrowedDate: normalizeDate(borrowedDate),
		DueDate:      normalizeDate(dueDate),
		UserID:       userID,
	}

	if err := s.db.Create(borrowed).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return borrowed, nil
}

// GetBorrowedMoneyByID retrieves a borrowed-money record by ID for a user.
func (s *borrowedMoneyService) GetBorrowedMoneyByID(userID, borrowedID uint) (*models.BorrowedMoney, error) {
	var borrowed models.BorrowedMoney
	if err := s.db.Where("id = ? AND user_id = ?", borrowedID, userID).First(&borrowed).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBorrowedMoneyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &borrowed, nil
}

// GetUserBorrowedMoney retrieves a paginated list of a user's borrowed-money
// records, optionally restricted by borrowed date.
func (s *borrowedMoneyService) GetUserBorrowedMoney(userID uint, window DateRange, page pagination.PageRequest) (*pagination.PageResponse[models.BorrowedMoney], error) {
	page.Defaults()

	base := applyWindow(s.db.Model(&models.BorrowedMoney{}).Where("user_id = ?", userID), "borrowed_date", window)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var records []models.BorrowedMoney
	if err := base.Scopes(pagination.Paginate(page)).Order("borrowed_date DESC").Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateBorrowedMoney updates an existing borrowed-money record.
func (s *borrowedMoneyService) UpdateBorrowedMoney(userID, borrowedID uint, amount decimal.Decimal, borrowedFrom string, borrowedDate, dueDate time.Time) (*models.BorrowedMoney, error) {
	borrowed, err := s.GetBorrowedMoneyByID(userID, borrowedID)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	borrowed.Amount = amount
	borrowed.BorrowedFrom = borrowedFrom
	borrowed.BorrowedDate = normalizeDate(borrowedDate)
	borrowed.DueDate = normalizeDate(dueDate)

	if err := s.db.Save(borrowed).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return borrowed, nil
}

// DeleteBorrowedMoney deletes a borrowed-money record.
func (s *borrowedMoneyService) DeleteBorrowedMoney(userID, borrowedID uint) error {
	borrowed, err := s.GetBorrowedMoneyByID(userID, borrowedID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(borrowed).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
