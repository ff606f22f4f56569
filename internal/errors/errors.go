// Package errors provides custom error types for the Monexel API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput     = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrValidationFailed = &AppError{Code: "VALIDATION_FAILED", Message: "Request validation failed", StatusCode: http.StatusBadRequest}
	ErrInternalServer   = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrDuplicatePhone = &AppError{Code: "DUPLICATE_PHONE", Message: "A user with this phone number already exists", StatusCode: http.StatusConflict}
)

// Category errors.
var (
	ErrCategoryNotFound  = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCategory = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category with this name already exists", StatusCode: http.StatusConflict}
	// Cross-user use of a private category. Surfaced as a bad request rather
	// than 403 so the response class matches the other business-rule rejections.
	ErrCategoryNotOwned = &AppError{Code: "CATEGORY_NOT_OWNED", Message: "Cannot use a category created by another user", StatusCode: http.StatusBadRequest}
)

// Ledger errors.
var (
	ErrIncomeNotFound        = &AppError{Code: "INCOME_NOT_FOUND", Message: "Income record not found", StatusCode: http.StatusNotFound}
	ErrExpenseNotFound       = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense record not found", StatusCode: http.StatusNotFound}
	ErrBorrowedMoneyNotFound = &AppError{Code: "BORROWED_MONEY_NOT_FOUND", Message: "Borrowed money record not found", StatusCode: http.StatusNotFound}
	ErrInsufficientFunds     = &AppError{Code: "INSUFFICIENT_FUNDS", Message: "Insufficient funds, please add income first", StatusCode: http.StatusBadRequest}
	ErrInvalidDateRange      = &AppError{Code: "INVALID_DATE_RANGE", Message: "Start date must not be after end date", StatusCode: http.StatusBadRequest}
)
