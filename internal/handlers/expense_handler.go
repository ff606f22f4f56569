package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"monexel/internal/models"
	"monexel/internal/pagination"
	"monexel/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents the payload for creating or updating an expense.
type ExpenseRequest struct {
	Title      string          `json:"title" binding:"required,max=100"`
	Amount     decimal.Decimal `json:"amount" binding:"required,gt=0,money"`
	Date       string          `json:"date" binding:"required,datetime=2006-01-02"`
	CategoryID uint            `json:"category_id" binding:"required"`
}

// ExpenseResponse represents an expense in the response.
type ExpenseResponse struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	CategoryID   uint            `json:"category_id"`
	CategoryName string          `json:"category_name"`
	UserID       uint            `json:"user_id"`
}

func newExpenseResponse(expense *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           expense.ID,
		Title:        expense.Title,
		Amount:       expense.Amount,
		Date:         expense.Date.Format(dateLayout),
		CategoryID:   expense.CategoryID,
		CategoryName: expense.Category.Name,
		UserID:       expense.UserID,
	}
}

// CreateExpense logs an expense, gated by the funds-sufficiency check
// @Summary     Create expense
// @Description Log a new expense; rejected when the lifetime net balance does not cover the amount
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} ExpenseResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input, foreign category, or insufficient funds"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.AddExpense(userID, req.CategoryID, req.Title, req.Amount, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": newExpenseResponse(expense)})
}

// GetUserExpenses lists the caller's expenses, optionally windowed
// @Summary     List expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       start_date query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param       end_date query string false "Window end (YYYY-MM-DD, inclusive)"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {array} ExpenseResponse "Expenses"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetUserExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	window, err := parseWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithBindingError(c, err)
		return
	}

	result, err := h.expenseService.GetUserExpenses(userID, window, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses := make([]ExpenseResponse, 0, len(result.Data))
	for i := range result.Data {
		expenses = append(expenses, newExpenseResponse(&result.Data[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"expenses":    expenses,
		"page":        result.Page,
		"page_size":   result.PageSize,
		"total_items": result.TotalItems,
		"total_pages": result.TotalPages,
	})
}

// GetExpenseByID returns one expense
// @Summary     Get expense by ID
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} ExpenseResponse "Expense details"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": newExpenseResponse(expense)})
}

// UpdateExpense updates an expense
// @Summary     Update expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Param       request body ExpenseRequest true "Updated details"
// @Success     200 {object} ExpenseResponse "Updated expense"
// @Failure     404 {object} ErrorResponse "Expense or category not found"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(userID, id, req.CategoryID, req.Title, req.Amount, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": newExpenseResponse(expense)})
}

// DeleteExpense removes an expense
// @Summary     Delete expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
