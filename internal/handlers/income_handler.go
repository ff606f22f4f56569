package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"monexel/internal/models"
	"monexel/internal/pagination"
	"monexel/internal/services"
)

// IncomeHandler handles income-related requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// IncomeRequest represents the payload for creating or updating income.
type IncomeRequest struct {
	Source      string          `json:"source" binding:"required,max=100"`
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0,money"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description" binding:"max=255"`
}

// IncomeResponse represents an income record in the response.
type IncomeResponse struct {
	ID          uint            `json:"id"`
	Source      string          `json:"source"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	UserID      uint            `json:"user_id"`
}

func newIncomeResponse(income *models.Income) IncomeResponse {
	return IncomeResponse{
		ID:          income.ID,
		Source:      income.Source,
		Amount:      income.Amount,
		Date:        income.Date.Format(dateLayout),
		Description: income.Description,
		UserID:      income.UserID,
	}
}

// CreateIncome records income
// @Summary     Create income
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body IncomeRequest true "Income details"
// @Success     201 {object} IncomeResponse "Income created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /income [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.CreateIncome(userID, req.Source, req.Amount, date, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"income": newIncomeResponse(income)})
}

// GetUserIncomes lists the caller's income, optionally windowed
// @Summary     List income
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       start_date query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param       end_date query string false "Window end (YYYY-MM-DD, inclusive)"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {array} IncomeResponse "Income records"
// @Router      /income [get]
func (h *IncomeHandler) GetUserIncomes(c *gin.Context) {
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

	result, err := h.incomeService.GetUserIncomes(userID, window, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomes := make([]IncomeResponse, 0, len(result.Data))
	for i := range result.Data {
		incomes = append(incomes, newIncomeResponse(&result.Data[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"income":      incomes,
		"page":        result.Page,
		"page_size":   result.PageSize,
		"total_items": result.TotalItems,
		"total_pages": result.TotalPages,
	})
}

// GetIncomeByID returns one income record
// @Summary     Get income by ID
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Income ID"
// @Success     200 {object} IncomeResponse "Income details"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Router      /income/{id} [get]
func (h *IncomeHandler) GetIncomeByID(c *gin.Context) {
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

	income, err := h.incomeService.GetIncomeByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": newIncomeResponse(income)})
}

// UpdateIncome updates an income record
// @Summary     Update income
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Income ID"
// @Param       request body IncomeRequest true "Updated details"
// @Success     200 {object} IncomeResponse "Updated income"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Router      /income/{id} [put]
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
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

	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.UpdateIncome(userID, id, req.Source, req.Amount, date, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": newIncomeResponse(income)})
}

// DeleteIncome removes an income record
// @Summary     Delete income
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Income ID"
// @Success     200 {object} MessageResponse "Income deleted"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Router      /income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
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

	if err := h.incomeService.DeleteIncome(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}
