package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"monexel/internal/models"
	"monexel/internal/pagination"
	"monexel/internal/services"
)

// BorrowedMoneyHandler handles borrowed-money requests.
type BorrowedMoneyHandler struct {
	borrowedService services.BorrowedMoneyServicer
}

// NewBorrowedMoneyHandler creates a new BorrowedMoneyHandler.
func NewBorrowedMoneyHandler(borrowedService services.BorrowedMoneyServicer) *BorrowedMoneyHandler {
	return &BorrowedMoneyHandler{borrowedService: borrowedService}
}

// BorrowedMoneyRequest represents the payload for recording borrowed money.
type BorrowedMoneyRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required,gt=0,money"`
	BorrowedFrom string          `json:"borrowed_from" binding:"required,max=100"`
	BorrowedDate string          `json:"borrowed_date" binding:"required,datetime=2006-01-02"`
	DueDate      string          `json:"due_date" binding:"required,datetime=2006-01-02"`
}

// BorrowedMoneyResponse represents a borrowed-money record in the response.
type BorrowedMoneyResponse struct {
	ID           uint            `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	BorrowedFrom string          `json:"borrowed_from"`
	BorrowedDate string          `json:"borrowed_date"`
	DueDate      string          `json:"due_date"`
	UserID       uint            `json:"user_id"`
}

func newBorrowedMoneyResponse(borrowed *models.BorrowedMoney) BorrowedMoneyResponse {
	return BorrowedMoneyResponse{
		ID:           borrowed.ID,
		Amount:       borrowed.Amount,
		BorrowedFrom: borrowed.BorrowedFrom,
		BorrowedDate: borrowed.BorrowedDate.Format(dateLayout),
		DueDate:      borrowed.DueDate.Format(dateLayout),
		UserID:       borrowed.UserID,
	}
}

// CreateBorrowedMoney records borrowed money
// @Summary     Record borrowed money
// @Description Record money borrowed from a lender; it counts toward the available balance
// @Tags        borrowed-money
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BorrowedMoneyRequest true "Borrowed money details"
// @Success     201 {object} BorrowedMoneyResponse "Record created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /borrowed-money [post]
func (h *BorrowedMoneyHandler) CreateBorrowedMoney(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BorrowedMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	borrowedDate, err := parseDate(req.BorrowedDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	borrowed, err := h.borrowedService.CreateBorrowedMoney(userID, req.Amount, req.BorrowedFrom, borrowedDate, dueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"borrowed_money": newBorrowedMoneyResponse(borrowed)})
}

// GetUserBorrowedMoney lists the caller's borrowed-money records
// @Summary     List borrowed money
// @Tags        borrowed-money
// @Produce     json
// @Security    BearerAuth
// @Param       start_date query string false "Window start on borrowed date (YYYY-MM-DD, inclusive)"
// @Param       end_date query string false "Window end on borrowed date (YYYY-MM-DD, inclusive)"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {array} BorrowedMoneyResponse "Borrowed money records"
// @Router      /borrowed-money [get]
func (h *BorrowedMoneyHandler) GetUserBorrowedMoney(c *gin.Context) {
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

	result, err := h.borrowedService.GetUserBorrowedMoney(userID, window, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	records := make([]BorrowedMoneyResponse, 0, len(result.Data))
	for i := range result.Data {
		records = append(records, newBorrowedMoneyResponse(&result.Data[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"borrowed_money": records,
		"page":           result.Page,
		"page_size":      result.PageSize,
		"total_items":    result.TotalItems,
		"total_pages":    result.TotalPages,
	})
}

// GetBorrowedMoneyByID returns one borrowed-money record
// @Summary     Get borrowed money by ID
// @Tags        borrowed-money
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Record ID"
// @Success     200 {object} BorrowedMoneyResponse "Record details"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Router      /borrowed-money/{id} [get]
func (h *BorrowedMoneyHandler) GetBorrowedMoneyByID(c *gin.Context) {
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

	borrowed, err := h.borrowedService.GetBorrowedMoneyByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"borrowed_money": newBorrowedMoneyResponse(borrowed)})
}

// UpdateBorrowedMoney updates a borrowed-money record
// @Summary     Update borrowed money
// @Tags        borrowed-money
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Record ID"
// @Param       request body BorrowedMoneyRequest true "Updated details"
// @Success     200 {object} BorrowedMoneyResponse "Updated record"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Router      /borrowed-money/{id} [put]
func (h *BorrowedMoneyHandler) UpdateBorrowedMoney(c *gin.Context) {
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

	var req BorrowedMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	borrowedDate, err := parseDate(req.BorrowedDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	borrowed, err := h.borrowedService.UpdateBorrowedMoney(userID, id, req.Amount, req.BorrowedFrom, borrowedDate, dueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"borrowed_money": newBorrowedMoneyResponse(borrowed)})
}

// DeleteBorrowedMoney removes a borrowed-money record
// @Summary     Delete borrowed money
// @Tags        borrowed-money
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Record ID"
// @Success     200 {object} MessageResponse "Record deleted"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Router      /borrowed-money/{id} [delete]
func (h *BorrowedMoneyHandler) DeleteBorrowedMoney(c *gin.Context) {
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

	if err := h.borrowedService.DeleteBorrowedMoney(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Borrowed money record deleted successfully"})
}
