package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"monexel/internal/config"
	"monexel/internal/services"
)

// DashboardHandler serves the aggregated ledger summary.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// SummaryResponse represents the dashboard summary for a reporting window.
type SummaryResponse struct {
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	TotalIncome   string `json:"total_income"`
	TotalExpense  string `json:"total_expense"`
	TotalBorrowed string `json:"total_borrowed"`
	NetBalance    string `json:"net_balance"`
}

// GetSummary returns windowed ledger totals for the caller
// @Summary     Dashboard summary
// @Description Aggregate income, expense, and borrowed totals over a reporting window. Defaults to the current calendar month.
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       start_date query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param       end_date query string false "Window end (YYYY-MM-DD, inclusive)"
// @Success     200 {object} SummaryResponse "Windowed totals"
// @Failure     400 {object} ErrorResponse "Invalid date range"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
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

	start, end := defaultWindow(window)

	totals, err := h.dashboardService.GetSummary(userID, start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": SummaryResponse{
		StartDate:     start.Format(dateLayout),
		EndDate:       end.Format(dateLayout),
		TotalIncome:   totals.TotalIncome.StringFixed(2),
		TotalExpense:  totals.TotalExpense.StringFixed(2),
		TotalBorrowed: totals.TotalBorrowed.StringFixed(2),
		NetBalance:    totals.NetBalance.StringFixed(2),
	}})
}

// defaultWindow fills in missing bounds with the current calendar month,
// using the configured clock.
func defaultWindow(window services.DateRange) (time.Time, time.Time) {
	now := config.Get().Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	start := monthStart
	if window.Start != nil {
		start = *window.Start
	}
	end := monthEnd
	if window.End != nil {
		end = *window.End
	}
	return start, end
}
