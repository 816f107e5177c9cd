package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/services"
)

// DashboardHandler serves the derived financial summary.
type DashboardHandler struct {
	transactionService services.TransactionServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(transactionService services.TransactionServicer) *DashboardHandler {
	return &DashboardHandler{transactionService: transactionService}
}

// GetSummary returns the user's ledger summary
// @Summary     Get dashboard summary
// @Description Get totals, balance, and the five most recent transactions
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Ledger summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Transaction store unavailable"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.transactionService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	display := summary.Display()
	c.JSON(http.StatusOK, gin.H{
		"summary": gin.H{
			"total_income":  display.TotalIncome,
			"total_expense": display.TotalExpense,
			"balance":       display.Balance,
			"recent":        summary.Recent,
		},
	})
}
