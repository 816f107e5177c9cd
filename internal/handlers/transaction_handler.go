package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/intake"
	"ledgerly/internal/models"
	"ledgerly/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. All record fields arrive as raw strings and pass through the
// intake validator, which reports every violated field, not just the first.
type CreateTransactionRequest struct {
	Kind        models.TransactionKind `json:"kind" binding:"required,transaction_kind"`
	Amount      string                 `json:"amount"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Source      string                 `json:"source"`
	Date        string                 `json:"date"`
}

// TransactionResponse represents a transaction in the response
type TransactionResponse struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"user_id"`
	Kind        models.TransactionKind `json:"kind"`
	Amount      string                 `json:"amount"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Source      string                 `json:"source,omitempty"`
	Date        string                 `json:"date"`
}

// CreateTransaction handles the creation of a new income or expense record
// @Summary     Create a transaction
// @Description Create a new income or expense record for the authenticated user
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Validation failed (per-field messages)"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Transaction store unavailable"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	payload, fieldErrs := intake.Validate(req.Kind, intake.Fields{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Source:      req.Source,
		Date:        req.Date,
	})
	if fieldErrs != nil {
		respondWithError(c, apperrors.WithFields(fieldErrs))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, payload)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{"kind": transaction.Kind, "amount": transaction.Amount.String()})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// ListTransactions handles the retrieval of the user's transactions
// @Summary     List transactions
// @Description List the authenticated user's transactions, newest date first
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       kind query string false "Filter by kind (income or expense)"
// @Success     200 {array} TransactionResponse "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Transaction store unavailable"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var kind *models.TransactionKind
	if raw := c.Query("kind"); raw != "" {
		k := models.TransactionKind(raw)
		if k != models.TransactionKindIncome && k != models.TransactionKindExpense {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be income or expense"))
			return
		}
		kind = &k
	}

	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), userID, kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}
