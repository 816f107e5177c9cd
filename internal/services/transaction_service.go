package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/intake"
	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
)

// transactionService is the gorm-backed transaction store. Records are
// immutable: this service exposes no update or delete.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction persists a validated payload, stamping the owner and
// leaving ID and CreatedAt assignment to the store. Source only exists on
// income records.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, payload intake.Payload) (*models.Transaction, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	switch payload.Kind {
	case models.TransactionKindIncome, models.TransactionKindExpense:
	default:
		return nil, apperrors.ErrInvalidTransactionKind
	}

	if !payload.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	source := payload.Source
	if payload.Kind != models.TransactionKindIncome {
		source = ""
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Kind:        payload.Kind,
		Amount:      payload.Amount,
		Category:    payload.Category,
		Description: payload.Description,
		Source:      source,
		Date:        payload.Date,
	}

	if err := s.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRepositoryFailure, err)
	}

	return transaction, nil
}

// QueryTransactions returns the user's records of one kind in arrival
// order. The query is scoped by user_id; cross-user data can never leak
// through this path.
func (s *transactionService) QueryTransactions(ctx context.Context, userID string, kind models.TransactionKind) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, kind).
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRepositoryFailure, err)
	}
	return transactions, nil
}

// ListTransactions returns the user's records for display, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, kind *models.TransactionKind) ([]models.Transaction, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if kind != nil {
		q = q.Where("kind = ?", *kind)
	}

	var transactions []models.Transaction
	if err := q.Order("date DESC, created_at DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRepositoryFailure, err)
	}
	return transactions, nil
}

// GetSummary fetches the user's incomes and expenses inside one database
// transaction so the aggregator always sees a consistent pair, then
// aggregates them. The aggregate is derived state and never persisted.
func (s *transactionService) GetSummary(ctx context.Context, userID string) (ledger.Summary, error) {
	var incomes, expenses []models.Transaction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND kind = ?", userID, models.TransactionKindIncome).
			Order("created_at ASC").
			Find(&incomes).Error; err != nil {
			return err
		}
		return tx.
			Where("user_id = ? AND kind = ?", userID, models.TransactionKindExpense).
			Order("created_at ASC").
			Find(&expenses).Error
	})
	if err != nil {
		return ledger.Summary{}, apperrors.Wrap(apperrors.ErrRepositoryFailure, err)
	}

	return ledger.Aggregate(incomes, expenses), nil
}
