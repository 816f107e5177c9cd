package services

import (
	"context"

	"ledgerly/internal/intake"
	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, businessName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	UpdateProfile(userID, businessName string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// TransactionServicer defines the contract for the transaction store. Every
// method is scoped to a single user; an implementation must never return or
// touch records owned by anyone else.
type TransactionServicer interface {
	// CreateTransaction persists a validated payload for the given owner,
	// assigning the ID and creation timestamp.
	CreateTransaction(ctx context.Context, userID string, payload intake.Payload) (*models.Transaction, error)
	// QueryTransactions returns the user's records of one kind in arrival
	// order (creation order), the order the aggregator's stable sort
	// preserves on date ties.
	QueryTransactions(ctx context.Context, userID string, kind models.TransactionKind) ([]models.Transaction, error)
	// ListTransactions returns records for display, newest date first. A
	// nil kind returns both kinds.
	ListTransactions(ctx context.Context, userID string, kind *models.TransactionKind) ([]models.Transaction, error)
	// GetSummary fetches both collections as one consistent pair and
	// aggregates them.
	GetSummary(ctx context.Context, userID string) (ledger.Summary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
