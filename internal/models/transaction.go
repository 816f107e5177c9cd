package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of transaction
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// Transaction represents a single income or expense record. Records are
// immutable once created: there are no update or delete operations.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind        TransactionKind `gorm:"not null" json:"kind"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	Category    string          `gorm:"not null" json:"category"`
	Description string          `gorm:"not null" json:"description"`
	// Source is the origin of the money and is set only for income records.
	Source string `json:"source,omitempty"`
	// Date is the calendar date chosen by the user, stored at UTC midnight.
	// It is independent of CreatedAt, which records when the row was written.
	Date time.Time `gorm:"not null;index" json:"date"`
}
