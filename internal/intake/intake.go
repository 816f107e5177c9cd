// Package intake validates candidate transaction records before they are
// handed to the repository. Every rule is evaluated independently so the
// caller can surface all violations at once, not just the first. Identity
// stamping and persistence happen one level up, after validation passes and
// only while the session is authenticated.
package intake

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ledgerly/internal/models"
)

// DateLayout is the calendar-date format accepted for the date field.
const DateLayout = "2006-01-02"

// Fields holds the raw user-supplied form values. All values arrive as
// strings; normalization (trimming, parsing) is this package's job.
type Fields struct {
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Date        string `json:"date"`
}

// Payload is a normalized transaction ready for persistence. It carries no
// identity or timestamps; those are stamped by the service layer.
type Payload struct {
	Kind        models.TransactionKind
	Amount      decimal.Decimal
	Category    string
	Description string
	Source      string
	Date        time.Time
}

// FieldErrors maps a field name to its violation message.
type FieldErrors map[string]string

// Validate checks every rule and returns either a normalized payload or the
// full set of field violations. A rule failing for one field never stops
// another field from reporting its own violation.
func Validate(kind models.TransactionKind, f Fields) (Payload, FieldErrors) {
	errs := FieldErrors{}
	p := Payload{Kind: kind}

	amountRaw := strings.TrimSpace(f.Amount)
	if amountRaw == "" {
		errs["amount"] = "Amount is required"
	} else if amount, err := decimal.NewFromString(amountRaw); err != nil {
		errs["amount"] = "Amount must be a number"
	} else if !amount.IsPositive() {
		errs["amount"] = "Amount must be greater than zero"
	} else {
		p.Amount = amount
	}

	p.Category = strings.TrimSpace(f.Category)
	if p.Category == "" {
		errs["category"] = "Category is required"
	}

	p.Description = strings.TrimSpace(f.Description)
	if p.Description == "" {
		errs["description"] = "Description is required"
	}

	p.Source = strings.TrimSpace(f.Source)
	if kind == models.TransactionKindIncome && p.Source == "" {
		errs["source"] = "Source is required"
	}

	dateRaw := strings.TrimSpace(f.Date)
	if dateRaw == "" {
		errs["date"] = "Date is required"
	} else if date, err := time.ParseInLocation(DateLayout, dateRaw, time.UTC); err != nil {
		errs["date"] = "Date must be in YYYY-MM-DD format"
	} else {
		p.Date = date
	}

	if len(errs) > 0 {
		return Payload{}, errs
	}
	return p, nil
}
