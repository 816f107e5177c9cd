// Package ledger turns a user's raw income and expense records into the
// derived financial summary shown on the dashboard. Aggregation is pure:
// it performs no I/O and operates only on records already fetched for a
// single identity at a single point in time.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"ledgerly/internal/models"
)

// RecentLimit is the size of the recent-activity window.
const RecentLimit = 5

// Entry is a single transaction in the recent-activity view, tagged with
// its kind so income and expense rows can be told apart after the merge.
type Entry struct {
	ID          string                 `json:"id"`
	Kind        models.TransactionKind `json:"kind"`
	Amount      decimal.Decimal        `json:"amount"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Source      string                 `json:"source,omitempty"`
	Date        time.Time              `json:"date"`
}

// Summary is the derived ledger state for one identity. It is never
// persisted; it is recomputed from one consistent pair of collections.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
	Recent       []Entry         `json:"recent"`
}

// Aggregate computes totals, balance, and the recent-activity view from a
// user's incomes and expenses. Empty collections yield zero totals and an
// empty Recent slice, never an error. The merged list is sorted by date
// descending; records sharing a date keep their relative order from the
// input concatenation (incomes first, then expenses).
//
// Sums accumulate exactly in decimal; rounding is a presentation concern
// and must not happen here.
func Aggregate(incomes, expenses []models.Transaction) Summary {
	totalIncome := decimal.Zero
	for _, t := range incomes {
		totalIncome = totalIncome.Add(t.Amount)
	}

	totalExpense := decimal.Zero
	for _, t := range expenses {
		totalExpense = totalExpense.Add(t.Amount)
	}

	merged := make([]Entry, 0, len(incomes)+len(expenses))
	for _, t := range incomes {
		merged = append(merged, newEntry(t))
	}
	for _, t := range expenses {
		merged = append(merged, newEntry(t))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	if len(merged) > RecentLimit {
		merged = merged[:RecentLimit]
	}

	return Summary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
		Recent:       merged,
	}
}

func newEntry(t models.Transaction) Entry {
	return Entry{
		ID:          t.ID,
		Kind:        t.Kind,
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Source:      t.Source,
		Date:        t.Date,
	}
}

// Display returns the summary's monetary fields rounded for presentation
// using two-decimal banker's rounding. Running totals inside Aggregate are
// never rounded; this is the only place precision is reduced.
func (s Summary) Display() DisplaySummary {
	return DisplaySummary{
		TotalIncome:  s.TotalIncome.RoundBank(2).StringFixed(2),
		TotalExpense: s.TotalExpense.RoundBank(2).StringFixed(2),
		Balance:      s.Balance.RoundBank(2).StringFixed(2),
	}
}

// DisplaySummary holds presentation-rounded totals as fixed-point strings.
type DisplaySummary struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
}
