package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"ledgerly/internal/models"
)

func tx(kind models.TransactionKind, amount string, date string) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Kind:   kind,
		Amount: decimal.RequireFromString(amount),
		Date:   d,
	}
}

func TestAggregate(t *testing.T) {
	t.Run("empty_collections", func(t *testing.T) {
		s := Aggregate(nil, nil)

		if !s.TotalIncome.IsZero() {
			t.Errorf("expected zero total income, got %s", s.TotalIncome)
		}
		if !s.TotalExpense.IsZero() {
			t.Errorf("expected zero total expense, got %s", s.TotalExpense)
		}
		if !s.Balance.IsZero() {
			t.Errorf("expected zero balance, got %s", s.Balance)
		}
		if len(s.Recent) != 0 {
			t.Errorf("expected empty recent, got %d entries", len(s.Recent))
		}
	})

	t.Run("totals_and_balance", func(t *testing.T) {
		incomes := []models.Transaction{tx(models.TransactionKindIncome, "100", "2024-01-05")}
		expenses := []models.Transaction{tx(models.TransactionKindExpense, "40", "2024-01-06")}

		s := Aggregate(incomes, expenses)

		if !s.TotalIncome.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total income 100, got %s", s.TotalIncome)
		}
		if !s.TotalExpense.Equal(decimal.NewFromInt(40)) {
			t.Errorf("expected total expense 40, got %s", s.TotalExpense)
		}
		if !s.Balance.Equal(decimal.NewFromInt(60)) {
			t.Errorf("expected balance 60, got %s", s.Balance)
		}

		if len(s.Recent) != 2 {
			t.Fatalf("expected 2 recent entries, got %d", len(s.Recent))
		}
		if s.Recent[0].Kind != models.TransactionKindExpense {
			t.Errorf("expected most recent entry to be the expense, got %s", s.Recent[0].Kind)
		}
		if s.Recent[1].Kind != models.TransactionKindIncome {
			t.Errorf("expected second entry to be the income, got %s", s.Recent[1].Kind)
		}
	})

	t.Run("negative_balance", func(t *testing.T) {
		incomes := []models.Transaction{tx(models.TransactionKindIncome, "10", "2024-01-01")}
		expenses := []models.Transaction{tx(models.TransactionKindExpense, "25", "2024-01-02")}

		s := Aggregate(incomes, expenses)

		if !s.Balance.Equal(decimal.NewFromInt(-15)) {
			t.Errorf("expected balance -15, got %s", s.Balance)
		}
	})

	t.Run("one_side_empty", func(t *testing.T) {
		expenses := []models.Transaction{
			tx(models.TransactionKindExpense, "5", "2024-03-01"),
			tx(models.TransactionKindExpense, "7", "2024-03-02"),
		}

		s := Aggregate(nil, expenses)

		if !s.TotalIncome.IsZero() {
			t.Errorf("expected zero total income, got %s", s.TotalIncome)
		}
		if !s.TotalExpense.Equal(decimal.NewFromInt(12)) {
			t.Errorf("expected total expense 12, got %s", s.TotalExpense)
		}
		if !s.Balance.Equal(decimal.NewFromInt(-12)) {
			t.Errorf("expected balance -12, got %s", s.Balance)
		}
	})

	t.Run("recent_truncated_to_five", func(t *testing.T) {
		var incomes []models.Transaction
		dates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"}
		for _, d := range dates {
			incomes = append(incomes, tx(models.TransactionKindIncome, "1", d))
		}
		expenses := []models.Transaction{
			tx(models.TransactionKindExpense, "1", "2024-01-05"),
			tx(models.TransactionKindExpense, "1", "2024-01-06"),
			tx(models.TransactionKindExpense, "1", "2024-01-07"),
		}

		s := Aggregate(incomes, expenses)

		if len(s.Recent) != RecentLimit {
			t.Fatalf("expected %d recent entries, got %d", RecentLimit, len(s.Recent))
		}
		// Newest first across both kinds.
		want := []string{"2024-01-07", "2024-01-06", "2024-01-05", "2024-01-04", "2024-01-03"}
		for i, w := range want {
			if got := s.Recent[i].Date.Format("2006-01-02"); got != w {
				t.Errorf("recent[%d]: expected date %s, got %s", i, w, got)
			}
		}
	})

	t.Run("recent_sorted_descending", func(t *testing.T) {
		incomes := []models.Transaction{
			tx(models.TransactionKindIncome, "1", "2024-02-10"),
			tx(models.TransactionKindIncome, "2", "2024-02-20"),
		}
		expenses := []models.Transaction{
			tx(models.TransactionKindExpense, "3", "2024-02-15"),
		}

		s := Aggregate(incomes, expenses)

		for i := 1; i < len(s.Recent); i++ {
			if s.Recent[i].Date.After(s.Recent[i-1].Date) {
				t.Errorf("recent not sorted descending at index %d", i)
			}
		}
	})

	t.Run("stable_on_equal_dates", func(t *testing.T) {
		// Two incomes and one expense share a date; the merged order must
		// match the input concatenation (incomes first, in input order).
		incomes := []models.Transaction{
			tx(models.TransactionKindIncome, "10", "2024-02-01"),
			tx(models.TransactionKindIncome, "20", "2024-02-01"),
		}
		expenses := []models.Transaction{
			tx(models.TransactionKindExpense, "30", "2024-02-01"),
		}

		s := Aggregate(incomes, expenses)

		if len(s.Recent) != 3 {
			t.Fatalf("expected 3 recent entries, got %d", len(s.Recent))
		}
		wantAmounts := []string{"10", "20", "30"}
		for i, w := range wantAmounts {
			if !s.Recent[i].Amount.Equal(decimal.RequireFromString(w)) {
				t.Errorf("recent[%d]: expected amount %s, got %s", i, w, s.Recent[i].Amount)
			}
		}
	})

	t.Run("decimal_accumulation_exact", func(t *testing.T) {
		// 0.1 added ten times must be exactly 1, not a float approximation.
		var incomes []models.Transaction
		for i := 0; i < 10; i++ {
			incomes = append(incomes, tx(models.TransactionKindIncome, "0.1", "2024-01-01"))
		}

		s := Aggregate(incomes, nil)

		if !s.TotalIncome.Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected exact total 1, got %s", s.TotalIncome)
		}
	})

	t.Run("balance_identity", func(t *testing.T) {
		incomes := []models.Transaction{
			tx(models.TransactionKindIncome, "19.99", "2024-01-01"),
			tx(models.TransactionKindIncome, "0.01", "2024-01-02"),
		}
		expenses := []models.Transaction{
			tx(models.TransactionKindExpense, "7.45", "2024-01-03"),
		}

		s := Aggregate(incomes, expenses)

		if !s.Balance.Equal(s.TotalIncome.Sub(s.TotalExpense)) {
			t.Errorf("balance %s != totalIncome %s - totalExpense %s",
				s.Balance, s.TotalIncome, s.TotalExpense)
		}
	})
}

func TestSummaryDisplay(t *testing.T) {
	incomes := []models.Transaction{tx(models.TransactionKindIncome, "10.005", "2024-01-01")}

	d := Aggregate(incomes, nil).Display()

	// Banker's rounding: 10.005 rounds to the even cent.
	if d.TotalIncome != "10.00" {
		t.Errorf("expected banker's-rounded total 10.00, got %s", d.TotalIncome)
	}
	if d.TotalExpense != "0.00" {
		t.Errorf("expected 0.00 total expense, got %s", d.TotalExpense)
	}
	if d.Balance != "10.00" {
		t.Errorf("expected balance 10.00, got %s", d.Balance)
	}
}
