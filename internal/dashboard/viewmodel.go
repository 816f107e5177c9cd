// Package dashboard drives the financial-overview view. A ViewModel binds a
// session monitor to the transaction repository: it refreshes the ledger
// summary whenever the session resolves to an identity, discards fetch
// results that raced a session transition, and clears state on sign-out.
package dashboard

import (
	"context"
	"sync"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/intake"
	"ledgerly/internal/ledger"
	"ledgerly/internal/logger"
	"ledgerly/internal/models"
	"ledgerly/internal/session"
)

// Repository is the external transaction store the view reads from and
// writes to. Implementations must scope every query strictly to userID.
type Repository interface {
	QueryTransactions(ctx context.Context, userID string, kind models.TransactionKind) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, userID string, payload intake.Payload) (*models.Transaction, error)
}

// Snapshot is the view state at one point in time.
type Snapshot struct {
	// Loading is true until the session has resolved and the first fetch
	// for the current identity has settled.
	Loading bool
	// Notice carries a non-fatal message when the last fetch failed and
	// the summary degraded to zero values.
	Notice  string
	Summary ledger.Summary
}

// ViewModel holds the dashboard state for one mounted view.
type ViewModel struct {
	monitor *session.Monitor
	repo    Repository

	mu       sync.Mutex
	snapshot Snapshot
	inflight bool
}

// NewViewModel creates a view model in the loading state.
func NewViewModel(monitor *session.Monitor, repo Repository) *ViewModel {
	return &ViewModel{
		monitor:  monitor,
		repo:     repo,
		snapshot: Snapshot{Loading: true},
	}
}

// Run subscribes to session transitions and keeps the summary current until
// ctx is cancelled (view unmount). Each authenticated transition triggers a
// fetch captured against the identity current at fetch start; if the session
// has moved on by the time the fetch settles, the result is discarded rather
// than written over state belonging to a different or absent identity.
func (v *ViewModel) Run(ctx context.Context) {
	ch := v.monitor.Subscribe(ctx)
	for status := range ch {
		switch status.State {
		case session.StateAuthenticated:
			v.refresh(ctx, status.Identity)
		case session.StateAnonymous:
			v.clear()
		}
	}
}

// refresh fetches both collections as one consistent pair and recomputes
// the summary. Read failures degrade to a zero summary with a notice.
func (v *ViewModel) refresh(ctx context.Context, identity string) {
	incomes, err := v.repo.QueryTransactions(ctx, identity, models.TransactionKindIncome)
	if err == nil {
		var expenses []models.Transaction
		expenses, err = v.repo.QueryTransactions(ctx, identity, models.TransactionKindExpense)
		if err == nil {
			v.apply(identity, ledger.Aggregate(incomes, expenses), "")
			return
		}
	}

	logger.Get().Warnw("dashboard fetch failed", "identity", identity, "error", err)
	v.apply(identity, ledger.Summary{}, "Could not load transactions")
}

// apply writes a fetch result, unless the session identity changed while
// the fetch was in flight.
func (v *ViewModel) apply(fetchIdentity string, summary ledger.Summary, notice string) {
	current := v.monitor.Status()
	if current.State != session.StateAuthenticated || current.Identity != fetchIdentity {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.snapshot = Snapshot{Summary: summary, Notice: notice}
}

// clear resets the view after the session becomes anonymous.
func (v *ViewModel) clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snapshot = Snapshot{}
}

// Snapshot returns the current view state.
func (v *ViewModel) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot
}

// CanSubmit reports whether a new submission may be issued. It is false
// while a prior submission has not settled, so a double-click cannot issue
// two writes for one user action.
func (v *ViewModel) CanSubmit() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.inflight
}

// Submit validates the raw fields and, if the session is authenticated,
// issues exactly one write. On failure the caller keeps the submitted
// fields so the user can correct and retry; nothing is cleared here.
func (v *ViewModel) Submit(ctx context.Context, kind models.TransactionKind, fields intake.Fields) (*models.Transaction, error) {
	payload, fieldErrs := intake.Validate(kind, fields)
	if fieldErrs != nil {
		return nil, apperrors.WithFields(fieldErrs)
	}

	status := v.monitor.Status()
	if status.State != session.StateAuthenticated {
		return nil, apperrors.ErrUnauthorized
	}

	v.mu.Lock()
	if v.inflight {
		v.mu.Unlock()
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "A submission is already in progress")
	}
	v.inflight = true
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.inflight = false
		v.mu.Unlock()
	}()

	tx, err := v.repo.CreateTransaction(ctx, status.Identity, payload)
	if err != nil {
		return nil, err
	}

	v.refresh(ctx, status.Identity)
	return tx, nil
}
