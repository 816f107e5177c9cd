package session

import (
	"context"
	"sync"
)

// Monitor holds the process-wide session status. The identity provider's
// callback is the single writer (Apply); every mounted gated view is a
// reader, either by polling Status or by subscribing to transitions.
type Monitor struct {
	mu     sync.RWMutex
	status Status
	subs   map[int]chan Status
	nextID int
}

// NewMonitor creates a monitor in the Unknown state.
func NewMonitor() *Monitor {
	return &Monitor{subs: make(map[int]chan Status)}
}

// Status returns the current session status.
func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Apply consumes one signal from the identity provider and moves the
// session to Authenticated or Anonymous. Every subscriber is notified so
// that mounted views re-evaluate their gate. Apply is the only mutator of
// session state and delivers transitions in call order.
func (m *Monitor) Apply(sig Signal) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sig.Identity != "" {
		m.status = Status{State: StateAuthenticated, Identity: sig.Identity}
	} else {
		m.status = Status{State: StateAnonymous}
	}

	for _, ch := range m.subs {
		// Each subscriber channel holds at most the latest status. A
		// subscriber that has not consumed the previous transition gets it
		// replaced, never reordered: acting on the newest status is always
		// correct, acting on a stale one never is.
		select {
		case <-ch:
		default:
		}
		ch <- m.status
	}
}

// Subscribe registers a mounted view for session transitions. The returned
// channel yields the status after each transition. Cancelling ctx detaches
// the subscription (view unmount) and closes the channel.
func (m *Monitor) Subscribe(ctx context.Context) <-chan Status {
	ch := make(chan Status, 1)

	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = ch
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
		close(ch)
	}()

	return ch
}
