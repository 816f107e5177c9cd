package session

import (
	"context"
	"testing"
	"time"
)

func TestMonitorStartsUnknown(t *testing.T) {
	m := NewMonitor()

	st := m.Status()
	if st.State != StateUnknown {
		t.Errorf("expected initial state unknown, got %v", st.State)
	}
	if st.Identity != "" {
		t.Errorf("expected empty identity, got %q", st.Identity)
	}
}

func TestMonitorApply(t *testing.T) {
	t.Run("identity_present", func(t *testing.T) {
		m := NewMonitor()
		m.Apply(Authenticated("u1"))

		st := m.Status()
		if st.State != StateAuthenticated {
			t.Errorf("expected authenticated, got %v", st.State)
		}
		if st.Identity != "u1" {
			t.Errorf("expected identity u1, got %q", st.Identity)
		}
	})

	t.Run("identity_absent", func(t *testing.T) {
		m := NewMonitor()
		m.Apply(Authenticated("u1"))
		m.Apply(Anonymous())

		st := m.Status()
		if st.State != StateAnonymous {
			t.Errorf("expected anonymous, got %v", st.State)
		}
		if st.Identity != "" {
			t.Errorf("expected identity cleared, got %q", st.Identity)
		}
	})
}

func TestMonitorSubscribe(t *testing.T) {
	t.Run("receives_transitions", func(t *testing.T) {
		m := NewMonitor()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		ch := m.Subscribe(ctx)
		m.Apply(Authenticated("u1"))

		select {
		case st := <-ch:
			if st.State != StateAuthenticated || st.Identity != "u1" {
				t.Errorf("unexpected status %+v", st)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for transition")
		}
	})

	t.Run("slow_subscriber_sees_latest", func(t *testing.T) {
		m := NewMonitor()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		ch := m.Subscribe(ctx)
		// Two transitions before the subscriber reads: the unconsumed
		// first one is replaced by the second.
		m.Apply(Authenticated("u1"))
		m.Apply(Anonymous())

		select {
		case st := <-ch:
			if st.State != StateAnonymous {
				t.Errorf("expected latest status anonymous, got %v", st.State)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for transition")
		}
	})

	t.Run("unmount_detaches", func(t *testing.T) {
		m := NewMonitor()
		ctx, cancel := context.WithCancel(context.Background())

		ch := m.Subscribe(ctx)
		cancel()

		// Wait for the channel to close, then verify later transitions are
		// not delivered.
		deadline := time.After(time.Second)
		for {
			select {
			case _, ok := <-ch:
				if !ok {
					m.Apply(Authenticated("u1"))
					return
				}
			case <-deadline:
				t.Fatal("subscription channel never closed after cancel")
			}
		}
	})

	t.Run("multiple_subscribers", func(t *testing.T) {
		m := NewMonitor()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		a := m.Subscribe(ctx)
		b := m.Subscribe(ctx)
		m.Apply(Authenticated("u1"))

		for name, ch := range map[string]<-chan Status{"a": a, "b": b} {
			select {
			case st := <-ch:
				if st.State != StateAuthenticated {
					t.Errorf("subscriber %s: expected authenticated, got %v", name, st.State)
				}
			case <-time.After(time.Second):
				t.Fatalf("subscriber %s: timed out", name)
			}
		}
	})
}
