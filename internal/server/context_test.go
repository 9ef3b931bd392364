package server

import (
	"context"
	"testing"

	"github.com/teemow/dayplan/internal/instrumentation"
)

func newTestServerContext(t *testing.T) *ServerContext {
	t.Helper()
	// Point the token cache at an empty scratch dir so no real client
	// creation is attempted.
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := NewServerContext(context.Background(), false)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	return sc
}

func TestNewServerContext(t *testing.T) {
	sc := newTestServerContext(t)

	if sc.Context() == nil {
		t.Error("Context() = nil")
	}
	if sc.IsShutdown() {
		t.Error("IsShutdown() = true for fresh context")
	}
	if sc.WritesEnabled() {
		t.Error("WritesEnabled() = true, want false")
	}
}

func TestCalendarClientForAccountNoToken(t *testing.T) {
	sc := newTestServerContext(t)

	if client := sc.CalendarClientForAccount("default"); client != nil {
		t.Error("expected nil client without a stored token")
	}
	if client := sc.CalendarClient(); client != nil {
		t.Error("expected nil default client without a stored token")
	}
}

func TestSetCalendarClient(t *testing.T) {
	sc := newTestServerContext(t)

	// A cached client is returned without touching the token store
	sc.SetCalendarClientForAccount("work", nil)
	sc.SetCalendarClient(nil)

	// Setting nil caches the nil entry; the map hit short-circuits
	if client := sc.CalendarClientForAccount("work"); client != nil {
		t.Error("expected cached nil client")
	}
}

func TestMetricsAndAuditAccessors(t *testing.T) {
	sc := newTestServerContext(t)

	if sc.Metrics() != nil {
		t.Error("Metrics() should be nil before SetMetrics")
	}
	if sc.AuditLogger() != nil {
		t.Error("AuditLogger() should be nil before SetAuditLogger")
	}

	m := &instrumentation.Metrics{}
	sc.SetMetrics(m)
	if sc.Metrics() != m {
		t.Error("Metrics() did not return the recorder that was set")
	}

	al := instrumentation.NewAuditLogger(nil)
	sc.SetAuditLogger(al)
	if sc.AuditLogger() != al {
		t.Error("AuditLogger() did not return the logger that was set")
	}
}

func TestShutdown(t *testing.T) {
	sc := newTestServerContext(t)

	if err := sc.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("IsShutdown() = false after Shutdown")
	}

	// Context must be cancelled
	select {
	case <-sc.Context().Done():
	default:
		t.Error("context not cancelled after Shutdown")
	}

	// Second shutdown is a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}
