package common

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/teemow/dayplan/internal/instrumentation"
	"github.com/teemow/dayplan/internal/server"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := server.NewServerContext(context.Background(), true)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func TestInstrumentedToolHandlerSuccess(t *testing.T) {
	ctx := context.Background()

	// Without metrics or audit logger the wrapper is pass-through
	sc := newTestServerContext(t)

	called := false
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText("success"), nil
	}

	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	result, err := wrapped(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if !called {
		t.Error("expected handler to be called")
	}
	if result == nil {
		t.Error("expected result, got nil")
	}
}

func TestInstrumentedToolHandlerError(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t)

	// Wire a metrics recorder so the instrumented path runs
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := instrumentation.NewMetrics(meter, false)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	sc.SetMetrics(metrics)
	sc.SetAuditLogger(instrumentation.NewAuditLogger(nil))

	wantErr := errors.New("handler failed")
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, wantErr
	}

	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	_, err = wrapped(ctx, mcp.CallToolRequest{})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected handler error to pass through, got %v", err)
	}
}

func TestInstrumentedToolHandlerToolResultError(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t)

	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := instrumentation.NewMetrics(meter, false)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	sc.SetMetrics(metrics)

	// A tool-level error result (IsError) is not a Go error but must
	// still be counted as a failed invocation
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultError("event not found"), nil
	}

	wrapped := InstrumentedToolHandlerWithService("test_tool", "calendar", "get", sc, handler)

	result, err := wrapped(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Errorf("expected no Go error, got %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected error result to pass through")
	}
}

func TestInstrumentedToolHandlerWithService(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t)

	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := instrumentation.NewMetrics(meter, true)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	sc.SetMetrics(metrics)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("ok"), nil
	}

	wrapped := InstrumentedToolHandlerWithService("calendar_list_events", "calendar", "list", sc, handler)

	result, err := wrapped(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result == nil || result.IsError {
		t.Error("expected success result")
	}
}
