package instrumentation

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
)

func newTestMetrics(t *testing.T, detailedLabels bool) *Metrics {
	t.Helper()
	meter := noop.NewMeterProvider().Meter("test")
	m, err := NewMetrics(meter, detailedLabels)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	return m
}

func TestNewMetrics(t *testing.T) {
	m := newTestMetrics(t, false)

	if m.googleAPIOperationsTotal == nil {
		t.Error("googleAPIOperationsTotal not initialized")
	}
	if m.toolInvocationsTotal == nil {
		t.Error("toolInvocationsTotal not initialized")
	}
	if m.scheduleAnalysesTotal == nil {
		t.Error("scheduleAnalysesTotal not initialized")
	}
	if m.meetingsClassifiedTotal == nil {
		t.Error("meetingsClassifiedTotal not initialized")
	}
	if m.calendarBlocksCreatedTotal == nil {
		t.Error("calendarBlocksCreatedTotal not initialized")
	}
}

func TestMetricsRecording(t *testing.T) {
	// The noop meter accepts all recordings; this verifies the record
	// paths do not panic with initialized instruments.
	m := newTestMetrics(t, true)
	ctx := context.Background()

	m.RecordGoogleAPIOperation(ctx, ServiceCalendar, OperationList, StatusSuccess, 120*time.Millisecond)
	m.RecordOAuthAuth(ctx, OAuthResultSuccess)
	m.RecordToolInvocation(ctx, "calendar_analyze_schedule", StatusSuccess, 80*time.Millisecond)
	m.RecordToolInvocationWithAccount(ctx, "calendar_list_events", StatusError, "work", 50*time.Millisecond)
	m.RecordScheduleAnalysis(ctx, 240)
	m.RecordMeetingClassified(ctx, "critical")
	m.RecordBlockCreated(ctx, BlockKindFocus)
}

func TestMetricsUninitializedSafe(t *testing.T) {
	// A zero-value Metrics is the no-op recorder returned when
	// instrumentation is disabled; every method must be safe to call.
	m := &Metrics{}
	ctx := context.Background()

	m.RecordGoogleAPIOperation(ctx, ServiceCalendar, OperationCreate, StatusSuccess, time.Second)
	m.RecordOAuthAuth(ctx, OAuthResultFailure)
	m.RecordToolInvocation(ctx, "calendar_decline_event", StatusError, time.Second)
	m.RecordToolInvocationWithAccount(ctx, "calendar_rank_meetings", StatusSuccess, "default", time.Second)
	m.RecordScheduleAnalysis(ctx, 0)
	m.RecordMeetingClassified(ctx, "cancelable")
	m.RecordBlockCreated(ctx, BlockKindCommute)
}
