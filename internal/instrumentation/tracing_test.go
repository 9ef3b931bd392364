package instrumentation

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestSpanAttributeBuilder(t *testing.T) {
	attrs := NewSpanAttributeBuilder().
		WithTool("calendar_analyze_schedule").
		WithService(ServiceCalendar).
		WithOperation(OperationList).
		WithAccount("work").
		WithResource("event", "evt123").
		WithReadOnly(true).
		Build()

	got := map[attribute.Key]attribute.Value{}
	for _, a := range attrs {
		got[a.Key] = a.Value
	}

	checks := map[attribute.Key]string{
		SpanAttrTool:         "calendar_analyze_schedule",
		SpanAttrService:      "calendar",
		SpanAttrOperation:    "list",
		SpanAttrAccount:      "work",
		SpanAttrResourceType: "event",
		SpanAttrResourceID:   "evt123",
	}
	for key, want := range checks {
		v, ok := got[key]
		if !ok {
			t.Errorf("attribute %s missing", key)
			continue
		}
		if v.AsString() != want {
			t.Errorf("attribute %s = %q, want %q", key, v.AsString(), want)
		}
	}

	if v, ok := got[SpanAttrReadOnly]; !ok || !v.AsBool() {
		t.Error("read_only attribute missing or false")
	}
}

func TestSpanAttributeBuilderSkipsEmpty(t *testing.T) {
	attrs := NewSpanAttributeBuilder().
		WithAccount("").
		WithResource("", "").
		Build()

	if len(attrs) != 0 {
		t.Errorf("empty values should produce no attributes, got %v", attrs)
	}
}

func TestStartToolSpan(t *testing.T) {
	// Without a configured tracer provider this uses the global no-op
	// tracer; the span must still be usable.
	ctx, span := StartToolSpan(context.Background(), "calendar_list_events")
	defer span.End()

	if ctx == nil {
		t.Fatal("StartToolSpan returned nil context")
	}

	SetSpanSuccess(span)
	AddSpanEvent(span, "events_listed", attribute.Int("count", 3))
}

func TestStartGoogleAPISpan(t *testing.T) {
	ctx, span := StartGoogleAPISpan(context.Background(), ServiceCalendar, OperationCreate)
	defer span.End()

	if ctx == nil {
		t.Fatal("StartGoogleAPISpan returned nil context")
	}

	SetSpanError(span, errTestTracing)
}

var errTestTracing = &tracingTestError{}

type tracingTestError struct{}

func (*tracingTestError) Error() string { return "api failure" }

func TestGetTraceIDNoSpan(t *testing.T) {
	if got := GetTraceID(context.Background()); got != "" {
		t.Errorf("GetTraceID() = %q, want empty without a span", got)
	}
	if got := GetSpanID(context.Background()); got != "" {
		t.Errorf("GetSpanID() = %q, want empty without a span", got)
	}
	if got := SpanContextString(context.Background()); got != "" {
		t.Errorf("SpanContextString() = %q, want empty without a span", got)
	}
}
