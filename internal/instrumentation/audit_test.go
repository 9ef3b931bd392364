package instrumentation

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestToolInvocationLifecycle(t *testing.T) {
	ti := NewToolInvocation("calendar_analyze_schedule").
		WithUser("jane@example.com").
		WithAccount("work").
		WithService(ServiceCalendar, OperationList)

	if ti.Tool != "calendar_analyze_schedule" {
		t.Errorf("Tool = %q", ti.Tool)
	}
	if ti.StartTime.IsZero() {
		t.Error("StartTime not set")
	}

	ti.CompleteSuccess()

	if !ti.Success {
		t.Error("Success = false after CompleteSuccess")
	}
	if ti.Duration < 0 {
		t.Errorf("Duration = %v, want non-negative", ti.Duration)
	}
	if ti.Status() != StatusSuccess {
		t.Errorf("Status() = %q, want success", ti.Status())
	}
}

func TestToolInvocationCompleteWithError(t *testing.T) {
	ti := NewToolInvocation("calendar_decline_event")
	ti.CompleteWithError(errors.New("event not found"))

	if ti.Success {
		t.Error("Success = true after CompleteWithError")
	}
	if ti.Error != "event not found" {
		t.Errorf("Error = %q", ti.Error)
	}
	if ti.Status() != StatusError {
		t.Errorf("Status() = %q, want error", ti.Status())
	}
}

func TestToolInvocationUserDomain(t *testing.T) {
	ti := NewToolInvocation("tool").WithUser("jane@example.com")
	if got := ti.UserDomain(); got != "example.com" {
		t.Errorf("UserDomain() = %q, want example.com", got)
	}
}

func TestLogAttrsCardinality(t *testing.T) {
	ti := NewToolInvocation("calendar_list_events").
		WithUser("jane@example.com").
		WithAccount("default").
		WithService(ServiceCalendar, OperationList)
	ti.CompleteSuccess()

	attrs := ti.LogAttrs()

	var keys []string
	for _, a := range attrs {
		keys = append(keys, a.Key)
		if a.Key == "user_domain" && a.Value.String() != "example.com" {
			t.Errorf("user_domain = %q, want example.com", a.Value.String())
		}
		// Full email must never appear in standard attrs
		if strings.Contains(a.Value.String(), "jane@example.com") {
			t.Errorf("attr %s leaked the full email", a.Key)
		}
	}

	// The default account is omitted to keep logs terse
	for _, k := range keys {
		if k == "account" {
			t.Error("default account should be omitted from LogAttrs")
		}
	}
}

func TestLogAuditAttrsIncludesPII(t *testing.T) {
	ti := NewToolInvocation("calendar_list_events").
		WithUser("jane@example.com").
		WithAccount("default")
	ti.CompleteSuccess()

	found := false
	for _, a := range ti.LogAuditAttrs() {
		if a.Key == "user" && a.Value.String() == "jane@example.com" {
			found = true
		}
	}
	if !found {
		t.Error("LogAuditAttrs must include the full user email")
	}
}

func TestAuditLoggerLogToolInvocation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	al := NewAuditLogger(logger)

	ti := NewToolInvocation("calendar_analyze_schedule").WithUser("jane@example.com")
	ti.CompleteSuccess()
	al.LogToolInvocation(ti)

	out := buf.String()
	if !strings.Contains(out, "tool_executed") {
		t.Errorf("expected tool_executed message, got %q", out)
	}
	if strings.Contains(out, "jane@example.com") {
		t.Errorf("PII leaked without IncludePII: %q", out)
	}

	buf.Reset()
	ti = NewToolInvocation("calendar_decline_event")
	ti.CompleteWithError(errors.New("boom"))
	al.LogToolInvocation(ti)

	if !strings.Contains(buf.String(), "tool_failed") {
		t.Errorf("expected tool_failed message, got %q", buf.String())
	}
}

func TestAuditLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	al := NewAuditLoggerWithConfig(logger, AuditLoggingConfig{Enabled: false})

	ti := NewToolInvocation("calendar_list_events")
	ti.CompleteSuccess()
	al.LogToolInvocation(ti)
	al.LogToolAudit(ti)

	if buf.Len() != 0 {
		t.Errorf("disabled audit logger wrote output: %q", buf.String())
	}
}

func TestAuditLoggerIncludePII(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	al := NewAuditLoggerWithConfig(logger, AuditLoggingConfig{Enabled: true, IncludePII: true})

	ti := NewToolInvocation("calendar_list_events").WithUser("jane@example.com")
	ti.StartTime = time.Now().Add(-time.Second)
	ti.CompleteSuccess()
	al.LogToolInvocation(ti)

	if !strings.Contains(buf.String(), "jane@example.com") {
		t.Errorf("IncludePII set but email missing: %q", buf.String())
	}
}
