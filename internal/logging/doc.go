// Package logging provides structured logging utilities for the dayplan application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - PII sanitization (email anonymization)
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "calendar_analyze_schedule")
//	logger.Info("schedule analyzed",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("attendee responded",
//	    logging.UserHash(email))
//
// # Security Considerations
//
// This package is designed with security in mind:
//   - Attendee emails are hashed to prevent PII leakage while allowing correlation
//   - OAuth codes and tokens are never logged directly
package logging
