// Package agenda_tools provides MCP (Model Context Protocol) tools for
// day planning on top of Google Calendar.
//
// This package exposes the schedule analyzer and meeting classifier
// through a standardized MCP interface, allowing AI assistants to
// inspect a day, find free blocks, rank meetings by priority, and
// manage focus and commute blocks on behalf of users.
//
// Read-only tools are always registered; tools that modify the
// calendar (creating blocks, declining, rescheduling) are only
// registered when writes are enabled on the server context.
package agenda_tools
