// Package cmd implements the command-line interface for dayplan.
//
// This package provides the following commands:
//   - today: List the day's agenda
//   - analyze: Find free blocks and back-to-back stretches in a day
//   - rank: Sort the day's meetings into priority tiers
//   - decline: Decline a meeting found by title
//   - reschedule: Shift a meeting and notify attendees
//   - focus: Put a focus block on the calendar
//   - commute: Put a commute buffer on the calendar
//   - auth: Authorize Google Calendar access
//   - serve: Start the MCP server to provide tools for AI assistants
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The today command is the default command when no subcommand is specified.
package cmd
