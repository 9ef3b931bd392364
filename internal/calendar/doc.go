// Package calendar provides a Google Calendar client for day planning.
//
// The client wraps the Google Calendar API and converts raw API events
// into the agenda.Event model used by the schedule analyzer. It supports:
//   - Listing the events of a single day
//   - Creating events, focus blocks, and commute blocks
//   - Declining events and recording attendance responses
//   - Rescheduling events with a note for the attendees
//
// Authentication uses OAuth2 tokens managed by the google package, with
// support for multiple accounts.
package calendar
