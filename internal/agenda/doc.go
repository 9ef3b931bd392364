// Package agenda implements the schedule-analysis core of dayplan.
//
// It operates on normalized calendar events for a single day and
// provides two pure computations: free/busy interval analysis
// (Analyze) and priority ranking of meetings (Rank). The package
// performs no I/O and holds no state; callers may invoke it
// concurrently on independent event lists.
//
// Events are constructed from gateway responses via NewEvent and
// discarded after the command completes. The only error condition is
// an event whose end precedes its start (ErrInvalidInterval).
package agenda
