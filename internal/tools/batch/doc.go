// Package batch supports tools that operate on several events in one
// call, such as declining every cancelable meeting of a day. It parses
// arguments that accept a single event ID or an array of IDs, applies
// an operation per event with partial-failure tolerance, and formats
// the aggregated outcome.
package batch
