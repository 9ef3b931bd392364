// Package google handles OAuth2 authentication for the Google
// Calendar API.
//
// Tokens are cached per account in the user cache directory as plain
// two-field (access + refresh) files. The TokenProvider interface
// abstracts the token source so the calendar client does not depend on
// the file layout.
package google
