// Package flash holds one-shot notification messages between requests.
// A message set during one request is read, and cleared, by the render
// step of the next request in the same session.
package flash

import "context"

// Severity categorizes a flash message
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
)

// Store keeps at most one unread message per (session, severity).
// Set overwrites any prior unread message of the same severity.
// Take returns the message and clears it atomically; a second Take
// reports absent.
type Store interface {
	Set(ctx context.Context, sessionID string, severity Severity, message string) error
	Take(ctx context.Context, sessionID string, severity Severity) (string, bool, error)
}
