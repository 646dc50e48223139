package server

import (
	"errors"
	"fmt"
)

// Sentinel errors for common session and server error conditions.
var (
	// ErrSessionClosed is returned when an operation is attempted on a closed session.
	ErrSessionClosed = errors.New("server: session closed")

	// ErrSessionNotFound is returned when a session ID does not exist.
	ErrSessionNotFound = errors.New("server: session not found")

	// ErrMaxSessionsReached is returned when the maximum number of sessions is reached.
	ErrMaxSessionsReached = errors.New("server: max sessions reached")

	// ErrNoConnection is returned when attempting to send on a detached session.
	ErrNoConnection = errors.New("server: no connection")

	// ErrAlreadyAttached is returned when a second websocket claims a session.
	ErrAlreadyAttached = errors.New("server: session already attached")
)

// HandlerError wraps a panic that occurred in an event listener.
type HandlerError struct {
	SessionID string
	NID       uint64
	EventType string
	Panic     any
	Stack     []byte
}

// Error returns the error message.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("server: session %s: listener panic on node %d (%s): %v",
		e.SessionID, e.NID, e.EventType, e.Panic)
}

// NewHandlerError creates a new HandlerError.
func NewHandlerError(sessionID string, nid uint64, eventType string, p any, stack []byte) *HandlerError {
	return &HandlerError{
		SessionID: sessionID,
		NID:       nid,
		EventType: eventType,
		Panic:     p,
		Stack:     stack,
	}
}
