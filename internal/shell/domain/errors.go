package domain

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes failures originating at the engine boundary.
// The tab manager and pressure controller introduce no kinds of their own;
// they only propagate or swallow these.
type ErrorKind uint8

const (
	// ErrViewNotFound means an operation referenced a view identifier that
	// the engine (or tab manager) does not know.
	ErrViewNotFound ErrorKind = iota
	// ErrInitializationFailed means the engine failed to initialize.
	ErrInitializationFailed
	// ErrNavigation means a load or history operation failed.
	ErrNavigation
	// ErrScript means script execution failed.
	ErrScript
	// ErrMemory means a memory operation (suspend, trim) failed.
	ErrMemory
	// ErrVideo means a media/decoder operation failed.
	ErrVideo
	// ErrOther is the catch-all engine failure.
	ErrOther
)

// String returns a stable string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrViewNotFound:
		return "view_not_found"
	case ErrInitializationFailed:
		return "initialization_failed"
	case ErrNavigation:
		return "navigation"
	case ErrScript:
		return "script"
	case ErrMemory:
		return "memory"
	case ErrVideo:
		return "video"
	case ErrOther:
		return "other"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// EngineError is the error type crossing the engine capability boundary.
// ViewID is set for failures keyed to a particular view (always for
// ErrViewNotFound) and zero otherwise.
type EngineError struct {
	Kind   ErrorKind
	ViewID ViewID
	Msg    string
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	switch e.Kind {
	case ErrViewNotFound:
		return fmt.Sprintf("view not found: %s", e.ViewID)
	default:
		if e.Msg == "" {
			return fmt.Sprintf("engine error: %s", e.Kind)
		}
		return fmt.Sprintf("engine error (%s): %s", e.Kind, e.Msg)
	}
}

// NewViewNotFound returns an EngineError for a missing view identifier.
func NewViewNotFound(id ViewID) *EngineError {
	return &EngineError{Kind: ErrViewNotFound, ViewID: id}
}

// NewEngineError returns an EngineError of the given kind with a message.
func NewEngineError(kind ErrorKind, msg string) *EngineError {
	return &EngineError{Kind: kind, Msg: msg}
}

// IsViewNotFound reports whether err is an EngineError of kind ErrViewNotFound.
func IsViewNotFound(err error) bool {
	var ee *EngineError
	return errors.As(err, &ee) && ee.Kind == ErrViewNotFound
}
