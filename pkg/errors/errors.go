package errors

import (
	stdErrors "errors"
	"fmt"
)

// Sentinel causes carried by TransitionError. Match them with errors.Is.
var (
	ErrAlreadyPresented   = stdErrors.New("sheet already presented")
	ErrTransitionInFlight = stdErrors.New("transition already in flight")
	ErrNotPresented       = stdErrors.New("sheet not presented")
	ErrDismissed          = stdErrors.New("sheet dismissed")
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures sheet or action configuration issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TransitionError reports a lifecycle request the sheet refused to run.
type TransitionError struct {
	From  string
	Event string
	Err   error
}

// NewTransitionError constructs a TransitionError for the rejected event.
func NewTransitionError(from, event string, err error) error {
	return &TransitionError{From: from, Event: event, Err: err}
}

func (e *TransitionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("transition error: %s from %s: %v", e.Event, e.From, e.Err)
	}
	return fmt.Sprintf("transition error: %s from %s", e.Event, e.From)
}

// Unwrap exposes the sentinel cause.
func (e *TransitionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
