// Package parser turns raw delimited text for the RTK datasets into typed
// records. Parsing tolerates the irregularities the published datasets
// actually contain (short rows, unset numerics) and fails with
// line-addressed errors on anything else (missing required fields).
package parser

import (
	"fmt"

	"github.com/pterm/pterm"
)

// ErrorContext selects the rendering target for a ParseError.
type ErrorContext int

const (
	// ErrorContextPlain renders a concise single-line message for logs.
	ErrorContextPlain ErrorContext = iota
	// ErrorContextTerminal renders a colored message for interactive use.
	ErrorContextTerminal
)

// ParseError is a malformed or incomplete row, addressed by its 1-based
// source line.
type ParseError struct {
	Line    int    // 1-based line in the raw input, 0 = whole input
	Message string // Human-readable message
	Field   string // Offending field value, optional
	Err     error  // Underlying error, optional
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return e.FormatError(ErrorContextPlain)
}

// FormatError generates a context-appropriate error message
func (e *ParseError) FormatError(ctx ErrorContext) string {
	if ctx == ErrorContextTerminal {
		return e.formatTerminalError()
	}
	return e.formatPlainError()
}

func (e *ParseError) formatPlainError() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" (field %q)", e.Field)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *ParseError) formatTerminalError() string {
	msg := pterm.Red(e.Message)
	if e.Line > 0 {
		msg = fmt.Sprintf("%s %s", pterm.Yellow(fmt.Sprintf("line %d:", e.Line)), msg)
	}
	if e.Field != "" {
		msg += fmt.Sprintf("\n  %s %q", pterm.LightCyan("Field:"), e.Field)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n  %s %v", pterm.LightCyan("Cause:"), e.Err)
	}
	return msg
}

// Unwrap for errors.Is/As compatibility
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a ParseError at the given 1-based line.
func NewParseError(line int, message string) *ParseError {
	return &ParseError{Line: line, Message: message}
}

// WithField records the offending field value
func (e *ParseError) WithField(field string) *ParseError {
	e.Field = field
	return e
}

// WithUnderlying sets the underlying error
func (e *ParseError) WithUnderlying(err error) *ParseError {
	e.Err = err
	return e
}
