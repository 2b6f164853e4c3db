package graph

import (
	"fmt"

	"github.com/teranos/rtkgraph/errors"
)

// DataError reports structurally invalid build input or a violated identity
// invariant, with record counts for diagnostics.
type DataError struct {
	Message    string
	Kanji      int // kanji records (or nodes) in scope
	Primitives int // primitive records (or nodes) in scope

	sentinel error
}

// Error implements the error interface
func (e *DataError) Error() string {
	return fmt.Sprintf("%s (kanji=%d, primitives=%d)", e.Message, e.Kanji, e.Primitives)
}

// Unwrap exposes the sentinel for errors.Is checks.
func (e *DataError) Unwrap() error {
	return e.sentinel
}

// NewDataError creates a DataError for structurally invalid input.
func NewDataError(message string, kanji, primitives int) *DataError {
	return &DataError{Message: message, Kanji: kanji, Primitives: primitives, sentinel: errors.ErrInvalidInput}
}

// NewIntegrityError creates a DataError for a violated identity invariant
// (e.g. two records sanitizing to the same node id).
func NewIntegrityError(message string, kanji, primitives int) *DataError {
	return &DataError{Message: message, Kanji: kanji, Primitives: primitives, sentinel: errors.ErrDataIntegrity}
}

// NewNotFoundDataError creates a DataError for a lookup of a node that does
// not exist (e.g. an unknown tree root).
func NewNotFoundDataError(message string, kanji, primitives int) *DataError {
	return &DataError{Message: message, Kanji: kanji, Primitives: primitives, sentinel: errors.ErrNotFound}
}
