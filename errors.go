package solrq

import (
	"errors"
	"fmt"
)

// Errors reported by query construction and compilation. Combinators and value
// constructors stay chainable: invalid inputs are recorded on the node or value
// and surfaced by Compile or FormatValue, never as a partial query string.
var (
	// ErrNilOperand is returned when a combinator receives a nil query operand.
	ErrNilOperand = errors.New("solrq: combinator operand must be a non-nil query")

	// ErrBoostFactor is returned when a boost or constant score factor is
	// negative, NaN or infinite.
	ErrBoostFactor = errors.New("solrq: boost factor must be a non-negative finite number")

	// ErrEmptyRange is returned when a range is constructed without bounds.
	ErrEmptyRange = errors.New("solrq: range requires at least one bound")

	// ErrBoundaries is returned when a range carries an unknown Boundaries value.
	ErrBoundaries = errors.New("solrq: invalid range boundaries")
)

// FormatError reports a value that no formatter variant recognizes.
type FormatError struct {
	Value any
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("solrq: cannot format value of type %T", e.Value)
}
