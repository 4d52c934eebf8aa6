// SPDX-License-Identifier: MIT
// File: errors.go — sentinel error set for the CSV parser and matrix
// validators, plus the structured ParseError every Parse failure site
// wraps a sentinel in. Callers match with errors.Is against the sentinel
// (ParseError.Unwrap exposes it) or errors.As(&ParseError{}) to read the
// structured kind/row/taxon fields, e.g. for logging.
package distmatrix

import (
	"errors"
	"fmt"
)

// ErrorKind names the class of a ParseError, mirroring the error taxonomy's
// distinct kinds so callers (chiefly the CLI's logger) can report which
// kind of failure occurred without string-matching Error().
type ErrorKind string

const (
	KindFieldTooLong     ErrorKind = "field_too_long"
	KindMalformedNumber  ErrorKind = "malformed_number"
	KindMissingField     ErrorKind = "missing_field"
	KindMalformedLabel   ErrorKind = "malformed_label"
	KindRowShapeMismatch ErrorKind = "row_shape_mismatch"
	KindLabelMismatch    ErrorKind = "label_mismatch"
	KindNonZeroDiagonal  ErrorKind = "non_zero_diagonal"
	KindAsymmetric       ErrorKind = "asymmetric"
	KindTooManyTaxa      ErrorKind = "too_many_taxa"
	KindEmptyInput       ErrorKind = "empty_input"
	KindNonFinite        ErrorKind = "non_finite"
)

// ParseError is the structured form every Parse/validator failure is
// returned as. Row is -1 when the failure is not scoped to one data row
// (e.g. a header or too-many-taxa failure); Taxon is empty when no single
// label is implicated (e.g. a too-long field or an empty row label).
type ParseError struct {
	Kind  ErrorKind
	Row   int
	Taxon string
	Err   error
}

// Error's message already carries the "distmatrix: " prefix via the
// wrapped sentinel, so only the row/taxon context is added here.
func (e *ParseError) Error() string {
	switch {
	case e.Taxon != "" && e.Row >= 0:
		return fmt.Sprintf("row %d (%s): %s", e.Row, e.Taxon, e.Err)
	case e.Row >= 0:
		return fmt.Sprintf("row %d: %s", e.Row, e.Err)
	default:
		return e.Err.Error()
	}
}

// Unwrap exposes the underlying sentinel so errors.Is(err, ErrX) keeps
// working across the ParseError wrapper.
func (e *ParseError) Unwrap() error { return e.Err }

var (
	// ErrFieldTooLong indicates a field's byte length exceeds InputMax.
	ErrFieldTooLong = errors.New("distmatrix: field exceeds input max")

	// ErrMalformedNumber indicates a numeric field violates the accepted
	// grammar: illegal digit, more than one '.', or a disallowed leading zero.
	ErrMalformedNumber = errors.New("distmatrix: malformed numeric field")

	// ErrMissingField indicates an empty numeric field.
	ErrMissingField = errors.New("distmatrix: missing numeric field")

	// ErrMalformedLabel indicates an empty non-header label field.
	ErrMalformedLabel = errors.New("distmatrix: malformed label field")

	// ErrRowShapeMismatch indicates a data row does not have exactly n+1 fields.
	ErrRowShapeMismatch = errors.New("distmatrix: row has wrong number of fields")

	// ErrLabelMismatch indicates a data row's label does not match the
	// header's label for that column.
	ErrLabelMismatch = errors.New("distmatrix: row label does not match header")

	// ErrNonZeroDiagonal indicates d[i][i] != 0 at float32 precision.
	ErrNonZeroDiagonal = errors.New("distmatrix: non-zero value on diagonal")

	// ErrAsymmetric indicates d[i][j] != d[j][i] exactly.
	ErrAsymmetric = errors.New("distmatrix: matrix is not symmetric")

	// ErrTooManyTaxa indicates the header names more than MaxTaxa labels.
	ErrTooManyTaxa = errors.New("distmatrix: too many taxa")

	// ErrEmptyInput indicates the byte stream contained no header line.
	ErrEmptyInput = errors.New("distmatrix: no header line found")

	// ErrNonFinite indicates a numeric field parsed to a non-finite value
	// (unreachable for the accepted grammar, retained as a defensive guard).
	ErrNonFinite = errors.New("distmatrix: non-finite distance value")
)
