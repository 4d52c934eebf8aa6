// SPDX-License-Identifier: MIT
// File: parser.go
// Role: strict CSV matrix reader. Each line is classified (comment,
// header, data row, or trailing garbage) and each field within it is
// validated in place, with one locatable ParseError construction site per
// failure mode rather than a deeply nested conditional chain.
package distmatrix

import (
	"bytes"
	"fmt"
	"io"
)

// ParseOption overrides one of Parse's compiled-in limits (MaxTaxa,
// InputMax). Zero-value Parse(r) keeps the package defaults; the CLI
// applies WithMaxTaxa/WithInputMax when a TOML config file names tighter
// or looser limits.
type ParseOption func(*parseLimits)

type parseLimits struct {
	maxTaxa  int
	inputMax int
}

func defaultParseLimits() parseLimits {
	return parseLimits{maxTaxa: MaxTaxa, inputMax: InputMax}
}

// WithMaxTaxa overrides the maximum taxon count Parse accepts. n<=0 leaves
// the compiled-in default in place.
func WithMaxTaxa(n int) ParseOption {
	return func(l *parseLimits) {
		if n > 0 {
			l.maxTaxa = n
		}
	}
}

// WithInputMax overrides the maximum per-field byte length Parse accepts.
// n<=0 leaves the compiled-in default in place.
func WithInputMax(n int) ParseOption {
	return func(l *parseLimits) {
		if n > 0 {
			l.inputMax = n
		}
	}
}

// Parse reads a strict CSV distance matrix from r and returns a validated
// DistanceMatrix, or the first *ParseError encountered.
//
// Complexity: O(bytes) to scan, O(n^2) for the post-read symmetry/diagonal
// validation pass.
func Parse(r io.Reader, opts ...ParseOption) (*DistanceMatrix, error) {
	limits := defaultParseLimits()
	for _, opt := range opts {
		opt(&limits)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	lines := splitLines(raw)

	cursor := 0
	header := nextContentLine(lines, &cursor)
	if header == nil {
		return nil, &ParseError{Kind: KindEmptyInput, Row: -1, Err: ErrEmptyInput}
	}

	labels, err := parseHeader(header, limits.inputMax)
	if err != nil {
		return nil, err
	}
	n := len(labels)
	if n > limits.maxTaxa {
		return nil, &ParseError{Kind: KindTooManyTaxa, Row: -1, Err: fmt.Errorf("%w: %d taxa", ErrTooManyTaxa, n)}
	}

	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		row := nextContentLine(lines, &cursor)
		if row == nil {
			return nil, &ParseError{Kind: KindRowShapeMismatch, Row: i, Taxon: string(labels[i]), Err: ErrRowShapeMismatch}
		}
		if err := parseRow(row, i, labels, d, limits.inputMax); err != nil {
			return nil, err
		}
	}
	// Remaining content lines, if any, are trailing garbage: deliberately not read.

	if err := ValidateDiagonalZero(d, labels); err != nil {
		return nil, err
	}
	if err := ValidateSymmetric(d, labels); err != nil {
		return nil, err
	}
	if err := ValidateFinite(d, labels); err != nil {
		return nil, err
	}

	return &DistanceMatrix{N: n, Labels: labels, D: d}, nil
}

// splitLines splits raw input on '\n', dropping the trailing empty segment
// produced when the input ends with a newline.
func splitLines(raw []byte) [][]byte {
	lines := bytes.Split(raw, []byte{'\n'})
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}

	return lines
}

// nextContentLine advances cursor past comment lines (first byte '#') and
// returns the next non-comment line, or nil if input is exhausted.
func nextContentLine(lines [][]byte, cursor *int) []byte {
	for *cursor < len(lines) {
		line := lines[*cursor]
		*cursor++
		if len(line) > 0 && line[0] == '#' {
			continue // comment line, skip in its entirety
		}

		return line
	}

	return nil
}

// splitFields splits a line on ',' and enforces inputMax as the
// byte-length limit uniformly across every field (header, label, or
// numeric). row is -1 for the header line.
func splitFields(line []byte, row, inputMax int) ([]string, error) {
	parts := bytes.Split(line, []byte{','})
	fields := make([]string, len(parts))
	for i, p := range parts {
		if len(p) > inputMax {
			return nil, &ParseError{Kind: KindFieldTooLong, Row: row, Err: fmt.Errorf("%w: field %d", ErrFieldTooLong, i)}
		}
		fields[i] = string(p)
	}

	return fields, nil
}

// parseHeader validates the header line: a first field whose content is
// not checked (only the inputMax limit applies to it), followed by n>=1
// non-empty taxon labels.
func parseHeader(line []byte, inputMax int) ([]Label, error) {
	fields, err := splitFields(line, -1, inputMax)
	if err != nil {
		return nil, err
	}
	if len(fields) < 2 {
		return nil, &ParseError{Kind: KindMalformedLabel, Row: -1, Err: fmt.Errorf("%w: need at least one taxon", ErrMalformedLabel)}
	}

	labels := make([]Label, 0, len(fields)-1)
	for _, f := range fields[1:] {
		if len(f) == 0 {
			return nil, &ParseError{Kind: KindMalformedLabel, Row: -1, Err: ErrMalformedLabel}
		}
		labels = append(labels, Label(f))
	}

	return labels, nil
}

// parseRow validates data row i: its leading label must byte-equal the
// header label at column i, followed by n numeric distance fields.
func parseRow(line []byte, i int, labels []Label, d [][]float64, inputMax int) error {
	n := len(labels)
	fields, err := splitFields(line, i, inputMax)
	if err != nil {
		return err
	}
	if len(fields) != n+1 {
		return &ParseError{
			Kind:  KindRowShapeMismatch,
			Row:   i,
			Taxon: string(labels[i]),
			Err:   fmt.Errorf("%w: %d fields, want %d", ErrRowShapeMismatch, len(fields), n+1),
		}
	}

	rowLabel := fields[0]
	if len(rowLabel) == 0 {
		return &ParseError{Kind: KindMalformedLabel, Row: i, Err: ErrMalformedLabel}
	}
	if rowLabel != string(labels[i]) {
		return &ParseError{
			Kind:  KindLabelMismatch,
			Row:   i,
			Taxon: rowLabel,
			Err:   fmt.Errorf("%w: %q != header %q", ErrLabelMismatch, rowLabel, labels[i]),
		}
	}

	for j := 0; j < n; j++ {
		v, err := parseNumeric(fields[j+1])
		if err != nil {
			return &ParseError{
				Kind:  kindForNumericErr(err),
				Row:   i,
				Taxon: rowLabel,
				Err:   fmt.Errorf("col %d: %w", j, err),
			}
		}
		d[i][j] = v
	}

	return nil
}

// kindForNumericErr maps a parseNumeric sentinel to its ErrorKind.
func kindForNumericErr(err error) ErrorKind {
	if err == ErrMissingField {
		return KindMissingField
	}

	return KindMalformedNumber
}

// parseNumeric parses one distance field against the grammar
// [0-9]+(\.[0-9]+)?, with the leading-zero rule: a multi-digit integer
// part may not start with '0'. Accumulation mirrors the spec's reference
// arithmetic: integer digits fold as v = 10*v + digit, fractional digits
// fold as v += digit * 10^-k.
func parseNumeric(field string) (float64, error) {
	if len(field) == 0 {
		return 0, ErrMissingField
	}

	dotIdx := -1
	dotCount := 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c == '.' {
			dotCount++
			if dotIdx == -1 {
				dotIdx = i
			}
			continue
		}
		if c < '0' || c > '9' {
			return 0, ErrMalformedNumber
		}
	}
	if dotCount > 1 {
		return 0, ErrMalformedNumber
	}

	intPart := field
	fracPart := ""
	if dotIdx != -1 {
		intPart = field[:dotIdx]
		fracPart = field[dotIdx+1:]
	}
	if len(intPart) == 0 {
		return 0, ErrMalformedNumber // e.g. ".5": no digit before the dot
	}
	if dotIdx != -1 && len(fracPart) == 0 {
		return 0, ErrMalformedNumber // e.g. "5.": dot with no trailing digits
	}
	if len(intPart) > 1 && intPart[0] == '0' {
		return 0, ErrMalformedNumber // e.g. "00" or "01": disallowed leading zero
	}

	var v float64
	for i := 0; i < len(intPart); i++ {
		v = v*10 + float64(intPart[i]-'0')
	}
	frac := 0.1
	for i := 0; i < len(fracPart); i++ {
		v += float64(fracPart[i]-'0') * frac
		frac *= 0.1
	}

	return v, nil
}
