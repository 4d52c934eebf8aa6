// Package distmatrix defines the DistanceMatrix value type and the strict
// CSV reader that materializes it from a byte stream.
//
// Input grammar (line-oriented, newline-terminated):
//
//	Lines whose first byte is '#' are comments, skipped in their entirety,
//	and may appear anywhere before or between data rows. The first
//	non-comment line is the header: an empty first field followed by
//	n >= 1 taxon labels. Each of the next n lines is a data row: a label
//	matching the header's column label, followed by n numeric distances.
//	Lines beyond the n-th data row are ignored.
//
// The parser (parser.go) classifies each line as comment, header, data
// row, or trailing line, and validates each field in place through a
// handful of early-return checks, so that every error site is a single
// ParseError construction rather than buried in nested conditionals.
//
// Matrix validation (diagonal zero at float32 precision, exact symmetry,
// finiteness) is centralized in validators.go, mirroring the teacher
// pack's matrix/validators.go convention of one canonical validator per
// structural invariant.
package distmatrix
