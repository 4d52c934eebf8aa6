// SPDX-License-Identifier: MIT
package edgestream

import (
	"fmt"
	"io"

	"github.com/arborwright/njtree/njoin"
)

// Writer implements njoin.EdgeSink by writing one "u,v,length\n" line per
// emitted edge, with length formatted %.2f, matching spec §6's
// edge-stream output format exactly.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w as an edge sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Emit writes one CSV line for the edge (u, v, length).
func (s *Writer) Emit(u, v int, length float64) error {
	_, err := fmt.Fprintf(s.w, "%d,%d,%.2f\n", u, v, length)
	if err != nil {
		return fmt.Errorf("edgestream: write: %w", err)
	}

	return nil
}

// InMemorySink records emitted edges in order, for tests that assert
// exact sequencing or replay determinism (spec §8 item 6).
type InMemorySink struct {
	Edges []njoin.EdgeRecord
}

// Emit appends the edge to Edges.
func (s *InMemorySink) Emit(u, v int, length float64) error {
	s.Edges = append(s.Edges, njoin.EdgeRecord{U: u, V: v, Length: length})

	return nil
}
