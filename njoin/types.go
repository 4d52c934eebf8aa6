// SPDX-License-Identifier: MIT
package njoin

// RenderMode selects what a caller does with a built Tree, and — for
// Default — whether Build itself streams edges as they're joined.
type RenderMode int

const (
	// Default runs Build and streams edges to Config.Sink as they are
	// joined (spec's "Default" render mode).
	Default RenderMode = iota
	// Matrix runs Build with edge emission suppressed; the caller renders
	// the expanded distance matrix afterward.
	Matrix
	// Newick runs Build with edge emission suppressed; the caller renders
	// a Newick tree afterward.
	Newick
)

// EdgeSink receives one emitted edge per call, in strict emission order.
// render/edgestream provides the CSV-line production implementation;
// tests use an in-memory slice-backed sink to assert ordering.
type EdgeSink interface {
	Emit(u, v int, length float64) error
}

// Config controls a single Build call. Sink is optional; Build only emits
// to it when Mode is Default, so passing a non-nil Sink under Matrix or
// Newick mode is inert rather than an error — the mode, not the sink's
// presence, is what the spec's render-mode contract gates on.
type Config struct {
	Mode RenderMode
	Sink EdgeSink
}

// EdgeRecord is the value-type expression of one emitted edge, used by
// render/edgestream.InMemorySink to capture emission order for tests.
type EdgeRecord struct {
	U, V   int
	Length float64
}
