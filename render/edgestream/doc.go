// Package edgestream provides njoin.EdgeSink implementations: a CSV-line
// writer for the "Default" render mode's live output, and an in-memory
// sink used by tests to capture emission order.
package edgestream
