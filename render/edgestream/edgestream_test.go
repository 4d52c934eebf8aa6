package edgestream_test

import (
	"bytes"
	"testing"

	"github.com/arborwright/njtree/render/edgestream"
	"github.com/stretchr/testify/require"
)

func TestWriter_Emit(t *testing.T) {
	var buf bytes.Buffer
	w := edgestream.NewWriter(&buf)

	require.NoError(t, w.Emit(0, 4, 2.0))
	require.NoError(t, w.Emit(1, 4, 3.0))

	require.Equal(t, "0,4,2.00\n1,4,3.00\n", buf.String())
}

func TestInMemorySink_RecordsOrder(t *testing.T) {
	sink := &edgestream.InMemorySink{}
	require.NoError(t, sink.Emit(0, 4, 2.0))
	require.NoError(t, sink.Emit(1, 4, 3.0))

	require.Len(t, sink.Edges, 2)
	require.Equal(t, 0, sink.Edges[0].U)
	require.Equal(t, 4, sink.Edges[0].V)
	require.InDelta(t, 2.0, sink.Edges[0].Length, 1e-9)
}
