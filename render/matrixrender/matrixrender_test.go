package matrixrender_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arborwright/njtree/core"
	"github.com/arborwright/njtree/render/matrixrender"
	"github.com/stretchr/testify/require"
)

func TestRender_ThreeTaxonStar(t *testing.T) {
	tr, err := core.NewTree([]string{"X", "Y", "Z"}, [][]float64{
		{0, 6, 6},
		{6, 0, 6},
		{6, 6, 0},
	})
	require.NoError(t, err)

	u, err := tr.AddInternal()
	require.NoError(t, err)
	require.NoError(t, tr.SetChildren(u, 0, 1))
	tr.SetDistance(u, 0, 3.0)
	tr.SetDistance(u, 1, 3.0)
	tr.SetDistance(u, 2, 3.0)
	require.NoError(t, tr.LinkMutual(2, u))

	var buf bytes.Buffer
	require.NoError(t, matrixrender.Render(&buf, tr))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5) // header + X + Y + Z + #3
	require.Equal(t, ",X,Y,Z,#3", lines[0])
	require.Equal(t, "X,0.00,6.00,6.00,3.00", lines[1])
	require.Equal(t, "#3,3.00,3.00,3.00,0.00", lines[4])
}
