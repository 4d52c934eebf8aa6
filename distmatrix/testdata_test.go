package distmatrix_test

import (
	"os"
	"testing"

	"github.com/arborwright/njtree/distmatrix"
	"github.com/stretchr/testify/require"
)

// openFixture opens a CSV file under testdata/, the repository's scenario
// fixtures.
func openFixture(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open("../testdata/" + name)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	return f
}

func TestParse_Fixture_ClassicFourTaxon(t *testing.T) {
	m, err := distmatrix.Parse(openFixture(t, "classic_four_taxon.csv"))
	require.NoError(t, err)
	require.Equal(t, 4, m.N)
	require.Equal(t, []distmatrix.Label{"A", "B", "C", "D"}, m.Labels)
	require.Equal(t, 8.0, m.D[2][3])
}

func TestParse_Fixture_SymmetricThreeTaxon(t *testing.T) {
	m, err := distmatrix.Parse(openFixture(t, "symmetric_three_taxon.csv"))
	require.NoError(t, err)
	require.Equal(t, 3, m.N)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			require.Equal(t, 6.0, m.D[i][j])
		}
	}
}

func TestParse_Fixture_CommentedFourTaxon(t *testing.T) {
	m, err := distmatrix.Parse(openFixture(t, "commented_four_taxon.csv"))
	require.NoError(t, err)
	require.Equal(t, 4, m.N)
	require.Equal(t, 10.0, m.D[1][2])
}

func TestParse_Fixture_RowShapeMismatch(t *testing.T) {
	_, err := distmatrix.Parse(openFixture(t, "row_shape_mismatch.csv"))
	require.ErrorIs(t, err, distmatrix.ErrRowShapeMismatch)

	var perr *distmatrix.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, distmatrix.KindRowShapeMismatch, perr.Kind)
	require.Equal(t, 1, perr.Row)
}

func TestParse_Fixture_Asymmetric(t *testing.T) {
	_, err := distmatrix.Parse(openFixture(t, "asymmetric.csv"))
	require.ErrorIs(t, err, distmatrix.ErrAsymmetric)

	var perr *distmatrix.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, distmatrix.KindAsymmetric, perr.Kind)
}
