package distmatrix_test

import (
	"strings"
	"testing"

	"github.com/arborwright/njtree/distmatrix"
	"github.com/stretchr/testify/require"
)

const classicFourTaxonCSV = ",A,B,C,D\n" +
	"A,0,5,9,9\n" +
	"B,5,0,10,10\n" +
	"C,9,10,0,8\n" +
	"D,9,10,8,0\n"

func TestParse_ClassicFourTaxon(t *testing.T) {
	m, err := distmatrix.Parse(strings.NewReader(classicFourTaxonCSV))
	require.NoError(t, err)
	require.Equal(t, 4, m.N)
	require.Equal(t, []distmatrix.Label{"A", "B", "C", "D"}, m.Labels)
	require.Equal(t, 9.0, m.D[0][2])
	require.Equal(t, 8.0, m.D[2][3])
}

func TestParse_SkipsCommentLines(t *testing.T) {
	input := "# a comment before the header\n" +
		",X,Y,Z\n" +
		"# a comment between rows\n" +
		"X,0,6,6\n" +
		"Y,6,0,6\n" +
		"Z,6,6,0\n"
	m, err := distmatrix.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, m.N)
	require.Equal(t, 6.0, m.D[0][1])
}

func TestParse_TrailingLinesIgnored(t *testing.T) {
	input := classicFourTaxonCSV + "this line is never read\n"
	m, err := distmatrix.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 4, m.N)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := distmatrix.Parse(strings.NewReader(""))
	require.ErrorIs(t, err, distmatrix.ErrEmptyInput)
}

func TestParse_RowShapeMismatch(t *testing.T) {
	input := ",A,B\n" +
		"A,0,5\n" +
		"B,5,0,99\n"
	_, err := distmatrix.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, distmatrix.ErrRowShapeMismatch)
}

func TestParse_LabelMismatch(t *testing.T) {
	input := ",A,B\n" +
		"A,0,5\n" +
		"Q,5,0\n"
	_, err := distmatrix.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, distmatrix.ErrLabelMismatch)
}

func TestParse_AsymmetricRejected(t *testing.T) {
	input := ",A,B\n" +
		"A,0,5\n" +
		"B,6,0\n"
	_, err := distmatrix.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, distmatrix.ErrAsymmetric)
}

func TestParse_NonZeroDiagonalRejected(t *testing.T) {
	input := ",A,B\n" +
		"A,1,5\n" +
		"B,5,0\n"
	_, err := distmatrix.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, distmatrix.ErrNonZeroDiagonal)
}

func TestParse_MalformedLabelEmpty(t *testing.T) {
	input := ",A,\n" +
		"A,0,5\n" +
		",5,0\n"
	_, err := distmatrix.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, distmatrix.ErrMalformedLabel)
}

func TestParse_FieldTooLong(t *testing.T) {
	longField := strings.Repeat("9", distmatrix.InputMax+1)
	input := ",A,B\n" +
		"A,0," + longField + "\n" +
		"B," + longField + ",0\n"
	_, err := distmatrix.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, distmatrix.ErrFieldTooLong)
}

func TestParse_MissingField(t *testing.T) {
	input := ",A,B\n" +
		"A,0,\n" +
		"B,5,0\n"
	_, err := distmatrix.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, distmatrix.ErrMissingField)
}

func TestParse_MalformedNumberLeadingZero(t *testing.T) {
	input := ",A,B\n" +
		"A,0,05\n" +
		"B,05,0\n"
	_, err := distmatrix.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, distmatrix.ErrMalformedNumber)
}

func TestParse_MalformedNumberBareDot(t *testing.T) {
	input := ",A,B\n" +
		"A,0,5.\n" +
		"B,5.,0\n"
	_, err := distmatrix.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, distmatrix.ErrMalformedNumber)
}

func TestParse_MalformedNumberDoubleDot(t *testing.T) {
	input := ",A,B\n" +
		"A,0,5..5\n" +
		"B,5..5,0\n"
	_, err := distmatrix.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, distmatrix.ErrMalformedNumber)
}

func TestParse_LeadingZeroSingleDigitAllowed(t *testing.T) {
	input := ",A,B\n" +
		"A,0,0.5\n" +
		"B,0.5,0\n"
	m, err := distmatrix.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 0.5, m.D[0][1])
}

func TestParse_TooManyTaxa(t *testing.T) {
	n := distmatrix.MaxTaxa + 1
	labels := make([]string, n)
	for i := range labels {
		labels[i] = "T"
	}
	var b strings.Builder
	b.WriteString(",")
	b.WriteString(strings.Join(labels, ","))
	b.WriteString("\n")
	_, err := distmatrix.Parse(strings.NewReader(b.String()))
	require.ErrorIs(t, err, distmatrix.ErrTooManyTaxa)
}
