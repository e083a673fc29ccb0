package sdp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncpol/sdp"
)

// TestWriteSparse_Golden pins the exact byte layout of a small problem:
// header, block sizes, cost vector, then 1-based sorted entry lines.
func TestWriteSparse_Golden(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, sdp.WriteSparse(&sb, twoVarProblem()))

	want := "2\n" +
		"1\n" +
		"2\n" +
		"1 1\n" +
		"0 1 1 1 1\n" +
		"0 1 2 2 1\n" +
		"1 1 1 1 1\n" +
		"2 1 2 2 1\n"
	assert.Equal(t, want, sb.String())
}

// TestWriteSparse_Deterministic verifies byte-identical output for two
// structurally equal problems with shuffled entry order.
func TestWriteSparse_Deterministic(t *testing.T) {
	ordered := twoVarProblem()
	shuffled := twoVarProblem()
	shuffled.F[0] = sdp.Matrix{shuffled.F[0][1], shuffled.F[0][0]}

	var a, b strings.Builder
	require.NoError(t, sdp.WriteSparse(&a, ordered))
	require.NoError(t, sdp.WriteSparse(&b, shuffled))

	assert.Equal(t, a.String(), b.String(), "entry order in memory must not leak into the file")
}

// TestWriteSparse_SkipsZeroEntries verifies that explicit zero coefficients
// are elided — sparse files carry structural zeros implicitly.
func TestWriteSparse_SkipsZeroEntries(t *testing.T) {
	p := twoVarProblem()
	p.F[1] = append(sdp.Matrix{{Block: 0, Row: 0, Col: 1, Value: 0}}, p.F[1]...)

	var sb strings.Builder
	require.NoError(t, sdp.WriteSparse(&sb, p))
	assert.NotContains(t, sb.String(), "1 1 1 2", "zero entry must not be emitted")
}

// TestWriteSparse_ValidatesFirst verifies nothing is written when the
// problem is malformed.
func TestWriteSparse_ValidatesFirst(t *testing.T) {
	p := twoVarProblem()
	p.F = p.F[:1]

	var sb strings.Builder
	err := sdp.WriteSparse(&sb, p)
	assert.ErrorIs(t, err, sdp.ErrMatrixCount)
	assert.Empty(t, sb.String(), "no partial output on validation failure")
}

// TestWriteSparse_DiagonalBlockSizes verifies negative sizes pass through
// verbatim (SDPA's diagonal-block convention).
func TestWriteSparse_DiagonalBlockSizes(t *testing.T) {
	p := &sdp.Problem{
		BlockSizes: []int{2, -3},
		Cost:       []float64{0.5},
		F: []sdp.Matrix{
			{{Block: 1, Row: 2, Col: 2, Value: -1}},
			{{Block: 0, Row: 0, Col: 1, Value: 2}},
		},
	}

	var sb strings.Builder
	require.NoError(t, sdp.WriteSparse(&sb, p))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Equal(t, "2 -3", lines[2], "block size line keeps the sign")
	assert.Contains(t, lines, "0 2 3 3 -1", "diagonal block entry, 1-based")
	assert.Contains(t, lines, "1 1 1 2 2", "dense block entry, 1-based")
}
