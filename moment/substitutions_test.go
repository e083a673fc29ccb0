package moment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncpol/moment"
	"github.com/katalvlaran/ncpol/operator"
)

// reduceString reduces m under subs and renders the outcome, "0" for
// annihilation — compact fixtures for table tests.
func reduceString(subs *moment.Substitutions, m operator.Monomial) string {
	red, zero := subs.Reduce(m)
	if zero {
		return "0"
	}

	return red.String()
}

// TestSubstitutions_ProjectiveRequiresHermitian verifies the rule guard.
func TestSubstitutions_ProjectiveRequiresHermitian(t *testing.T) {
	subs := moment.NewSubstitutions()
	assert.ErrorIs(t, subs.Projective(operator.NewGenerator("A")), moment.ErrNotHermitian)
	assert.NoError(t, subs.Projective(operator.NewHermitian("P")))
}

// TestSubstitutions_OrthogonalGuards verifies Hermitian and distinctness
// preconditions on orthogonality rules.
func TestSubstitutions_OrthogonalGuards(t *testing.T) {
	subs := moment.NewSubstitutions()
	p := operator.NewHermitian("P")

	assert.ErrorIs(t, subs.Orthogonal(p, operator.NewGenerator("A")), moment.ErrNotHermitian)
	assert.ErrorIs(t, subs.Orthogonal(p, p), moment.ErrSameGenerator)
	assert.NoError(t, subs.Orthogonal(p, operator.NewHermitian("Q")))
}

// TestSubstitutions_CommuteGuards verifies distinctness and empty-ID guards.
func TestSubstitutions_CommuteGuards(t *testing.T) {
	subs := moment.NewSubstitutions()
	a := operator.NewGenerator("A")

	assert.ErrorIs(t, subs.Commute(a, a), moment.ErrSameGenerator)
	assert.ErrorIs(t, subs.Commute(a, operator.NewGenerator("")), operator.ErrEmptyGeneratorID)
	assert.NoError(t, subs.Commute(a, operator.NewHermitian("X")))
}

// TestSubstitutions_ReduceProjective verifies idempotency collapses runs of
// a projector: P·P·P → P.
func TestSubstitutions_ReduceProjective(t *testing.T) {
	p := operator.NewHermitian("P")
	subs := moment.NewSubstitutions()
	require.NoError(t, subs.Projective(p))

	run := operator.Mono(p).Mul(operator.Mono(p)).Mul(operator.Mono(p))
	assert.Equal(t, "P", reduceString(subs, run))
}

// TestSubstitutions_ReduceOrthogonal verifies annihilation: any word
// containing P·Q for orthogonal projectors reduces to zero.
func TestSubstitutions_ReduceOrthogonal(t *testing.T) {
	p, q := operator.NewHermitian("P"), operator.NewHermitian("Q")
	x := operator.NewHermitian("X")
	subs := moment.NewSubstitutions()
	require.NoError(t, subs.Orthogonal(p, q))

	word := operator.Mono(x).Mul(operator.Mono(p)).Mul(operator.Mono(q)).Mul(operator.Mono(x))
	assert.Equal(t, "0", reduceString(subs, word))
	// Both orders annihilate.
	assert.Equal(t, "0", reduceString(subs, operator.Mono(q).Mul(operator.Mono(p))))
}

// TestSubstitutions_ReduceCommute verifies commuting factors are bubbled
// into lexicographic order: B·A → A·B, and daggered variants follow.
func TestSubstitutions_ReduceCommute(t *testing.T) {
	a, b := operator.NewGenerator("A"), operator.NewGenerator("B")
	subs := moment.NewSubstitutions()
	require.NoError(t, subs.Commute(a, b))

	ba := operator.Mono(b).Mul(operator.Mono(a))
	assert.Equal(t, "A·B", reduceString(subs, ba))

	baDag := operator.Mono(b).Mul(operator.MonoAdjoint(a))
	assert.Equal(t, "A†·B", reduceString(subs, baDag))
}

// TestSubstitutions_ReduceNonCommuting verifies that unrelated factors are
// left in place: no rule, no reordering.
func TestSubstitutions_ReduceNonCommuting(t *testing.T) {
	x0, x1 := operator.NewHermitian("X0"), operator.NewHermitian("X1")
	subs := moment.NewSubstitutions()

	ba := operator.Mono(x1).Mul(operator.Mono(x0))
	assert.Equal(t, "X1·X0", reduceString(subs, ba), "no commutation rule, order preserved")
}

// TestSubstitutions_ReduceInterplay verifies rules compose: commuting B past
// A exposes an idempotency that then fires. B·P·P·A with [A,B]=0 … the run
// P·P collapses first, then B·A where registered reorders.
func TestSubstitutions_ReduceInterplay(t *testing.T) {
	p := operator.NewHermitian("P")
	a, b := operator.NewGenerator("A"), operator.NewGenerator("B")
	subs := moment.NewSubstitutions()
	require.NoError(t, subs.Projective(p))
	require.NoError(t, subs.Commute(a, b))

	word := operator.Mono(b).Mul(operator.Mono(a)).Mul(operator.Mono(p)).Mul(operator.Mono(p))
	assert.Equal(t, "A·B·P", reduceString(subs, word))
}

// TestSubstitutions_ReduceNil verifies the inert behaviors: nil rule set and
// short monomials pass through untouched.
func TestSubstitutions_ReduceNil(t *testing.T) {
	var subs *moment.Substitutions
	x := operator.Mono(operator.NewHermitian("X"))

	red, zero := subs.Reduce(x.Mul(x))
	assert.False(t, zero)
	assert.Equal(t, "X·X", red.String(), "nil substitutions reduce nothing")
}
