package povm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ncpol/povm"
)

// effect builds a d×d complex matrix from row-major values.
func effect(d int, vals ...complex128) *mat.CDense {
	m := mat.NewCDense(d, d, nil)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			m.Set(i, j, vals[i*d+j])
		}
	}
	return m
}

// computationalQubit is the projective measurement {|0⟩⟨0|, |1⟩⟨1|}.
func computationalQubit(t *testing.T) povm.POVM {
	t.Helper()
	p, err := povm.New(2,
		effect(2, 1, 0, 0, 0),
		effect(2, 0, 0, 0, 1),
	)
	require.NoError(t, err)
	return p
}

func TestNew_RejectsBadShapes(t *testing.T) {
	_, err := povm.New(0, effect(1, 1))
	assert.ErrorIs(t, err, povm.ErrBadDimension, "non-positive dimension")

	_, err = povm.New(2)
	assert.ErrorIs(t, err, povm.ErrNoEffects, "empty effect list")

	_, err = povm.New(2, effect(3, 1, 0, 0, 0, 1, 0, 0, 0, 1))
	assert.ErrorIs(t, err, povm.ErrBadDimension, "shape mismatch")
}

func TestValidate_AcceptsProjectiveMeasurement(t *testing.T) {
	p := computationalQubit(t)
	assert.NoError(t, p.Validate())
}

func TestValidate_AcceptsComplexEffects(t *testing.T) {
	// ½(I ± σ_y): Hermitian with purely imaginary off-diagonals.
	p, err := povm.New(2,
		effect(2, 0.5, complex(0, -0.5), complex(0, 0.5), 0.5),
		effect(2, 0.5, complex(0, 0.5), complex(0, -0.5), 0.5),
	)
	require.NoError(t, err)
	assert.NoError(t, p.Validate())
}

func TestValidate_ReportsFirstViolatedAxiom(t *testing.T) {
	// Non-Hermitian wins over the incompleteness it also causes.
	p := povm.POVM{Dim: 2, Effects: []*mat.CDense{
		effect(2, 0, 1, 0, 0),
		effect(2, 0, 0, 0, 1),
	}}
	assert.ErrorIs(t, p.Validate(), povm.ErrNotHermitian)

	// Hermitian but indefinite: σ_z has eigenvalue −1.
	p = povm.POVM{Dim: 2, Effects: []*mat.CDense{
		effect(2, 1, 0, 0, -1),
		effect(2, 0, 0, 0, 2),
	}}
	assert.ErrorIs(t, p.Validate(), povm.ErrNotPSD)

	// PSD effects that do not resolve the identity.
	p = povm.POVM{Dim: 2, Effects: []*mat.CDense{
		effect(2, 0.5, 0, 0, 0.5),
		effect(2, 0.25, 0, 0, 0.25),
	}}
	assert.ErrorIs(t, p.Validate(), povm.ErrNotComplete)
}

func TestValidate_EpsilonWidensAcceptance(t *testing.T) {
	// Identity perturbed by 1e-6 fails the default tolerance, passes 1e-3.
	p, err := povm.New(2,
		effect(2, 0.5+1e-6, 0, 0, 0.5),
		effect(2, 0.5, 0, 0, 0.5),
	)
	require.NoError(t, err)

	assert.ErrorIs(t, p.Validate(), povm.ErrNotComplete)
	assert.NoError(t, p.Validate(povm.WithEpsilon(1e-3)))
}

func TestWithEpsilon_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { povm.WithEpsilon(-1) })
}

func TestOutcomes(t *testing.T) {
	assert.Equal(t, 2, computationalQubit(t).Outcomes())
}
