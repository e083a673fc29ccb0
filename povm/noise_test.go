package povm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ncpol/povm"
)

func TestDepolarize_FullVisibilityIsIdentityMap(t *testing.T) {
	p := computationalQubit(t)
	noisy, err := povm.Depolarize(p, 1)
	require.NoError(t, err)

	for k := range p.Effects {
		assert.True(t, mat.CEqual(p.Effects[k], noisy.Effects[k]))
	}
}

func TestDepolarize_ZeroVisibilityFlattensToWhiteNoise(t *testing.T) {
	p := computationalQubit(t)
	noisy, err := povm.Depolarize(p, 0)
	require.NoError(t, err)

	// Each effect has trace 1, so both collapse to I/2.
	want := effect(2, 0.5, 0, 0, 0.5)
	for k := range noisy.Effects {
		assert.True(t, mat.CEqual(want, noisy.Effects[k]), "effect %d", k)
	}
}

func TestDepolarize_PreservesValidity(t *testing.T) {
	p, err := povm.Random(3, 4, 13)
	require.NoError(t, err)

	for _, vis := range []float64{0, 0.31, 0.75, 1} {
		noisy, err := povm.Depolarize(p, vis)
		require.NoError(t, err)
		assert.NoError(t, noisy.Validate(povm.WithEpsilon(1e-8)), "visibility %v", vis)
	}
}

func TestDepolarize_InterpolatesLinearly(t *testing.T) {
	p := computationalQubit(t)
	noisy, err := povm.Depolarize(p, 0.5)
	require.NoError(t, err)

	// ½·|0⟩⟨0| + ½·(I/2) = diag(0.75, 0.25).
	assert.InDelta(t, 0.75, real(noisy.Effects[0].At(0, 0)), 1e-12)
	assert.InDelta(t, 0.25, real(noisy.Effects[0].At(1, 1)), 1e-12)
	assert.Equal(t, complex(0, 0), noisy.Effects[0].At(0, 1))
}

func TestDepolarize_RejectsBadParameters(t *testing.T) {
	p := computationalQubit(t)

	for _, vis := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1)} {
		_, err := povm.Depolarize(p, vis)
		assert.ErrorIs(t, err, povm.ErrBadVisibility, "visibility %v", vis)
	}

	_, err := povm.Depolarize(povm.POVM{}, 0.5)
	assert.ErrorIs(t, err, povm.ErrBadDimension)
}
