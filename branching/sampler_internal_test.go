package branching

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOffspringTotal_ZeroCurrent: the absorbing state short-circuits
// without touching the source — a nil source proves no draw happened.
func TestOffspringTotal_ZeroCurrent(t *testing.T) {
	for _, k := range []float64{0.1, 1, 10} {
		proc, err := New(3, k, 10, DefaultMaxInfected)
		require.NoError(t, err)

		total, err := proc.offspringTotal(nil, 0)
		require.NoError(t, err)
		assert.Zero(t, total)

		total, err = proc.offspringTotal(nil, -5)
		require.NoError(t, err)
		assert.Zero(t, total)
	}
}

// TestOffspringTotal_OverflowShape: a non-finite shape parameter surfaces
// ErrNumericOverflow before any sampling.
func TestOffspringTotal_OverflowShape(t *testing.T) {
	proc, err := New(3, math.MaxFloat64, 10, DefaultMaxInfected)
	require.NoError(t, err)

	_, err = proc.offspringTotal(nil, 1<<40)
	assert.ErrorIs(t, err, ErrNumericOverflow)
}

// TestOffspringTotal_MeanSanity: the aggregate draw for c cases must have
// mean c·R0. Tolerance is ~5σ of the sample mean.
func TestOffspringTotal_MeanSanity(t *testing.T) {
	proc, err := New(2.0, 1.0, 10, DefaultMaxInfected)
	require.NoError(t, err)

	src := rand.NewPCG(DefaultSeed, 0)
	const (
		draws   = 20_000
		current = 5
	)
	var sum float64
	for i := 0; i < draws; i++ {
		total, err := proc.offspringTotal(src, current)
		require.NoError(t, err)
		require.GreaterOrEqual(t, total, 0.0)
		sum += total
	}
	// Per-case variance R0 + R0²/k = 6 ⇒ sd of the mean ≈ 0.039.
	assert.InDelta(t, 10.0, sum/draws, 0.2)
}

// TestRunTrial_ExtinctStaysTerminal: once a generation hits zero the trial
// classifies Extinct regardless of remaining cap.
func TestRunTrial_ExtinctStaysTerminal(t *testing.T) {
	proc, err := New(1e-9, 1, 50, DefaultMaxInfected)
	require.NoError(t, err)

	out, err := proc.runTrial(rand.NewPCG(1, 0))
	require.NoError(t, err)
	assert.Equal(t, Extinct, out)
}
