package compartmental_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tverem/epikit/compartmental"
)

func referenceFourGroup(t *testing.T) *compartmental.FourGroup {
	t.Helper()
	model, err := compartmental.NewFourGroup(
		[4]float64{1, 2, 3, 4}, 2.0, 3.0, 20, 0.005)
	require.NoError(t, err)
	return model
}

// TestNewFourGroup_Validation covers multipliers, rates and fraction
// overrides.
func TestNewFourGroup_Validation(t *testing.T) {
	_, err := compartmental.NewFourGroup([4]float64{1, -2, 3, 4}, 0.5, 3, 20, 0.01)
	assert.ErrorIs(t, err, compartmental.ErrNegativeRate)

	_, err = compartmental.NewFourGroup([4]float64{1, 2, 3, 4}, -0.5, 3, 20, 0.01)
	assert.ErrorIs(t, err, compartmental.ErrNegativeRate)

	_, err = compartmental.NewFourGroup([4]float64{1, 2, 3, 4}, 0.5, 3, 20, 0.01,
		compartmental.WithInitialFractions(0.9, 0, 0.1))
	assert.ErrorIs(t, err, compartmental.ErrNoSeedInfection)

	_, err = compartmental.NewFourGroup([4]float64{1, 2, 3, 4}, 0.5, 3, 20, 0.01,
		compartmental.WithInitialFractions(0.5, 0.1, 0.1))
	assert.ErrorIs(t, err, compartmental.ErrBadFraction)
}

// TestFourGroup_Shapes: trajectories are T×4 and group fractions stay
// partitioned within each group.
func TestFourGroup_Shapes(t *testing.T) {
	series := referenceFourGroup(t).Run()

	T := len(series.Time)
	rows, cols := series.S.Dims()
	assert.Equal(t, T, rows)
	assert.Equal(t, 4, cols)

	rows, cols = series.I.Dims()
	assert.Equal(t, T, rows)
	assert.Equal(t, 4, cols)
	rows, cols = series.R.Dims()
	assert.Equal(t, T, rows)
	assert.Equal(t, 4, cols)

	for tIdx := 0; tIdx < T; tIdx++ {
		for g := 0; g < 4; g++ {
			total := series.S.At(tIdx, g) + series.I.At(tIdx, g) + series.R.At(tIdx, g)
			assert.InDelta(t, 1.0, total, 1e-9)
		}
	}
}

// TestFourGroup_SusceptibilityOrdering: higher-susceptibility groups
// deplete their susceptible pool faster.
func TestFourGroup_SusceptibilityOrdering(t *testing.T) {
	series := referenceFourGroup(t).Run()
	last := len(series.Time) - 1

	for g := 1; g < 4; g++ {
		assert.Less(t, series.S.At(last, g), series.S.At(last, g-1),
			"group %d (p=%v) must end below group %d", g, series.P[g], g-1)
	}
}

// TestFourGroup_MeanSusceptibility: p̄(0) equals the plain average of the
// multipliers (equal initial s across groups) and declines as the most
// susceptible groups are infected first.
func TestFourGroup_MeanSusceptibility(t *testing.T) {
	series := referenceFourGroup(t).Run()
	pbar := series.MeanSusceptibility()
	require.Len(t, pbar, len(series.Time))

	assert.InDelta(t, 2.5, pbar[0], 1e-12, "(1+2+3+4)/4")
	last := len(pbar) - 1
	assert.Less(t, pbar[last], pbar[0])
	for idx := 1; idx < len(pbar); idx++ {
		assert.LessOrEqual(t, pbar[idx], pbar[idx-1]+1e-12,
			"p̄(t) is monotone non-increasing under fully mixed contacts")
	}
}
