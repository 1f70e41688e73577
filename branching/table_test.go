package branching_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tverem/epikit/branching"
)

// TestSweep_NoDispersions: an empty dispersion list is rejected up front.
func TestSweep_NoDispersions(t *testing.T) {
	_, err := branching.Sweep(context.Background(), branching.SweepConfig{
		R0: 3, GMax: 20, Trials: 100,
	})
	assert.ErrorIs(t, err, branching.ErrNoDispersions)
}

// TestSweep_PropagatesInvalidParameters: a bad k inside the list surfaces
// the constructor's sentinel, with no rows returned.
func TestSweep_PropagatesInvalidParameters(t *testing.T) {
	rows, err := branching.Sweep(context.Background(), branching.SweepConfig{
		R0:          3,
		Dispersions: []float64{0.5, -1},
		GMax:        20,
		Trials:      100,
	})
	assert.ErrorIs(t, err, branching.ErrInvalidDispersion)
	assert.Nil(t, rows)
}

// TestSweep_OrderedAndReproducible: rows come back in input order, one per
// k, each independently reproducible from the config seed.
func TestSweep_OrderedAndReproducible(t *testing.T) {
	cfg := branching.SweepConfig{
		R0:          3.0,
		Dispersions: []float64{0.1, 0.5, 1.0, 5.0, 10.0},
		GMax:        20,
		Trials:      2000,
		Seed:        101,
	}

	rows, err := branching.Sweep(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, rows, len(cfg.Dispersions))

	for i, row := range rows {
		assert.Equal(t, cfg.Dispersions[i], row.Dispersion)
		assert.Equal(t, cfg.Trials, row.Trials)
		assert.GreaterOrEqual(t, row.Probability, 0.0)
		assert.LessOrEqual(t, row.Probability, 1.0)
	}

	again, err := branching.Sweep(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, rows, again)
}

// TestSweep_DefaultsApplied: zero MaxInfected/Seed/Workers fall back to the
// documented defaults instead of failing validation.
func TestSweep_DefaultsApplied(t *testing.T) {
	rows, err := branching.Sweep(context.Background(), branching.SweepConfig{
		R0:          2.0,
		Dispersions: []float64{1.0},
		GMax:        10,
		Trials:      500,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 500, rows[0].Trials)
}

// TestSweep_Cancelled: cancellation propagates out of the first estimate.
func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := branching.Sweep(ctx, branching.SweepConfig{
		R0:          3,
		Dispersions: []float64{1.0},
		GMax:        20,
		Trials:      100,
	})
	assert.ErrorIs(t, err, context.Canceled)
}
