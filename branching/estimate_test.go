package branching_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tverem/epikit/branching"
)

func mustProcess(t *testing.T, r0, k float64, gMax int, maxInfected float64, opts ...branching.Option) *branching.Process {
	t.Helper()
	proc, err := branching.New(r0, k, gMax, maxInfected, opts...)
	require.NoError(t, err)
	return proc
}

// TestEstimate_InvalidTrialCount verifies non-positive trial counts error
// before any simulation.
func TestEstimate_InvalidTrialCount(t *testing.T) {
	proc := mustProcess(t, 3, 1, 20, branching.DefaultMaxInfected)

	_, err := proc.Estimate(context.Background(), 0)
	assert.ErrorIs(t, err, branching.ErrInvalidTrialCount)

	_, err = proc.Estimate(context.Background(), -100)
	assert.ErrorIs(t, err, branching.ErrInvalidTrialCount)
}

// TestEstimate_ProbabilityInRange: the headline probability stays in [0,1]
// and the three-way counts always partition the trial budget.
func TestEstimate_ProbabilityInRange(t *testing.T) {
	cases := []struct {
		name  string
		r0, k float64
	}{
		{"subcritical", 0.5, 1.0},
		{"critical-ish", 1.0, 0.5},
		{"supercritical", 3.0, 0.1},
		{"high dispersion", 3.0, 10.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			proc := mustProcess(t, tc.r0, tc.k, 20, branching.DefaultMaxInfected)
			res, err := proc.Estimate(context.Background(), 2000)
			require.NoError(t, err)

			assert.Equal(t, 2000, res.Trials)
			assert.Equal(t, res.Trials, res.Extinct+res.Survived+res.Exploded,
				"outcome counts must partition the trial budget")
			assert.GreaterOrEqual(t, res.Probability, 0.0)
			assert.LessOrEqual(t, res.Probability, 1.0)
		})
	}
}

// TestEstimate_DeterministicAcrossInstances: identical parameters + seed
// must reproduce the Result bit for bit.
func TestEstimate_DeterministicAcrossInstances(t *testing.T) {
	a := mustProcess(t, 3, 0.5, 20, branching.DefaultMaxInfected, branching.WithSeed(7))
	b := mustProcess(t, 3, 0.5, 20, branching.DefaultMaxInfected, branching.WithSeed(7))

	ra, err := a.Estimate(context.Background(), 5000)
	require.NoError(t, err)
	rb, err := b.Estimate(context.Background(), 5000)
	require.NoError(t, err)

	assert.Equal(t, ra, rb)
}

// TestEstimate_RepeatedCallsMatch: Estimate rebuilds its streams from the
// master seed per call, so the same instance is idempotent.
func TestEstimate_RepeatedCallsMatch(t *testing.T) {
	proc := mustProcess(t, 3, 1, 20, branching.DefaultMaxInfected)

	first, err := proc.Estimate(context.Background(), 3000)
	require.NoError(t, err)
	second, err := proc.Estimate(context.Background(), 3000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestEstimate_ParallelReproducible: a fixed (seed, workers) pair fully
// determines the aggregate, and parallel counts still partition the budget.
func TestEstimate_ParallelReproducible(t *testing.T) {
	opts := []branching.Option{branching.WithSeed(11), branching.WithWorkers(4)}
	a := mustProcess(t, 3, 0.5, 20, branching.DefaultMaxInfected, opts...)
	b := mustProcess(t, 3, 0.5, 20, branching.DefaultMaxInfected, opts...)

	ra, err := a.Estimate(context.Background(), 10_001) // uneven split on purpose
	require.NoError(t, err)
	rb, err := b.Estimate(context.Background(), 10_001)
	require.NoError(t, err)

	assert.Equal(t, ra, rb)
	assert.Equal(t, 10_001, ra.Trials)
	assert.Equal(t, ra.Trials, ra.Extinct+ra.Survived+ra.Exploded)
}

// TestEstimate_Cancellation: a cancelled context aborts between trials with
// no partial result.
func TestEstimate_Cancellation(t *testing.T) {
	proc := mustProcess(t, 3, 1, 20, branching.DefaultMaxInfected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := proc.Estimate(ctx, 1000)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, branching.Result{}, res)
}

// TestEstimate_DegenerateR0: as R0 → 0 no secondary infections happen, so
// every trial dies after generation one.
func TestEstimate_DegenerateR0(t *testing.T) {
	proc := mustProcess(t, 1e-9, 1, 20, branching.DefaultMaxInfected)

	res, err := proc.Estimate(context.Background(), 1000)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Probability, 0.999)
	assert.Zero(t, res.Exploded)
}

// TestEstimate_MonotoneInR0: higher mean offspring must not raise the
// extinction probability. Checked as a wide statistical margin, not an
// exact inequality — Monte Carlo noise at these sizes is ~0.01.
func TestEstimate_MonotoneInR0(t *testing.T) {
	low := mustProcess(t, 0.8, 1, 20, branching.DefaultMaxInfected, branching.WithSeed(5))
	high := mustProcess(t, 3.0, 1, 20, branching.DefaultMaxInfected, branching.WithSeed(5))

	pLow, err := low.EstimateExtinctionProbability(context.Background(), 20_000)
	require.NoError(t, err)
	pHigh, err := high.EstimateExtinctionProbability(context.Background(), 20_000)
	require.NoError(t, err)

	assert.Greater(t, pLow, pHigh+0.2,
		"subcritical extinction (~1) must dominate supercritical (~1/3)")
}

// TestEstimate_ExplodedBoundary: with an explosion bound below one case,
// any positive generation terminates the trial as Exploded — it must never
// keep sampling, and Survived is unreachable.
func TestEstimate_ExplodedBoundary(t *testing.T) {
	proc := mustProcess(t, 20, 10, 50, 0.5)

	res, err := proc.Estimate(context.Background(), 200)
	require.NoError(t, err)

	assert.Zero(t, res.Survived)
	assert.Equal(t, 200, res.Extinct+res.Exploded)
	// P(zero offspring) = p^k ≈ 1.7e-5 here, so explosions dominate.
	assert.GreaterOrEqual(t, res.Exploded, 195)
}

// TestEstimate_CountBeyondInt64Surfaces: an explosion bound above the
// int64 range is valid, so a generation total can clear the bound while no
// integer case count can hold it. That must fail loudly as
// ErrNumericOverflow with no partial Result, never be absorbed into a
// wrapped count (which would misreport a wildly supercritical process as
// extinct).
func TestEstimate_CountBeyondInt64Surfaces(t *testing.T) {
	proc := mustProcess(t, 1e30, 1.0, 20, 1e300)

	res, err := proc.Estimate(context.Background(), 200)
	assert.ErrorIs(t, err, branching.ErrNumericOverflow)
	assert.Equal(t, branching.Result{}, res)
}

// TestEstimate_SurvivedBoundary: a positive count at the generation cap is
// Survived — distinct from Exploded even though both count as non-extinct.
func TestEstimate_SurvivedBoundary(t *testing.T) {
	proc := mustProcess(t, 3, 10, 1, branching.DefaultMaxInfected)

	res, err := proc.Estimate(context.Background(), 200)
	require.NoError(t, err)

	assert.Zero(t, res.Exploded)
	assert.Equal(t, 200, res.Survived+res.Extinct)
	// P(extinct in one generation) = p^k ≈ 0.072 here.
	assert.GreaterOrEqual(t, res.Survived, 150)
	assert.InDelta(t, float64(res.Extinct)/200, res.Probability, 1e-15)
}

// TestEstimate_RegressionScenario pins the canonical classroom run:
// R0=3, k=1, GMax=20, seed=101. For geometric offspring (k=1) the
// asymptotic extinction probability is 1/R0 = 1/3; the estimate must land
// near it and reproduce exactly across runs.
func TestEstimate_RegressionScenario(t *testing.T) {
	proc := mustProcess(t, 3.0, 1.0, 20, branching.DefaultMaxInfected,
		branching.WithSeed(101))

	res, err := proc.Estimate(context.Background(), 100_000)
	require.NoError(t, err)

	assert.InDelta(t, 1.0/3.0, res.Probability, 0.02)

	again, err := proc.Estimate(context.Background(), 100_000)
	require.NoError(t, err)
	assert.Equal(t, res, again, "same seed must reproduce the estimate exactly")
}
