package branching

import "context"

// SweepConfig describes a dispersion sweep: the same process is estimated
// once per k value at a fixed R0, reproducing the classic superspreading
// table (extinction probability rising as k shrinks... or rather as it
// grows — low k means a few superspreaders and many dead ends).
//
// Zero values fall back to documented defaults: MaxInfected →
// DefaultMaxInfected, Seed → DefaultSeed, Workers → 1. R0, Dispersions,
// GMax and Trials are mandatory and validated by Sweep via New/Estimate.
type SweepConfig struct {
	R0          float64
	Dispersions []float64
	GMax        int
	MaxInfected float64
	Trials      int
	Seed        uint64
	Workers     int
}

// TableRow is one line of the sweep output, ordered as the input
// dispersion list.
type TableRow struct {
	Dispersion  float64
	Probability float64
	Trials      int
	Extinct     int
}

// Sweep estimates the extinction probability for every dispersion value in
// cfg, one freshly constructed Process per k. It performs no simulation
// logic itself; every row is a plain constructor + Estimate pair, so each
// row is independently reproducible from (cfg.Seed, cfg.Workers).
func Sweep(ctx context.Context, cfg SweepConfig) ([]TableRow, error) {
	if len(cfg.Dispersions) == 0 {
		return nil, ErrNoDispersions
	}

	maxInfected := cfg.MaxInfected
	if maxInfected == 0 {
		maxInfected = DefaultMaxInfected
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	rows := make([]TableRow, 0, len(cfg.Dispersions))
	for _, k := range cfg.Dispersions {
		proc, err := New(cfg.R0, k, cfg.GMax, maxInfected,
			WithSeed(seed), WithWorkers(workers))
		if err != nil {
			return nil, err
		}
		res, err := proc.Estimate(ctx, cfg.Trials)
		if err != nil {
			return nil, err
		}
		rows = append(rows, TableRow{
			Dispersion:  k,
			Probability: res.Probability,
			Trials:      res.Trials,
			Extinct:     res.Extinct,
		})
	}
	return rows, nil
}
