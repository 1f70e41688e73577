package branching

import (
	"context"
	"math/rand/v2"
	"sync"
)

// stream builds the deterministic PCG source for one worker. The master
// seed selects the estimator's randomness, the worker index selects the
// stream; distinct indices give statistically independent sequences.
func (p *Process) stream(worker int) rand.Source {
	return rand.NewPCG(p.seed, uint64(worker))
}

// Estimate runs nTrials independent realizations and aggregates their
// outcomes into a Result.
//
// Determinism: each call rebuilds its streams from the master seed, so
// repeated calls on the same Process — or on any Process constructed with
// identical parameters, seed and worker count — return identical Results.
//
// Cancellation is cooperative: ctx is checked between trials, never
// mid-trial. On cancellation or ErrNumericOverflow no partial Result is
// returned. A nil ctx is treated as context.Background().
func (p *Process) Estimate(ctx context.Context, nTrials int) (Result, error) {
	if nTrials <= 0 {
		return Result{}, ErrInvalidTrialCount
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if p.workers == 1 {
		res, err := p.runBlock(ctx, p.stream(0), nTrials)
		if err != nil {
			return Result{}, err
		}
		res.Probability = float64(res.Extinct) / float64(res.Trials)
		return res, nil
	}
	return p.estimateParallel(ctx, nTrials)
}

// EstimateExtinctionProbability is the thin convenience surface over
// Estimate, returning only the empirical extinction probability in [0, 1].
func (p *Process) EstimateExtinctionProbability(ctx context.Context, nTrials int) (float64, error) {
	res, err := p.Estimate(ctx, nTrials)
	if err != nil {
		return 0, err
	}
	return res.Probability, nil
}

// runBlock executes n sequential trials against one exclusively owned
// source and tallies outcomes.
func (p *Process) runBlock(ctx context.Context, src rand.Source, n int) (Result, error) {
	var res Result
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		out, err := p.runTrial(src)
		if err != nil {
			return Result{}, err
		}
		switch out {
		case Extinct:
			res.Extinct++
		case Survived:
			res.Survived++
		case Exploded:
			res.Exploded++
		}
	}
	res.Trials = n
	return res, nil
}

// estimateParallel splits the trial budget into one contiguous block per
// worker. Workers never share a source: worker i owns stream(i) for the
// whole call, which keeps the aggregate reproducible for a fixed
// (seed, workers) pair.
func (p *Process) estimateParallel(ctx context.Context, nTrials int) (Result, error) {
	var (
		wg       sync.WaitGroup
		partials = make([]Result, p.workers)
		errs     = make([]error, p.workers)
	)

	base, rem := nTrials/p.workers, nTrials%p.workers
	for w := 0; w < p.workers; w++ {
		n := base
		if w < rem {
			n++
		}
		if n == 0 {
			continue
		}
		wg.Add(1)
		go func(w, n int) {
			defer wg.Done()
			partials[w], errs[w] = p.runBlock(ctx, p.stream(w), n)
		}(w, n)
	}
	wg.Wait()

	var res Result
	for w := 0; w < p.workers; w++ {
		if errs[w] != nil {
			return Result{}, errs[w]
		}
		res.merge(partials[w])
	}
	res.Probability = float64(res.Extinct) / float64(res.Trials)
	return res, nil
}
