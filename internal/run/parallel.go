package run

import (
	"context"
	"sync"
)

// SceneFactory builds a fresh, fully populated runner for one seed.
// Ensemble runs call it once per member, so each run owns its particles
// and world and nothing is shared across goroutines.
type SceneFactory func(seed int64) (*Runner, error)

// Ensemble runs the same scenario across many seeds in parallel. Safe
// because each member gets its own simulator from the factory.
type Ensemble struct {
	factory   SceneFactory
	numRuns   int
	seedStart int64
}

func NewEnsemble(factory SceneFactory, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{factory: factory, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			r, err := e.factory(cfgCopy.Seed)
			if err != nil {
				errs[idx] = err
				return
			}

			results[idx], errs[idx] = r.Run(ctx, cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
