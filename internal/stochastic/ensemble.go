package stochastic

import (
	"context"
	"sync"
)

// Ensemble runs a generator many times in parallel. Run i draws from its
// own source seeded with seedStart+i, so results are reproducible per seed
// regardless of scheduling.
type Ensemble struct {
	gen       Generator
	numRuns   int
	seedStart int64
}

func NewEnsemble(gen Generator, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{gen: gen, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, n int) ([]Series, error) {
	if e.numRuns <= 0 {
		return []Series{}, nil
	}
	results := make([]Series, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			src := NewSource(e.seedStart + int64(idx))
			results[idx] = e.gen.Generate(src, n)
		}(i)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
