package stochastic

import (
	"math/rand"
	"sync"
)

// UniformSource yields uniform variates in [0, 1).
type UniformSource interface {
	Float64() float64
}

// NewSource returns a deterministic source for seed. The returned source is
// not safe for concurrent use.
func NewSource(seed int64) UniformSource {
	return rand.New(rand.NewSource(seed))
}

// LockedSource serializes access to a shared stream so that concurrent
// callers still consume it in a well-defined order.
type LockedSource struct {
	mu  sync.Mutex
	src UniformSource
}

func NewLockedSource(src UniformSource) *LockedSource {
	return &LockedSource{src: src}
}

func (l *LockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}
