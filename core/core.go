// Package core implements the design scoring pipeline: pixel-level
// analyzers, feature vector assembly, corpus similarity search, rule-based
// score adjustment and explanation generation.
package core

import (
	"fmt"

	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/schema"
)

// DefaultFetchLimit bounds how many corpus candidates one prediction pulls
// from the store.
const DefaultFetchLimit = 500

// Engine runs the scoring pipeline. It is safe for concurrent use: the
// tunables and detector are fixed at construction and every analysis works
// on its own immutable pixel buffer.
type Engine struct {
	tun        schema.Tunables
	detector   ElementDetector
	store      contract.CorpusStore
	fetchLimit int
}

// NewEngine builds an engine with the given tunables and detector detail
// level. The store may be nil, in which case every prediction uses the
// empty-corpus baseline.
func NewEngine(tun schema.Tunables, level schema.DetailLevel, store contract.CorpusStore) (*Engine, error) {
	detector, err := NewElementDetector(level, tun)
	if err != nil {
		return nil, fmt.Errorf("cannot build element detector: %w", err)
	}
	return &Engine{
		tun:        tun,
		detector:   detector,
		store:      store,
		fetchLimit: DefaultFetchLimit,
	}, nil
}

// SetFetchLimit overrides how many corpus candidates one prediction pulls.
// Call before the first Analyze; non-positive limits are ignored.
func (e *Engine) SetFetchLimit(limit int) {
	if limit > 0 {
		e.fetchLimit = limit
	}
}

// Tunables returns the thresholds this engine runs with.
func (e *Engine) Tunables() schema.Tunables {
	return e.tun
}

// DetailLevel returns the configured detector detail level.
func (e *Engine) DetailLevel() schema.DetailLevel {
	return e.detector.Level()
}
