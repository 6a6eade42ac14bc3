package aggregate

import (
	"context"
	"fmt"
	"sync"

	"github.com/sundial/wellness/internal/types"
)

// Scorer is the interface every domain scorer implements. Scorers read
// the shared immutable snapshot and have no dependency on each other,
// so the engine runs them concurrently.
type Scorer interface {
	// Name returns the unique identifier for this scorer.
	Name() string

	// Domain returns the dimension this scorer covers.
	Domain() types.Domain

	// Score computes the domain result for one snapshot. It must be a
	// total function over well-formed input: given validated, non-empty
	// data it never fails for purely numeric reasons.
	Score(ctx context.Context, snap *types.Snapshot) (*types.DomainScoreResult, error)
}

// Registry holds the registered scorers, one per domain.
type Registry struct {
	mu      sync.RWMutex
	scorers map[types.Domain]Scorer
}

// NewRegistry creates an empty scorer registry.
func NewRegistry() *Registry {
	return &Registry{scorers: make(map[types.Domain]Scorer)}
}

// Register adds a scorer. Each domain may have exactly one.
func (r *Registry) Register(s Scorer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	domain := s.Domain()
	if !domain.IsValid() {
		return fmt.Errorf("scorer %q has invalid domain %q", s.Name(), domain)
	}
	if _, exists := r.scorers[domain]; exists {
		return fmt.Errorf("domain %q already registered", domain)
	}

	r.scorers[domain] = s
	return nil
}

// Get returns the scorer for a domain.
func (r *Registry) Get(domain types.Domain) (Scorer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.scorers[domain]
	return s, ok
}

// Ordered returns the registered scorers in the fixed evaluation order
// (fitness, sleep, mood). Ranking tie-breaks depend on this order, so
// it never follows map iteration.
func (r *Registry) Ordered() []Scorer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Scorer, 0, len(r.scorers))
	for _, d := range types.EvaluationOrder {
		if s, ok := r.scorers[d]; ok {
			out = append(out, s)
		}
	}
	return out
}
