package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gridimpact-org/gridimpact/engine"
)

// ============================================================================
// PLAN STORE — explicit per-plan calculation cache
// ============================================================================
// One entry per submitted plan. The computed impact table is cached so that
// flipping a chart control re-aggregates without recomputation, and it is
// replaced wholesale by every calculate call — a control change can never
// observe a half-updated table. To keep that true across goroutines the
// store never leaks its internal *PlanState: readers get a snapshot copied
// under the lock, so a concurrent recalculation can never pair new Rows
// with an old Unit or Scenario. Plan and Rows slices are safe to share
// because they are replaced, never mutated, once stored. Nothing survives
// process restart; that is deliberate.
// ============================================================================

// PlanState is everything the server holds for one plan.
type PlanState struct {
	ID        string           `json:"id"`
	Plan      []engine.PlanRow `json:"plan"`
	CreatedAt time.Time        `json:"createdAt"`

	// Set by the latest calculation, nil/zero before the first one.
	Rows         []engine.ImpactRow `json:"-"`
	Category     string             `json:"category,omitempty"`
	Scenario     string             `json:"scenario,omitempty"`
	Unit         string             `json:"unit,omitempty"`
	CalculatedAt time.Time          `json:"calculatedAt,omitzero"`
}

// Calculated reports whether the plan has a cached impact table.
func (p *PlanState) Calculated() bool { return p.Rows != nil }

// Store is an in-memory plan registry, safe for concurrent handlers.
type Store struct {
	mu    sync.RWMutex
	plans map[string]*PlanState
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{plans: make(map[string]*PlanState)}
}

// Put registers a new plan and returns a snapshot of it. Submitting a
// plan invalidates nothing else; each plan owns its own cache.
func (s *Store) Put(plan []engine.PlanRow) *PlanState {
	state := &PlanState{
		ID:        uuid.NewString(),
		Plan:      plan,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.plans[state.ID] = state
	s.mu.Unlock()
	snap := *state
	return &snap
}

// Get returns a snapshot of the plan state for an id, or nil. The snapshot
// is taken under the lock: its fields are mutually consistent and safe to
// read while other goroutines recalculate.
func (s *Store) Get(id string) *PlanState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.plans[id]
	if !ok {
		return nil
	}
	snap := *state
	return &snap
}

// SetResult replaces a plan's cached calculation wholesale and returns a
// snapshot of the updated state.
func (s *Store) SetResult(id string, rows []engine.ImpactRow, category, scenario, unit string) *PlanState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.plans[id]
	if !ok {
		return nil
	}
	state.Rows = rows
	state.Category = category
	state.Scenario = scenario
	state.Unit = unit
	state.CalculatedAt = time.Now()
	snap := *state
	return &snap
}

// Delete removes a plan and its cache.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.plans, id)
	s.mu.Unlock()
}

// Len returns the number of stored plans.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.plans)
}
