package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridimpact-org/gridimpact/engine"
	"github.com/gridimpact-org/gridimpact/helpers"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()
	state := store.Put(helpers.DefaultPlan())
	require.NotEmpty(t, state.ID)
	assert.False(t, state.Calculated())
	assert.Equal(t, 1, store.Len())

	rows := engine.Calculate(state.Plan, nil)
	updated := store.SetResult(state.ID, rows, "Climate Change", "1.5 °C", "kg CO₂-eq")
	require.NotNil(t, updated)
	assert.True(t, updated.Calculated())
	assert.False(t, updated.CalculatedAt.IsZero())

	// A recalculation replaces the cache wholesale.
	fewer := engine.Calculate(state.Plan[:5], nil)
	updated = store.SetResult(state.ID, fewer, "Climate Change", "2 °C", "kg CO₂-eq")
	require.NotNil(t, updated)
	assert.Len(t, updated.Rows, 5)
	assert.Equal(t, "2 °C", updated.Scenario)

	store.Delete(state.ID)
	assert.Nil(t, store.Get(state.ID))
	assert.Zero(t, store.Len())
}

func TestStoreSetResultUnknownPlan(t *testing.T) {
	store := NewStore()
	assert.Nil(t, store.SetResult("missing", nil, "", "", ""))
}

func TestStoreSnapshotsAreIsolated(t *testing.T) {
	store := NewStore()
	state := store.Put(helpers.DefaultPlan())

	before := store.Get(state.ID)
	store.SetResult(state.ID, engine.Calculate(state.Plan, nil), "Climate Change", "1.5 °C", "kg CO₂-eq")

	// A snapshot handed out earlier never observes a later mutation.
	assert.False(t, before.Calculated())
	assert.Empty(t, before.Scenario)
	assert.True(t, store.Get(state.ID).Calculated())
}

func TestStoreConcurrentRecalculationConsistency(t *testing.T) {
	store := NewStore()
	plan := helpers.DefaultPlan()
	state := store.Put(plan)

	full := engine.Calculate(plan, nil)
	partial := engine.Calculate(plan[:5], nil)

	// Writers alternate between two (rows, scenario) pairings; every
	// reader snapshot must see one pairing or the other, never a mix of
	// new rows with an old scenario label.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			if i%2 == 0 {
				store.SetResult(state.ID, full, "Climate Change", "1.5 °C", "kg CO₂-eq")
			} else {
				store.SetResult(state.ID, partial, "Climate Change", "3.5 °C", "kg CO₂-eq")
			}
		}
	}()

	for i := 0; i < 500; i++ {
		snap := store.Get(state.ID)
		require.NotNil(t, snap)
		if !snap.Calculated() {
			continue
		}
		switch len(snap.Rows) {
		case len(full):
			assert.Equal(t, "1.5 °C", snap.Scenario)
		case len(partial):
			assert.Equal(t, "3.5 °C", snap.Scenario)
		default:
			t.Fatalf("snapshot saw %d rows, want %d or %d", len(snap.Rows), len(full), len(partial))
		}
	}
	<-done
}
