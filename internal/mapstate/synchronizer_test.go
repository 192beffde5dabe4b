package mapstate

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"pinmap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedIDs(c *Collection) []uuid.UUID {
	ids := slices.Collect(c.IDs())
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})

	return ids
}

func TestSynchronizer_DefersUntilReady(t *testing.T) {
	c := NewCollection()
	c.Insert(newTestPin("a", time.Now()))

	sync := NewSynchronizer(nil)
	report := sync.Reconcile(c.All())
	assert.True(t, report.Deferred)
	assert.Equal(t, 0, sync.Len())

	surface := newFakeSurface(false)
	sync.Attach(surface)
	report = sync.Reconcile(c.All())
	assert.True(t, report.Deferred)
	assert.Zero(t, surface.placeCalls)

	require.NoError(t, surface.Init(entity.DefaultViewport))
	report = sync.Reconcile(c.All())
	assert.False(t, report.Deferred)
	assert.Equal(t, 1, report.Placed)
	assert.Len(t, surface.live, 1)
}

func TestSynchronizer_UnchangedMarkersAreKept(t *testing.T) {
	c := NewCollection()
	surface := newFakeSurface(true)
	sync := NewSynchronizer(surface)

	a := newTestPin("a", time.Now())
	b := newTestPin("b", time.Now())
	c.Insert(a)
	c.Insert(b)
	sync.Reconcile(c.All())
	require.Equal(t, 2, surface.placeCalls)

	report := sync.Reconcile(c.All())
	assert.Equal(t, SyncReport{Unchanged: 2}, report)
	assert.False(t, report.Changed())
	assert.Equal(t, 2, surface.placeCalls)

	c.Remove(a.ID)
	report = sync.Reconcile(c.All())
	assert.Equal(t, 1, report.Destroyed)
	assert.Equal(t, 1, report.Unchanged)
	assert.False(t, sync.Has(a.ID))
	assert.True(t, sync.Has(b.ID))
	assert.Len(t, surface.live, 1)
}

func TestSynchronizer_SharedCoordinateGetsOneMarkerPerPin(t *testing.T) {
	c := NewCollection()
	surface := newFakeSurface(true)
	sync := NewSynchronizer(surface)

	first := newTestPin("first", time.Now())
	second := newTestPin("second", time.Now())
	second.Coordinate = first.Coordinate
	c.Insert(first)
	c.Insert(second)

	report := sync.Reconcile(c.All())
	assert.Equal(t, 2, report.Placed)
	assert.Len(t, surface.live, 2)
	assert.ElementsMatch(t, sortedIDs(c), sync.MarkerIDs())
}

func TestSynchronizer_FailuresAreRetried(t *testing.T) {
	c := NewCollection()
	surface := newFakeSurface(true)
	sync := NewSynchronizer(surface)
	pin := newTestPin("a", time.Now())
	c.Insert(pin)

	surface.failPlace = true
	report := sync.Reconcile(c.All())
	assert.Equal(t, 1, report.PlaceFailed)
	assert.Equal(t, 0, report.Placed)
	assert.False(t, sync.Has(pin.ID))

	surface.failPlace = false
	report = sync.Reconcile(c.All())
	assert.Equal(t, 1, report.Placed)
	assert.True(t, sync.Has(pin.ID))

	c.Remove(pin.ID)
	surface.failDestroy = true
	report = sync.Reconcile(c.All())
	assert.Equal(t, 1, report.DestroyFailed)
	assert.True(t, sync.Has(pin.ID), "handle is kept until destroy succeeds")

	surface.failDestroy = false
	report = sync.Reconcile(c.All())
	assert.Equal(t, 1, report.Destroyed)
	assert.Equal(t, 0, sync.Len())
	assert.Empty(t, surface.live)
	assert.Empty(t, sync.MarkerIDs())
}

func TestSynchronizer_EmptyCollection(t *testing.T) {
	c := NewCollection()
	sync := NewSynchronizer(newFakeSurface(true))

	report := sync.Reconcile(c.All())

	assert.Equal(t, SyncReport{}, report)
	assert.ElementsMatch(t, sortedIDs(c), sync.MarkerIDs())
	assert.Empty(t, sync.MarkerIDs())
}

func TestSynchronizer_Clear(t *testing.T) {
	c := NewCollection()
	surface := newFakeSurface(true)
	sync := NewSynchronizer(surface)
	for i := 0; i < 3; i++ {
		c.Insert(newTestPin("p", time.Now()))
	}
	sync.Reconcile(c.All())

	report := sync.Clear()
	assert.Equal(t, 3, report.Destroyed)
	assert.Equal(t, 0, sync.Len())
	assert.Empty(t, surface.live)
}

// After every reconcile the marker set equals the collection key set,
// whatever sequence of inserts and removes came before.
func TestSynchronizer_MarkerSetTracksCollection(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))
	c := NewCollection()
	surface := newFakeSurface(true)
	sync := NewSynchronizer(surface)
	var known []entity.Pin

	for step := 0; step < 500; step++ {
		switch op := rng.IntN(4); {
		case op < 2 || len(known) == 0:
			pin := newTestPin("p", time.Now())
			known = append(known, pin)
			c.Insert(pin)
		case op == 2:
			c.Remove(known[rng.IntN(len(known))].ID)
		default:
			pin := known[rng.IntN(len(known))]
			pin.IsFavorite = !pin.IsFavorite
			c.Insert(pin)
		}

		if rng.IntN(3) == 0 {
			continue
		}
		sync.Reconcile(c.All())
		require.ElementsMatch(t, sortedIDs(c), sync.MarkerIDs(), "step %d", step)
		require.Len(t, surface.live, c.Len(), "step %d", step)
	}
}
