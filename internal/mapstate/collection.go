// Package mapstate holds the in-memory state of one map session: the pin
// collection, the marker synchronizer and the pin creation flow. Nothing in
// this package performs I/O or locking; the owning session serializes access.
package mapstate

import (
	"iter"
	"slices"

	"pinmap/internal/domain/entity"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SyncStatus tells whether the store has confirmed a pin.
type SyncStatus int

const (
	// StatusUnknown is returned for ids that are not in the collection.
	StatusUnknown SyncStatus = iota
	// StatusPending marks an optimistic insert awaiting store confirmation.
	StatusPending
	// StatusConfirmed marks a pin loaded from or echoed by the store.
	StatusConfirmed
)

func (s SyncStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

type collectionEntry struct {
	pin    entity.Pin
	status SyncStatus
}

// Collection is the single source of truth for which pins exist in a session.
// It is keyed by pin ID and preserves insertion order.
type Collection struct {
	entries *orderedmap.OrderedMap[uuid.UUID, collectionEntry]
	version uint64
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{
		entries: orderedmap.New[uuid.UUID, collectionEntry](),
	}
}

// ReplaceAll swaps the whole mapping for pins, in the given order. Later
// duplicates of an id overwrite earlier ones in place.
func (c *Collection) ReplaceAll(pins []*entity.Pin) {
	next := orderedmap.New[uuid.UUID, collectionEntry]()
	for _, pin := range pins {
		if pin == nil {
			continue
		}
		next.Set(pin.ID, collectionEntry{pin: *pin, status: StatusConfirmed})
	}

	c.entries = next
	c.version++
}

// Insert upserts a confirmed pin. An existing id keeps its position.
func (c *Collection) Insert(pin entity.Pin) {
	c.entries.Set(pin.ID, collectionEntry{pin: pin, status: StatusConfirmed})
	c.version++
}

// InsertPending upserts an optimistic pin that the store has not confirmed yet.
func (c *Collection) InsertPending(pin entity.Pin) {
	c.entries.Set(pin.ID, collectionEntry{pin: pin, status: StatusPending})
	c.version++
}

// Remove deletes id and reports whether it was present. Removing an absent id is a no-op.
func (c *Collection) Remove(id uuid.UUID) bool {
	if _, present := c.entries.Delete(id); !present {
		return false
	}
	c.version++

	return true
}

// Get returns the pin stored under id.
func (c *Collection) Get(id uuid.UUID) (entity.Pin, bool) {
	e, ok := c.entries.Get(id)

	return e.pin, ok
}

// Has reports whether id is present.
func (c *Collection) Has(id uuid.UUID) bool {
	_, ok := c.entries.Get(id)

	return ok
}

// Status returns the sync status of id.
func (c *Collection) Status(id uuid.UUID) SyncStatus {
	e, ok := c.entries.Get(id)
	if !ok {
		return StatusUnknown
	}

	return e.status
}

// Len returns the number of pins.
func (c *Collection) Len() int {
	return c.entries.Len()
}

// Version increases on every mutation; callers use it to detect change.
func (c *Collection) Version() uint64 {
	return c.version
}

// All yields the pins in insertion order. The sequence reads the live mapping
// each time it is ranged over; the collection must not be mutated mid-range.
func (c *Collection) All() iter.Seq[entity.Pin] {
	return func(yield func(entity.Pin) bool) {
		for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Value.pin) {
				return
			}
		}
	}
}

// IDs yields the pin ids in insertion order.
func (c *Collection) IDs() iter.Seq[uuid.UUID] {
	return func(yield func(uuid.UUID) bool) {
		for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key) {
				return
			}
		}
	}
}

// Recent returns the pins sorted by CreatedAt, newest first. Ties keep insertion order.
func (c *Collection) Recent() []entity.Pin {
	pins := slices.Collect(c.All())
	slices.SortStableFunc(pins, func(a, b entity.Pin) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return pins
}

// Counts returns the number of pins per category.
func (c *Collection) Counts() map[entity.Category]int {
	counts := make(map[entity.Category]int)
	for pin := range c.All() {
		counts[pin.Category]++
	}

	return counts
}
