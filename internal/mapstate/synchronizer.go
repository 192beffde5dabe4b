package mapstate

import (
	"iter"
	"slices"

	"pinmap/internal/domain/entity"
	"pinmap/internal/domain/service"

	"github.com/google/uuid"
)

// SyncReport summarizes one reconciliation pass.
type SyncReport struct {
	Deferred      bool // The surface was missing or not ready; nothing was touched.
	Placed        int
	Destroyed     int
	Unchanged     int
	PlaceFailed   int
	DestroyFailed int
}

// Changed reports whether the pass created or destroyed any marker.
func (r SyncReport) Changed() bool {
	return r.Placed > 0 || r.Destroyed > 0
}

// Synchronizer keeps exactly one rendered marker per pin. Its marker mapping
// is derived from the collection and never drives it.
type Synchronizer struct {
	surface service.MapSurface
	markers map[uuid.UUID]service.MarkerHandle
}

// NewSynchronizer binds a synchronizer to surface. surface may be nil while
// the map is still being created; Reconcile defers until it is set and ready.
func NewSynchronizer(surface service.MapSurface) *Synchronizer {
	return &Synchronizer{
		surface: surface,
		markers: make(map[uuid.UUID]service.MarkerHandle),
	}
}

// Attach sets the surface once it exists.
func (s *Synchronizer) Attach(surface service.MapSurface) {
	s.surface = surface
}

func (s *Synchronizer) ready() bool {
	return s.surface != nil && s.surface.Ready()
}

// Reconcile diffs the marker mapping against pins by id: markers whose id
// vanished are destroyed, ids without a marker get one, and markers present
// on both sides are left alone. Pins sharing a coordinate still get one
// marker each.
func (s *Synchronizer) Reconcile(pins iter.Seq[entity.Pin]) SyncReport {
	if !s.ready() {
		return SyncReport{Deferred: true}
	}

	var report SyncReport

	current := make(map[uuid.UUID]entity.Pin)
	order := make([]uuid.UUID, 0)
	for pin := range pins {
		if _, seen := current[pin.ID]; !seen {
			order = append(order, pin.ID)
		}
		current[pin.ID] = pin
	}

	for id, handle := range s.markers {
		if _, keep := current[id]; keep {
			continue
		}
		if err := s.surface.Destroy(handle); err != nil {
			report.DestroyFailed++

			continue
		}
		delete(s.markers, id)
		report.Destroyed++
	}

	for _, id := range order {
		if _, exists := s.markers[id]; exists {
			report.Unchanged++

			continue
		}
		pin := current[id]
		handle, err := s.surface.Place(pin.Coordinate, service.MarkerContentFor(pin))
		if err != nil {
			report.PlaceFailed++

			continue
		}
		s.markers[id] = handle
	}
	report.Placed = len(order) - report.Unchanged - report.PlaceFailed

	return report
}

// Clear destroys every marker. Used when the session is torn down.
func (s *Synchronizer) Clear() SyncReport {
	return s.Reconcile(func(func(entity.Pin) bool) {})
}

// MarkerIDs returns the ids that currently have a marker, sorted for stable output.
func (s *Synchronizer) MarkerIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.markers))
	for id := range s.markers {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})

	return ids
}

// Len returns the number of rendered markers.
func (s *Synchronizer) Len() int {
	return len(s.markers)
}

// Has reports whether id has a rendered marker.
func (s *Synchronizer) Has(id uuid.UUID) bool {
	_, ok := s.markers[id]

	return ok
}
