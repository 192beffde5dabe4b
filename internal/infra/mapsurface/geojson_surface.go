// Package mapsurface provides a headless map surface that keeps its markers
// as GeoJSON features, for web map clients to fetch and draw.
package mapsurface

import (
	"sync"

	"pinmap/internal/domain/entity"
	"pinmap/internal/domain/service"
	"pinmap/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

var (
	ErrNotInitialized = errors.New("map surface is not initialized")
	ErrUnknownMarker  = errors.New("marker does not belong to this surface")
)

// marker is the handle returned by Place.
type marker struct {
	seq uint64
}

// GeoJSONSurface renders markers as point features. Each Place creates a new
// feature, so two pins at the same coordinate get two features.
type GeoJSONSurface struct {
	mu       sync.RWMutex
	ready    bool
	viewport entity.Viewport
	nextSeq  uint64
	features map[uint64]*geojson.Feature
	order    []uint64
}

// NewGeoJSONSurface creates a surface that is not ready until Init is called.
func NewGeoJSONSurface() *GeoJSONSurface {
	return &GeoJSONSurface{features: make(map[uint64]*geojson.Feature)}
}

func (s *GeoJSONSurface) Init(view entity.Viewport) error {
	if !view.Center.IsValid() {
		return errors.Errorf("invalid viewport center %v", view.Center)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewport = view
	s.ready = true

	return nil
}

func (s *GeoJSONSurface) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ready
}

func (s *GeoJSONSurface) Place(coord entity.Coordinate, content service.MarkerContent) (service.MarkerHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, errors.WithStack(ErrNotInitialized)
	}

	f := geojson.NewFeature(coord.Point())
	f.ID = content.PinID
	f.Properties["pin_id"] = content.PinID
	f.Properties["title"] = content.Title
	f.Properties["description"] = content.Description
	f.Properties["marker-color"] = content.Color
	f.Properties["icon"] = content.Icon

	s.nextSeq++
	s.features[s.nextSeq] = f
	s.order = append(s.order, s.nextSeq)

	return &marker{seq: s.nextSeq}, nil
}

func (s *GeoJSONSurface) Destroy(handle service.MarkerHandle) error {
	m, ok := handle.(*marker)
	if !ok || m == nil {
		return errors.WithStack(ErrUnknownMarker)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.features[m.seq]; !ok {
		return errors.WithStack(ErrUnknownMarker)
	}
	delete(s.features, m.seq)
	for i, seq := range s.order {
		if seq == m.seq {
			s.order = append(s.order[:i], s.order[i+1:]...)

			break
		}
	}

	return nil
}

// Viewport returns the viewport given to Init.
func (s *GeoJSONSurface) Viewport() entity.Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.viewport
}

// FeatureCollection returns a copy of the live markers in placement order.
func (s *GeoJSONSurface) FeatureCollection() *geojson.FeatureCollection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fc := geojson.NewFeatureCollection()
	for _, seq := range s.order {
		src := s.features[seq]
		f := geojson.NewFeature(src.Geometry)
		f.ID = src.ID
		for k, v := range src.Properties {
			f.Properties[k] = v
		}
		fc.Append(f)
	}

	return fc
}

// Len returns the number of live markers.
func (s *GeoJSONSurface) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.features)
}

// Factory creates GeoJSON surfaces for new sessions.
type Factory struct{}

// NewFactory is the fx constructor for Factory.
func NewFactory() service.MapSurfaceFactory {
	return Factory{}
}

func (Factory) NewSurface(uuid.UUID) service.MapSurface {
	return NewGeoJSONSurface()
}
