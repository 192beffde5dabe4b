package service

import (
	"pinmap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// MarkerHandle is an opaque reference to a rendered marker. Only the surface
// that returned it can interpret it.
type MarkerHandle any

// MarkerContent is the label surface attached to a marker.
type MarkerContent struct {
	PinID       string
	Title       string
	Description string
	Color       string
	Icon        string
}

// MarkerContentFor derives the label surface of a pin.
func MarkerContentFor(pin entity.Pin) MarkerContent {
	info := pin.Category.Info()

	return MarkerContent{
		PinID:       pin.ID.String(),
		Title:       pin.Title,
		Description: pin.Description,
		Color:       info.Color,
		Icon:        info.Icon,
	}
}

// MapSurface is the map rendering capability consumed by the marker synchronizer.
type MapSurface interface {
	// Init configures the surface with its initial viewport. The surface is
	// not ready until Init has been called.
	Init(view entity.Viewport) error

	// Ready reports whether markers can be placed.
	Ready() bool

	// Place renders a marker at coord and returns its handle.
	Place(coord entity.Coordinate, content MarkerContent) (MarkerHandle, error)

	// Destroy removes a marker previously returned by Place.
	Destroy(handle MarkerHandle) error
}

// MapSurfaceFactory creates one surface per map session.
type MapSurfaceFactory interface {
	NewSurface(ownerID uuid.UUID) MapSurface
}

// FeatureSource is implemented by surfaces that can render their markers as GeoJSON.
type FeatureSource interface {
	FeatureCollection() *geojson.FeatureCollection
}
