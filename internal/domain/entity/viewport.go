package entity

// Viewport is the initial camera of a map surface.
type Viewport struct {
	Center Coordinate `json:"center"`
	Zoom   float64    `json:"zoom"`
}

// DefaultViewport centres on Tokyo.
var DefaultViewport = Viewport{
	Center: Coordinate{Latitude: 35.6895, Longitude: 139.6917},
	Zoom:   12,
}
