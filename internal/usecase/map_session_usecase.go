package usecase

import (
	"context"

	"pinmap/internal/domain/entity"
	"pinmap/internal/mapstate"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// PinOrder selects how session pins are listed.
type PinOrder string

const (
	// PinOrderInsertion lists pins in the order they entered the collection.
	PinOrderInsertion PinOrder = "insertion"
	// PinOrderRecent lists pins by CreatedAt, newest first.
	PinOrderRecent PinOrder = "recent"
)

// DeleteOutcome tells what a delete did to the session.
type DeleteOutcome string

const (
	DeleteRemoved  DeleteOutcome = "removed"
	DeleteNotFound DeleteOutcome = "not_found"
)

// PinView is a pin as seen by the session, with its sync state.
type PinView struct {
	entity.Pin
	Status    string `json:"status"`
	HasMarker bool   `json:"has_marker"`
}

// SessionView describes a map session after Start.
type SessionView struct {
	OwnerID     uuid.UUID               `json:"owner_id"`
	Viewport    entity.Viewport         `json:"viewport"`
	Pins        []PinView               `json:"pins"`
	Counts      map[entity.Category]int `json:"counts"`
	Draft       mapstate.FlowSnapshot   `json:"draft"`
	MarkerCount int                     `json:"marker_count"`
	// LoadError is set when the initial load failed and the session started empty
	LoadError string `json:"load_error,omitempty"`
}

// ExportResult identifies a written snapshot.
type ExportResult struct {
	Key      string `json:"key"`
	PinCount int    `json:"pin_count"`
}

// MapSessionUsecase drives one interactive map session per signed-in user.
type MapSessionUsecase interface {
	// Start creates the session if needed and loads the owner's pins
	Start(ctx context.Context, ownerID uuid.UUID) (*SessionView, error)

	// End tears the session down at sign-out
	End(ctx context.Context, ownerID uuid.UUID) error

	// Click handles a map click: opens or moves the draft
	Click(ctx context.Context, ownerID uuid.UUID, coord entity.Coordinate) (*mapstate.FlowSnapshot, error)

	// EditDraft updates the open draft's text
	EditDraft(ctx context.Context, ownerID uuid.UUID, fields mapstate.DraftFields) (*mapstate.FlowSnapshot, error)

	// CancelDraft discards the open draft
	CancelDraft(ctx context.Context, ownerID uuid.UUID) (*mapstate.FlowSnapshot, error)

	// Draft returns the creation flow state
	Draft(ctx context.Context, ownerID uuid.UUID) (*mapstate.FlowSnapshot, error)

	// SubmitDraft persists the draft and returns the stored pin
	SubmitDraft(ctx context.Context, ownerID uuid.UUID) (*entity.Pin, error)

	// DeletePin deletes a pin from the store and the session
	DeletePin(ctx context.Context, ownerID, id uuid.UUID) (DeleteOutcome, error)

	// UpdatePin changes pin metadata
	UpdatePin(ctx context.Context, ownerID, id uuid.UUID, patch entity.PinPatch) (*entity.Pin, error)

	// Pins lists the session collection
	Pins(ctx context.Context, ownerID uuid.UUID, order PinOrder) ([]PinView, error)

	// Markers returns the rendered markers as GeoJSON
	Markers(ctx context.Context, ownerID uuid.UUID) (*geojson.FeatureCollection, error)

	// Export writes the session pins to the snapshot bucket
	Export(ctx context.Context, ownerID uuid.UUID) (*ExportResult, error)
}
