package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "pinmap/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	// MaxTitleLength bounds the trimmed title, in runes.
	MaxTitleLength = 100
	// MaxDescriptionLength bounds the trimmed description, in runes.
	MaxDescriptionLength = 500
)

// Pin is a user-created, geolocated note.
// ID, OwnerID, Coordinate and CreatedAt never change after creation.
type Pin struct {
	ID          uuid.UUID  `json:"id"`          // Generated client-side or assigned by the store.
	OwnerID     uuid.UUID  `json:"owner_id"`    // The authenticated user who created the pin.
	Title       string     `json:"title"`       // Non-empty after trimming.
	Description string     `json:"description"` // Optional free text.
	Coordinate  Coordinate `json:"coordinate"`  // Always valid.
	Category    Category   `json:"category"`    // Mutable metadata.
	IsFavorite  bool       `json:"is_favorite"` // Mutable metadata.
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PinDraft is an uncommitted pin being composed by the user.
type PinDraft struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Coordinate  Coordinate `json:"coordinate"`
}

// Normalize trims free text and defaults the category.
func (d PinDraft) Normalize() PinDraft {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	if d.Category == "" {
		d.Category = CategoryOther
	}

	return d
}

// Validate checks a normalized draft and returns a *ValidationError listing
// every rejected field, or nil.
func (d PinDraft) Validate() error {
	verr := domainerrors.NewValidationError()

	switch n := utf8.RuneCountInString(d.Title); {
	case n == 0:
		verr.Add("title", "title is required")
	case n > MaxTitleLength:
		verr.Add("title", "title is too long")
	}

	if utf8.RuneCountInString(d.Description) > MaxDescriptionLength {
		verr.Add("description", "description is too long")
	}

	if !ValidLatitude(d.Coordinate.Latitude) {
		verr.Add("latitude", "latitude must be between -90 and 90")
	}
	if !ValidLongitude(d.Coordinate.Longitude) {
		verr.Add("longitude", "longitude must be between -180 and 180")
	}

	if !d.Category.IsValid() {
		verr.Add("category", "unknown category")
	}

	return verr.OrNil()
}

// NewPin builds a pin from a validated draft with a fresh client-side ID.
func NewPin(ownerID uuid.UUID, d PinDraft, now time.Time) *Pin {
	return &Pin{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       d.Title,
		Description: d.Description,
		Coordinate:  d.Coordinate,
		Category:    d.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Draft returns the user-supplied part of the pin.
func (p Pin) Draft() PinDraft {
	return PinDraft{
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Coordinate:  p.Coordinate,
	}
}

// Validate checks a pin before it is persisted.
func (p Pin) Validate() error {
	err := p.Draft().Validate()
	if p.ID != uuid.Nil && p.OwnerID != uuid.Nil {
		return err
	}

	verr, ok := err.(*domainerrors.ValidationError)
	if !ok {
		verr = domainerrors.NewValidationError()
	}
	if p.ID == uuid.Nil {
		verr.Add("id", "id is required")
	}
	if p.OwnerID == uuid.Nil {
		verr.Add("owner_id", "owner is required")
	}

	return verr
}

// PinPatch carries the metadata a pin may change after creation.
type PinPatch struct {
	Category   *Category `json:"category,omitempty"`
	IsFavorite *bool     `json:"is_favorite,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p PinPatch) IsEmpty() bool {
	return p.Category == nil && p.IsFavorite == nil
}

// Validate rejects unknown categories.
func (p PinPatch) Validate() error {
	if p.Category != nil && !p.Category.IsValid() {
		return domainerrors.NewValidationError().Add("category", "unknown category")
	}

	return nil
}

// Apply copies the patch onto pin and bumps UpdatedAt.
func (p PinPatch) Apply(pin *Pin, now time.Time) {
	if p.Category != nil {
		pin.Category = *p.Category
	}
	if p.IsFavorite != nil {
		pin.IsFavorite = *p.IsFavorite
	}
	pin.UpdatedAt = now
}
