package entity

import (
	"math"
	"strings"
	"testing"
	"time"

	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{name: "north east corner", coord: Coordinate{Latitude: 90, Longitude: 180}, want: true},
		{name: "south west corner", coord: Coordinate{Latitude: -90, Longitude: -180}, want: true},
		{name: "tokyo", coord: Coordinate{Latitude: 35.6895, Longitude: 139.6917}, want: true},
		{name: "latitude above range", coord: Coordinate{Latitude: 91, Longitude: 0}, want: false},
		{name: "longitude below range", coord: Coordinate{Latitude: 0, Longitude: -180.0001}, want: false},
		{name: "nan latitude", coord: Coordinate{Latitude: math.NaN(), Longitude: 0}, want: false},
		{name: "infinite longitude", coord: Coordinate{Latitude: 0, Longitude: math.Inf(1)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.coord.IsValid())
		})
	}
}

func TestCoordinate_PointRoundTrip(t *testing.T) {
	c := Coordinate{Latitude: 35.6895, Longitude: 139.6917}

	p := c.Point()
	assert.Equal(t, 139.6917, p.Lon())
	assert.Equal(t, 35.6895, p.Lat())
	assert.Equal(t, c, CoordinateFromPoint(p))
}

func TestPinDraft_NormalizeAndValidate(t *testing.T) {
	draft := PinDraft{
		Title:       "  café  ",
		Description: " latte ",
		Coordinate:  Coordinate{Latitude: 35.6895, Longitude: 139.6917},
	}.Normalize()

	assert.Equal(t, "café", draft.Title)
	assert.Equal(t, "latte", draft.Description)
	assert.Equal(t, CategoryOther, draft.Category)
	assert.NoError(t, draft.Validate())
}

func TestPinDraft_Validate_CollectsFieldErrors(t *testing.T) {
	draft := PinDraft{
		Title:       "   ",
		Description: strings.Repeat("x", MaxDescriptionLength+1),
		Category:    Category("bar"),
		Coordinate:  Coordinate{Latitude: 91, Longitude: 0},
	}.Normalize()

	err := draft.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := verr.Fields()
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "description")
	assert.Contains(t, fields, "latitude")
	assert.Contains(t, fields, "category")
	assert.NotContains(t, fields, "longitude")
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("")
	assert.True(t, ok)
	assert.Equal(t, CategoryOther, c)

	c, ok = ParseCategory(" Restaurant ")
	assert.True(t, ok)
	assert.Equal(t, CategoryRestaurant, c)

	_, ok = ParseCategory("nightclub")
	assert.False(t, ok)
}

func TestCategory_Info(t *testing.T) {
	assert.Equal(t, "#ef4444", CategoryRestaurant.Info().Color)
	assert.Equal(t, CategoryOther, Category("unknown").Info().Value)
	assert.Len(t, Categories(), 5)
}

func TestPinPatch_Apply(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	pin := &Pin{
		ID:         uuid.New(),
		Title:      "office",
		Category:   CategoryOther,
		Coordinate: Coordinate{Latitude: 1, Longitude: 2},
		CreatedAt:  created,
		UpdatedAt:  created,
	}

	work := CategoryWork
	fav := true
	patch := PinPatch{Category: &work, IsFavorite: &fav}
	require.NoError(t, patch.Validate())

	now := created.Add(time.Hour)
	patch.Apply(pin, now)

	assert.Equal(t, CategoryWork, pin.Category)
	assert.True(t, pin.IsFavorite)
	assert.Equal(t, now, pin.UpdatedAt)
	assert.Equal(t, created, pin.CreatedAt)
	assert.Equal(t, Coordinate{Latitude: 1, Longitude: 2}, pin.Coordinate)
}

func TestPinPatch_ValidateRejectsUnknownCategory(t *testing.T) {
	bad := Category("bar")
	err := PinPatch{Category: &bad}.Validate()
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.True(t, PinPatch{}.IsEmpty())
}

func TestPin_Validate(t *testing.T) {
	draft := PinDraft{Title: "Shrine", Coordinate: Coordinate{Latitude: 35, Longitude: 135}}.Normalize()
	pin := NewPin(uuid.New(), draft, time.Now())
	require.NoError(t, pin.Validate())

	pin.OwnerID = uuid.Nil
	pin.Title = ""
	err := pin.Validate()

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields(), "owner_id")
	assert.Contains(t, verr.Fields(), "title")
}
