package store

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/service"
	"pinmap/internal/errors"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

const (
	pinsTable            = "pins"
	returnRepresentation = "representation"

	// lateWriteTimeout bounds the cleanup of an insert that landed after its caller gave up.
	lateWriteTimeout = 10 * time.Second
)

// pinRow is the JSON shape of a row in the Supabase pins table.
type pinRow struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Category    string    `json:"category"`
	Color       string    `json:"color"`
	IsFavorite  bool      `json:"is_favorite"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// metaUpdate is the body of a metadata PATCH.
type metaUpdate struct {
	Category   string    `json:"category"`
	Color      string    `json:"color"`
	IsFavorite bool      `json:"is_favorite"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// supabaseStore talks to the pins table through PostgREST.
type supabaseStore struct {
	client *supabase.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewSupabaseStore creates a PinStore backed by a Supabase project.
func NewSupabaseStore(client *supabase.Client, logger *slog.Logger) service.PinStore {
	return &supabaseStore{client: client, logger: logger, now: time.Now}
}

func (s *supabaseStore) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pin, error) {
	var rows []pinRow
	err := runWithContext(ctx, func() error {
		_, err := s.client.From(pinsTable).
			Select("*", "", false).
			Eq("owner_id", ownerID.String()).
			Order("created_at", &postgrest.OrderOpts{Ascending: false}).
			ExecuteTo(&rows)

		return err
	}, nil)
	if err != nil {
		return nil, mapPostgrestError("list", err)
	}

	pins := make([]*entity.Pin, 0, len(rows))
	for i := range rows {
		pins = append(pins, rows[i].toDomain())
	}

	return pins, nil
}

func (s *supabaseStore) Create(ctx context.Context, pin *entity.Pin) (*entity.Pin, error) {
	if pin == nil {
		return nil, domainerrors.NewValidationError().Add("pin", "pin is required")
	}
	if err := pin.Validate(); err != nil {
		return nil, err
	}

	var rows []pinRow
	err := runWithContext(ctx, func() error {
		_, err := s.client.From(pinsTable).
			Insert(fromDomain(pin), false, "", returnRepresentation, "").
			ExecuteTo(&rows)

		return err
	}, func(lateErr error) {
		if lateErr == nil {
			s.discardLateInsert(pin)
		}
	})
	if err != nil {
		return nil, mapPostgrestError("create", err)
	}
	if len(rows) == 0 {
		return nil, domainerrors.NewStoreError("create", errors.New("insert returned no row"))
	}

	return rows[0].toDomain(), nil
}

func (s *supabaseStore) Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.PinPatch) (*entity.Pin, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	current, err := s.find(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return current, nil
	}
	patch.Apply(current, s.now())

	body := metaUpdate{
		Category:   current.Category.String(),
		Color:      current.Category.Info().Color,
		IsFavorite: current.IsFavorite,
		UpdatedAt:  current.UpdatedAt,
	}

	var rows []pinRow
	err = runWithContext(ctx, func() error {
		_, err := s.client.From(pinsTable).
			Update(body, returnRepresentation, "").
			Eq("id", id.String()).
			Eq("owner_id", ownerID.String()).
			ExecuteTo(&rows)

		return err
	}, nil)
	if err != nil {
		return nil, mapPostgrestError("update", err)
	}
	if len(rows) == 0 {
		return nil, errors.WithStack(domainerrors.ErrPinNotFound)
	}

	return rows[0].toDomain(), nil
}

func (s *supabaseStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	var rows []pinRow
	err := runWithContext(ctx, func() error {
		_, err := s.client.From(pinsTable).
			Delete(returnRepresentation, "").
			Eq("id", id.String()).
			Eq("owner_id", ownerID.String()).
			ExecuteTo(&rows)

		return err
	}, nil)
	if err != nil {
		return mapPostgrestError("delete", err)
	}
	if len(rows) == 0 {
		return errors.WithStack(domainerrors.ErrPinNotFound)
	}

	return nil
}

func (s *supabaseStore) find(ctx context.Context, ownerID, id uuid.UUID) (*entity.Pin, error) {
	var rows []pinRow
	err := runWithContext(ctx, func() error {
		_, err := s.client.From(pinsTable).
			Select("*", "", false).
			Eq("id", id.String()).
			Eq("owner_id", ownerID.String()).
			ExecuteTo(&rows)

		return err
	}, nil)
	if err != nil {
		return nil, mapPostgrestError("update", err)
	}
	if len(rows) == 0 {
		return nil, errors.WithStack(domainerrors.ErrPinNotFound)
	}

	return rows[0].toDomain(), nil
}

// discardLateInsert deletes a row whose insert completed after Create had
// already reported failure, so the caller's retraction holds on the server.
func (s *supabaseStore) discardLateInsert(pin *entity.Pin) {
	ctx, cancel := context.WithTimeout(context.Background(), lateWriteTimeout)
	defer cancel()

	logger := s.logger.With(slog.Any("pin_id", pin.ID), slog.Any("owner_id", pin.OwnerID))
	if err := s.Delete(ctx, pin.OwnerID, pin.ID); err != nil && !errors.Is(err, domainerrors.ErrPinNotFound) {
		logger.Error("Failed to remove pin inserted after create timed out", slog.Any("error", err))

		return
	}
	logger.Warn("Removed pin inserted after create timed out")
}

// runWithContext runs a call that does not accept a context and returns early
// when ctx is done. An abandoned call finishes in the background; its result
// goes to late when late is not nil.
func runWithContext(ctx context.Context, call func() error, late func(error)) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	done := make(chan error, 1)
	abandoned := make(chan struct{})
	consumed := make(chan struct{})
	go func() {
		err := call()
		done <- err
		select {
		case <-abandoned:
			if late != nil {
				late(err)
			}
		case <-consumed:
		}
	}()

	select {
	case err := <-done:
		close(consumed)

		return err
	case <-ctx.Done():
		close(abandoned)

		return errors.WithStack(ctx.Err())
	}
}

// PostgREST reports database errors as "(<sqlstate>) <message>".
var inputSQLStates = []string{
	"(23502)", // not_null_violation
	"(23514)", // check_violation
	"(22P02)", // invalid_text_representation
	"(22003)", // numeric_value_out_of_range
}

func mapPostgrestError(op string, err error) error {
	msg := err.Error()
	if strings.Contains(msg, "(23505)") {
		return domainerrors.NewValidationError().Add("id", "pin already exists")
	}
	for _, code := range inputSQLStates {
		if strings.Contains(msg, code) {
			return domainerrors.NewValidationError().Add("pin", "rejected by the store")
		}
	}

	return domainerrors.NewStoreError(op, err)
}

func (r pinRow) toDomain() *entity.Pin {
	category, ok := entity.ParseCategory(r.Category)
	if !ok {
		category = entity.CategoryOther
	}

	return &entity.Pin{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		Description: r.Description,
		Coordinate:  entity.Coordinate{Latitude: r.Latitude, Longitude: r.Longitude},
		Category:    category,
		IsFavorite:  r.IsFavorite,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func fromDomain(pin *entity.Pin) pinRow {
	return pinRow{
		ID:          pin.ID,
		OwnerID:     pin.OwnerID,
		Title:       pin.Title,
		Description: pin.Description,
		Latitude:    pin.Coordinate.Latitude,
		Longitude:   pin.Coordinate.Longitude,
		Category:    pin.Category.String(),
		Color:       pin.Category.Info().Color,
		IsFavorite:  pin.IsFavorite,
		CreatedAt:   pin.CreatedAt,
		UpdatedAt:   pin.UpdatedAt,
	}
}
