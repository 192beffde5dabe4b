package mapstate

import (
	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/errors"
)

// FlowState is the state of the pin creation flow.
type FlowState int

const (
	FlowIdle FlowState = iota
	FlowDraftOpen
	FlowSubmitting
)

func (s FlowState) String() string {
	switch s {
	case FlowDraftOpen:
		return "draft_open"
	case FlowSubmitting:
		return "submitting"
	default:
		return "idle"
	}
}

// DraftFields are the user-editable parts of a draft. Nil fields are left as they are.
type DraftFields struct {
	Title       *string
	Description *string
	Category    *entity.Category
}

// FlowSnapshot is a read-only view of the flow for rendering the draft form.
type FlowSnapshot struct {
	State       FlowState         `json:"-"`
	StateName   string            `json:"state"`
	Draft       *entity.PinDraft  `json:"draft,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	LastError   string            `json:"last_error,omitempty"`
}

// CreationFlow drives Idle -> DraftOpen -> Submitting -> Idle. At most one
// draft exists at a time.
type CreationFlow struct {
	state       FlowState
	draft       entity.PinDraft
	fieldErrors map[string]string
	lastError   string
}

// NewCreationFlow creates an idle flow.
func NewCreationFlow() *CreationFlow {
	return &CreationFlow{}
}

// State returns the current state.
func (f *CreationFlow) State() FlowState {
	return f.state
}

// Open handles a map click. In Idle it opens a draft at coord. With a draft
// already open it moves the draft to coord and keeps the entered text. While
// submitting the click is ignored and ErrSubmissionInFlight is returned.
func (f *CreationFlow) Open(coord entity.Coordinate) error {
	if !coord.IsValid() {
		verr := domainerrors.NewValidationError()
		if !entity.ValidLatitude(coord.Latitude) {
			verr.Add("latitude", "latitude must be between -90 and 90")
		}
		if !entity.ValidLongitude(coord.Longitude) {
			verr.Add("longitude", "longitude must be between -180 and 180")
		}

		return verr
	}

	switch f.state {
	case FlowSubmitting:
		return errors.WithStack(domainerrors.ErrSubmissionInFlight)
	case FlowDraftOpen:
		f.draft.Coordinate = coord
	default:
		f.draft = entity.PinDraft{Coordinate: coord, Category: entity.CategoryOther}
		f.state = FlowDraftOpen
	}
	f.fieldErrors = nil
	f.lastError = ""

	return nil
}

// Edit updates the draft text while a draft is open.
func (f *CreationFlow) Edit(fields DraftFields) error {
	switch f.state {
	case FlowSubmitting:
		return errors.WithStack(domainerrors.ErrSubmissionInFlight)
	case FlowIdle:
		return errors.WithStack(domainerrors.ErrDraftNotOpen)
	}

	if fields.Title != nil {
		f.draft.Title = *fields.Title
	}
	if fields.Description != nil {
		f.draft.Description = *fields.Description
	}
	if fields.Category != nil {
		f.draft.Category = *fields.Category
	}

	return nil
}

// BeginSubmit validates the open draft. On success the flow moves to
// Submitting and the normalized draft is returned; on a validation failure
// the draft stays open with its field errors recorded.
func (f *CreationFlow) BeginSubmit() (entity.PinDraft, error) {
	switch f.state {
	case FlowSubmitting:
		return entity.PinDraft{}, errors.WithStack(domainerrors.ErrSubmissionInFlight)
	case FlowIdle:
		return entity.PinDraft{}, errors.WithStack(domainerrors.ErrDraftNotOpen)
	}

	draft := f.draft.Normalize()
	if err := draft.Validate(); err != nil {
		var verr *domainerrors.ValidationError
		if errors.As(err, &verr) {
			f.fieldErrors = verr.Fields()
		}
		f.lastError = ""

		return entity.PinDraft{}, err
	}

	f.draft = draft
	f.fieldErrors = nil
	f.lastError = ""
	f.state = FlowSubmitting

	return draft, nil
}

// Complete finishes a successful submission and discards the draft.
func (f *CreationFlow) Complete() {
	if f.state != FlowSubmitting {
		return
	}
	f.reset()
}

// Fail returns a failed submission to DraftOpen, keeping the draft so the
// user can retry without re-entering it.
func (f *CreationFlow) Fail(cause error) {
	if f.state != FlowSubmitting {
		return
	}
	f.state = FlowDraftOpen
	if cause != nil {
		f.lastError = userMessage(cause)
	}
}

// Cancel discards an open draft. It is a no-op when idle and refused while submitting.
func (f *CreationFlow) Cancel() error {
	switch f.state {
	case FlowSubmitting:
		return errors.WithStack(domainerrors.ErrSubmissionInFlight)
	case FlowDraftOpen:
		f.reset()
	}

	return nil
}

// Reset unconditionally returns to Idle. Used at session teardown.
func (f *CreationFlow) Reset() {
	f.reset()
}

// Snapshot returns a copy of the flow for rendering.
func (f *CreationFlow) Snapshot() FlowSnapshot {
	snap := FlowSnapshot{
		State:     f.state,
		StateName: f.state.String(),
		LastError: f.lastError,
	}
	if f.state != FlowIdle {
		draft := f.draft
		snap.Draft = &draft
	}
	if len(f.fieldErrors) > 0 {
		snap.FieldErrors = make(map[string]string, len(f.fieldErrors))
		for k, v := range f.fieldErrors {
			snap.FieldErrors[k] = v
		}
	}

	return snap
}

func (f *CreationFlow) reset() {
	f.state = FlowIdle
	f.draft = entity.PinDraft{}
	f.fieldErrors = nil
	f.lastError = ""
}

func userMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return domainerrors.ErrInternalError.Message()
}
