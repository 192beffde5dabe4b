package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"pinmap/config"
	deliverycontext "pinmap/internal/delivery/context"
	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/service"
	"pinmap/internal/infra/metrics"
	"pinmap/internal/mapstate"
	"pinmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MapSessionParams defines the dependencies of the map session service.
type MapSessionParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Store    service.PinStore
	Surfaces service.MapSurfaceFactory
	Exporter service.SnapshotExporter
	Metrics  *metrics.Metrics
}

// session is the state of one signed-in user's map. mu serializes turns;
// store calls run between turns with mu released.
type session struct {
	mu sync.Mutex

	ownerID    uuid.UUID
	viewport   entity.Viewport
	surface    service.MapSurface
	collection *mapstate.Collection
	markers    *mapstate.Synchronizer
	flow       *mapstate.CreationFlow

	// epoch changes when the session ends; results from an older epoch are dropped.
	epoch  uint64
	closed bool
	// loadSeq identifies the latest List call; older load results are dropped.
	loadSeq uint64

	// changeSeq numbers confirmed writes so a load can tell which
	// of them happened after its List call began.
	changeSeq   uint64
	confirmedAt map[uuid.UUID]uint64
	deletedAt   map[uuid.UUID]uint64
}

// mapSessionService implements the MapSessionUsecase interface.
type mapSessionService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session

	store        service.PinStore
	surfaces     service.MapSurfaceFactory
	exporter     service.SnapshotExporter
	metrics      *metrics.Metrics
	logger       *slog.Logger
	viewport     entity.Viewport
	storeTimeout time.Duration
	now          func() time.Time
}

// NewMapSessionService is the constructor for mapSessionService.
func NewMapSessionService(params MapSessionParams) usecase.MapSessionUsecase {
	viewport := entity.DefaultViewport
	if m := params.Config.Map; m != nil {
		viewport = entity.Viewport{
			Center: entity.Coordinate{Latitude: m.Latitude, Longitude: m.Longitude},
			Zoom:   m.Zoom,
		}
	}

	timeout := time.Duration(0)
	if params.Config.Store != nil {
		timeout = params.Config.Store.Timeout
	}

	return &mapSessionService{
		sessions:     make(map[uuid.UUID]*session),
		store:        params.Store,
		surfaces:     params.Surfaces,
		exporter:     params.Exporter,
		metrics:      params.Metrics,
		logger:       params.Logger,
		viewport:     viewport,
		storeTimeout: timeout,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mapSessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// storeContext detaches a store call from the request so a client
// disconnect cannot abandon a write half way; the store timeout still applies.
func (srv *mapSessionService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if srv.storeTimeout <= 0 {
		return context.WithCancel(detached)
	}

	return context.WithTimeout(detached, srv.storeTimeout)
}

// Start creates the owner's session on first use and (re)loads the pins.
// A store outage starts the session empty and reports it in LoadError.
func (srv *mapSessionService) Start(ctx context.Context, ownerID uuid.UUID) (*usecase.SessionView, error) {
	s, created, err := srv.getOrCreate(ownerID)
	if err != nil {
		return nil, err
	}
	if created {
		srv.log(ctx).Info("Map session started", slog.Any("owner_id", ownerID))
	}

	s.mu.Lock()
	s.loadSeq++
	seq, epoch, since := s.loadSeq, s.epoch, s.changeSeq
	s.mu.Unlock()

	storeCtx, cancel := srv.storeContext(ctx)
	pins, loadErr := srv.store.List(storeCtx, ownerID)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.epoch != epoch {
		return nil, errors.WithStack(domainerrors.ErrSessionClosed)
	}

	var loadMessage string
	switch {
	case s.loadSeq != seq:
		srv.log(ctx).Debug("Dropping superseded pin load", slog.Any("owner_id", ownerID))
	case loadErr == nil:
		s.replaceKeepingLocal(pins, since)
	case errors.Is(loadErr, domainerrors.ErrStoreUnavailable):
		srv.log(ctx).Warn("Failed to load pins, starting empty", slog.Any("error", loadErr), slog.Any("owner_id", ownerID))
		s.replaceKeepingLocal(nil, since)
		loadMessage = domainerrors.ErrStoreUnavailable.Message()
	default:
		return nil, errors.Wrap(loadErr, "failed to load pins")
	}
	srv.reconcile(ctx, s)

	view := &usecase.SessionView{
		OwnerID:     ownerID,
		Viewport:    s.viewport,
		Pins:        s.views(usecase.PinOrderInsertion),
		Counts:      s.collection.Counts(),
		Draft:       s.flow.Snapshot(),
		MarkerCount: s.markers.Len(),
		LoadError:   loadMessage,
	}

	return view, nil
}

// End tears the session down at sign-out. In-flight store results for it are discarded.
func (srv *mapSessionService) End(ctx context.Context, ownerID uuid.UUID) error {
	srv.mu.Lock()
	s, ok := srv.sessions[ownerID]
	delete(srv.sessions, ownerID)
	srv.mu.Unlock()

	if !ok {
		return errors.WithStack(domainerrors.ErrSessionNotFound)
	}
	srv.metrics.ActiveSessions.Dec()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.epoch++
	s.flow.Reset()
	report := s.markers.Clear()
	srv.metrics.ObserveMarkers(report.Placed, report.Destroyed, report.PlaceFailed, report.DestroyFailed)

	srv.log(ctx).Info("Map session ended",
		slog.Any("owner_id", ownerID),
		slog.Int("markers_destroyed", report.Destroyed),
	)

	return nil
}

// Click opens a draft at coord, or moves the open draft there.
func (srv *mapSessionService) Click(ctx context.Context, ownerID uuid.UUID, coord entity.Coordinate) (*mapstate.FlowSnapshot, error) {
	return srv.withFlow(ownerID, func(flow *mapstate.CreationFlow) error {
		if err := flow.Open(coord); err != nil {
			if errors.Is(err, domainerrors.ErrSubmissionInFlight) {
				srv.log(ctx).Debug("Ignoring click during submission", slog.Any("owner_id", ownerID))
			}

			return err
		}

		return nil
	})
}

// EditDraft updates the open draft.
func (srv *mapSessionService) EditDraft(_ context.Context, ownerID uuid.UUID, fields mapstate.DraftFields) (*mapstate.FlowSnapshot, error) {
	return srv.withFlow(ownerID, func(flow *mapstate.CreationFlow) error {
		return flow.Edit(fields)
	})
}

// CancelDraft discards the open draft.
func (srv *mapSessionService) CancelDraft(_ context.Context, ownerID uuid.UUID) (*mapstate.FlowSnapshot, error) {
	return srv.withFlow(ownerID, func(flow *mapstate.CreationFlow) error {
		return flow.Cancel()
	})
}

// Draft returns the creation flow state.
func (srv *mapSessionService) Draft(_ context.Context, ownerID uuid.UUID) (*mapstate.FlowSnapshot, error) {
	return srv.withFlow(ownerID, func(*mapstate.CreationFlow) error {
		return nil
	})
}

// SubmitDraft persists the open draft. The pin is shown as pending while the
// store call runs and is retracted if the call fails.
func (srv *mapSessionService) SubmitDraft(ctx context.Context, ownerID uuid.UUID) (*entity.Pin, error) {
	s, err := srv.get(ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrSessionClosed)
	}
	draft, err := s.flow.BeginSubmit()
	if err != nil {
		s.mu.Unlock()

		return nil, err
	}
	pin := entity.NewPin(ownerID, draft, srv.now())
	s.collection.InsertPending(*pin)
	srv.reconcile(ctx, s)
	epoch := s.epoch
	s.mu.Unlock()

	storeCtx, cancel := srv.storeContext(ctx)
	stored, createErr := srv.store.Create(storeCtx, pin)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.epoch != epoch {
		srv.log(ctx).Info("Discarding create result for ended session",
			slog.Any("owner_id", ownerID),
			slog.Any("pin_id", pin.ID),
			slog.Bool("stored", createErr == nil),
		)

		return nil, errors.WithStack(domainerrors.ErrSessionClosed)
	}

	if createErr != nil {
		s.collection.Remove(pin.ID)
		srv.reconcile(ctx, s)
		s.flow.Fail(createErr)
		srv.log(ctx).Error("Failed to create pin", slog.Any("error", createErr), slog.Any("owner_id", ownerID))

		return nil, errors.Wrap(createErr, "failed to create pin")
	}

	if stored.ID != pin.ID {
		s.collection.Remove(pin.ID)
	}
	s.collection.Insert(*stored)
	s.recordConfirmed(stored.ID)
	srv.reconcile(ctx, s)
	s.flow.Complete()
	srv.log(ctx).Info("Pin created", slog.Any("pin_id", stored.ID), slog.Any("owner_id", ownerID))

	return stored, nil
}

// DeletePin deletes a pin from the store, then from the session. A pin the
// session does not know, or the store no longer has, reports DeleteNotFound.
func (srv *mapSessionService) DeletePin(ctx context.Context, ownerID, id uuid.UUID) (usecase.DeleteOutcome, error) {
	s, err := srv.get(ownerID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return "", errors.WithStack(domainerrors.ErrSessionClosed)
	}
	switch s.collection.Status(id) {
	case mapstate.StatusUnknown:
		s.mu.Unlock()

		return usecase.DeleteNotFound, nil
	case mapstate.StatusPending:
		s.mu.Unlock()

		return "", errors.WithStack(domainerrors.ErrPinPending)
	}
	epoch := s.epoch
	s.mu.Unlock()

	storeCtx, cancel := srv.storeContext(ctx)
	deleteErr := srv.store.Delete(storeCtx, ownerID, id)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.epoch != epoch {
		return "", errors.WithStack(domainerrors.ErrSessionClosed)
	}

	outcome := usecase.DeleteRemoved
	if deleteErr != nil {
		if !errors.Is(deleteErr, domainerrors.ErrPinNotFound) {
			srv.log(ctx).Error("Failed to delete pin", slog.Any("error", deleteErr), slog.Any("pin_id", id))

			return "", errors.Wrap(deleteErr, "failed to delete pin")
		}
		outcome = usecase.DeleteNotFound
	}

	s.collection.Remove(id)
	s.recordDeleted(id)
	srv.reconcile(ctx, s)
	srv.log(ctx).Info("Pin deleted", slog.Any("pin_id", id), slog.String("outcome", string(outcome)))

	return outcome, nil
}

// UpdatePin changes metadata through the store and upserts the result.
// The pin keeps its marker.
func (srv *mapSessionService) UpdatePin(ctx context.Context, ownerID, id uuid.UUID, patch entity.PinPatch) (*entity.Pin, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s, err := srv.get(ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrSessionClosed)
	}
	switch s.collection.Status(id) {
	case mapstate.StatusUnknown:
		s.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrPinNotFound)
	case mapstate.StatusPending:
		s.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrPinPending)
	}
	epoch := s.epoch
	s.mu.Unlock()

	storeCtx, cancel := srv.storeContext(ctx)
	updated, updateErr := srv.store.Update(storeCtx, ownerID, id, patch)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.epoch != epoch {
		return nil, errors.WithStack(domainerrors.ErrSessionClosed)
	}
	if updateErr != nil {
		if errors.Is(updateErr, domainerrors.ErrPinNotFound) {
			s.collection.Remove(id)
			s.recordDeleted(id)
			srv.reconcile(ctx, s)
		}

		return nil, errors.Wrap(updateErr, "failed to update pin")
	}

	if s.collection.Has(id) {
		s.collection.Insert(*updated)
		s.recordConfirmed(id)
	}
	srv.reconcile(ctx, s)

	return updated, nil
}

// Pins lists the session collection in the requested order.
func (srv *mapSessionService) Pins(_ context.Context, ownerID uuid.UUID, order usecase.PinOrder) ([]usecase.PinView, error) {
	s, err := srv.get(ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.views(order), nil
}

// Markers returns the surface's markers as GeoJSON.
func (srv *mapSessionService) Markers(_ context.Context, ownerID uuid.UUID) (*geojson.FeatureCollection, error) {
	s, err := srv.get(ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	source, ok := s.surface.(service.FeatureSource)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "map surface cannot render GeoJSON")
	}

	return source.FeatureCollection(), nil
}

// Export writes the confirmed session pins to the snapshot bucket.
func (srv *mapSessionService) Export(ctx context.Context, ownerID uuid.UUID) (*usecase.ExportResult, error) {
	s, err := srv.get(ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	pins := make([]entity.Pin, 0, s.collection.Len())
	for pin := range s.collection.All() {
		if s.collection.Status(pin.ID) == mapstate.StatusConfirmed {
			pins = append(pins, pin)
		}
	}
	s.mu.Unlock()

	key, err := srv.exporter.Export(ctx, ownerID, pins)
	if err != nil {
		srv.metrics.Exports.WithLabelValues(metrics.OutcomeError).Inc()
		srv.log(ctx).Error("Failed to export pins", slog.Any("error", err), slog.Any("owner_id", ownerID))

		return nil, errors.Wrap(err, "failed to export pins")
	}
	srv.metrics.Exports.WithLabelValues(metrics.OutcomeOK).Inc()
	srv.log(ctx).Info("Pins exported", slog.String("key", key), slog.Int("count", len(pins)))

	return &usecase.ExportResult{Key: key, PinCount: len(pins)}, nil
}

func (srv *mapSessionService) get(ownerID uuid.UUID) (*session, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	s, ok := srv.sessions[ownerID]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	return s, nil
}

// getOrCreate returns the owner's session, constructing it at most once.
func (srv *mapSessionService) getOrCreate(ownerID uuid.UUID) (*session, bool, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if s, ok := srv.sessions[ownerID]; ok {
		return s, false, nil
	}

	surface := srv.surfaces.NewSurface(ownerID)
	markers := mapstate.NewSynchronizer(nil)
	if err := surface.Init(srv.viewport); err != nil {
		return nil, false, errors.Wrap(err, "failed to initialize map surface")
	}
	markers.Attach(surface)

	s := &session{
		ownerID:     ownerID,
		viewport:    srv.viewport,
		surface:     surface,
		collection:  mapstate.NewCollection(),
		markers:     markers,
		flow:        mapstate.NewCreationFlow(),
		confirmedAt: make(map[uuid.UUID]uint64),
		deletedAt:   make(map[uuid.UUID]uint64),
	}
	srv.sessions[ownerID] = s
	srv.metrics.ActiveSessions.Inc()

	return s, true, nil
}

// withFlow runs fn on the creation flow within one turn and returns the resulting snapshot.
func (srv *mapSessionService) withFlow(ownerID uuid.UUID, fn func(*mapstate.CreationFlow) error) (*mapstate.FlowSnapshot, error) {
	s, err := srv.get(ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.WithStack(domainerrors.ErrSessionClosed)
	}
	if err := fn(s.flow); err != nil {
		return nil, err
	}
	snap := s.flow.Snapshot()

	return &snap, nil
}

// reconcile brings the markers in line with the collection. Caller holds s.mu.
func (srv *mapSessionService) reconcile(ctx context.Context, s *session) {
	report := s.markers.Reconcile(s.collection.All())
	if report.Deferred {
		srv.log(ctx).Debug("Map surface not ready, deferring markers", slog.Any("owner_id", s.ownerID))

		return
	}
	srv.metrics.ObserveMarkers(report.Placed, report.Destroyed, report.PlaceFailed, report.DestroyFailed)

	if report.PlaceFailed > 0 || report.DestroyFailed > 0 {
		srv.log(ctx).Warn("Some markers could not be updated, will retry on next change",
			slog.Any("owner_id", s.ownerID),
			slog.Int("place_failed", report.PlaceFailed),
			slog.Int("destroy_failed", report.DestroyFailed),
		)
	}
}

// replaceKeepingLocal swaps in a loaded pin list. Optimistic pins whose
// create is still running survive. Creates, updates and deletes confirmed
// after the load began at change sequence since override the loaded list,
// which may predate them. Caller holds s.mu.
func (s *session) replaceKeepingLocal(pins []*entity.Pin, since uint64) {
	var kept []entity.Pin
	pending := make(map[uuid.UUID]bool)
	for pin := range s.collection.All() {
		switch {
		case s.collection.Status(pin.ID) == mapstate.StatusPending:
			kept = append(kept, pin)
			pending[pin.ID] = true
		case s.confirmedAt[pin.ID] > since:
			kept = append(kept, pin)
		}
	}

	loaded := make([]*entity.Pin, 0, len(pins))
	for _, pin := range pins {
		if s.deletedAt[pin.ID] > since {
			continue
		}
		loaded = append(loaded, pin)
	}

	s.collection.ReplaceAll(loaded)
	for _, pin := range kept {
		switch {
		case !pending[pin.ID]:
			s.collection.Insert(pin)
		case !s.collection.Has(pin.ID):
			s.collection.InsertPending(pin)
		}
	}
	s.forgetChangesUpTo(since)
}

// recordConfirmed notes a create or update the store acknowledged. Caller holds s.mu.
func (s *session) recordConfirmed(id uuid.UUID) {
	s.changeSeq++
	s.confirmedAt[id] = s.changeSeq
	delete(s.deletedAt, id)
}

// recordDeleted notes a pin the store no longer has. Caller holds s.mu.
func (s *session) recordDeleted(id uuid.UUID) {
	s.changeSeq++
	s.deletedAt[id] = s.changeSeq
	delete(s.confirmedAt, id)
}

// forgetChangesUpTo drops journal entries that no load still in flight can
// predate. Loads start in order, so any later load began at or after since.
// Caller holds s.mu.
func (s *session) forgetChangesUpTo(since uint64) {
	for id, seq := range s.confirmedAt {
		if seq <= since {
			delete(s.confirmedAt, id)
		}
	}
	for id, seq := range s.deletedAt {
		if seq <= since {
			delete(s.deletedAt, id)
		}
	}
}

// views builds the pin list. Caller holds s.mu.
func (s *session) views(order usecase.PinOrder) []usecase.PinView {
	var pins []entity.Pin
	if order == usecase.PinOrderRecent {
		pins = s.collection.Recent()
	} else {
		pins = slices.Collect(s.collection.All())
	}

	views := make([]usecase.PinView, 0, len(pins))
	for _, pin := range pins {
		views = append(views, usecase.PinView{
			Pin:       pin,
			Status:    s.collection.Status(pin.ID).String(),
			HasMarker: s.markers.Has(pin.ID),
		})
	}

	return views
}
