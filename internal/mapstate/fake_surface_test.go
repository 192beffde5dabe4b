package mapstate

import (
	"pinmap/internal/domain/entity"
	"pinmap/internal/domain/service"
	"pinmap/internal/errors"
)

type fakeMarker struct {
	seq     int
	coord   entity.Coordinate
	content service.MarkerContent
}

// fakeSurface records markers in memory and can be told to fail.
type fakeSurface struct {
	ready        bool
	nextSeq      int
	live         map[int]*fakeMarker
	placeCalls   int
	destroyCalls int
	failPlace    bool
	failDestroy  bool
}

func newFakeSurface(ready bool) *fakeSurface {
	return &fakeSurface{ready: ready, live: make(map[int]*fakeMarker)}
}

func (s *fakeSurface) Init(entity.Viewport) error {
	s.ready = true

	return nil
}

func (s *fakeSurface) Ready() bool {
	return s.ready
}

func (s *fakeSurface) Place(coord entity.Coordinate, content service.MarkerContent) (service.MarkerHandle, error) {
	s.placeCalls++
	if s.failPlace {
		return nil, errors.New("place failed")
	}
	s.nextSeq++
	m := &fakeMarker{seq: s.nextSeq, coord: coord, content: content}
	s.live[m.seq] = m

	return m, nil
}

func (s *fakeSurface) Destroy(handle service.MarkerHandle) error {
	s.destroyCalls++
	if s.failDestroy {
		return errors.New("destroy failed")
	}
	m, ok := handle.(*fakeMarker)
	if !ok {
		return errors.New("foreign handle")
	}
	delete(s.live, m.seq)

	return nil
}
