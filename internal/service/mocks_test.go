package service

import (
	"context"
	"errors"

	"github.com/ds124wfegd/event-catalog/internal/entity"
)

// Hand-rolled repository mocks: each method delegates to an optional
// function field and records that it was called.

type mockTrackRepo struct {
	tracks     map[int64]*entity.EventTrack
	createErr  error
	updateErr  error
	deleteErr  error
	created    []*entity.EventTrack
	updates    map[int64]*entity.TrackPatch
	deletedIDs []int64
}

func newMockTrackRepo() *mockTrackRepo {
	return &mockTrackRepo{
		tracks:  make(map[int64]*entity.EventTrack),
		updates: make(map[int64]*entity.TrackPatch),
	}
}

func (m *mockTrackRepo) Create(ctx context.Context, track *entity.EventTrack) error {
	if m.createErr != nil {
		return m.createErr
	}
	track.ID = int64(len(m.tracks) + 1)
	m.tracks[track.ID] = track
	m.created = append(m.created, track)
	return nil
}

func (m *mockTrackRepo) GetByID(ctx context.Context, id int64) (*entity.EventTrack, error) {
	track, ok := m.tracks[id]
	if !ok {
		return nil, entity.ErrTrackNotFound
	}
	return track, nil
}

func (m *mockTrackRepo) GetAll(ctx context.Context) ([]*entity.EventTrack, error) {
	out := make([]*entity.EventTrack, 0, len(m.tracks))
	for i := int64(1); i <= int64(len(m.tracks)); i++ {
		if track, ok := m.tracks[i]; ok {
			out = append(out, track)
		}
	}
	return out, nil
}

func (m *mockTrackRepo) Update(ctx context.Context, id int64, patch *entity.TrackPatch) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates[id] = patch
	return nil
}

func (m *mockTrackRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.tracks[id]; !ok {
		return entity.ErrTrackNotFound
	}
	delete(m.tracks, id)
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

func (m *mockTrackRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.tracks[id]
	return ok, nil
}

type mockEventRepo struct {
	events     map[int64]*entity.Event
	createErr  error
	updateErr  error
	updates    map[int64]*entity.EventPatch
	deletedIDs []int64
	seats      map[int64]int
	capacity   map[int64]int
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{
		events:   make(map[int64]*entity.Event),
		updates:  make(map[int64]*entity.EventPatch),
		seats:    make(map[int64]int),
		capacity: make(map[int64]int),
	}
}

func (m *mockEventRepo) Create(ctx context.Context, event *entity.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	event.ID = int64(len(m.events) + 1)
	m.events[event.ID] = event
	m.seats[event.ID] = event.AvailableSeats
	m.capacity[event.ID] = event.Capacity
	return nil
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, entity.ErrEventNotFound
	}
	return event, nil
}

func (m *mockEventRepo) GetAll(ctx context.Context) ([]*entity.Event, error) {
	out := make([]*entity.Event, 0, len(m.events))
	for i := int64(1); i <= int64(len(m.events)); i++ {
		if event, ok := m.events[i]; ok {
			out = append(out, event)
		}
	}
	return out, nil
}

func (m *mockEventRepo) GetByTrackID(ctx context.Context, trackID int64) ([]*entity.Event, error) {
	var out []*entity.Event
	for i := int64(1); i <= int64(len(m.events)); i++ {
		event, ok := m.events[i]
		if ok && event.TrackID != nil && *event.TrackID == trackID {
			out = append(out, event)
		}
	}
	return out, nil
}

func (m *mockEventRepo) Update(ctx context.Context, id int64, patch *entity.EventPatch) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates[id] = patch
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.events[id]; !ok {
		return entity.ErrEventNotFound
	}
	delete(m.events, id)
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

func (m *mockEventRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.events[id]
	return ok, nil
}

func (m *mockEventRepo) DecrementSeats(ctx context.Context, id int64) (int, error) {
	if _, ok := m.events[id]; !ok {
		return 0, entity.ErrEventNotFound
	}
	if m.seats[id] > 0 {
		m.seats[id]--
	}
	return m.seats[id], nil
}

func (m *mockEventRepo) IncrementSeats(ctx context.Context, id int64) (int, error) {
	if _, ok := m.events[id]; !ok {
		return 0, entity.ErrEventNotFound
	}
	if m.seats[id] < m.capacity[id] {
		m.seats[id]++
	}
	return m.seats[id], nil
}

type mockFeedbackRepo struct {
	feedbacks  map[int64]*entity.Feedback
	createErr  error
	deletedIDs []int64
}

func newMockFeedbackRepo() *mockFeedbackRepo {
	return &mockFeedbackRepo{feedbacks: make(map[int64]*entity.Feedback)}
}

func (m *mockFeedbackRepo) Create(ctx context.Context, feedback *entity.Feedback) error {
	if m.createErr != nil {
		return m.createErr
	}
	feedback.ID = int64(len(m.feedbacks) + 1)
	m.feedbacks[feedback.ID] = feedback
	return nil
}

func (m *mockFeedbackRepo) GetByEventID(ctx context.Context, eventID int64) ([]entity.Feedback, error) {
	var out []entity.Feedback
	for i := int64(1); i <= int64(len(m.feedbacks)); i++ {
		if f, ok := m.feedbacks[i]; ok && f.EventID == eventID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (m *mockFeedbackRepo) GetAll(ctx context.Context) ([]entity.Feedback, error) {
	out := make([]entity.Feedback, 0, len(m.feedbacks))
	for i := int64(1); i <= int64(len(m.feedbacks)); i++ {
		if f, ok := m.feedbacks[i]; ok {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (m *mockFeedbackRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.feedbacks[id]; !ok {
		return entity.ErrFeedbackNotFound
	}
	delete(m.feedbacks, id)
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type mockRecommendationRepo struct {
	recommended map[int64]struct{}
	order       []int64
}

func newMockRecommendationRepo() *mockRecommendationRepo {
	return &mockRecommendationRepo{recommended: make(map[int64]struct{})}
}

func (m *mockRecommendationRepo) Add(ctx context.Context, eventID int64) error {
	if _, ok := m.recommended[eventID]; ok {
		return nil
	}
	m.recommended[eventID] = struct{}{}
	m.order = append(m.order, eventID)
	return nil
}

func (m *mockRecommendationRepo) List(ctx context.Context) ([]int64, error) {
	return append([]int64(nil), m.order...), nil
}

type mockAdminRepo struct {
	wiped   bool
	wipeErr error
	refs    []entity.ImageRef
}

func (m *mockAdminRepo) Wipe(ctx context.Context) error {
	if m.wipeErr != nil {
		return m.wipeErr
	}
	m.wiped = true
	return nil
}

func (m *mockAdminRepo) ListImageRefs(ctx context.Context) ([]entity.ImageRef, error) {
	return m.refs, nil
}

var errCacheMiss = errors.New("cache miss")

type mockCache struct {
	catalog     []entity.TrackView
	hasCatalog  bool
	setCalls    int
	invalidated int
}

func (m *mockCache) GetCatalog(ctx context.Context) ([]entity.TrackView, error) {
	if !m.hasCatalog {
		return nil, errCacheMiss
	}
	return m.catalog, nil
}

func (m *mockCache) SetCatalog(ctx context.Context, tracks []entity.TrackView) error {
	m.catalog = tracks
	m.hasCatalog = true
	m.setCalls++
	return nil
}

func (m *mockCache) Invalidate(ctx context.Context) error {
	m.catalog = nil
	m.hasCatalog = false
	m.invalidated++
	return nil
}
