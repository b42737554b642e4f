package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	repository "github.com/ds124wfegd/event-catalog/internal/database/postgres"
	"github.com/ds124wfegd/event-catalog/internal/entity"
	"github.com/ds124wfegd/event-catalog/internal/imagestore"
)

type eventService struct {
	eventRepo    repository.EventRepository
	trackRepo    repository.TrackRepository
	feedbackRepo repository.FeedbackRepository
	images       imagestore.Store
	cache        CatalogCache
}

// NewEventService creates a new instance of EventService
func NewEventService(
	eventRepo repository.EventRepository,
	trackRepo repository.TrackRepository,
	feedbackRepo repository.FeedbackRepository,
	images imagestore.Store,
	cache CatalogCache,
) EventService {
	return &eventService{
		eventRepo:    eventRepo,
		trackRepo:    trackRepo,
		feedbackRepo: feedbackRepo,
		images:       images,
		cache:        cache,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req *CreateEventRequest) (*entity.Event, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, entity.ErrNameRequired
	}
	if req.Capacity < 0 || req.AvailableSeats < 0 {
		return nil, fmt.Errorf("%w: capacity and available seats cannot be negative", entity.ErrInvalidInput)
	}
	if err := checkDateOrder(req.InitialDate, req.FinalDate); err != nil {
		return nil, err
	}

	if req.TrackID != nil {
		exists, err := s.trackRepo.Exists(ctx, *req.TrackID)
		if err != nil {
			return nil, fmt.Errorf("failed to check event track: %w", err)
		}
		if !exists {
			return nil, entity.ErrUnknownTrack
		}
	}

	coverRef, err := s.images.Save(req.CoverImageBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to store cover image: %w", err)
	}
	cardRef, err := s.images.Save(req.CardImageBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to store card image: %w", err)
	}

	event := &entity.Event{
		TrackID:         req.TrackID,
		Name:            req.Name,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Speakers:        req.Speakers,
		InitialDate:     req.InitialDate,
		FinalDate:       req.FinalDate,
		Location:        req.Location,
		Capacity:        req.Capacity,
		AvailableSeats:  req.AvailableSeats,
		CoverImage:      coverRef,
		CardImage:       cardRef,
		TrackName:       req.TrackName,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*entity.EventView, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	feedbacks, err := s.feedbackRepo.GetByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event feedbacks: %w", err)
	}

	view := eventView(event, s.images)
	view.Feedbacks = feedbacks
	return &view, nil
}

func (s *eventService) GetAllEvents(ctx context.Context) ([]entity.EventView, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all events: %w", err)
	}

	views := make([]entity.EventView, 0, len(events))
	for _, event := range events {
		views = append(views, eventView(event, s.images))
	}

	return views, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, req *UpdateEventRequest) error {
	if req.ID == 0 {
		return fmt.Errorf("%w: event id is required", entity.ErrInvalidInput)
	}

	exists, err := s.eventRepo.Exists(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}
	if !exists {
		return entity.ErrEventNotFound
	}

	if req.Name.Set && (!req.Name.Valid || strings.TrimSpace(req.Name.Value) == "") {
		return entity.ErrNameRequired
	}
	if req.Capacity.Set && req.Capacity.Valid && req.Capacity.Value < 0 {
		return fmt.Errorf("%w: capacity cannot be negative", entity.ErrInvalidInput)
	}
	if req.InitialDate.Set && req.InitialDate.Valid &&
		req.FinalDate.Set && req.FinalDate.Valid {
		if err := checkDateOrder(&req.InitialDate.Value, &req.FinalDate.Value); err != nil {
			return err
		}
	}

	// The edit path validates the track reference; creation does the
	// same, so attaching an event to a missing track always fails early.
	if req.TrackID.Set && req.TrackID.Valid {
		exists, err := s.trackRepo.Exists(ctx, req.TrackID.Value)
		if err != nil {
			return fmt.Errorf("failed to check event track: %w", err)
		}
		if !exists {
			return entity.ErrUnknownTrack
		}
	}

	coverRef, err := imageField(req.CoverImage, s.images)
	if err != nil {
		return err
	}
	cardRef, err := imageField(req.CardImage, s.images)
	if err != nil {
		return err
	}

	patch := &entity.EventPatch{
		TrackID:         req.TrackID,
		Name:            req.Name,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Speakers:        speakersField(req.Speakers),
		InitialDate:     req.InitialDate,
		FinalDate:       req.FinalDate,
		Location:        req.Location,
		Capacity:        req.Capacity,
		CoverImage:      coverRef,
		CardImage:       cardRef,
		TrackName:       req.TrackName,
	}

	if err := s.eventRepo.Update(ctx, req.ID, patch); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return nil
}

func (s *eventService) DecrementSeat(ctx context.Context, id int64) (int, error) {
	seats, err := s.eventRepo.DecrementSeats(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to decrement seats: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return seats, nil
}

func (s *eventService) IncrementSeat(ctx context.Context, id int64) (int, error) {
	seats, err := s.eventRepo.IncrementSeats(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to increment seats: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return seats, nil
}

func checkDateOrder(initial, final *time.Time) error {
	if initial == nil || final == nil {
		return nil
	}
	if final.Before(*initial) {
		return entity.ErrInvalidDateRange
	}
	return nil
}

func speakersField(f entity.Field[entity.StringList]) entity.Field[[]string] {
	out := entity.Field[[]string]{Set: f.Set, Valid: f.Valid}
	if f.Valid {
		out.Value = f.Value
	}
	return out
}
