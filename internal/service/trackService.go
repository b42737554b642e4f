package service

import (
	"context"
	"fmt"
	"strings"

	repository "github.com/ds124wfegd/event-catalog/internal/database/postgres"
	"github.com/ds124wfegd/event-catalog/internal/entity"
	"github.com/ds124wfegd/event-catalog/internal/imagestore"
)

type trackService struct {
	trackRepo    repository.TrackRepository
	eventRepo    repository.EventRepository
	feedbackRepo repository.FeedbackRepository
	images       imagestore.Store
	cache        CatalogCache
}

// NewTrackService creates a new instance of TrackService
func NewTrackService(
	trackRepo repository.TrackRepository,
	eventRepo repository.EventRepository,
	feedbackRepo repository.FeedbackRepository,
	images imagestore.Store,
	cache CatalogCache,
) TrackService {
	return &trackService{
		trackRepo:    trackRepo,
		eventRepo:    eventRepo,
		feedbackRepo: feedbackRepo,
		images:       images,
		cache:        cache,
	}
}

func (s *trackService) CreateTrack(ctx context.Context, req *CreateTrackRequest) (*entity.EventTrack, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, entity.ErrNameRequired
	}

	coverRef, err := s.images.Save(req.CoverImageBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to store cover image: %w", err)
	}
	overlayRef, err := s.images.Save(req.OverlayImageBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to store overlay image: %w", err)
	}

	track := &entity.EventTrack{
		Name:         req.Name,
		Description:  req.Description,
		CoverImage:   coverRef,
		OverlayImage: overlayRef,
	}

	if err := s.trackRepo.Create(ctx, track); err != nil {
		return nil, fmt.Errorf("failed to create event track: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return track, nil
}

func (s *trackService) GetTrack(ctx context.Context, id int64) (*entity.TrackView, error) {
	track, err := s.trackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event track: %w", err)
	}

	events, err := s.eventRepo.GetByTrackID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get track events: %w", err)
	}

	view := trackView(track, s.images)
	for _, event := range events {
		feedbacks, err := s.feedbackRepo.GetByEventID(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get event feedbacks: %w", err)
		}

		eventView := eventView(event, s.images)
		eventView.Feedbacks = feedbacks
		view.Events = append(view.Events, eventView)
	}

	return &view, nil
}

func (s *trackService) GetAllTracks(ctx context.Context) ([]entity.TrackView, error) {
	tracks, err := s.trackRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all event tracks: %w", err)
	}

	views := make([]entity.TrackView, 0, len(tracks))
	for _, track := range tracks {
		views = append(views, trackView(track, s.images))
	}

	return views, nil
}

func (s *trackService) UpdateTrack(ctx context.Context, req *UpdateTrackRequest) error {
	if req.ID == 0 {
		return fmt.Errorf("%w: track id is required", entity.ErrInvalidInput)
	}

	exists, err := s.trackRepo.Exists(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("failed to check event track: %w", err)
	}
	if !exists {
		return entity.ErrTrackNotFound
	}

	if req.Name.Set && (!req.Name.Valid || strings.TrimSpace(req.Name.Value) == "") {
		return entity.ErrNameRequired
	}

	coverRef, err := s.imageField(req.CoverImageBase64)
	if err != nil {
		return err
	}
	overlayRef, err := s.imageField(req.OverlayImageBase64)
	if err != nil {
		return err
	}

	patch := &entity.TrackPatch{
		Name:         req.Name,
		Description:  req.Description,
		CoverImage:   coverRef,
		OverlayImage: overlayRef,
	}

	if err := s.trackRepo.Update(ctx, req.ID, patch); err != nil {
		return fmt.Errorf("failed to update event track: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return nil
}

func (s *trackService) DeleteTrack(ctx context.Context, id int64) error {
	if err := s.trackRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event track: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return nil
}

// imageField maps an optional payload field onto an optional reference
// field, running set values through the image store.
func (s *trackService) imageField(f entity.Field[string]) (entity.Field[entity.ImageRef], error) {
	return imageField(f, s.images)
}
