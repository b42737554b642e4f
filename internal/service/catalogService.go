package service

import (
	"context"
	"fmt"

	repository "github.com/ds124wfegd/event-catalog/internal/database/postgres"
	"github.com/ds124wfegd/event-catalog/internal/entity"
	"github.com/ds124wfegd/event-catalog/internal/imagestore"

	"github.com/sirupsen/logrus"
)

type catalogService struct {
	trackRepo    repository.TrackRepository
	eventRepo    repository.EventRepository
	feedbackRepo repository.FeedbackRepository
	adminRepo    repository.AdminRepository
	images       imagestore.Store
	cache        CatalogCache
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(
	trackRepo repository.TrackRepository,
	eventRepo repository.EventRepository,
	feedbackRepo repository.FeedbackRepository,
	adminRepo repository.AdminRepository,
	images imagestore.Store,
	cache CatalogCache,
) CatalogService {
	return &catalogService{
		trackRepo:    trackRepo,
		eventRepo:    eventRepo,
		feedbackRepo: feedbackRepo,
		adminRepo:    adminRepo,
		images:       images,
		cache:        cache,
	}
}

// FullCatalog walks tracks, their events and those events' feedbacks.
// Catalogs are small, the per-track queries are fine here. Any child
// failure fails the whole read; no partial catalogs.
func (s *catalogService) FullCatalog(ctx context.Context) ([]entity.TrackView, error) {
	if s.cache != nil {
		cached, err := s.cache.GetCatalog(ctx)
		if err == nil {
			return cached, nil
		}
	}

	tracks, err := s.trackRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get event tracks: %w", err)
	}

	catalog := make([]entity.TrackView, 0, len(tracks))
	for _, track := range tracks {
		view := trackView(track, s.images)

		events, err := s.eventRepo.GetByTrackID(ctx, track.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get track events: %w", err)
		}

		for _, event := range events {
			feedbacks, err := s.feedbackRepo.GetByEventID(ctx, event.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to get event feedbacks: %w", err)
			}

			ev := eventView(event, s.images)
			ev.Feedbacks = feedbacks
			view.Events = append(view.Events, ev)
		}

		catalog = append(catalog, view)
	}

	if s.cache != nil {
		if err := s.cache.SetCatalog(ctx, catalog); err != nil {
			logrus.Warnf("Failed to cache catalog: %v", err)
		}
	}

	return catalog, nil
}

func (s *catalogService) Wipe(ctx context.Context) error {
	if err := s.adminRepo.Wipe(ctx); err != nil {
		return fmt.Errorf("failed to wipe catalog: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return nil
}

func trackView(track *entity.EventTrack, images imagestore.Store) entity.TrackView {
	return entity.TrackView{
		ID:           track.ID,
		Name:         track.Name,
		Description:  track.Description,
		CoverImage:   images.Resolve(track.CoverImage),
		OverlayImage: images.Resolve(track.OverlayImage),
	}
}

func eventView(event *entity.Event, images imagestore.Store) entity.EventView {
	return entity.EventView{
		ID:              event.ID,
		TrackID:         event.TrackID,
		Name:            event.Name,
		Description:     event.Description,
		LongDescription: event.LongDescription,
		Speakers:        event.Speakers,
		InitialDate:     event.InitialDate,
		FinalDate:       event.FinalDate,
		Location:        event.Location,
		Capacity:        event.Capacity,
		AvailableSeats:  event.AvailableSeats,
		CoverImage:      images.Resolve(event.CoverImage),
		CardImage:       images.Resolve(event.CardImage),
		TrackName:       event.TrackName,
	}
}

// imageField maps an optional base64 payload field onto an optional
// stored reference field. A malformed payload becomes an empty
// reference, same as an explicit null.
func imageField(f entity.Field[string], images imagestore.Store) (entity.Field[entity.ImageRef], error) {
	out := entity.Field[entity.ImageRef]{Set: f.Set}
	if !f.Set || !f.Valid {
		return out, nil
	}

	ref, err := images.Save(f.Value)
	if err != nil {
		return out, fmt.Errorf("failed to store image: %w", err)
	}
	if !ref.IsZero() {
		out.Valid = true
		out.Value = ref
	}
	return out, nil
}

func invalidateCatalog(ctx context.Context, cache CatalogCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		logrus.Warnf("Failed to invalidate catalog cache: %v", err)
	}
}
