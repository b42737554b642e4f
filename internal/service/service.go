package service

import (
	"context"
	"time"

	"github.com/ds124wfegd/event-catalog/internal/entity"
)

type TrackService interface {
	// Основные операции
	CreateTrack(ctx context.Context, req *CreateTrackRequest) (*entity.EventTrack, error)
	GetTrack(ctx context.Context, id int64) (*entity.TrackView, error)
	GetAllTracks(ctx context.Context) ([]entity.TrackView, error)
	UpdateTrack(ctx context.Context, req *UpdateTrackRequest) error
	DeleteTrack(ctx context.Context, id int64) error
}

type EventService interface {
	// Основные операции
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*entity.Event, error)
	GetEvent(ctx context.Context, id int64) (*entity.EventView, error)
	GetAllEvents(ctx context.Context) ([]entity.EventView, error)
	UpdateEvent(ctx context.Context, req *UpdateEventRequest) error
	DeleteEvent(ctx context.Context, id int64) error

	// Seat ledger
	DecrementSeat(ctx context.Context, id int64) (int, error)
	IncrementSeat(ctx context.Context, id int64) (int, error)
}

type FeedbackService interface {
	CreateFeedback(ctx context.Context, req *CreateFeedbackRequest) (*entity.Feedback, error)
	GetAllFeedbacks(ctx context.Context) ([]entity.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) error
}

type RecommendationService interface {
	Recommend(ctx context.Context, eventID int64) error
	ListRecommended(ctx context.Context) ([]int64, error)
}

type CatalogService interface {
	// FullCatalog assembles the whole hierarchy: tracks with their
	// events, events with their feedbacks, images resolved.
	FullCatalog(ctx context.Context) ([]entity.TrackView, error)
	Wipe(ctx context.Context) error
}

// CatalogCache is satisfied by the redis-backed cache; services accept
// nil when caching is disabled.
type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]entity.TrackView, error)
	SetCatalog(ctx context.Context, tracks []entity.TrackView) error
	Invalidate(ctx context.Context) error
}

// CreateTrackRequest represents the data needed to create an event track
type CreateTrackRequest struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	CoverImageBase64   string `json:"coverImageBase64"`
	OverlayImageBase64 string `json:"overlayImageBase64"`
}

// UpdateTrackRequest represents a partial track update; fields absent
// from the request body stay untouched.
type UpdateTrackRequest struct {
	ID                 int64                `json:"id"`
	Name               entity.Field[string] `json:"name"`
	Description        entity.Field[string] `json:"description"`
	CoverImageBase64   entity.Field[string] `json:"coverImageBase64"`
	OverlayImageBase64 entity.Field[string] `json:"overlayImageBase64"`
}

// CreateEventRequest represents the data needed to create an event
type CreateEventRequest struct {
	TrackID          *int64            `json:"eventTrackId"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	LongDescription  string            `json:"longDescription"`
	Speakers         entity.StringList `json:"speakers"`
	InitialDate      *time.Time        `json:"initialDate"`
	FinalDate        *time.Time        `json:"finalDate"`
	Location         string            `json:"location"`
	Capacity         int               `json:"capacity"`
	AvailableSeats   int               `json:"availableSeats"`
	TrackName        string            `json:"eventTrackName"`
	CoverImageBase64 string            `json:"coverImageBase64"`
	CardImageBase64  string            `json:"cardImageBase64"`
}

// UpdateEventRequest represents a partial event update. Field names
// follow the edit endpoint's historical snake_case contract.
type UpdateEventRequest struct {
	ID              int64                           `json:"id"`
	TrackID         entity.Field[int64]             `json:"event_track_id"`
	Name            entity.Field[string]            `json:"name"`
	Description     entity.Field[string]            `json:"description"`
	LongDescription entity.Field[string]            `json:"long_description"`
	Speakers        entity.Field[entity.StringList] `json:"speakers"`
	InitialDate     entity.Field[time.Time]         `json:"initial_date"`
	FinalDate       entity.Field[time.Time]         `json:"final_date"`
	Location        entity.Field[string]            `json:"location"`
	Capacity        entity.Field[int]               `json:"capacity"`
	CoverImage      entity.Field[string]            `json:"cover_image"`
	CardImage       entity.Field[string]            `json:"card_image"`
	TrackName       entity.Field[string]            `json:"event_track_name"`
}

// CreateFeedbackRequest represents the data needed to leave feedback
type CreateFeedbackRequest struct {
	UserID  string `json:"userId"`
	EventID int64  `json:"eventId"`
	Stars   int    `json:"stars"`
	Comment string `json:"comment"`
}
