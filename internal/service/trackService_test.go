package service

import (
	"context"
	"testing"

	"github.com/ds124wfegd/event-catalog/config"
	"github.com/ds124wfegd/event-catalog/internal/entity"
	"github.com/ds124wfegd/event-catalog/internal/imagestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInlineStore(t *testing.T) imagestore.Store {
	t.Helper()
	store, err := imagestore.New(&config.ImagesConfig{Backend: "inline"})
	require.NoError(t, err)
	return store
}

func TestCreateTrack(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateTrackRequest
		wantErr error
	}{
		{
			name: "valid track",
			req:  CreateTrackRequest{Name: "Backend", Description: "All things server-side"},
		},
		{
			name: "with cover image",
			req:  CreateTrackRequest{Name: "ML", CoverImageBase64: "data:image/png;base64,AAAA"},
		},
		{
			name:    "empty name",
			req:     CreateTrackRequest{Description: "no name"},
			wantErr: entity.ErrNameRequired,
		},
		{
			name:    "whitespace name",
			req:     CreateTrackRequest{Name: "   "},
			wantErr: entity.ErrNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trackRepo := newMockTrackRepo()
			cache := &mockCache{hasCatalog: true}
			svc := NewTrackService(trackRepo, newMockEventRepo(), newMockFeedbackRepo(), newInlineStore(t), cache)

			track, err := svc.CreateTrack(context.Background(), &tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, trackRepo.created)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, track.ID)
			assert.Equal(t, tt.req.Name, track.Name)
			assert.Equal(t, 1, cache.invalidated)
		})
	}
}

func TestGetTrackNestsEventsAndFeedbacks(t *testing.T) {
	trackRepo := newMockTrackRepo()
	eventRepo := newMockEventRepo()
	feedbackRepo := newMockFeedbackRepo()
	svc := NewTrackService(trackRepo, eventRepo, feedbackRepo, newInlineStore(t), nil)

	ctx := context.Background()
	track := &entity.EventTrack{Name: "Backend"}
	require.NoError(t, trackRepo.Create(ctx, track))

	event := &entity.Event{TrackID: &track.ID, Name: "GopherCon"}
	require.NoError(t, eventRepo.Create(ctx, event))
	require.NoError(t, feedbackRepo.Create(ctx, &entity.Feedback{EventID: event.ID, Stars: 5}))

	view, err := svc.GetTrack(ctx, track.ID)
	require.NoError(t, err)

	assert.Equal(t, "Backend", view.Name)
	require.Len(t, view.Events, 1)
	assert.Equal(t, "GopherCon", view.Events[0].Name)
	require.Len(t, view.Events[0].Feedbacks, 1)
	assert.Equal(t, 5, view.Events[0].Feedbacks[0].Stars)
}

func TestGetTrackNotFound(t *testing.T) {
	svc := NewTrackService(newMockTrackRepo(), newMockEventRepo(), newMockFeedbackRepo(), newInlineStore(t), nil)

	_, err := svc.GetTrack(context.Background(), 99)
	assert.ErrorIs(t, err, entity.ErrTrackNotFound)
}

func TestGetAllTracksStaysFlat(t *testing.T) {
	trackRepo := newMockTrackRepo()
	svc := NewTrackService(trackRepo, newMockEventRepo(), newMockFeedbackRepo(), newInlineStore(t), nil)

	ctx := context.Background()
	require.NoError(t, trackRepo.Create(ctx, &entity.EventTrack{Name: "Backend"}))
	require.NoError(t, trackRepo.Create(ctx, &entity.EventTrack{Name: "Frontend"}))

	views, err := svc.GetAllTracks(ctx)
	require.NoError(t, err)

	require.Len(t, views, 2)
	// The list endpoint does not populate children
	assert.Nil(t, views[0].Events)
	assert.Nil(t, views[1].Events)
}

func TestUpdateTrack(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateTrackRequest
		wantErr error
	}{
		{
			name: "rename",
			req: UpdateTrackRequest{
				ID:   1,
				Name: entity.NewField("Platform"),
			},
		},
		{
			name: "clear description with explicit null",
			req: UpdateTrackRequest{
				ID:          1,
				Description: entity.NullField[string](),
			},
		},
		{
			name:    "missing id",
			req:     UpdateTrackRequest{Name: entity.NewField("Platform")},
			wantErr: entity.ErrInvalidInput,
		},
		{
			name:    "unknown track",
			req:     UpdateTrackRequest{ID: 42, Name: entity.NewField("Platform")},
			wantErr: entity.ErrTrackNotFound,
		},
		{
			name:    "null name rejected",
			req:     UpdateTrackRequest{ID: 1, Name: entity.NullField[string]()},
			wantErr: entity.ErrNameRequired,
		},
		{
			name:    "blank name rejected",
			req:     UpdateTrackRequest{ID: 1, Name: entity.NewField("  ")},
			wantErr: entity.ErrNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trackRepo := newMockTrackRepo()
			require.NoError(t, trackRepo.Create(context.Background(), &entity.EventTrack{Name: "Backend"}))

			cache := &mockCache{hasCatalog: true}
			svc := NewTrackService(trackRepo, newMockEventRepo(), newMockFeedbackRepo(), newInlineStore(t), cache)

			err := svc.UpdateTrack(context.Background(), &tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, trackRepo.updates)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, trackRepo.updates, tt.req.ID)
			assert.Equal(t, 1, cache.invalidated)
		})
	}
}

func TestDeleteTrack(t *testing.T) {
	trackRepo := newMockTrackRepo()
	cache := &mockCache{hasCatalog: true}
	svc := NewTrackService(trackRepo, newMockEventRepo(), newMockFeedbackRepo(), newInlineStore(t), cache)

	ctx := context.Background()
	track := &entity.EventTrack{Name: "Backend"}
	require.NoError(t, trackRepo.Create(ctx, track))

	require.NoError(t, svc.DeleteTrack(ctx, track.ID))
	assert.Equal(t, []int64{track.ID}, trackRepo.deletedIDs)
	assert.Equal(t, 1, cache.invalidated)

	err := svc.DeleteTrack(ctx, track.ID)
	assert.ErrorIs(t, err, entity.ErrTrackNotFound)
}
