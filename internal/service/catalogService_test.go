package service

import (
	"context"
	"testing"

	"github.com/ds124wfegd/event-catalog/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, trackRepo *mockTrackRepo, eventRepo *mockEventRepo, feedbackRepo *mockFeedbackRepo) {
	t.Helper()
	ctx := context.Background()

	track := &entity.EventTrack{Name: "Backend"}
	require.NoError(t, trackRepo.Create(ctx, track))

	event := &entity.Event{TrackID: &track.ID, Name: "GopherCon", Capacity: 300, AvailableSeats: 120}
	require.NoError(t, eventRepo.Create(ctx, event))

	require.NoError(t, feedbackRepo.Create(ctx, &entity.Feedback{EventID: event.ID, Stars: 5, Comment: "great"}))
	require.NoError(t, feedbackRepo.Create(ctx, &entity.Feedback{EventID: event.ID, Stars: 3}))
}

func TestFullCatalog(t *testing.T) {
	trackRepo := newMockTrackRepo()
	eventRepo := newMockEventRepo()
	feedbackRepo := newMockFeedbackRepo()
	seedCatalog(t, trackRepo, eventRepo, feedbackRepo)

	cache := &mockCache{}
	svc := NewCatalogService(trackRepo, eventRepo, feedbackRepo, &mockAdminRepo{}, newInlineStore(t), cache)

	catalog, err := svc.FullCatalog(context.Background())
	require.NoError(t, err)

	require.Len(t, catalog, 1)
	assert.Equal(t, "Backend", catalog[0].Name)
	require.Len(t, catalog[0].Events, 1)
	assert.Equal(t, "GopherCon", catalog[0].Events[0].Name)
	assert.Equal(t, 120, catalog[0].Events[0].AvailableSeats)
	assert.Len(t, catalog[0].Events[0].Feedbacks, 2)

	// The assembled catalog was written to the cache
	assert.Equal(t, 1, cache.setCalls)
}

func TestFullCatalogServedFromCache(t *testing.T) {
	cached := []entity.TrackView{{ID: 7, Name: "Cached"}}
	cache := &mockCache{catalog: cached, hasCatalog: true}

	// Empty repositories prove the read never reached the database
	svc := NewCatalogService(newMockTrackRepo(), newMockEventRepo(), newMockFeedbackRepo(), &mockAdminRepo{}, newInlineStore(t), cache)

	catalog, err := svc.FullCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, cached, catalog)
	assert.Equal(t, 0, cache.setCalls)
}

func TestFullCatalogWithoutCache(t *testing.T) {
	trackRepo := newMockTrackRepo()
	eventRepo := newMockEventRepo()
	feedbackRepo := newMockFeedbackRepo()
	seedCatalog(t, trackRepo, eventRepo, feedbackRepo)

	svc := NewCatalogService(trackRepo, eventRepo, feedbackRepo, &mockAdminRepo{}, newInlineStore(t), nil)

	catalog, err := svc.FullCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog, 1)
}

func TestWipe(t *testing.T) {
	adminRepo := &mockAdminRepo{}
	cache := &mockCache{hasCatalog: true}
	svc := NewCatalogService(newMockTrackRepo(), newMockEventRepo(), newMockFeedbackRepo(), adminRepo, newInlineStore(t), cache)

	require.NoError(t, svc.Wipe(context.Background()))

	assert.True(t, adminRepo.wiped)
	assert.Equal(t, 1, cache.invalidated)
}
