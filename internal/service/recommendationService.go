package service

import (
	"context"
	"fmt"

	repository "github.com/ds124wfegd/event-catalog/internal/database/postgres"
	"github.com/ds124wfegd/event-catalog/internal/entity"
)

type recommendationService struct {
	recommendationRepo repository.RecommendationRepository
	eventRepo          repository.EventRepository
}

// NewRecommendationService creates a new instance of RecommendationService
func NewRecommendationService(
	recommendationRepo repository.RecommendationRepository,
	eventRepo repository.EventRepository,
) RecommendationService {
	return &recommendationService{
		recommendationRepo: recommendationRepo,
		eventRepo:          eventRepo,
	}
}

// Recommend adds the event to the recommended set. Recommending an
// event twice is a no-op, not an error.
func (s *recommendationService) Recommend(ctx context.Context, eventID int64) error {
	exists, err := s.eventRepo.Exists(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}
	if !exists {
		return entity.ErrEventNotFound
	}

	if err := s.recommendationRepo.Add(ctx, eventID); err != nil {
		return fmt.Errorf("failed to add recommendation: %w", err)
	}

	return nil
}

func (s *recommendationService) ListRecommended(ctx context.Context) ([]int64, error) {
	ids, err := s.recommendationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}

	return ids, nil
}
