package service

import (
	"context"
	"fmt"

	repository "github.com/ds124wfegd/event-catalog/internal/database/postgres"
	"github.com/ds124wfegd/event-catalog/internal/entity"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	eventRepo    repository.EventRepository
	cache        CatalogCache
}

// NewFeedbackService creates a new instance of FeedbackService
func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	eventRepo repository.EventRepository,
	cache CatalogCache,
) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		eventRepo:    eventRepo,
		cache:        cache,
	}
}

func (s *feedbackService) CreateFeedback(ctx context.Context, req *CreateFeedbackRequest) (*entity.Feedback, error) {
	if req.Stars < entity.MinStars || req.Stars > entity.MaxStars {
		return nil, entity.ErrInvalidStars
	}

	exists, err := s.eventRepo.Exists(ctx, req.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to check event: %w", err)
	}
	if !exists {
		return nil, entity.ErrEventNotFound
	}

	feedback := &entity.Feedback{
		UserID:  req.UserID,
		EventID: req.EventID,
		Stars:   req.Stars,
		Comment: req.Comment,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return feedback, nil
}

func (s *feedbackService) GetAllFeedbacks(ctx context.Context) ([]entity.Feedback, error) {
	feedbacks, err := s.feedbackRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all feedbacks: %w", err)
	}

	return feedbacks, nil
}

func (s *feedbackService) DeleteFeedback(ctx context.Context, id int64) error {
	if err := s.feedbackRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	return nil
}
