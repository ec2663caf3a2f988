package feedback

import (
	"context"
	"fmt"

	"github.com/lawding/leavecalc-api/internal/domain/feedback"
)

type Service interface {
	Submit(ctx context.Context, req feedback.SubmitFeedbackRequest) (feedback.FeedbackResponse, error)
	List(ctx context.Context, page, limit int) ([]feedback.FeedbackResponse, int64, error)
}

type FeedbackServiceImpl struct {
	feedbackRepo feedback.Repository
}

func NewFeedbackService(feedbackRepo feedback.Repository) *FeedbackServiceImpl {
	return &FeedbackServiceImpl{feedbackRepo: feedbackRepo}
}

// Submit implements Service.
func (s *FeedbackServiceImpl) Submit(ctx context.Context, req feedback.SubmitFeedbackRequest) (feedback.FeedbackResponse, error) {
	if err := req.Validate(); err != nil {
		return feedback.FeedbackResponse{}, err
	}

	entity := feedback.Feedback{
		Type:          feedback.Type(req.Type),
		Content:       req.Content,
		Email:         req.Email,
		Rating:        req.Rating,
		CalculationID: req.CalculationID,
		Platform:      req.Platform,
	}

	created, err := s.feedbackRepo.Create(ctx, entity)
	if err != nil {
		return feedback.FeedbackResponse{}, fmt.Errorf("failed to create feedback: %w", err)
	}

	return feedback.ToResponse(created), nil
}

// List implements Service. Pages are 1-based; out-of-range values fall back
// to the defaults.
func (s *FeedbackServiceImpl) List(ctx context.Context, page, limit int) ([]feedback.FeedbackResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := s.feedbackRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list feedback: %w", err)
	}

	responses := make([]feedback.FeedbackResponse, 0, len(items))
	for _, f := range items {
		responses = append(responses, feedback.ToResponse(f))
	}
	return responses, total, nil
}
