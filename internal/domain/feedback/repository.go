package feedback

import "context"

// Repository - interface for the feedback table
type Repository interface {
	Create(ctx context.Context, f Feedback) (Feedback, error)
	List(ctx context.Context, page, limit int) ([]Feedback, int64, error)
}
