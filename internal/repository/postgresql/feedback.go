package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lawding/leavecalc-api/internal/domain/feedback"
	"github.com/lawding/leavecalc-api/internal/pkg/database"
)

type feedbackRepositoryImpl struct {
	db *database.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *database.DB) feedback.Repository {
	return &feedbackRepositoryImpl{db: db}
}

// Create implements feedback.Repository.
func (r *feedbackRepositoryImpl) Create(ctx context.Context, f feedback.Feedback) (feedback.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO feedback (id, type, content, email, rating, calculation_id, platform, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		f.ID,
		string(f.Type),
		f.Content,
		f.Email,
		f.Rating,
		f.CalculationID,
		f.Platform,
		f.CreatedAt,
	)
	if err != nil {
		return feedback.Feedback{}, fmt.Errorf("failed to create feedback: %w", err)
	}

	return f, nil
}

// List implements feedback.Repository.
func (r *feedbackRepositoryImpl) List(ctx context.Context, page, limit int) ([]feedback.Feedback, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	query := `
		SELECT id, type, content, email, rating, calculation_id, platform, created_at
		FROM feedback
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	items := make([]feedback.Feedback, 0)
	for rows.Next() {
		var f feedback.Feedback
		var typeStr string
		if err := rows.Scan(
			&f.ID, &typeStr, &f.Content, &f.Email, &f.Rating,
			&f.CalculationID, &f.Platform, &f.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		f.Type = feedback.Type(typeStr)
		items = append(items, f)
	}

	return items, total, nil
}
