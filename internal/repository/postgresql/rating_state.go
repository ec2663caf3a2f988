package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lawding/leavecalc-api/internal/domain/rating"
	"github.com/lawding/leavecalc-api/internal/pkg/database"
)

type ratingStateRepositoryImpl struct {
	db *database.DB
}

// NewRatingStateRepository creates a new rating state store
func NewRatingStateRepository(db *database.DB) rating.StateStore {
	return &ratingStateRepositoryImpl{db: db}
}

// Get implements rating.StateStore.
func (r *ratingStateRepositoryImpl) Get(ctx context.Context, deviceID string) (rating.State, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT device_id, cooldown_until, last_submitted_major, updated_at
		FROM device_rating_states
		WHERE device_id = $1
	`

	var state rating.State
	err := q.QueryRow(ctx, query, deviceID).Scan(
		&state.DeviceID, &state.CooldownUntil, &state.LastSubmittedMajor, &state.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rating.State{}, rating.ErrStateNotFound
		}
		return rating.State{}, fmt.Errorf("failed to get rating state: %w", err)
	}

	return state, nil
}

// Save implements rating.StateStore.
func (r *ratingStateRepositoryImpl) Save(ctx context.Context, state rating.State) error {
	q := GetQuerier(ctx, r.db)

	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = time.Now()
	}

	query := `
		INSERT INTO device_rating_states (device_id, cooldown_until, last_submitted_major, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (device_id) DO UPDATE
		SET cooldown_until = EXCLUDED.cooldown_until,
			last_submitted_major = EXCLUDED.last_submitted_major,
			updated_at = EXCLUDED.updated_at
	`

	_, err := q.Exec(ctx, query, state.DeviceID, state.CooldownUntil, state.LastSubmittedMajor, state.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save rating state: %w", err)
	}

	return nil
}

// ClearCooldown implements rating.StateStore.
func (r *ratingStateRepositoryImpl) ClearCooldown(ctx context.Context, deviceID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE device_rating_states
		SET cooldown_until = NULL, updated_at = $2
		WHERE device_id = $1
	`

	_, err := q.Exec(ctx, query, deviceID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to clear rating cooldown: %w", err)
	}

	return nil
}
