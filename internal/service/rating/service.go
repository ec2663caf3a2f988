package rating

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lawding/leavecalc-api/internal/domain/rating"
	"github.com/lawding/leavecalc-api/internal/pkg/version"
)

// cooldownDays is how long the prompt stays hidden after a successful
// rating submission.
const cooldownDays = 28

type Service interface {
	Launch(ctx context.Context, deviceID, appVersion string) error
	CanShow(ctx context.Context, deviceID string) (bool, error)
	MarkSubmitted(ctx context.Context, deviceID, appVersion string) error
	MarkDismissed(ctx context.Context, deviceID string) error
}

// PromptServiceImpl decides when a device may be shown the rating prompt.
//
// Two flags drive the decision: a persisted cooldown (survives restarts of
// both the app and this service) and a session dismissal that lives only in
// process memory and is dropped when the device reports a cold start.
type PromptServiceImpl struct {
	store rating.StateStore

	mu        sync.Mutex
	dismissed map[string]bool

	now func() time.Time
}

func NewPromptService(store rating.StateStore) *PromptServiceImpl {
	return &PromptServiceImpl{
		store:     store,
		dismissed: make(map[string]bool),
		now:       time.Now,
	}
}

// Launch implements Service. Called on app cold start: the previous
// session's dismissal is forgotten, and if the app's major version moved
// past the one recorded at the last submission, the cooldown is cleared so
// the prompt becomes eligible again immediately.
func (s *PromptServiceImpl) Launch(ctx context.Context, deviceID, appVersion string) error {
	s.mu.Lock()
	delete(s.dismissed, deviceID)
	s.mu.Unlock()

	currentMajor, ok := version.ParseMajor(appVersion)
	if !ok {
		return rating.ErrInvalidAppVersion
	}

	state, err := s.store.Get(ctx, deviceID)
	if err != nil {
		if err == rating.ErrStateNotFound {
			return nil
		}
		return fmt.Errorf("failed to load rating state: %w", err)
	}

	lastMajor := 0
	if state.LastSubmittedMajor != nil {
		lastMajor = *state.LastSubmittedMajor
	}
	if currentMajor > lastMajor {
		if err := s.store.ClearCooldown(ctx, deviceID); err != nil {
			return fmt.Errorf("failed to clear rating cooldown: %w", err)
		}
	}

	return nil
}

// CanShow implements Service.
func (s *PromptServiceImpl) CanShow(ctx context.Context, deviceID string) (bool, error) {
	s.mu.Lock()
	dismissed := s.dismissed[deviceID]
	s.mu.Unlock()
	if dismissed {
		return false, nil
	}

	state, err := s.store.Get(ctx, deviceID)
	if err != nil {
		if err == rating.ErrStateNotFound {
			return true, nil
		}
		return false, fmt.Errorf("failed to load rating state: %w", err)
	}

	if state.CooldownUntil != nil && s.now().Before(*state.CooldownUntil) {
		return false, nil
	}
	return true, nil
}

// MarkSubmitted implements Service. Starts the 28-day cooldown and records
// the app major version it was started under.
func (s *PromptServiceImpl) MarkSubmitted(ctx context.Context, deviceID, appVersion string) error {
	major, ok := version.ParseMajor(appVersion)
	if !ok {
		return rating.ErrInvalidAppVersion
	}

	until := s.now().AddDate(0, 0, cooldownDays)
	state := rating.State{
		DeviceID:           deviceID,
		CooldownUntil:      &until,
		LastSubmittedMajor: &major,
		UpdatedAt:          s.now(),
	}

	if err := s.store.Save(ctx, state); err != nil {
		return fmt.Errorf("failed to save rating state: %w", err)
	}
	return nil
}

// MarkDismissed implements Service. The dismissal holds until the device's
// next cold start; it is never persisted.
func (s *PromptServiceImpl) MarkDismissed(_ context.Context, deviceID string) error {
	s.mu.Lock()
	s.dismissed[deviceID] = true
	s.mu.Unlock()
	return nil
}
