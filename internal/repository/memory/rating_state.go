// Package memory provides in-memory store implementations for testing/dev.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/lawding/leavecalc-api/internal/domain/rating"
)

type RatingStateStore struct {
	mu     sync.RWMutex
	states map[string]rating.State
}

func NewRatingStateStore() *RatingStateStore {
	return &RatingStateStore{
		states: make(map[string]rating.State),
	}
}

func (m *RatingStateStore) Get(_ context.Context, deviceID string) (rating.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.states[deviceID]
	if !ok {
		return rating.State{}, rating.ErrStateNotFound
	}
	return state, nil
}

func (m *RatingStateStore) Save(_ context.Context, state rating.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = time.Now()
	}
	m.states[state.DeviceID] = state
	return nil
}

func (m *RatingStateStore) ClearCooldown(_ context.Context, deviceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.states[deviceID]
	if !ok {
		return nil
	}
	state.CooldownUntil = nil
	state.UpdatedAt = time.Now()
	m.states[deviceID] = state
	return nil
}
