package rating

import "context"

// StateStore - key-value interface for per-device cooldown state, keyed by
// device ID. Get returns ErrStateNotFound for unknown devices.
type StateStore interface {
	Get(ctx context.Context, deviceID string) (State, error)
	Save(ctx context.Context, state State) error
	ClearCooldown(ctx context.Context, deviceID string) error
}
