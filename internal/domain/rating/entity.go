package rating

import "time"

// State is the persisted rating-prompt cooldown state for one device.
// The session-scoped dismissal flag is deliberately absent: it lives only
// in process memory and is reset when the device reports a cold start.
type State struct {
	DeviceID           string
	CooldownUntil      *time.Time
	LastSubmittedMajor *int
	UpdatedAt          time.Time
}
