package rating

import "errors"

var (
	ErrStateNotFound     = errors.New("rating state not found for device")
	ErrInvalidAppVersion = errors.New("invalid app version string")
)
