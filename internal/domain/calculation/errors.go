package calculation

import "errors"

// Validation errors, surfaced before anything is sent upstream.
var (
	ErrHireAfterReference      = errors.New("hire date must not be after the reference date")
	ErrReferenceBeforeBaseline = errors.New("reference date must be after 2017-05-30")
	ErrInvalidDateRange        = errors.New("period end date must not be before its start date")
	ErrPeriodLimitReached      = errors.New("at most 3 non-working periods can be added")
	ErrPeriodOverlap           = errors.New("period overlaps an existing non-working period")
	ErrPeriodOutOfRange        = errors.New("period must lie between the hire date and the reference date")
	ErrHolidayLimitReached     = errors.New("at most 3 company holidays can be added")
	ErrDuplicateHoliday        = errors.New("company holiday already added for that date")
	ErrHolidayOutOfRange       = errors.New("company holiday must lie between the hire date and the reference date")
)

// Upstream errors. The backend call is a single attempt, no retries; these
// are terminal for the request.
var (
	ErrUpstreamUnauthorized  = errors.New("calculation backend rejected the service credentials")
	ErrUpstreamRequestFailed = errors.New("calculation backend request failed")
	ErrUpstreamDecodeFailed  = errors.New("calculation backend returned an undecodable response")
)
