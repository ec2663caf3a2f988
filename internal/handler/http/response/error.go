package response

import (
	"errors"
	"net/http"

	"github.com/lawding/leavecalc-api/internal/domain/auth"
	"github.com/lawding/leavecalc-api/internal/domain/calculation"
	"github.com/lawding/leavecalc-api/internal/domain/feedback"
	"github.com/lawding/leavecalc-api/internal/domain/rating"
	"github.com/lawding/leavecalc-api/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Shape errors (missing fields, malformed dates) from request Validate()
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Calculation rule violations. Well-formed requests that break a leave
	// rule answer 400 with a stable code.
	case errors.Is(err, calculation.ErrHireAfterReference):
		BadRequest(w, "HIRE_AFTER_REFERENCE", "Hire date must not be after the reference date", nil)
	case errors.Is(err, calculation.ErrReferenceBeforeBaseline):
		BadRequest(w, "REFERENCE_BEFORE_BASELINE", "Reference date must be after 2017-05-30", nil)
	case errors.Is(err, calculation.ErrInvalidDateRange):
		BadRequest(w, "INVALID_DATE_RANGE", "Period end date precedes its start date", nil)
	case errors.Is(err, calculation.ErrPeriodLimitReached):
		BadRequest(w, "PERIOD_LIMIT_REACHED", "At most 3 non-working periods are allowed", nil)
	case errors.Is(err, calculation.ErrPeriodOverlap):
		BadRequest(w, "PERIOD_OVERLAP", "Non-working periods must not overlap", nil)
	case errors.Is(err, calculation.ErrPeriodOutOfRange):
		BadRequest(w, "PERIOD_OUT_OF_RANGE", "Non-working period must lie between hire date and reference date", nil)
	case errors.Is(err, calculation.ErrHolidayLimitReached):
		BadRequest(w, "HOLIDAY_LIMIT_REACHED", "At most 3 company holidays are allowed", nil)
	case errors.Is(err, calculation.ErrDuplicateHoliday):
		BadRequest(w, "DUPLICATE_HOLIDAY", "Company holidays must not repeat a date", nil)
	case errors.Is(err, calculation.ErrHolidayOutOfRange):
		BadRequest(w, "HOLIDAY_OUT_OF_RANGE", "Company holiday must lie between hire date and reference date", nil)

	// Upstream calculation backend failures
	case errors.Is(err, calculation.ErrUpstreamUnauthorized):
		BadGateway(w, "UPSTREAM_UNAUTHORIZED", "Calculation backend rejected the service credentials")
	case errors.Is(err, calculation.ErrUpstreamDecodeFailed):
		BadGateway(w, "UPSTREAM_DECODE_FAILED", "Calculation backend returned an unreadable response")
	case errors.Is(err, calculation.ErrUpstreamRequestFailed):
		BadGateway(w, "UPSTREAM_REQUEST_FAILED", "Calculation backend is unavailable")

	// Auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Rating prompt errors
	case errors.Is(err, rating.ErrInvalidAppVersion):
		BadRequest(w, "INVALID_APP_VERSION", "App version must be major.minor.patch", nil)

	// Feedback errors
	case errors.Is(err, feedback.ErrFeedbackNotFound):
		NotFound(w, "Feedback not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
