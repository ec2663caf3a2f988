package calculation

import (
	"time"

	"github.com/lawding/leavecalc-api/internal/domain/calculation"
	"github.com/lawding/leavecalc-api/internal/pkg/dateutil"
)

// All rules compare start-of-day values in KST. They run strictly before
// the request builder: a request is never sent upstream on any failure.

// IsHireBeforeOrEqualReference reports whether the employment window is
// ordered. Equal days pass.
func IsHireBeforeOrEqualReference(hire, reference time.Time) bool {
	return !dateutil.StartOfDay(hire).After(dateutil.StartOfDay(reference))
}

// IsReferenceAfterBaseline requires the reference date to be strictly after
// the baseline day.
func IsReferenceAfterBaseline(reference, baseline time.Time) bool {
	return dateutil.StartOfDay(reference).After(dateutil.StartOfDay(baseline))
}

// ValidateEmploymentWindow checks the hire/reference pair against ordering
// and the baseline, returning the window as a normalized range on success.
func ValidateEmploymentWindow(hire, reference time.Time) (calculation.DateRange, error) {
	if !IsHireBeforeOrEqualReference(hire, reference) {
		return calculation.DateRange{}, calculation.ErrHireAfterReference
	}
	if !IsReferenceAfterBaseline(reference, calculation.BaselineDate) {
		return calculation.DateRange{}, calculation.ErrReferenceBeforeBaseline
	}
	return calculation.DateRange{
		Start: dateutil.StartOfDay(hire),
		End:   dateutil.StartOfDay(reference),
	}, nil
}

// CheckPeriodInsert validates adding candidate to the existing working set.
// Check order matches the client flow: range validity, then the capacity
// limit (a full list rejects before overlap is even considered), then
// overlap against every accepted entry, then containment in the employment
// window. The returned range is normalized to start-of-day.
func CheckPeriodInsert(existing []calculation.DateRange, candidate calculation.DateRange, window calculation.DateRange) (calculation.DateRange, error) {
	normalized := calculation.DateRange{
		Start: dateutil.StartOfDay(candidate.Start),
		End:   dateutil.StartOfDay(candidate.End),
	}

	if normalized.End.Before(normalized.Start) {
		return calculation.DateRange{}, calculation.ErrInvalidDateRange
	}
	if len(existing) >= calculation.MaxNonWorkingPeriods {
		return calculation.DateRange{}, calculation.ErrPeriodLimitReached
	}
	for _, r := range existing {
		if normalized.Overlaps(r) {
			return calculation.DateRange{}, calculation.ErrPeriodOverlap
		}
	}
	if !window.ContainsRange(normalized) {
		return calculation.DateRange{}, calculation.ErrPeriodOutOfRange
	}

	return normalized, nil
}

// CheckHolidayInsert validates adding a company holiday: capacity first,
// then same-day uniqueness, then membership in the employment window.
// Holidays are degenerate one-day ranges, so uniqueness is same-day
// equality rather than a full overlap test.
func CheckHolidayInsert(existing []time.Time, candidate time.Time, window calculation.DateRange) (time.Time, error) {
	day := dateutil.StartOfDay(candidate)

	if len(existing) >= calculation.MaxCompanyHolidays {
		return time.Time{}, calculation.ErrHolidayLimitReached
	}
	for _, d := range existing {
		if dateutil.SameDay(d, day) {
			return time.Time{}, calculation.ErrDuplicateHoliday
		}
	}
	if !window.Contains(day) {
		return time.Time{}, calculation.ErrHolidayOutOfRange
	}

	return day, nil
}
