package calculation

import (
	"log/slog"
	"sort"
	"time"

	"github.com/lawding/leavecalc-api/internal/domain/calculation"
	"github.com/lawding/leavecalc-api/internal/pkg/dateutil"
)

// BuildInput is validated state ready to be normalized into the upstream
// payload. Construction cannot fail: every rule ran before this point.
type BuildInput struct {
	CalculationType calculation.CalculationType
	HireDate        time.Time
	ReferenceDate   time.Time
	FiscalYearDate  *time.Time
	Periods         []calculation.NonWorkingPeriod
	Holidays        []time.Time
}

// BuildRequest assembles the upstream CalculationRequest:
// dates as "yyyy-MM-dd", the fiscal-year start as "MM-dd" with the year
// dropped (omitted entirely when unset), reason labels resolved to category
// codes by exact match, and holidays sorted ascending.
//
// A reason label that fails the lookup is dropped from the outgoing list,
// matching the shipped client behavior. The drop is logged because it can
// silently under-report non-working time to the backend.
func BuildRequest(in BuildInput) calculation.CalculationRequest {
	periods := make([]calculation.NonWorkingPeriodPayload, 0, len(in.Periods))
	for _, p := range in.Periods {
		t, ok := calculation.NonWorkingTypeFromLabel(p.Reason)
		if !ok {
			slog.Warn("dropping non-working period with unknown reason label",
				"reason", p.Reason,
				"start_date", dateutil.FormatDate(p.Range.Start),
				"end_date", dateutil.FormatDate(p.Range.End),
			)
			continue
		}
		periods = append(periods, calculation.NonWorkingPeriodPayload{
			Type:      int(t),
			StartDate: dateutil.FormatDate(p.Range.Start),
			EndDate:   dateutil.FormatDate(p.Range.End),
		})
	}

	holidays := make([]time.Time, len(in.Holidays))
	copy(holidays, in.Holidays)
	sort.Slice(holidays, func(i, j int) bool { return holidays[i].Before(holidays[j]) })

	holidayStrings := make([]string, 0, len(holidays))
	for _, d := range holidays {
		holidayStrings = append(holidayStrings, dateutil.FormatDate(d))
	}

	var fiscalYear *string
	if in.FiscalYearDate != nil {
		md := dateutil.FormatMonthDay(*in.FiscalYearDate)
		fiscalYear = &md
	}

	return calculation.CalculationRequest{
		CalculationType:   int(in.CalculationType),
		FiscalYear:        fiscalYear,
		HireDate:          dateutil.FormatDate(in.HireDate),
		ReferenceDate:     dateutil.FormatDate(in.ReferenceDate),
		NonWorkingPeriods: periods,
		CompanyHolidays:   holidayStrings,
	}
}
