package calculation

import (
	"testing"
	"time"

	"github.com/lawding/leavecalc-api/internal/domain/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput(t *testing.T) BuildInput {
	return BuildInput{
		CalculationType: calculation.CalculationTypeHireDate,
		HireDate:        day(t, "2023-01-10"),
		ReferenceDate:   day(t, "2024-06-01"),
	}
}

func TestBuildRequest_FormatsDates(t *testing.T) {
	req := BuildRequest(baseInput(t))

	assert.Equal(t, 1, req.CalculationType)
	assert.Equal(t, "2023-01-10", req.HireDate)
	assert.Equal(t, "2024-06-01", req.ReferenceDate)
	assert.Empty(t, req.NonWorkingPeriods)
	assert.Empty(t, req.CompanyHolidays)
}

func TestBuildRequest_FiscalYearOmittedWhenUnset(t *testing.T) {
	req := BuildRequest(baseInput(t))
	assert.Nil(t, req.FiscalYear)
}

func TestBuildRequest_FiscalYearMonthDayOnly(t *testing.T) {
	in := baseInput(t)
	in.CalculationType = calculation.CalculationTypeFiscalYear
	fiscal := day(t, "2023-03-01")
	in.FiscalYearDate = &fiscal

	req := BuildRequest(in)

	require.NotNil(t, req.FiscalYear)
	assert.Equal(t, "03-01", *req.FiscalYear)
	assert.Len(t, *req.FiscalYear, 5)
}

func TestBuildRequest_MapsReasonLabels(t *testing.T) {
	in := baseInput(t)
	in.Periods = []calculation.NonWorkingPeriod{
		{Reason: "육아휴직", Range: window(t, "2023-02-01", "2023-02-05")},
		{Reason: "무단결근", Range: window(t, "2023-04-01", "2023-04-02")},
	}

	req := BuildRequest(in)

	require.Len(t, req.NonWorkingPeriods, 2)
	assert.Equal(t, calculation.NonWorkingPeriodPayload{
		Type: 1, StartDate: "2023-02-01", EndDate: "2023-02-05",
	}, req.NonWorkingPeriods[0])
	assert.Equal(t, calculation.NonWorkingPeriodPayload{
		Type: 11, StartDate: "2023-04-01", EndDate: "2023-04-02",
	}, req.NonWorkingPeriods[1])
}

// Unmatched reason labels are silently excluded from the outgoing request.
// This mirrors the shipped client and is a known data-loss risk: the backend
// receives fewer non-working periods than the user entered.
func TestBuildRequest_DropsUnmatchedReasonLabels(t *testing.T) {
	in := baseInput(t)
	in.Periods = []calculation.NonWorkingPeriod{
		{Reason: "육아휴직", Range: window(t, "2023-02-01", "2023-02-05")},
		{Reason: "없는 사유", Range: window(t, "2023-03-01", "2023-03-05")},
		{Reason: "parental leave", Range: window(t, "2023-04-01", "2023-04-05")}, // not the canonical label
	}

	req := BuildRequest(in)

	require.Len(t, req.NonWorkingPeriods, 1)
	assert.Equal(t, 1, req.NonWorkingPeriods[0].Type)
}

func TestBuildRequest_SortsHolidaysAscending(t *testing.T) {
	in := baseInput(t)
	in.Holidays = []time.Time{
		day(t, "2023-12-25"),
		day(t, "2023-05-01"),
		day(t, "2023-10-03"),
	}

	req := BuildRequest(in)

	assert.Equal(t, []string{"2023-05-01", "2023-10-03", "2023-12-25"}, req.CompanyHolidays)
}

func TestNonWorkingTypeLabelRoundTrip(t *testing.T) {
	types := calculation.NonWorkingTypes()
	require.Len(t, types, 15)

	for _, typ := range types {
		label := typ.Label()
		require.NotEmpty(t, label, "type %d has no label", typ)

		back, ok := calculation.NonWorkingTypeFromLabel(label)
		assert.True(t, ok, "label %q did not resolve", label)
		assert.Equal(t, typ, back, "label %q round-tripped to %d", label, back)
	}
}
