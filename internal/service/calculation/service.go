package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/lawding/leavecalc-api/internal/domain/calculation"
	"github.com/lawding/leavecalc-api/internal/pkg/dateutil"
)

type Service interface {
	Calculate(ctx context.Context, req calculation.CalculateRequest) (calculation.CalculationResult, error)
}

type CalculationServiceImpl struct {
	calculator calculation.Calculator
}

func NewCalculationService(calculator calculation.Calculator) Service {
	return &CalculationServiceImpl{calculator: calculator}
}

// Calculate implements Service. It runs the full submit flow: validate the
// employment window, admit each non-working period and company holiday the
// way the client admits list entries (first failure aborts everything),
// build the normalized payload, and forward it to the backend in a single
// attempt.
func (s *CalculationServiceImpl) Calculate(ctx context.Context, req calculation.CalculateRequest) (calculation.CalculationResult, error) {
	hireDate, err := dateutil.ParseDate(req.HireDate)
	if err != nil {
		return calculation.CalculationResult{}, fmt.Errorf("failed to parse hire date: %w", err)
	}
	referenceDate, err := dateutil.ParseDate(req.ReferenceDate)
	if err != nil {
		return calculation.CalculationResult{}, fmt.Errorf("failed to parse reference date: %w", err)
	}

	window, err := ValidateEmploymentWindow(hireDate, referenceDate)
	if err != nil {
		return calculation.CalculationResult{}, err
	}

	accepted := make([]calculation.DateRange, 0, len(req.NonWorkingPeriods))
	periods := make([]calculation.NonWorkingPeriod, 0, len(req.NonWorkingPeriods))
	for _, item := range req.NonWorkingPeriods {
		start, err := dateutil.ParseDate(item.StartDate)
		if err != nil {
			return calculation.CalculationResult{}, fmt.Errorf("failed to parse period start date: %w", err)
		}
		end, err := dateutil.ParseDate(item.EndDate)
		if err != nil {
			return calculation.CalculationResult{}, fmt.Errorf("failed to parse period end date: %w", err)
		}

		normalized, err := CheckPeriodInsert(accepted, calculation.DateRange{Start: start, End: end}, window)
		if err != nil {
			return calculation.CalculationResult{}, err
		}
		accepted = append(accepted, normalized)
		periods = append(periods, calculation.NonWorkingPeriod{Reason: item.Reason, Range: normalized})
	}

	holidays := make([]time.Time, 0, len(req.CompanyHolidays))
	for _, item := range req.CompanyHolidays {
		date, err := dateutil.ParseDate(item.Date)
		if err != nil {
			return calculation.CalculationResult{}, fmt.Errorf("failed to parse holiday date: %w", err)
		}

		day, err := CheckHolidayInsert(holidays, date, window)
		if err != nil {
			return calculation.CalculationResult{}, err
		}
		holidays = append(holidays, day)
	}

	var fiscalYearDate *time.Time
	if req.FiscalYearDate != nil {
		parsed, err := dateutil.ParseDate(*req.FiscalYearDate)
		if err != nil {
			return calculation.CalculationResult{}, fmt.Errorf("failed to parse fiscal year date: %w", err)
		}
		fiscalYearDate = &parsed
	}

	payload := BuildRequest(BuildInput{
		CalculationType: calculation.CalculationType(req.CalculationType),
		HireDate:        window.Start,
		ReferenceDate:   window.End,
		FiscalYearDate:  fiscalYearDate,
		Periods:         periods,
		Holidays:        holidays,
	})

	return s.calculator.Calculate(ctx, payload)
}
