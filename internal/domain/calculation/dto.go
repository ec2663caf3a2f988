package calculation

import (
	"strconv"

	"github.com/lawding/leavecalc-api/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CalculateRequest is the client-facing payload. Dates arrive as
// "yyyy-MM-dd" strings; periods carry the reason label the client displayed.
type CalculateRequest struct {
	CalculationType   int                    `json:"calculation_type"`
	HireDate          string                 `json:"hire_date"`
	ReferenceDate     string                 `json:"reference_date"`
	FiscalYearDate    *string                `json:"fiscal_year_date,omitempty"`
	NonWorkingPeriods []NonWorkingPeriodItem `json:"non_working_periods,omitempty"`
	CompanyHolidays   []CompanyHolidayItem   `json:"company_holidays,omitempty"`
}

type NonWorkingPeriodItem struct {
	Reason    string `json:"reason"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type CompanyHolidayItem struct {
	Reason string `json:"reason,omitempty"`
	Date   string `json:"date"`
}

// Validate checks shape only: presence and date formats. Ordering,
// containment, overlap and limit rules are the calculation service's job.
func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !CalculationType(r.CalculationType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "calculation_type",
			Message: "must be 1 (hire date) or 2 (fiscal year)",
		})
	}

	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be yyyy-MM-dd"})
	}

	if validator.IsEmpty(r.ReferenceDate) {
		errs = append(errs, validator.ValidationError{Field: "reference_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.ReferenceDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "reference_date", Message: "must be yyyy-MM-dd"})
	}

	if r.FiscalYearDate != nil {
		if _, ok := validator.IsValidDate(*r.FiscalYearDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "fiscal_year_date", Message: "must be yyyy-MM-dd"})
		}
	} else if CalculationType(r.CalculationType) == CalculationTypeFiscalYear {
		errs = append(errs, validator.ValidationError{
			Field:   "fiscal_year_date",
			Message: "is required for fiscal-year calculations",
		})
	}

	for i, p := range r.NonWorkingPeriods {
		field := "non_working_periods[" + strconv.Itoa(i) + "]"
		if validator.IsEmpty(p.Reason) {
			errs = append(errs, validator.ValidationError{Field: field + ".reason", Message: "is required"})
		}
		if _, ok := validator.IsValidDate(p.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: field + ".start_date", Message: "must be yyyy-MM-dd"})
		}
		if _, ok := validator.IsValidDate(p.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: field + ".end_date", Message: "must be yyyy-MM-dd"})
		}
	}

	for i, h := range r.CompanyHolidays {
		field := "company_holidays[" + strconv.Itoa(i) + "]"
		if _, ok := validator.IsValidDate(h.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: field + ".date", Message: "must be yyyy-MM-dd"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CalculationRequest is the normalized upstream payload, built fresh on each
// submit attempt. Field names follow the backend's JSON contract.
type CalculationRequest struct {
	CalculationType   int                       `json:"calculationType"`
	FiscalYear        *string                   `json:"fiscalYear,omitempty"`
	HireDate          string                    `json:"hireDate"`
	ReferenceDate     string                    `json:"referenceDate"`
	NonWorkingPeriods []NonWorkingPeriodPayload `json:"nonWorkingPeriods"`
	CompanyHolidays   []string                  `json:"companyHolidays"`
}

type NonWorkingPeriodPayload struct {
	Type      int    `json:"type"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CalculationResult is the backend's response document, rendered to the
// caller verbatim. Leave-day quantities are fractional.
type CalculationResult struct {
	CalculationID         string            `json:"calculationId,omitempty"`
	CalculationType       string            `json:"calculationType"`
	AnnualLeaveResultType string            `json:"annualLeaveResultType"`
	FiscalYear            string            `json:"fiscalYear,omitempty"`
	HireDate              string            `json:"hireDate"`
	ReferenceDate         string            `json:"referenceDate"`
	CalculationDetail     CalculationDetail `json:"calculationDetail"`
	Explanation           string            `json:"explanation"`
}

type CalculationDetail struct {
	MonthlyLeaveAccrualPeriod  AccrualPeriod   `json:"monthlyLeaveAccrualPeriod"`
	MonthlyLeaveDays           decimal.Decimal `json:"monthlyLeaveDays"`
	ProratedLeaveAccrualPeriod AccrualPeriod   `json:"proratedLeaveAccrualPeriod"`
	ProratedLeaveDays          decimal.Decimal `json:"proratedLeaveDays"`
	TotalLeaveDays             decimal.Decimal `json:"totalLeaveDays"`
}

type AccrualPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
