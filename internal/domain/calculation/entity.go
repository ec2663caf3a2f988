package calculation

import "time"

// BaselineDate is the earliest reference date the calculation backend
// supports; references on or before this day are rejected client-side.
// 2017-05-30 is the effective date of the amended Labor Standards Act
// annual-leave rules the backend implements.
var BaselineDate = time.Date(2017, time.May, 30, 0, 0, 0, 0, time.FixedZone("KST", 9*60*60))

// Working-set limits enforced before any upstream call.
const (
	MaxNonWorkingPeriods = 3
	MaxCompanyHolidays   = 3
)

// CalculationType selects the leave-year basis.
type CalculationType int

const (
	CalculationTypeHireDate   CalculationType = 1 // anniversary of the hire date
	CalculationTypeFiscalYear CalculationType = 2 // fixed month/day fiscal year start
)

func (t CalculationType) Valid() bool {
	return t == CalculationTypeHireDate || t == CalculationTypeFiscalYear
}

// DateRange is a closed interval of calendar days, normalized to
// start-of-day. Start <= End always holds once validated.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether r and other share at least one calendar day.
// Bounds are inclusive: touching endpoints count as an overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !r.End.Before(other.Start)
}

// Contains reports whether t lies within [r.Start, r.End].
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ContainsRange reports whether other lies entirely within r. Partial
// overlap is not containment.
func (r DateRange) ContainsRange(other DateRange) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

// NonWorkingType is a statutory absence category affecting leave accrual.
// The codes are the backend's wire values.
type NonWorkingType int

const (
	NonWorkingParentalLeave         NonWorkingType = 1  // 육아휴직
	NonWorkingMaternityLeave        NonWorkingType = 2  // 출산전후휴가
	NonWorkingMiscarriageLeave      NonWorkingType = 3  // 유사산휴가
	NonWorkingReserveForcesTraining NonWorkingType = 4  // 예비군훈련
	NonWorkingIndustrialAccident    NonWorkingType = 5  // 업무상 부상 또는 질병(산재인정)
	NonWorkingCivicDuty             NonWorkingType = 6  // 공민권 행사를 위한 휴무일
	NonWorkingSpouseMaternityLeave  NonWorkingType = 7  // 배우자 출산휴가
	NonWorkingFamilyCareLeave       NonWorkingType = 8  // 가족돌봄휴가
	NonWorkingUnfairDismissal       NonWorkingType = 9  // 부당해고
	NonWorkingIllegalLockout        NonWorkingType = 10 // 불법직장폐쇄
	NonWorkingUnauthorizedAbsence   NonWorkingType = 11 // 무단결근
	NonWorkingDisciplinaryAction    NonWorkingType = 12 // 징계로 인한 정직, 강제 휴직, 직위해제
	NonWorkingIllegalStrike         NonWorkingType = 13 // 불법쟁의행위
	NonWorkingMilitaryServiceLeave  NonWorkingType = 14 // 병역의무 이행을 위한 휴직
	NonWorkingPersonalIllnessLeave  NonWorkingType = 15 // 개인질병(업무상 질병X)으로 인한 휴직
)

// nonWorkingTypeLabels is the canonical bidirectional mapping between the
// category codes and the reason labels the clients display and submit.
var nonWorkingTypeLabels = map[NonWorkingType]string{
	NonWorkingParentalLeave:         "육아휴직",
	NonWorkingMaternityLeave:        "출산전후휴가",
	NonWorkingMiscarriageLeave:      "유사산휴가",
	NonWorkingReserveForcesTraining: "예비군훈련",
	NonWorkingIndustrialAccident:    "업무상 부상 또는 질병(산재인정)",
	NonWorkingCivicDuty:             "공민권 행사를 위한 휴무일",
	NonWorkingSpouseMaternityLeave:  "배우자 출산휴가",
	NonWorkingFamilyCareLeave:       "가족돌봄휴가",
	NonWorkingUnfairDismissal:       "부당해고",
	NonWorkingIllegalLockout:        "불법직장폐쇄",
	NonWorkingUnauthorizedAbsence:   "무단결근",
	NonWorkingDisciplinaryAction:    "징계로 인한 정직, 강제 휴직, 직위해제",
	NonWorkingIllegalStrike:         "불법쟁의행위",
	NonWorkingMilitaryServiceLeave:  "병역의무 이행을 위한 휴직",
	NonWorkingPersonalIllnessLeave:  "개인질병(업무상 질병X)으로 인한 휴직",
}

var nonWorkingTypeByLabel = func() map[string]NonWorkingType {
	m := make(map[string]NonWorkingType, len(nonWorkingTypeLabels))
	for t, label := range nonWorkingTypeLabels {
		m[label] = t
	}
	return m
}()

// Label returns the canonical reason label for the category, or "" for an
// unknown code.
func (t NonWorkingType) Label() string {
	return nonWorkingTypeLabels[t]
}

// NonWorkingTypeFromLabel resolves a reason label by exact match.
func NonWorkingTypeFromLabel(label string) (NonWorkingType, bool) {
	t, ok := nonWorkingTypeByLabel[label]
	return t, ok
}

// NonWorkingTypes lists all categories in ascending code order.
func NonWorkingTypes() []NonWorkingType {
	types := make([]NonWorkingType, 0, len(nonWorkingTypeLabels))
	for t := NonWorkingParentalLeave; t <= NonWorkingPersonalIllnessLeave; t++ {
		types = append(types, t)
	}
	return types
}

// NonWorkingPeriod is a validated special-leave entry in the working set.
type NonWorkingPeriod struct {
	Reason string
	Range  DateRange
}

// CompanyHoliday is a single company-designated non-working day.
type CompanyHoliday struct {
	Reason string
	Date   time.Time
}
