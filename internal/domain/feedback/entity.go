package feedback

import "time"

// Type categorizes a submission. The values are the wire strings the mobile
// clients have always sent.
type Type string

const (
	TypeErrorReport  Type = "ERROR_REPORT"
	TypeImprovement  Type = "IMPROVEMENT"
	TypeQuestion     Type = "QUESTION"
	TypeSatisfaction Type = "SATISFACTION"
	TypeOther        Type = "OTHER"
)

func (t Type) Valid() bool {
	switch t {
	case TypeErrorReport, TypeImprovement, TypeQuestion, TypeSatisfaction, TypeOther:
		return true
	}
	return false
}

// Feedback entity
type Feedback struct {
	ID            string
	Type          Type
	Content       *string
	Email         *string
	Rating        *int
	CalculationID *string
	Platform      *string
	CreatedAt     time.Time
}
