package feedback

import (
	"time"

	"github.com/lawding/leavecalc-api/internal/pkg/validator"
)

type SubmitFeedbackRequest struct {
	Type          string  `json:"type"`
	Content       *string `json:"content,omitempty"`
	Email         *string `json:"email,omitempty"`
	Rating        *int    `json:"rating,omitempty"`
	CalculationID *string `json:"calculation_id,omitempty"`
	Platform      *string `json:"platform,omitempty"`
}

func (r *SubmitFeedbackRequest) Validate() error {
	var errs validator.ValidationErrors

	t := Type(r.Type)
	if !t.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "must be one of ERROR_REPORT, IMPROVEMENT, QUESTION, SATISFACTION, OTHER",
		})
	}

	// Ratings prompt submissions carry a score; everything else carries text.
	if t == TypeSatisfaction {
		if r.Rating == nil {
			errs = append(errs, validator.ValidationError{Field: "rating", Message: "is required for SATISFACTION"})
		}
	} else if t.Valid() {
		if r.Content == nil || validator.IsEmpty(*r.Content) {
			errs = append(errs, validator.ValidationError{Field: "content", Message: "is required"})
		}
	}

	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "must be between 1 and 5"})
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FeedbackResponse struct {
	ID            string    `json:"id"`
	Type          Type      `json:"type"`
	Content       *string   `json:"content,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Rating        *int      `json:"rating,omitempty"`
	CalculationID *string   `json:"calculation_id,omitempty"`
	Platform      *string   `json:"platform,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToResponse(f Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:            f.ID,
		Type:          f.Type,
		Content:       f.Content,
		Email:         f.Email,
		Rating:        f.Rating,
		CalculationID: f.CalculationID,
		Platform:      f.Platform,
		CreatedAt:     f.CreatedAt,
	}
}
