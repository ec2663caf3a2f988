package feedback

import "errors"

var (
	ErrFeedbackNotFound = errors.New("feedback not found")
)
