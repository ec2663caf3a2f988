package rating

import "github.com/lawding/leavecalc-api/internal/pkg/validator"

type LaunchRequest struct {
	DeviceID   string `json:"device_id"`
	AppVersion string `json:"app_version"`
}

func (r *LaunchRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.DeviceID) {
		errs = append(errs, validator.ValidationError{Field: "device_id", Message: "is required"})
	}
	if !validator.IsValidAppVersion(r.AppVersion) {
		errs = append(errs, validator.ValidationError{Field: "app_version", Message: "must be major.minor.patch"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmittedRequest struct {
	DeviceID   string `json:"device_id"`
	AppVersion string `json:"app_version"`
}

func (r *SubmittedRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.DeviceID) {
		errs = append(errs, validator.ValidationError{Field: "device_id", Message: "is required"})
	}
	if !validator.IsValidAppVersion(r.AppVersion) {
		errs = append(errs, validator.ValidationError{Field: "app_version", Message: "must be major.minor.patch"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DismissedRequest struct {
	DeviceID string `json:"device_id"`
}

func (r *DismissedRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.DeviceID) {
		errs = append(errs, validator.ValidationError{Field: "device_id", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CanShowResponse struct {
	CanShow bool `json:"can_show"`
}
