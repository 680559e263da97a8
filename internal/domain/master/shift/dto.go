package shift

import (
	"github.com/presensia/presensia-backend-go/internal/pkg/validator"
)

type WorkShiftResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
}

type CreateWorkShiftRequest struct {
	Name         string `json:"name"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
}

func (r *CreateWorkShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}
	if !validator.IsValidClockTime(r.CheckInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "must be in HH:MM 24-hour format",
		})
	}
	if !validator.IsValidClockTime(r.CheckOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "must be in HH:MM 24-hour format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkShiftRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
}

func (r *UpdateWorkShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.CheckInTime != nil && !validator.IsValidClockTime(*r.CheckInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "must be in HH:MM 24-hour format",
		})
	}
	if r.CheckOutTime != nil && !validator.IsValidClockTime(*r.CheckOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "must be in HH:MM 24-hour format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToResponse(s WorkShift) WorkShiftResponse {
	return WorkShiftResponse{
		ID:           s.ID,
		Name:         s.Name,
		CheckInTime:  s.CheckInTime,
		CheckOutTime: s.CheckOutTime,
	}
}
