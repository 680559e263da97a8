package device

import (
	"github.com/presensia/presensia-backend-go/internal/pkg/validator"
)

type DeviceResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	SerialNumber string `json:"serial_number"`
	Status       string `json:"status"`
}

type CreateDeviceRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	SerialNumber string `json:"serial_number"`
}

func (r *CreateDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}
	if validator.IsEmpty(r.SerialNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "serial_number",
			Message: "serial_number is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeviceRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Status   *string `json:"status,omitempty"`
}

func (r *UpdateDeviceRequest) Validate() error {
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
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive), string(StatusMaintenance)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "must be active, inactive, or maintenance",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToResponse(d Device) DeviceResponse {
	return DeviceResponse{
		ID:           d.ID,
		Name:         d.Name,
		Location:     d.Location,
		SerialNumber: d.SerialNumber,
		Status:       string(d.Status),
	}
}
