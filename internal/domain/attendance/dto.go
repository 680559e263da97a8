package attendance

import (
	"time"

	"github.com/presensia/presensia-backend-go/internal/pkg/validator"
)

// CreateAttendanceRequest is the normalization boundary for capture payloads:
// loosely shaped JSON from the tap-ingestion side is converted into the exact
// Attendance entity before it ever reaches engine logic.
type CreateAttendanceRequest struct {
	EmployeeID     string  `json:"employee_id"`
	Date           string  `json:"date"`
	Type           string  `json:"type"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	CheckOutTime   *string `json:"check_out_time,omitempty"`
	CheckInStatus  string  `json:"check_in_status"`
	CheckOutStatus string  `json:"check_out_status"`
	LeaveRequestID *string `json:"leave_request_id,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.Type, []string{string(TypePresent), string(TypeLeave), string(TypeAbsent)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be present, leave, or absent"})
	}
	if !validator.IsInSlice(r.CheckInStatus, []string{string(CheckInOnTime), string(CheckInLate), string(CheckInAbsent)}) {
		errs = append(errs, validator.ValidationError{Field: "check_in_status", Message: "must be on_time, late, or absent"})
	}
	if !validator.IsInSlice(r.CheckOutStatus, []string{string(CheckOutOnTime), string(CheckOutEarly), string(CheckOutNotCheckedOut)}) {
		errs = append(errs, validator.ValidationError{Field: "check_out_status", Message: "must be on_time, early, or not_checked_out"})
	}
	if r.CheckInTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in_time", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out_time", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.Type == string(TypeLeave) && r.LeaveRequestID == nil {
		errs = append(errs, validator.ValidationError{Field: "leave_request_id", Message: "is required for leave records"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts a validated request into an Attendance entity.
// Call Validate first; parsing here assumes well-formed fields.
func (r *CreateAttendanceRequest) ToEntity() Attendance {
	date, _ := validator.IsValidDate(r.Date)

	var checkIn, checkOut *time.Time
	if r.CheckInTime != nil {
		if t, ok := validator.IsValidDateTime(*r.CheckInTime); ok {
			checkIn = &t
		}
	}
	if r.CheckOutTime != nil {
		if t, ok := validator.IsValidDateTime(*r.CheckOutTime); ok {
			checkOut = &t
		}
	}

	return Attendance{
		EmployeeID:     r.EmployeeID,
		Date:           date,
		Type:           AttendanceType(r.Type),
		CheckInTime:    checkIn,
		CheckOutTime:   checkOut,
		CheckInStatus:  CheckInStatus(r.CheckInStatus),
		CheckOutStatus: CheckOutStatus(r.CheckOutStatus),
		LeaveRequestID: r.LeaveRequestID,
	}
}

type UpdateAttendanceRequest struct {
	ID             string  `json:"-"`
	Type           *string `json:"type,omitempty"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	CheckOutTime   *string `json:"check_out_time,omitempty"`
	CheckInStatus  *string `json:"check_in_status,omitempty"`
	CheckOutStatus *string `json:"check_out_status,omitempty"`
	LeaveRequestID *string `json:"leave_request_id,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && !validator.IsInSlice(*r.Type, []string{string(TypePresent), string(TypeLeave), string(TypeAbsent)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be present, leave, or absent"})
	}
	if r.CheckInStatus != nil && !validator.IsInSlice(*r.CheckInStatus, []string{string(CheckInOnTime), string(CheckInLate), string(CheckInAbsent)}) {
		errs = append(errs, validator.ValidationError{Field: "check_in_status", Message: "must be on_time, late, or absent"})
	}
	if r.CheckOutStatus != nil && !validator.IsInSlice(*r.CheckOutStatus, []string{string(CheckOutOnTime), string(CheckOutEarly), string(CheckOutNotCheckedOut)}) {
		errs = append(errs, validator.ValidationError{Field: "check_out_status", Message: "must be on_time, early, or not_checked_out"})
	}
	if r.CheckInTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in_time", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out_time", Message: "must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	EmployeeCode   *string `json:"employee_code,omitempty"`
	Date           string  `json:"date"`
	Type           string  `json:"type"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	CheckOutTime   *string `json:"check_out_time,omitempty"`
	CheckInStatus  string  `json:"check_in_status"`
	CheckOutStatus string  `json:"check_out_status"`
	LeaveRequestID *string `json:"leave_request_id,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	var checkIn, checkOut *string
	if a.CheckInTime != nil {
		str := a.CheckInTime.Format(time.RFC3339)
		checkIn = &str
	}
	if a.CheckOutTime != nil {
		str := a.CheckOutTime.Format(time.RFC3339)
		checkOut = &str
	}

	return AttendanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		EmployeeName:   a.EmployeeName,
		EmployeeCode:   a.EmployeeCode,
		Date:           a.Date.Format("2006-01-02"),
		Type:           string(a.Type),
		CheckInTime:    checkIn,
		CheckOutTime:   checkOut,
		CheckInStatus:  string(a.CheckInStatus),
		CheckOutStatus: string(a.CheckOutStatus),
		LeaveRequestID: a.LeaveRequestID,
	}
}

type AttendanceFilter struct {
	EmployeeID *string
	Type       *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	Limit      int
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
