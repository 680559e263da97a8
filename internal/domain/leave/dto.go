package leave

import (
	"time"

	"github.com/presensia/presensia-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not precede start_date"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequestRequest struct {
	ID              string `json:"-"`
	RejectionReason string `json:"rejection_reason"`
}

func (r *RejectLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RejectionReason) {
		errs = append(errs, validator.ValidationError{Field: "rejection_reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	EmployeeCode    *string `json:"employee_code,omitempty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ReviewedBy      *string `json:"reviewed_by,omitempty"`
	ReviewedAt      *string `json:"reviewed_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	SubmittedAt     string  `json:"submitted_at"`
}

func ToResponse(lr LeaveRequest) LeaveRequestResponse {
	var reviewedAt *string
	if lr.ReviewedAt != nil {
		str := lr.ReviewedAt.Format(time.RFC3339)
		reviewedAt = &str
	}

	return LeaveRequestResponse{
		ID:              lr.ID,
		EmployeeID:      lr.EmployeeID,
		EmployeeName:    lr.EmployeeName,
		EmployeeCode:    lr.EmployeeCode,
		StartDate:       lr.StartDate.Format("2006-01-02"),
		EndDate:         lr.EndDate.Format("2006-01-02"),
		Reason:          lr.Reason,
		Status:          string(lr.Status),
		ReviewedBy:      lr.ReviewedBy,
		ReviewedAt:      reviewedAt,
		RejectionReason: lr.RejectionReason,
		SubmittedAt:     lr.SubmittedAt.Format(time.RFC3339),
	}
}

type LeaveRequestFilter struct {
	EmployeeID *string
	Status     *string
	Page       int
	Limit      int
}

type ListLeaveRequestsResponse struct {
	Data       []LeaveRequestResponse `json:"data"`
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
}
