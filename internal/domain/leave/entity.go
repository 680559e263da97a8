package leave

import "time"

// RequestStatus enum
type RequestStatus string

const (
	StatusWaitingApproval RequestStatus = "waiting_approval"
	StatusApproved        RequestStatus = "approved"
	StatusRejected        RequestStatus = "rejected"
)

// LeaveRequest - An employee's request for one or more days off. Attendance
// records of type "leave" link back here; the payroll engine only counts a
// leave day when the backing request is approved.
type LeaveRequest struct {
	ID         string
	EmployeeID string

	StartDate time.Time
	EndDate   time.Time
	Reason    string

	Status          RequestStatus
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// Processed reports whether the request has already been approved or rejected.
func (r LeaveRequest) Processed() bool {
	return r.Status != StatusWaitingApproval
}
