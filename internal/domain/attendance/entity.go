package attendance

import "time"

// AttendanceType enum
type AttendanceType string

const (
	TypePresent AttendanceType = "present"
	TypeLeave   AttendanceType = "leave"
	TypeAbsent  AttendanceType = "absent"
)

// CheckInStatus enum
type CheckInStatus string

const (
	CheckInOnTime CheckInStatus = "on_time"
	CheckInLate   CheckInStatus = "late"
	CheckInAbsent CheckInStatus = "absent"
)

// CheckOutStatus enum
type CheckOutStatus string

const (
	CheckOutOnTime        CheckOutStatus = "on_time"
	CheckOutEarly         CheckOutStatus = "early"
	CheckOutNotCheckedOut CheckOutStatus = "not_checked_out"
)

// Attendance - One record per employee per date, produced by the capture
// subsystem (QR/RFID taps) and normalized at the API boundary. The payroll
// engine reads these as-is.
type Attendance struct {
	ID             string
	EmployeeID     string
	Date           time.Time // calendar date, midnight UTC
	Type           AttendanceType
	CheckInTime    *time.Time
	CheckOutTime   *time.Time
	CheckInStatus  CheckInStatus
	CheckOutStatus CheckOutStatus
	LeaveRequestID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
