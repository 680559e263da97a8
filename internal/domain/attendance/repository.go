package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	Update(ctx context.Context, attendance Attendance) error
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// GetByEmployeeAndRange returns all records for one employee whose date
	// falls within [from, to] inclusive. Feeds the payroll engine.
	GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
}
