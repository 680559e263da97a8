package division

import "time"

type Division struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeCount *int
}
