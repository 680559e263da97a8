package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Full access: payroll, master data, settings
	RoleStaff Role = "staff" // Read-only dashboard access, attendance/leave review
)

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user has full administrative access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanReviewLeave checks if user can approve or reject leave requests
func (u *User) CanReviewLeave() bool {
	return u.Role == RoleAdmin || u.Role == RoleStaff
}
