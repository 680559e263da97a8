package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        *string
	PhoneNumber  *string
	DivisionID   string
	ShiftID      string
	RFIDCardUID  *string
	HireDate     time.Time
	Status       EmploymentStatus
	BasicSalary  *decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// Joined fields
	DivisionName *string
	ShiftName    *string
}

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusResigned EmploymentStatus = "resigned"
)
