package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DeductionSettings - Process-wide deduction configuration. A single row,
// mutable by admins only and always passed explicitly into the engine.
type DeductionSettings struct {
	ID                  string
	AbsentDeduction     decimal.Decimal // amount per absent day
	LeaveDeduction      decimal.Decimal // amount per leave day
	LateDeduction       decimal.Decimal // amount per late block
	EarlyLeaveDeduction decimal.Decimal // amount per early-leave block
	LateTimeBlock       int             // block size in minutes, >= 1
	EarlyLeaveTimeBlock int             // block size in minutes, >= 1
	SalaryPaymentDate   int             // day of month, 1-28
	WorkingDaysPerWeek  []time.Weekday  // weekdays counted as working days
	Holidays            []string        // ISO dates excluded from working days
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate refuses incomplete configurations. The engine never falls back to
// defaults: a silent default would misrepresent real payroll amounts.
func (s DeductionSettings) Validate() error {
	if s.LateTimeBlock < 1 {
		return fmt.Errorf("%w: late_time_block must be at least 1 minute", ErrMissingSettings)
	}
	if s.EarlyLeaveTimeBlock < 1 {
		return fmt.Errorf("%w: early_leave_time_block must be at least 1 minute", ErrMissingSettings)
	}
	if s.SalaryPaymentDate < 1 || s.SalaryPaymentDate > 28 {
		return fmt.Errorf("%w: salary_payment_date must be between 1 and 28", ErrMissingSettings)
	}
	if len(s.WorkingDaysPerWeek) == 0 {
		return fmt.Errorf("%w: working_days_per_week is empty", ErrMissingSettings)
	}
	if s.AbsentDeduction.IsNegative() || s.LeaveDeduction.IsNegative() ||
		s.LateDeduction.IsNegative() || s.EarlyLeaveDeduction.IsNegative() {
		return fmt.Errorf("%w: deduction amounts must be non-negative", ErrMissingSettings)
	}
	return nil
}

// WorkingDaySet returns the working weekdays as a lookup set.
func (s DeductionSettings) WorkingDaySet() map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(s.WorkingDaysPerWeek))
	for _, d := range s.WorkingDaysPerWeek {
		set[d] = true
	}
	return set
}

// HolidaySet returns the holiday calendar as a lookup set keyed by ISO date.
func (s DeductionSettings) HolidaySet() map[string]bool {
	set := make(map[string]bool, len(s.Holidays))
	for _, d := range s.Holidays {
		set[d] = true
	}
	return set
}

// AttendanceAggregate - Per-employee attendance totals inside one pay period.
type AttendanceAggregate struct {
	WorkingDays            int
	PresentDays            int
	LeaveDays              int
	AbsentDays             int
	TotalLateMinutes       int
	TotalEarlyLeaveMinutes int
}

// DeductionBreakdown - Itemized deduction amounts derived from an aggregate.
type DeductionBreakdown struct {
	LateBlocks          int
	EarlyLeaveBlocks    int
	AbsentDeduction     decimal.Decimal
	LeaveDeduction      decimal.Decimal
	LateDeduction       decimal.Decimal
	EarlyLeaveDeduction decimal.Decimal
	TotalDeduction      decimal.Decimal
}

// CalculationStatus enum
type CalculationStatus string

const (
	CalculationStatusDraft     CalculationStatus = "draft"
	CalculationStatusFinalized CalculationStatus = "finalized"
	CalculationStatusPaid      CalculationStatus = "paid"
)

// IsValid reports whether the value is one of the three known statuses.
func (s CalculationStatus) IsValid() bool {
	switch s {
	case CalculationStatusDraft, CalculationStatusFinalized, CalculationStatusPaid:
		return true
	}
	return false
}

// SalaryCalculation - Engine output, one per employee per period. Recalculation
// overwrites the row wholesale while the status is draft; finalized and paid
// rows are immutable.
type SalaryCalculation struct {
	ID          string
	EmployeeID  string
	Period      string // "2006-01" key
	PeriodStart time.Time
	PeriodEnd   time.Time

	BasicSalary decimal.Decimal // copied from the employee at calculation time

	WorkingDays            int
	PresentDays            int
	LeaveDays              int
	AbsentDays             int
	TotalLateMinutes       int
	TotalEarlyLeaveMinutes int
	LateBlocks             int
	EarlyLeaveBlocks       int

	AbsentDeduction     decimal.Decimal
	LeaveDeduction      decimal.Decimal
	LateDeduction       decimal.Decimal
	EarlyLeaveDeduction decimal.Decimal
	TotalDeduction      decimal.Decimal
	NetSalary           decimal.Decimal

	Status       CalculationStatus
	CalculatedAt time.Time
	FinalizedAt  *time.Time
	PaidAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	DivisionName *string
}

// Locked reports whether the calculation can no longer be overwritten.
func (c SalaryCalculation) Locked() bool {
	return c.Status == CalculationStatusFinalized || c.Status == CalculationStatusPaid
}
