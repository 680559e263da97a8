package payroll

import "errors"

var (
	// Engine errors
	ErrInvalidPeriod     = errors.New("invalid pay period")
	ErrCalculationLocked = errors.New("calculation is finalized or paid and cannot be recomputed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingSettings   = errors.New("deduction settings absent or incomplete")

	// Store errors
	ErrCalculationNotFound = errors.New("salary calculation not found")
	ErrEmployeeHasNoSalary = errors.New("employee has no basic salary configured")
)
