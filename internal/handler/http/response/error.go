package response

import (
	"errors"
	"net/http"

	"github.com/presensia/presensia-backend-go/internal/domain/attendance"
	"github.com/presensia/presensia-backend-go/internal/domain/auth"
	"github.com/presensia/presensia-backend-go/internal/domain/employee"
	"github.com/presensia/presensia-backend-go/internal/domain/leave"
	"github.com/presensia/presensia-backend-go/internal/domain/master/device"
	"github.com/presensia/presensia-backend-go/internal/domain/master/division"
	"github.com/presensia/presensia-backend-go/internal/domain/master/shift"
	"github.com/presensia/presensia-backend-go/internal/domain/payroll"
	"github.com/presensia/presensia-backend-go/internal/domain/user"
	"github.com/presensia/presensia-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrRFIDCardExists):
		Conflict(w, "RFID card already assigned to another employee")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance record already exists for this employee and date")
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "End date precedes start date", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Master data errors
	case errors.Is(err, division.ErrDivisionNotFound):
		NotFound(w, "Division not found")
	case errors.Is(err, division.ErrDivisionNameExists):
		Conflict(w, "Division with this name already exists")
	case errors.Is(err, division.ErrDivisionInUse):
		Conflict(w, "Division still has employees assigned")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Work shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Work shift with this name already exists")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Work shift still has employees assigned")
	case errors.Is(err, device.ErrDeviceNotFound):
		NotFound(w, "Device not found")
	case errors.Is(err, device.ErrDeviceSerialExists):
		Conflict(w, "Device with this serial number already exists")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrCalculationNotFound):
		NotFound(w, "Salary calculation not found")
	case errors.Is(err, payroll.ErrCalculationLocked):
		Conflict(w, "Salary calculation is finalized or paid and cannot be recalculated")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, "Invalid calculation status transition")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrMissingSettings):
		BadRequest(w, "Deduction settings are missing or incomplete", nil)
	case errors.Is(err, payroll.ErrEmployeeHasNoSalary):
		BadRequest(w, "Employee has no basic salary configured", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
