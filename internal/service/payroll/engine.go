package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/presensia/presensia-backend-go/internal/domain/attendance"
	"github.com/presensia/presensia-backend-go/internal/domain/employee"
	"github.com/presensia/presensia-backend-go/internal/domain/leave"
	"github.com/presensia/presensia-backend-go/internal/domain/master/shift"
	"github.com/presensia/presensia-backend-go/internal/domain/payroll"
)

// The engine is a pure, synchronous computation over supplied inputs. All data
// is fetched by the caller beforehand; nothing here touches the network or the
// database, and every error is returned synchronously with employee and period
// context attached.

// CountWorkingDays counts the dates in [start, end] inclusive whose weekday is
// a working day and whose ISO date is not a holiday.
func CountWorkingDays(start, end time.Time, workingDays map[time.Weekday]bool, holidays map[string]bool) int {
	count := 0
	last := payroll.DateOnly(end)
	for d := payroll.DateOnly(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		if workingDays[d.Weekday()] && !holidays[d.Format("2006-01-02")] {
			count++
		}
	}
	return count
}

// AggregateAttendance filters records to the target employee and period and
// sums up attendance per day type plus late and early-leave minutes against
// the employee's shift.
//
// A leave record only counts as a leave day when its backing leave request is
// approved; orphaned or rejected leave records fall through to absent-day
// accounting. Records for other employees are dropped silently.
func AggregateAttendance(
	employeeID string,
	records []attendance.Attendance,
	leaveStatuses map[string]leave.RequestStatus,
	workShift shift.WorkShift,
	period payroll.Period,
	workingDays int,
) (payroll.AttendanceAggregate, error) {
	if err := period.Validate(); err != nil {
		return payroll.AttendanceAggregate{}, err
	}

	agg := payroll.AttendanceAggregate{WorkingDays: workingDays}

	for _, rec := range records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if !period.Contains(rec.Date) {
			continue
		}

		switch rec.Type {
		case attendance.TypePresent:
			agg.PresentDays++
		case attendance.TypeLeave:
			if rec.LeaveRequestID != nil && leaveStatuses[*rec.LeaveRequestID] == leave.StatusApproved {
				agg.LeaveDays++
			}
		}

		if rec.CheckInStatus == attendance.CheckInLate && rec.CheckInTime != nil {
			expected, err := workShift.CheckInOn(rec.Date, rec.CheckInTime.Location())
			if err != nil {
				return payroll.AttendanceAggregate{}, err
			}
			if m := wholeMinutes(rec.CheckInTime.Sub(expected)); m > 0 {
				agg.TotalLateMinutes += m
			}
		}
		if rec.CheckOutStatus == attendance.CheckOutEarly && rec.CheckOutTime != nil {
			expected, err := workShift.CheckOutOn(rec.Date, rec.CheckOutTime.Location())
			if err != nil {
				return payroll.AttendanceAggregate{}, err
			}
			if m := wholeMinutes(expected.Sub(*rec.CheckOutTime)); m > 0 {
				agg.TotalEarlyLeaveMinutes += m
			}
		}
	}

	// Absences are derived, not recorded: whatever part of the working days is
	// covered by neither presence nor approved leave. Saturates at zero so
	// inconsistent data can never yield negative absences.
	agg.AbsentDays = workingDays - agg.PresentDays - agg.LeaveDays
	if agg.AbsentDays < 0 {
		agg.AbsentDays = 0
	}

	return agg, nil
}

// CalculateDeductions converts an attendance aggregate into itemized deduction
// amounts under the supplied settings.
func CalculateDeductions(agg payroll.AttendanceAggregate, settings payroll.DeductionSettings) payroll.DeductionBreakdown {
	b := payroll.DeductionBreakdown{
		LateBlocks:       ceilBlocks(agg.TotalLateMinutes, settings.LateTimeBlock),
		EarlyLeaveBlocks: ceilBlocks(agg.TotalEarlyLeaveMinutes, settings.EarlyLeaveTimeBlock),
	}

	b.AbsentDeduction = settings.AbsentDeduction.Mul(decimal.NewFromInt(int64(agg.AbsentDays)))
	b.LeaveDeduction = settings.LeaveDeduction.Mul(decimal.NewFromInt(int64(agg.LeaveDays)))
	b.LateDeduction = settings.LateDeduction.Mul(decimal.NewFromInt(int64(b.LateBlocks)))
	b.EarlyLeaveDeduction = settings.EarlyLeaveDeduction.Mul(decimal.NewFromInt(int64(b.EarlyLeaveBlocks)))
	b.TotalDeduction = b.AbsentDeduction.
		Add(b.LeaveDeduction).
		Add(b.LateDeduction).
		Add(b.EarlyLeaveDeduction)

	return b
}

// ceilBlocks rounds minutes up to whole blocks: any positive remainder incurs
// a full block, zero minutes incur none.
func ceilBlocks(minutes, blockSize int) int {
	if minutes <= 0 || blockSize < 1 {
		return 0
	}
	return (minutes + blockSize - 1) / blockSize
}

func wholeMinutes(d time.Duration) int {
	return int(d / time.Minute)
}

// CalculationInput carries everything one engine run needs. The caller fetches
// all of it up front; the engine performs no I/O.
type CalculationInput struct {
	Employee      employee.Employee
	Period        string // "2006-01" key
	Records       []attendance.Attendance
	LeaveStatuses map[string]leave.RequestStatus
	Shift         shift.WorkShift
	Settings      payroll.DeductionSettings
	Existing      *payroll.SalaryCalculation // prior calculation for this employee+period, if any
	Now           time.Time
}

// Calculate produces a draft salary calculation for one employee and period.
// Recalculating over an existing draft replaces it wholesale (the row identity
// is preserved); recalculating over a finalized or paid calculation fails with
// ErrCalculationLocked.
func Calculate(in CalculationInput) (payroll.SalaryCalculation, error) {
	if err := in.Settings.Validate(); err != nil {
		return payroll.SalaryCalculation{}, fmt.Errorf("employee %s period %s: %w", in.Employee.ID, in.Period, err)
	}
	if in.Existing != nil && in.Existing.Locked() {
		return payroll.SalaryCalculation{}, fmt.Errorf("employee %s period %s: %w", in.Employee.ID, in.Period, payroll.ErrCalculationLocked)
	}
	if in.Employee.BasicSalary == nil {
		return payroll.SalaryCalculation{}, fmt.Errorf("employee %s: %w", in.Employee.ID, payroll.ErrEmployeeHasNoSalary)
	}
	if in.Now.IsZero() {
		in.Now = time.Now()
	}

	period, err := payroll.ResolvePeriod(in.Period, in.Settings.SalaryPaymentDate)
	if err != nil {
		return payroll.SalaryCalculation{}, fmt.Errorf("employee %s: %w", in.Employee.ID, err)
	}

	workingDays := CountWorkingDays(period.Start, period.End, in.Settings.WorkingDaySet(), in.Settings.HolidaySet())

	agg, err := AggregateAttendance(in.Employee.ID, in.Records, in.LeaveStatuses, in.Shift, period, workingDays)
	if err != nil {
		return payroll.SalaryCalculation{}, fmt.Errorf("employee %s period %s: %w", in.Employee.ID, in.Period, err)
	}

	breakdown := CalculateDeductions(agg, in.Settings)

	// Net salary floors at zero: deductions can never produce a negative payout.
	netSalary := in.Employee.BasicSalary.Sub(breakdown.TotalDeduction)
	if netSalary.IsNegative() {
		netSalary = decimal.Zero
	}

	calc := payroll.SalaryCalculation{
		EmployeeID:  in.Employee.ID,
		Period:      period.Key,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,

		BasicSalary: *in.Employee.BasicSalary,

		WorkingDays:            agg.WorkingDays,
		PresentDays:            agg.PresentDays,
		LeaveDays:              agg.LeaveDays,
		AbsentDays:             agg.AbsentDays,
		TotalLateMinutes:       agg.TotalLateMinutes,
		TotalEarlyLeaveMinutes: agg.TotalEarlyLeaveMinutes,
		LateBlocks:             breakdown.LateBlocks,
		EarlyLeaveBlocks:       breakdown.EarlyLeaveBlocks,

		AbsentDeduction:     breakdown.AbsentDeduction,
		LeaveDeduction:      breakdown.LeaveDeduction,
		LateDeduction:       breakdown.LateDeduction,
		EarlyLeaveDeduction: breakdown.EarlyLeaveDeduction,
		TotalDeduction:      breakdown.TotalDeduction,
		NetSalary:           netSalary,

		Status:       payroll.CalculationStatusDraft,
		CalculatedAt: in.Now,
	}

	if in.Existing != nil {
		calc.ID = in.Existing.ID
		calc.CreatedAt = in.Existing.CreatedAt
	}

	return calc, nil
}

// Transition advances a calculation along the strictly linear
// draft -> finalized -> paid machine. Same-state no-ops, skips, and backward
// moves all fail with ErrInvalidTransition.
func Transition(calc payroll.SalaryCalculation, newStatus payroll.CalculationStatus, now time.Time) (payroll.SalaryCalculation, error) {
	switch {
	case calc.Status == payroll.CalculationStatusDraft && newStatus == payroll.CalculationStatusFinalized:
		calc.Status = payroll.CalculationStatusFinalized
		calc.FinalizedAt = &now
	case calc.Status == payroll.CalculationStatusFinalized && newStatus == payroll.CalculationStatusPaid:
		calc.Status = payroll.CalculationStatusPaid
		calc.PaidAt = &now
	default:
		return calc, fmt.Errorf("%w: %s -> %s (calculation %s)", payroll.ErrInvalidTransition, calc.Status, newStatus, calc.ID)
	}
	return calc, nil
}
