package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensia/presensia-backend-go/internal/domain/attendance"
	"github.com/presensia/presensia-backend-go/internal/domain/employee"
	"github.com/presensia/presensia-backend-go/internal/domain/leave"
	"github.com/presensia/presensia-backend-go/internal/domain/master/shift"
	"github.com/presensia/presensia-backend-go/internal/domain/payroll"
)

func testSettings() payroll.DeductionSettings {
	return payroll.DeductionSettings{
		ID:                  "settings-1",
		AbsentDeduction:     decimal.NewFromInt(70000),
		LeaveDeduction:      decimal.NewFromInt(35000),
		LateDeduction:       decimal.NewFromInt(5000),
		EarlyLeaveDeduction: decimal.NewFromInt(5000),
		LateTimeBlock:       30,
		EarlyLeaveTimeBlock: 30,
		SalaryPaymentDate:   25,
		WorkingDaysPerWeek: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
	}
}

func testShift() shift.WorkShift {
	return shift.WorkShift{
		ID:           "shift-1",
		Name:         "Office Hours",
		CheckInTime:  "08:00",
		CheckOutTime: "17:00",
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ts(y int, m time.Month, d, hh, mm int) *time.Time {
	t := time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
	return &t
}

func presentOn(employeeID string, day time.Time) attendance.Attendance {
	in := time.Date(day.Year(), day.Month(), day.Day(), 8, 0, 0, 0, time.UTC)
	out := time.Date(day.Year(), day.Month(), day.Day(), 17, 0, 0, 0, time.UTC)
	return attendance.Attendance{
		EmployeeID:     employeeID,
		Date:           day,
		Type:           attendance.TypePresent,
		CheckInTime:    &in,
		CheckOutTime:   &out,
		CheckInStatus:  attendance.CheckInOnTime,
		CheckOutStatus: attendance.CheckOutOnTime,
	}
}

// ========== PERIOD RESOLUTION ==========

func TestResolvePeriod_Basic(t *testing.T) {
	t.Parallel()

	period, err := payroll.ResolvePeriod("2024-03", 25)
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.February, 26), period.Start)
	assert.Equal(t, date(2024, time.March, 25), period.End)
}

func TestResolvePeriod_YearBoundary(t *testing.T) {
	t.Parallel()

	period, err := payroll.ResolvePeriod("2024-01", 25)
	require.NoError(t, err)

	assert.Equal(t, date(2023, time.December, 26), period.Start)
	assert.Equal(t, date(2024, time.January, 25), period.End)
}

func TestResolvePeriod_February(t *testing.T) {
	t.Parallel()

	// Payment day 28 in March of a non-leap year: the period must start the
	// day after Feb 28, which is Mar 1.
	period, err := payroll.ResolvePeriod("2023-03", 28)
	require.NoError(t, err)

	assert.Equal(t, date(2023, time.March, 1), period.Start)
	assert.Equal(t, date(2023, time.March, 28), period.End)
}

func TestResolvePeriod_ConsecutivePeriodsAreContiguous(t *testing.T) {
	t.Parallel()

	feb, err := payroll.ResolvePeriod("2024-02", 15)
	require.NoError(t, err)
	mar, err := payroll.ResolvePeriod("2024-03", 15)
	require.NoError(t, err)

	assert.Equal(t, feb.End.AddDate(0, 0, 1), mar.Start)
	assert.True(t, feb.End.Before(mar.Start))
}

func TestResolvePeriod_UnparseableKey(t *testing.T) {
	t.Parallel()

	_, err := payroll.ResolvePeriod("March 2024", 25)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestResolvePeriod_PaymentDayOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := payroll.ResolvePeriod("2024-03", 31)
	assert.ErrorIs(t, err, payroll.ErrMissingSettings)

	_, err = payroll.ResolvePeriod("2024-03", 0)
	assert.ErrorIs(t, err, payroll.ErrMissingSettings)
}

// ========== WORKING-DAY COUNTER ==========

func TestCountWorkingDays_SevenDayWindowAnyStart(t *testing.T) {
	t.Parallel()

	workingDays := map[time.Weekday]bool{
		time.Monday: true, time.Tuesday: true, time.Wednesday: true,
		time.Thursday: true, time.Friday: true,
	}

	// A full week contains exactly 5 working days regardless of which weekday
	// it starts on.
	for offset := 0; offset < 7; offset++ {
		start := date(2024, time.March, 4).AddDate(0, 0, offset)
		end := start.AddDate(0, 0, 6)
		assert.Equal(t, 5, CountWorkingDays(start, end, workingDays, nil),
			"window starting %s", start.Weekday())
	}
}

func TestCountWorkingDays_Holidays(t *testing.T) {
	t.Parallel()

	workingDays := map[time.Weekday]bool{
		time.Monday: true, time.Tuesday: true, time.Wednesday: true,
		time.Thursday: true, time.Friday: true,
	}
	holidays := map[string]bool{
		"2024-03-11": true, // a Monday
		"2024-03-16": true, // a Saturday, already not a working day
	}

	got := CountWorkingDays(date(2024, time.March, 11), date(2024, time.March, 17), workingDays, holidays)
	assert.Equal(t, 4, got)
}

func TestCountWorkingDays_MonthAndYearBoundary(t *testing.T) {
	t.Parallel()

	workingDays := map[time.Weekday]bool{
		time.Monday: true, time.Tuesday: true, time.Wednesday: true,
		time.Thursday: true, time.Friday: true,
	}

	// 2023-12-26 (Tue) .. 2024-01-25 (Thu): 23 weekdays.
	got := CountWorkingDays(date(2023, time.December, 26), date(2024, time.January, 25), workingDays, nil)
	assert.Equal(t, 23, got)
}

func TestCountWorkingDays_SingleDay(t *testing.T) {
	t.Parallel()

	workingDays := map[time.Weekday]bool{time.Wednesday: true}

	assert.Equal(t, 1, CountWorkingDays(date(2024, time.March, 6), date(2024, time.March, 6), workingDays, nil))
	assert.Equal(t, 0, CountWorkingDays(date(2024, time.March, 7), date(2024, time.March, 7), workingDays, nil))
}

// ========== ATTENDANCE AGGREGATOR ==========

func TestAggregateAttendance_InvalidPeriod(t *testing.T) {
	t.Parallel()

	period := payroll.Period{Key: "2024-03", Start: date(2024, time.March, 25), End: date(2024, time.February, 26)}
	_, err := AggregateAttendance("emp-1", nil, nil, testShift(), period, 20)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestAggregateAttendance_FiltersForeignAndOutOfPeriodRecords(t *testing.T) {
	t.Parallel()

	period := payroll.Period{Key: "2024-03", Start: date(2024, time.February, 26), End: date(2024, time.March, 25)}

	records := []attendance.Attendance{
		presentOn("emp-1", date(2024, time.March, 1)),
		presentOn("emp-2", date(2024, time.March, 1)),  // different employee, silently excluded
		presentOn("emp-1", date(2024, time.March, 26)), // outside the period
	}

	agg, err := AggregateAttendance("emp-1", records, nil, testShift(), period, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, agg.PresentDays)
}

func TestAggregateAttendance_LateAndEarlyMinutes(t *testing.T) {
	t.Parallel()

	period := payroll.Period{Key: "2024-03", Start: date(2024, time.February, 26), End: date(2024, time.March, 25)}

	records := []attendance.Attendance{
		{
			EmployeeID:     "emp-1",
			Date:           date(2024, time.March, 4),
			Type:           attendance.TypePresent,
			CheckInTime:    ts(2024, time.March, 4, 8, 25), // 25 minutes late
			CheckOutTime:   ts(2024, time.March, 4, 17, 0),
			CheckInStatus:  attendance.CheckInLate,
			CheckOutStatus: attendance.CheckOutOnTime,
		},
		{
			EmployeeID:     "emp-1",
			Date:           date(2024, time.March, 5),
			Type:           attendance.TypePresent,
			CheckInTime:    ts(2024, time.March, 5, 8, 20), // 20 minutes late
			CheckOutTime:   ts(2024, time.March, 5, 16, 15), // 45 minutes early
			CheckInStatus:  attendance.CheckInLate,
			CheckOutStatus: attendance.CheckOutEarly,
		},
	}

	agg, err := AggregateAttendance("emp-1", records, nil, testShift(), period, 20)
	require.NoError(t, err)

	assert.Equal(t, 2, agg.PresentDays)
	assert.Equal(t, 45, agg.TotalLateMinutes)
	assert.Equal(t, 45, agg.TotalEarlyLeaveMinutes)
}

func TestAggregateAttendance_ApprovedLeaveCounts(t *testing.T) {
	t.Parallel()

	period := payroll.Period{Key: "2024-03", Start: date(2024, time.February, 26), End: date(2024, time.March, 25)}
	reqID := "leave-1"

	records := []attendance.Attendance{
		{
			EmployeeID:     "emp-1",
			Date:           date(2024, time.March, 6),
			Type:           attendance.TypeLeave,
			CheckInStatus:  attendance.CheckInAbsent,
			CheckOutStatus: attendance.CheckOutNotCheckedOut,
			LeaveRequestID: &reqID,
		},
	}
	statuses := map[string]leave.RequestStatus{reqID: leave.StatusApproved}

	agg, err := AggregateAttendance("emp-1", records, statuses, testShift(), period, 20)
	require.NoError(t, err)

	assert.Equal(t, 1, agg.LeaveDays)
	assert.Equal(t, 19, agg.AbsentDays)
}

func TestAggregateAttendance_OrphanedLeaveFallsThroughToAbsent(t *testing.T) {
	t.Parallel()

	period := payroll.Period{Key: "2024-03", Start: date(2024, time.February, 26), End: date(2024, time.March, 25)}
	rejectedID := "leave-rejected"

	records := []attendance.Attendance{
		{
			EmployeeID:     "emp-1",
			Date:           date(2024, time.March, 6),
			Type:           attendance.TypeLeave,
			CheckInStatus:  attendance.CheckInAbsent,
			CheckOutStatus: attendance.CheckOutNotCheckedOut,
			LeaveRequestID: &rejectedID,
		},
		{
			// Leave record with no linked request at all.
			EmployeeID:     "emp-1",
			Date:           date(2024, time.March, 7),
			Type:           attendance.TypeLeave,
			CheckInStatus:  attendance.CheckInAbsent,
			CheckOutStatus: attendance.CheckOutNotCheckedOut,
		},
	}
	statuses := map[string]leave.RequestStatus{rejectedID: leave.StatusRejected}

	agg, err := AggregateAttendance("emp-1", records, statuses, testShift(), period, 20)
	require.NoError(t, err)

	// Neither day is covered by an approved request, so both count as absent.
	assert.Equal(t, 0, agg.LeaveDays)
	assert.Equal(t, 0, agg.PresentDays)
	assert.Equal(t, 20, agg.AbsentDays)
}

func TestAggregateAttendance_AbsentDaysFloorAtZero(t *testing.T) {
	t.Parallel()

	period := payroll.Period{Key: "2024-03", Start: date(2024, time.February, 26), End: date(2024, time.March, 25)}

	// 5 present days against only 3 working days: inconsistent data must
	// saturate absences at zero, never go negative.
	var records []attendance.Attendance
	for i := 0; i < 5; i++ {
		records = append(records, presentOn("emp-1", date(2024, time.March, 4+i)))
	}

	agg, err := AggregateAttendance("emp-1", records, nil, testShift(), period, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, agg.PresentDays)
	assert.Equal(t, 0, agg.AbsentDays)
}

// ========== DEDUCTION CALCULATOR ==========

func TestCalculateDeductions_BlockRounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		lateMinutes int
		wantBlocks  int
	}{
		{"zero minutes -> zero blocks", 0, 0},
		{"one minute -> one full block", 1, 1},
		{"exactly one block", 30, 1},
		{"one past a block boundary", 31, 2},
		{"two full blocks", 60, 2},
	}

	settings := testSettings()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := payroll.AttendanceAggregate{TotalLateMinutes: tt.lateMinutes}
			b := CalculateDeductions(agg, settings)

			assert.Equal(t, tt.wantBlocks, b.LateBlocks)
			wantAmount := settings.LateDeduction.Mul(decimal.NewFromInt(int64(tt.wantBlocks)))
			assert.True(t, b.LateDeduction.Equal(wantAmount),
				"late deduction %s, want %s", b.LateDeduction, wantAmount)
		})
	}
}

func TestCalculateDeductions_NonNegative(t *testing.T) {
	t.Parallel()

	agg := payroll.AttendanceAggregate{
		WorkingDays:            22,
		PresentDays:            22,
		TotalLateMinutes:       0,
		TotalEarlyLeaveMinutes: 0,
	}
	b := CalculateDeductions(agg, testSettings())

	assert.GreaterOrEqual(t, b.LateBlocks, 0)
	assert.GreaterOrEqual(t, b.EarlyLeaveBlocks, 0)
	assert.False(t, b.TotalDeduction.IsNegative())
	assert.True(t, b.TotalDeduction.IsZero())
}

func TestCalculateDeductions_ItemizedTotals(t *testing.T) {
	t.Parallel()

	agg := payroll.AttendanceAggregate{
		WorkingDays:            22,
		PresentDays:            19,
		LeaveDays:              1,
		AbsentDays:             2,
		TotalLateMinutes:       45,
		TotalEarlyLeaveMinutes: 0,
	}
	b := CalculateDeductions(agg, testSettings())

	assert.Equal(t, 2, b.LateBlocks)
	assert.True(t, b.AbsentDeduction.Equal(decimal.NewFromInt(140000)))
	assert.True(t, b.LeaveDeduction.Equal(decimal.NewFromInt(35000)))
	assert.True(t, b.LateDeduction.Equal(decimal.NewFromInt(10000)))
	assert.True(t, b.EarlyLeaveDeduction.IsZero())
	assert.True(t, b.TotalDeduction.Equal(decimal.NewFromInt(185000)))
}

// ========== ORCHESTRATOR ==========

func fullScenarioInput() CalculationInput {
	// basicSalary=5,000,000; the 2024-03 period (payment day 25) holds 20
	// Mon-Fri working days after one holiday; 17 present days, 1 approved
	// leave day, 45 late minutes across two mornings, 2 days uncovered.
	salary := decimal.NewFromInt(5000000)
	emp := employee.Employee{ID: "emp-1", EmployeeCode: "2024-0001", FullName: "Tes Pegawai", BasicSalary: &salary}

	settings := testSettings()
	settings.Holidays = []string{"2024-03-11"}

	approvedID := "leave-approved"

	var records []attendance.Attendance
	// Working days in [2024-02-26, 2024-03-25] excluding the holiday, in order.
	workdays := []time.Time{}
	for d := date(2024, time.February, 26); !d.After(date(2024, time.March, 25)); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if d.Format("2006-01-02") == "2024-03-11" {
			continue
		}
		workdays = append(workdays, d)
	}

	// 17 present days; the last two of them carry the lateness (25 + 20 minutes).
	for i := 0; i < 17; i++ {
		rec := presentOn("emp-1", workdays[i])
		records = append(records, rec)
	}
	records[15].CheckInTime = ts(records[15].Date.Year(), records[15].Date.Month(), records[15].Date.Day(), 8, 25)
	records[15].CheckInStatus = attendance.CheckInLate
	records[16].CheckInTime = ts(records[16].Date.Year(), records[16].Date.Month(), records[16].Date.Day(), 8, 20)
	records[16].CheckInStatus = attendance.CheckInLate

	// One approved leave day; the two remaining working days have no records
	// and count as absent.
	records = append(records, attendance.Attendance{
		EmployeeID:     "emp-1",
		Date:           workdays[17],
		Type:           attendance.TypeLeave,
		CheckInStatus:  attendance.CheckInAbsent,
		CheckOutStatus: attendance.CheckOutNotCheckedOut,
		LeaveRequestID: &approvedID,
	})

	return CalculationInput{
		Employee:      emp,
		Period:        "2024-03",
		Records:       records,
		LeaveStatuses: map[string]leave.RequestStatus{approvedID: leave.StatusApproved},
		Shift:         testShift(),
		Settings:      settings,
		Now:           time.Date(2024, time.March, 26, 9, 0, 0, 0, time.UTC),
	}
}

func TestCalculate_FullScenario(t *testing.T) {
	t.Parallel()

	calc, err := Calculate(fullScenarioInput())
	require.NoError(t, err)

	assert.Equal(t, 20, calc.WorkingDays)
	assert.Equal(t, 17, calc.PresentDays)
	assert.Equal(t, 1, calc.LeaveDays)
	assert.Equal(t, 2, calc.AbsentDays)
	assert.Equal(t, 45, calc.TotalLateMinutes)
	assert.Equal(t, 2, calc.LateBlocks)
	assert.Equal(t, 0, calc.EarlyLeaveBlocks)

	// 2x70000 + 1x35000 + 2x5000 + 0 = 185000
	assert.True(t, calc.TotalDeduction.Equal(decimal.NewFromInt(185000)),
		"total deduction %s", calc.TotalDeduction)
	assert.True(t, calc.NetSalary.Equal(decimal.NewFromInt(4815000)),
		"net salary %s", calc.NetSalary)

	assert.Equal(t, payroll.CalculationStatusDraft, calc.Status)
	assert.Equal(t, "2024-03", calc.Period)
	assert.Nil(t, calc.FinalizedAt)
	assert.Nil(t, calc.PaidAt)
}

func TestCalculate_Idempotent(t *testing.T) {
	t.Parallel()

	in := fullScenarioInput()

	first, err := Calculate(in)
	require.NoError(t, err)

	in.Existing = &first
	in.Now = in.Now.Add(5 * time.Minute)
	second, err := Calculate(in)
	require.NoError(t, err)

	// Identical inputs produce an identical draft except for CalculatedAt.
	assert.NotEqual(t, first.CalculatedAt, second.CalculatedAt)
	second.CalculatedAt = first.CalculatedAt
	assert.Equal(t, first, second)
}

func TestCalculate_NetSalaryFloorsAtZero(t *testing.T) {
	t.Parallel()

	salary := decimal.NewFromInt(100000)
	emp := employee.Employee{ID: "emp-1", BasicSalary: &salary}

	// No attendance at all: every working day is an absence, and the absent
	// deduction alone exceeds the basic salary.
	calc, err := Calculate(CalculationInput{
		Employee: emp,
		Period:   "2024-03",
		Shift:    testShift(),
		Settings: testSettings(),
	})
	require.NoError(t, err)

	assert.True(t, calc.TotalDeduction.GreaterThan(salary))
	assert.True(t, calc.NetSalary.IsZero(), "net salary %s", calc.NetSalary)
}

func TestCalculate_MissingSettings(t *testing.T) {
	t.Parallel()

	salary := decimal.NewFromInt(5000000)
	emp := employee.Employee{ID: "emp-1", BasicSalary: &salary}

	settings := testSettings()
	settings.LateTimeBlock = 0

	_, err := Calculate(CalculationInput{
		Employee: emp,
		Period:   "2024-03",
		Shift:    testShift(),
		Settings: settings,
	})
	assert.ErrorIs(t, err, payroll.ErrMissingSettings)
}

func TestCalculate_LockedCalculation(t *testing.T) {
	t.Parallel()

	in := fullScenarioInput()
	existing, err := Calculate(in)
	require.NoError(t, err)

	finalized, err := Transition(existing, payroll.CalculationStatusFinalized, time.Now())
	require.NoError(t, err)

	in.Existing = &finalized
	_, err = Calculate(in)
	assert.ErrorIs(t, err, payroll.ErrCalculationLocked)

	paid, err := Transition(finalized, payroll.CalculationStatusPaid, time.Now())
	require.NoError(t, err)

	in.Existing = &paid
	_, err = Calculate(in)
	assert.ErrorIs(t, err, payroll.ErrCalculationLocked)
}

func TestCalculate_NoBasicSalary(t *testing.T) {
	t.Parallel()

	_, err := Calculate(CalculationInput{
		Employee: employee.Employee{ID: "emp-1"},
		Period:   "2024-03",
		Shift:    testShift(),
		Settings: testSettings(),
	})
	assert.ErrorIs(t, err, payroll.ErrEmployeeHasNoSalary)
}

// ========== STATUS TRANSITIONS ==========

func TestTransition_LinearPath(t *testing.T) {
	t.Parallel()

	calc := payroll.SalaryCalculation{ID: "calc-1", Status: payroll.CalculationStatusDraft}
	now := time.Date(2024, time.March, 27, 10, 0, 0, 0, time.UTC)

	finalized, err := Transition(calc, payroll.CalculationStatusFinalized, now)
	require.NoError(t, err)
	assert.Equal(t, payroll.CalculationStatusFinalized, finalized.Status)
	require.NotNil(t, finalized.FinalizedAt)
	assert.Equal(t, now, *finalized.FinalizedAt)

	later := now.Add(24 * time.Hour)
	paid, err := Transition(finalized, payroll.CalculationStatusPaid, later)
	require.NoError(t, err)
	assert.Equal(t, payroll.CalculationStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, later, *paid.PaidAt)
}

func TestTransition_InvalidMoves(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tests := []struct {
		name string
		from payroll.CalculationStatus
		to   payroll.CalculationStatus
	}{
		{"draft to paid skips a state", payroll.CalculationStatusDraft, payroll.CalculationStatusPaid},
		{"draft to draft no-op", payroll.CalculationStatusDraft, payroll.CalculationStatusDraft},
		{"finalized to draft rollback", payroll.CalculationStatusFinalized, payroll.CalculationStatusDraft},
		{"finalized to finalized no-op", payroll.CalculationStatusFinalized, payroll.CalculationStatusFinalized},
		{"paid to finalized rollback", payroll.CalculationStatusPaid, payroll.CalculationStatusFinalized},
		{"paid to draft rollback", payroll.CalculationStatusPaid, payroll.CalculationStatusDraft},
		{"paid to paid no-op", payroll.CalculationStatusPaid, payroll.CalculationStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := payroll.SalaryCalculation{ID: "calc-1", Status: tt.from}
			_, err := Transition(calc, tt.to, now)
			assert.ErrorIs(t, err, payroll.ErrInvalidTransition)
		})
	}
}
