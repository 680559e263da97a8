package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/presensia/presensia-backend-go/internal/domain/attendance"
	"github.com/presensia/presensia-backend-go/internal/domain/employee"
	"github.com/presensia/presensia-backend-go/internal/domain/leave"
	"github.com/presensia/presensia-backend-go/internal/domain/master/shift"
	"github.com/presensia/presensia-backend-go/internal/domain/payroll"
	"github.com/presensia/presensia-backend-go/internal/pkg/database"
	"github.com/presensia/presensia-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	shiftRepo      shift.WorkShiftRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	shiftRepo shift.WorkShiftRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		shiftRepo:      shiftRepo,
	}
}

// ========== SETTINGS ==========

func (s *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.DeductionSettingsResponse, error) {
	settings, err := s.payrollRepo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.DeductionSettingsResponse{}, payroll.ErrMissingSettings
		}
		return payroll.DeductionSettingsResponse{}, fmt.Errorf("failed to get deduction settings: %w", err)
	}

	return toSettingsResponse(settings), nil
}

func (s *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdateDeductionSettingsRequest) (payroll.DeductionSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionSettingsResponse{}, err
	}

	// Start from the current row so a partial update keeps untouched fields.
	// An empty baseline is fine on first configuration; Validate below demands
	// the request fills every required field in that case.
	settings, err := s.payrollRepo.GetSettings(ctx)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return payroll.DeductionSettingsResponse{}, fmt.Errorf("failed to get deduction settings: %w", err)
	}

	applySettingsUpdate(&settings, req)

	if err := settings.Validate(); err != nil {
		return payroll.DeductionSettingsResponse{}, err
	}

	updated, err := s.payrollRepo.UpsertSettings(ctx, settings)
	if err != nil {
		return payroll.DeductionSettingsResponse{}, fmt.Errorf("failed to update deduction settings: %w", err)
	}

	return toSettingsResponse(updated), nil
}

func applySettingsUpdate(settings *payroll.DeductionSettings, req payroll.UpdateDeductionSettingsRequest) {
	if req.AbsentDeduction != nil {
		settings.AbsentDeduction = *req.AbsentDeduction
	}
	if req.LeaveDeduction != nil {
		settings.LeaveDeduction = *req.LeaveDeduction
	}
	if req.LateDeduction != nil {
		settings.LateDeduction = *req.LateDeduction
	}
	if req.EarlyLeaveDeduction != nil {
		settings.EarlyLeaveDeduction = *req.EarlyLeaveDeduction
	}
	if req.LateTimeBlock != nil {
		settings.LateTimeBlock = *req.LateTimeBlock
	}
	if req.EarlyLeaveTimeBlock != nil {
		settings.EarlyLeaveTimeBlock = *req.EarlyLeaveTimeBlock
	}
	if req.SalaryPaymentDate != nil {
		settings.SalaryPaymentDate = *req.SalaryPaymentDate
	}
	if req.WorkingDaysPerWeek != nil {
		days := make([]time.Weekday, 0, len(req.WorkingDaysPerWeek))
		for _, d := range req.WorkingDaysPerWeek {
			days = append(days, time.Weekday(d))
		}
		settings.WorkingDaysPerWeek = days
	}
	if req.Holidays != nil {
		settings.Holidays = req.Holidays
	}
}

func toSettingsResponse(settings payroll.DeductionSettings) payroll.DeductionSettingsResponse {
	days := make([]int, 0, len(settings.WorkingDaysPerWeek))
	for _, d := range settings.WorkingDaysPerWeek {
		days = append(days, int(d))
	}

	return payroll.DeductionSettingsResponse{
		ID:                  settings.ID,
		AbsentDeduction:     settings.AbsentDeduction,
		LeaveDeduction:      settings.LeaveDeduction,
		LateDeduction:       settings.LateDeduction,
		EarlyLeaveDeduction: settings.EarlyLeaveDeduction,
		LateTimeBlock:       settings.LateTimeBlock,
		EarlyLeaveTimeBlock: settings.EarlyLeaveTimeBlock,
		SalaryPaymentDate:   settings.SalaryPaymentDate,
		WorkingDaysPerWeek:  days,
		Holidays:            settings.Holidays,
	}
}

// ========== CALCULATIONS ==========

// Calculate runs the engine for every target employee. Employees whose
// calculation is locked or who have no basic salary are reported as skipped;
// any other failure aborts the whole run.
func (s *PayrollServiceImpl) Calculate(ctx context.Context, req payroll.CalculateRequest) (payroll.CalculateResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.CalculateResult{}, err
	}

	settings, err := s.payrollRepo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.CalculateResult{}, payroll.ErrMissingSettings
		}
		return payroll.CalculateResult{}, fmt.Errorf("failed to get deduction settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return payroll.CalculateResult{}, err
	}

	period, err := payroll.ResolvePeriod(req.Period, settings.SalaryPaymentDate)
	if err != nil {
		return payroll.CalculateResult{}, err
	}

	employees, err := s.targetEmployees(ctx, req.EmployeeIDs)
	if err != nil {
		return payroll.CalculateResult{}, err
	}

	// Shifts are few; fetch each distinct one once per run.
	shifts := make(map[string]shift.WorkShift)

	result := payroll.CalculateResult{Period: req.Period}
	now := time.Now()

	for _, emp := range employees {
		existing, err := s.existingCalculation(ctx, emp.ID, req.Period)
		if err != nil {
			return payroll.CalculateResult{}, err
		}
		if existing != nil && existing.Locked() {
			result.Skipped = append(result.Skipped, payroll.SkippedEmployee{
				EmployeeID: emp.ID,
				Reason:     "calculation_locked",
			})
			continue
		}
		if emp.BasicSalary == nil {
			result.Skipped = append(result.Skipped, payroll.SkippedEmployee{
				EmployeeID: emp.ID,
				Reason:     "no_basic_salary",
			})
			continue
		}

		workShift, ok := shifts[emp.ShiftID]
		if !ok {
			workShift, err = s.shiftRepo.GetByID(ctx, emp.ShiftID)
			if err != nil {
				return payroll.CalculateResult{}, fmt.Errorf("failed to get shift for employee %s: %w", emp.ID, err)
			}
			shifts[emp.ShiftID] = workShift
		}

		records, err := s.attendanceRepo.GetByEmployeeAndRange(ctx, emp.ID, period.Start, period.End)
		if err != nil {
			return payroll.CalculateResult{}, fmt.Errorf("failed to get attendance for employee %s: %w", emp.ID, err)
		}

		leaveStatuses, err := s.leaveStatuses(ctx, records)
		if err != nil {
			return payroll.CalculateResult{}, fmt.Errorf("failed to resolve leave requests for employee %s: %w", emp.ID, err)
		}

		calc, err := Calculate(CalculationInput{
			Employee:      emp,
			Period:        req.Period,
			Records:       records,
			LeaveStatuses: leaveStatuses,
			Shift:         workShift,
			Settings:      settings,
			Existing:      existing,
			Now:           now,
		})
		if err != nil {
			return payroll.CalculateResult{}, err
		}

		saved, err := s.payrollRepo.UpsertCalculation(ctx, calc)
		if err != nil {
			return payroll.CalculateResult{}, fmt.Errorf("failed to save calculation for employee %s: %w", emp.ID, err)
		}

		result.Calculations = append(result.Calculations, payroll.ToResponse(saved))
	}

	return result, nil
}

func (s *PayrollServiceImpl) targetEmployees(ctx context.Context, ids []string) ([]employee.Employee, error) {
	if len(ids) == 0 {
		employees, err := s.employeeRepo.GetActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list active employees: %w", err)
		}
		return employees, nil
	}

	employees, err := s.employeeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	if len(employees) != len(ids) {
		found := make(map[string]bool, len(employees))
		for _, emp := range employees {
			found[emp.ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return nil, fmt.Errorf("employee %s: %w", id, employee.ErrEmployeeNotFound)
			}
		}
	}
	return employees, nil
}

func (s *PayrollServiceImpl) existingCalculation(ctx context.Context, employeeID, period string) (*payroll.SalaryCalculation, error) {
	existing, err := s.payrollRepo.GetCalculationByEmployeePeriod(ctx, employeeID, period)
	if err != nil {
		if errors.Is(err, payroll.ErrCalculationNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get calculation for employee %s: %w", employeeID, err)
	}
	return &existing, nil
}

func (s *PayrollServiceImpl) leaveStatuses(ctx context.Context, records []attendance.Attendance) (map[string]leave.RequestStatus, error) {
	var ids []string
	seen := make(map[string]bool)
	for _, rec := range records {
		if rec.LeaveRequestID == nil || seen[*rec.LeaveRequestID] {
			continue
		}
		seen[*rec.LeaveRequestID] = true
		ids = append(ids, *rec.LeaveRequestID)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return s.leaveRepo.GetStatusesByIDs(ctx, ids)
}

func (s *PayrollServiceImpl) GetCalculation(ctx context.Context, id string) (payroll.CalculationResponse, error) {
	calc, err := s.payrollRepo.GetCalculationByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.CalculationResponse{}, payroll.ErrCalculationNotFound
		}
		return payroll.CalculationResponse{}, fmt.Errorf("failed to get calculation: %w", err)
	}

	return payroll.ToResponse(calc), nil
}

func (s *PayrollServiceImpl) ListCalculations(ctx context.Context, filter payroll.CalculationFilter) (payroll.ListCalculationsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	calcs, total, err := s.payrollRepo.ListCalculations(ctx, filter)
	if err != nil {
		return payroll.ListCalculationsResponse{}, fmt.Errorf("failed to list calculations: %w", err)
	}

	responses := make([]payroll.CalculationResponse, 0, len(calcs))
	for _, calc := range calcs {
		responses = append(responses, payroll.ToResponse(calc))
	}

	return payroll.ListCalculationsResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// ========== STATUS TRANSITIONS ==========

func (s *PayrollServiceImpl) Finalize(ctx context.Context, req payroll.StatusRequest) ([]payroll.CalculationResponse, error) {
	return s.transitionAll(ctx, req, payroll.CalculationStatusFinalized)
}

func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, req payroll.StatusRequest) ([]payroll.CalculationResponse, error) {
	return s.transitionAll(ctx, req, payroll.CalculationStatusPaid)
}

// transitionAll advances every listed calculation in one transaction. A single
// invalid transition rolls back the whole batch.
func (s *PayrollServiceImpl) transitionAll(ctx context.Context, req payroll.StatusRequest, newStatus payroll.CalculationStatus) ([]payroll.CalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]payroll.CalculationResponse, 0, len(req.CalculationIDs))

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, id := range req.CalculationIDs {
			calc, err := s.payrollRepo.GetCalculationByID(txCtx, id)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("calculation %s: %w", id, payroll.ErrCalculationNotFound)
				}
				return fmt.Errorf("failed to get calculation %s: %w", id, err)
			}

			updated, err := Transition(calc, newStatus, now)
			if err != nil {
				return err
			}

			if err := s.payrollRepo.UpdateStatus(txCtx, updated); err != nil {
				return fmt.Errorf("failed to update calculation %s: %w", id, err)
			}

			responses = append(responses, payroll.ToResponse(updated))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

// ========== SUMMARY ==========

func (s *PayrollServiceImpl) GetSummary(ctx context.Context, period string) (payroll.SummaryResponse, error) {
	req := payroll.CalculateRequest{Period: period}
	if err := req.Validate(); err != nil {
		return payroll.SummaryResponse{}, err
	}

	summary, err := s.payrollRepo.GetSummary(ctx, period)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return summary, nil
}
