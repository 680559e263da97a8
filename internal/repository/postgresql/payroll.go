package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/presensia/presensia-backend-go/internal/domain/payroll"
	"github.com/presensia/presensia-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== SETTINGS ==========

// deduction_settings is a singleton table: one row, guarded by a unique
// constant column so upserts always target it.

func (r *payrollRepository) GetSettings(ctx context.Context) (payroll.DeductionSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, absent_deduction, leave_deduction, late_deduction, early_leave_deduction,
			   late_time_block, early_leave_time_block, salary_payment_date,
			   working_days_per_week, holidays, created_at, updated_at
		FROM deduction_settings
		LIMIT 1
	`

	var s payroll.DeductionSettings
	var workingDays []int
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.AbsentDeduction, &s.LeaveDeduction, &s.LateDeduction, &s.EarlyLeaveDeduction,
		&s.LateTimeBlock, &s.EarlyLeaveTimeBlock, &s.SalaryPaymentDate,
		&workingDays, &s.Holidays, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return payroll.DeductionSettings{}, err
	}

	for _, d := range workingDays {
		s.WorkingDaysPerWeek = append(s.WorkingDaysPerWeek, time.Weekday(d))
	}
	return s, nil
}

func (r *payrollRepository) UpsertSettings(ctx context.Context, settings payroll.DeductionSettings) (payroll.DeductionSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_settings (
			id, singleton, absent_deduction, leave_deduction, late_deduction, early_leave_deduction,
			late_time_block, early_leave_time_block, salary_payment_date,
			working_days_per_week, holidays
		) VALUES (uuidv7(), TRUE, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (singleton) DO UPDATE SET
			absent_deduction = EXCLUDED.absent_deduction,
			leave_deduction = EXCLUDED.leave_deduction,
			late_deduction = EXCLUDED.late_deduction,
			early_leave_deduction = EXCLUDED.early_leave_deduction,
			late_time_block = EXCLUDED.late_time_block,
			early_leave_time_block = EXCLUDED.early_leave_time_block,
			salary_payment_date = EXCLUDED.salary_payment_date,
			working_days_per_week = EXCLUDED.working_days_per_week,
			holidays = EXCLUDED.holidays,
			updated_at = NOW()
		RETURNING id, absent_deduction, leave_deduction, late_deduction, early_leave_deduction,
			late_time_block, early_leave_time_block, salary_payment_date,
			working_days_per_week, holidays, created_at, updated_at
	`

	workingDays := make([]int, 0, len(settings.WorkingDaysPerWeek))
	for _, d := range settings.WorkingDaysPerWeek {
		workingDays = append(workingDays, int(d))
	}
	if settings.Holidays == nil {
		settings.Holidays = []string{}
	}

	var s payroll.DeductionSettings
	var savedDays []int
	err := q.QueryRow(ctx, query,
		settings.AbsentDeduction, settings.LeaveDeduction, settings.LateDeduction, settings.EarlyLeaveDeduction,
		settings.LateTimeBlock, settings.EarlyLeaveTimeBlock, settings.SalaryPaymentDate,
		workingDays, settings.Holidays,
	).Scan(
		&s.ID, &s.AbsentDeduction, &s.LeaveDeduction, &s.LateDeduction, &s.EarlyLeaveDeduction,
		&s.LateTimeBlock, &s.EarlyLeaveTimeBlock, &s.SalaryPaymentDate,
		&savedDays, &s.Holidays, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return payroll.DeductionSettings{}, fmt.Errorf("failed to upsert deduction settings: %w", err)
	}

	for _, d := range savedDays {
		s.WorkingDaysPerWeek = append(s.WorkingDaysPerWeek, time.Weekday(d))
	}
	return s, nil
}

// ========== CALCULATIONS ==========

const calculationColumns = `
	c.id, c.employee_id, c.period, c.period_start, c.period_end, c.basic_salary,
	c.working_days, c.present_days, c.leave_days, c.absent_days,
	c.total_late_minutes, c.total_early_leave_minutes, c.late_blocks, c.early_leave_blocks,
	c.absent_deduction, c.leave_deduction, c.late_deduction, c.early_leave_deduction,
	c.total_deduction, c.net_salary,
	c.status, c.calculated_at, c.finalized_at, c.paid_at, c.created_at, c.updated_at,
	e.full_name AS employee_name, e.employee_code AS employee_code, d.name AS division_name
`

func scanCalculation(row interface{ Scan(dest ...any) error }) (payroll.SalaryCalculation, error) {
	var c payroll.SalaryCalculation
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.Period, &c.PeriodStart, &c.PeriodEnd, &c.BasicSalary,
		&c.WorkingDays, &c.PresentDays, &c.LeaveDays, &c.AbsentDays,
		&c.TotalLateMinutes, &c.TotalEarlyLeaveMinutes, &c.LateBlocks, &c.EarlyLeaveBlocks,
		&c.AbsentDeduction, &c.LeaveDeduction, &c.LateDeduction, &c.EarlyLeaveDeduction,
		&c.TotalDeduction, &c.NetSalary,
		&c.Status, &c.CalculatedAt, &c.FinalizedAt, &c.PaidAt, &c.CreatedAt, &c.UpdatedAt,
		&c.EmployeeName, &c.EmployeeCode, &c.DivisionName,
	)
	return c, err
}

// UpsertCalculation writes one engine result. The update arm only fires while
// the stored row is still a draft, so a concurrent finalize cannot be
// overwritten; that race surfaces as ErrCalculationLocked.
func (r *payrollRepository) UpsertCalculation(ctx context.Context, calc payroll.SalaryCalculation) (payroll.SalaryCalculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_calculations (
			id, employee_id, period, period_start, period_end, basic_salary,
			working_days, present_days, leave_days, absent_days,
			total_late_minutes, total_early_leave_minutes, late_blocks, early_leave_blocks,
			absent_deduction, leave_deduction, late_deduction, early_leave_deduction,
			total_deduction, net_salary, status, calculated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21
		)
		ON CONFLICT (employee_id, period) DO UPDATE SET
			period_start = EXCLUDED.period_start,
			period_end = EXCLUDED.period_end,
			basic_salary = EXCLUDED.basic_salary,
			working_days = EXCLUDED.working_days,
			present_days = EXCLUDED.present_days,
			leave_days = EXCLUDED.leave_days,
			absent_days = EXCLUDED.absent_days,
			total_late_minutes = EXCLUDED.total_late_minutes,
			total_early_leave_minutes = EXCLUDED.total_early_leave_minutes,
			late_blocks = EXCLUDED.late_blocks,
			early_leave_blocks = EXCLUDED.early_leave_blocks,
			absent_deduction = EXCLUDED.absent_deduction,
			leave_deduction = EXCLUDED.leave_deduction,
			late_deduction = EXCLUDED.late_deduction,
			early_leave_deduction = EXCLUDED.early_leave_deduction,
			total_deduction = EXCLUDED.total_deduction,
			net_salary = EXCLUDED.net_salary,
			calculated_at = EXCLUDED.calculated_at,
			updated_at = NOW()
		WHERE salary_calculations.status = 'draft'
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		calc.EmployeeID, calc.Period, calc.PeriodStart, calc.PeriodEnd, calc.BasicSalary,
		calc.WorkingDays, calc.PresentDays, calc.LeaveDays, calc.AbsentDays,
		calc.TotalLateMinutes, calc.TotalEarlyLeaveMinutes, calc.LateBlocks, calc.EarlyLeaveBlocks,
		calc.AbsentDeduction, calc.LeaveDeduction, calc.LateDeduction, calc.EarlyLeaveDeduction,
		calc.TotalDeduction, calc.NetSalary, calc.Status, calc.CalculatedAt,
	).Scan(&calc.ID, &calc.CreatedAt, &calc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryCalculation{}, payroll.ErrCalculationLocked
		}
		return payroll.SalaryCalculation{}, fmt.Errorf("failed to upsert calculation: %w", err)
	}

	return calc, nil
}

func (r *payrollRepository) GetCalculationByID(ctx context.Context, id string) (payroll.SalaryCalculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + calculationColumns + `
		FROM salary_calculations c
		JOIN employees e ON e.id = c.employee_id
		JOIN divisions d ON d.id = e.division_id
		WHERE c.id = $1
	`

	return scanCalculation(q.QueryRow(ctx, query, id))
}

func (r *payrollRepository) GetCalculationByEmployeePeriod(ctx context.Context, employeeID string, period string) (payroll.SalaryCalculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + calculationColumns + `
		FROM salary_calculations c
		JOIN employees e ON e.id = c.employee_id
		JOIN divisions d ON d.id = e.division_id
		WHERE c.employee_id = $1 AND c.period = $2
	`

	calc, err := scanCalculation(q.QueryRow(ctx, query, employeeID, period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryCalculation{}, payroll.ErrCalculationNotFound
		}
		return payroll.SalaryCalculation{}, err
	}
	return calc, nil
}

func (r *payrollRepository) ListCalculations(ctx context.Context, filter payroll.CalculationFilter) ([]payroll.SalaryCalculation, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argPos := 1

	if filter.Period != nil {
		conditions = append(conditions, fmt.Sprintf("c.period = $%d", argPos))
		args = append(args, *filter.Period)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("c.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("c.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM salary_calculations c " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count calculations: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM salary_calculations c
		JOIN employees e ON e.id = c.employee_id
		JOIN divisions d ON d.id = e.division_id
		%s
		ORDER BY c.period DESC, e.employee_code
		LIMIT $%d OFFSET $%d
	`, calculationColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	var calcs []payroll.SalaryCalculation
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan calculation: %w", err)
		}
		calcs = append(calcs, c)
	}
	return calcs, total, rows.Err()
}

// UpdateStatus persists a status transition. The WHERE clause re-checks the
// prior status so two concurrent transitions cannot both succeed.
func (r *payrollRepository) UpdateStatus(ctx context.Context, calc payroll.SalaryCalculation) error {
	q := GetQuerier(ctx, r.db)

	var priorStatus payroll.CalculationStatus
	switch calc.Status {
	case payroll.CalculationStatusFinalized:
		priorStatus = payroll.CalculationStatusDraft
	case payroll.CalculationStatusPaid:
		priorStatus = payroll.CalculationStatusFinalized
	default:
		return fmt.Errorf("%w: cannot persist status %s", payroll.ErrInvalidTransition, calc.Status)
	}

	query := `
		UPDATE salary_calculations
		SET status = $2, finalized_at = $3, paid_at = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
	`

	tag, err := q.Exec(ctx, query, calc.ID, calc.Status, calc.FinalizedAt, calc.PaidAt, priorStatus)
	if err != nil {
		return fmt.Errorf("failed to update calculation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: calculation %s is no longer %s", payroll.ErrInvalidTransition, calc.ID, priorStatus)
	}
	return nil
}

// ========== AGGREGATIONS ==========

func (r *payrollRepository) GetSummary(ctx context.Context, period string) (payroll.SummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*)::int,
			COALESCE(SUM(basic_salary), 0),
			COALESCE(SUM(total_deduction), 0),
			COALESCE(SUM(net_salary), 0),
			COALESCE(SUM(absent_days), 0)::int,
			COALESCE(SUM(leave_days), 0)::int,
			COUNT(*) FILTER (WHERE status = 'draft')::int,
			COUNT(*) FILTER (WHERE status = 'finalized')::int,
			COUNT(*) FILTER (WHERE status = 'paid')::int
		FROM salary_calculations
		WHERE period = $1
	`

	summary := payroll.SummaryResponse{Period: period}
	err := q.QueryRow(ctx, query, period).Scan(
		&summary.TotalEmployees,
		&summary.TotalBasic,
		&summary.TotalDeduction,
		&summary.TotalNet,
		&summary.TotalAbsentDays,
		&summary.TotalLeaveDays,
		&summary.DraftCount,
		&summary.FinalizedCount,
		&summary.PaidCount,
	)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return summary, nil
}
