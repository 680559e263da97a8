package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/presensia/presensia-backend-go/internal/pkg/validator"
)

// ========== SETTINGS DTOs ==========

type DeductionSettingsResponse struct {
	ID                  string          `json:"id"`
	AbsentDeduction     decimal.Decimal `json:"absent_deduction"`
	LeaveDeduction      decimal.Decimal `json:"leave_deduction"`
	LateDeduction       decimal.Decimal `json:"late_deduction"`
	EarlyLeaveDeduction decimal.Decimal `json:"early_leave_deduction"`
	LateTimeBlock       int             `json:"late_time_block"`
	EarlyLeaveTimeBlock int             `json:"early_leave_time_block"`
	SalaryPaymentDate   int             `json:"salary_payment_date"`
	WorkingDaysPerWeek  []int           `json:"working_days_per_week"`
	Holidays            []string        `json:"holidays"`
}

type UpdateDeductionSettingsRequest struct {
	AbsentDeduction     *decimal.Decimal `json:"absent_deduction,omitempty"`
	LeaveDeduction      *decimal.Decimal `json:"leave_deduction,omitempty"`
	LateDeduction       *decimal.Decimal `json:"late_deduction,omitempty"`
	EarlyLeaveDeduction *decimal.Decimal `json:"early_leave_deduction,omitempty"`
	LateTimeBlock       *int             `json:"late_time_block,omitempty"`
	EarlyLeaveTimeBlock *int             `json:"early_leave_time_block,omitempty"`
	SalaryPaymentDate   *int             `json:"salary_payment_date,omitempty"`
	WorkingDaysPerWeek  []int            `json:"working_days_per_week,omitempty"`
	Holidays            []string         `json:"holidays,omitempty"`
}

func (r *UpdateDeductionSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	amounts := map[string]*decimal.Decimal{
		"absent_deduction":      r.AbsentDeduction,
		"leave_deduction":       r.LeaveDeduction,
		"late_deduction":        r.LateDeduction,
		"early_leave_deduction": r.EarlyLeaveDeduction,
	}
	for field, amount := range amounts {
		if amount == nil {
			continue
		}
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
		if !amount.Equal(amount.Truncate(0)) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be a whole currency amount"})
		}
	}

	if r.LateTimeBlock != nil && *r.LateTimeBlock < 1 {
		errs = append(errs, validator.ValidationError{Field: "late_time_block", Message: "must be at least 1 minute"})
	}
	if r.EarlyLeaveTimeBlock != nil && *r.EarlyLeaveTimeBlock < 1 {
		errs = append(errs, validator.ValidationError{Field: "early_leave_time_block", Message: "must be at least 1 minute"})
	}
	if r.SalaryPaymentDate != nil && (*r.SalaryPaymentDate < 1 || *r.SalaryPaymentDate > 28) {
		errs = append(errs, validator.ValidationError{Field: "salary_payment_date", Message: "must be between 1 and 28"})
	}
	for _, day := range r.WorkingDaysPerWeek {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{Field: "working_days_per_week", Message: "weekday indices must be between 0 (Sunday) and 6 (Saturday)"})
			break
		}
	}
	for _, holiday := range r.Holidays {
		if _, ok := validator.IsValidDate(holiday); !ok {
			errs = append(errs, validator.ValidationError{Field: "holidays", Message: "dates must be in YYYY-MM-DD format"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== CALCULATION DTOs ==========

type CalculateRequest struct {
	Period      string   `json:"period"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // Empty = all active employees
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "is required"})
	} else if !validator.IsValidPeriodKey(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculationResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Period      string `json:"period"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	DivisionName *string `json:"division_name,omitempty"`

	BasicSalary decimal.Decimal `json:"basic_salary"`

	WorkingDays            int `json:"working_days"`
	PresentDays            int `json:"present_days"`
	LeaveDays              int `json:"leave_days"`
	AbsentDays             int `json:"absent_days"`
	TotalLateMinutes       int `json:"total_late_minutes"`
	TotalEarlyLeaveMinutes int `json:"total_early_leave_minutes"`
	LateBlocks             int `json:"late_blocks"`
	EarlyLeaveBlocks       int `json:"early_leave_blocks"`

	AbsentDeduction     decimal.Decimal `json:"absent_deduction"`
	LeaveDeduction      decimal.Decimal `json:"leave_deduction"`
	LateDeduction       decimal.Decimal `json:"late_deduction"`
	EarlyLeaveDeduction decimal.Decimal `json:"early_leave_deduction"`
	TotalDeduction      decimal.Decimal `json:"total_deduction"`
	NetSalary           decimal.Decimal `json:"net_salary"`

	Status       string  `json:"status"`
	CalculatedAt string  `json:"calculated_at"`
	FinalizedAt  *string `json:"finalized_at,omitempty"`
	PaidAt       *string `json:"paid_at,omitempty"`
}

// CalculateResult reports one calculation run over many employees: what was
// written, who was skipped and why.
type CalculateResult struct {
	Period       string                `json:"period"`
	Calculations []CalculationResponse `json:"calculations"`
	Skipped      []SkippedEmployee     `json:"skipped,omitempty"`
}

type SkippedEmployee struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"` // "calculation_locked" or "no_basic_salary"
}

type CalculationFilter struct {
	Period     *string
	Status     *string
	EmployeeID *string
	Page       int
	Limit      int
}

type ListCalculationsResponse struct {
	Data       []CalculationResponse `json:"data"`
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
}

type StatusRequest struct {
	CalculationIDs []string `json:"calculation_ids"`
}

func (r *StatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.CalculationIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "calculation_ids", Message: "at least one calculation is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryResponse struct {
	Period          string          `json:"period"`
	TotalEmployees  int             `json:"total_employees"`
	TotalBasic      decimal.Decimal `json:"total_basic_salary"`
	TotalDeduction  decimal.Decimal `json:"total_deduction"`
	TotalNet        decimal.Decimal `json:"total_net_salary"`
	TotalAbsentDays int             `json:"total_absent_days"`
	TotalLeaveDays  int             `json:"total_leave_days"`
	DraftCount      int             `json:"draft_count"`
	FinalizedCount  int             `json:"finalized_count"`
	PaidCount       int             `json:"paid_count"`
}

// ToResponse maps a calculation entity into its transport shape.
func ToResponse(c SalaryCalculation) CalculationResponse {
	var finalizedAt, paidAt *string
	if c.FinalizedAt != nil {
		str := c.FinalizedAt.Format(time.RFC3339)
		finalizedAt = &str
	}
	if c.PaidAt != nil {
		str := c.PaidAt.Format(time.RFC3339)
		paidAt = &str
	}

	return CalculationResponse{
		ID:                     c.ID,
		EmployeeID:             c.EmployeeID,
		Period:                 c.Period,
		PeriodStart:            c.PeriodStart.Format("2006-01-02"),
		PeriodEnd:              c.PeriodEnd.Format("2006-01-02"),
		EmployeeName:           c.EmployeeName,
		EmployeeCode:           c.EmployeeCode,
		DivisionName:           c.DivisionName,
		BasicSalary:            c.BasicSalary,
		WorkingDays:            c.WorkingDays,
		PresentDays:            c.PresentDays,
		LeaveDays:              c.LeaveDays,
		AbsentDays:             c.AbsentDays,
		TotalLateMinutes:       c.TotalLateMinutes,
		TotalEarlyLeaveMinutes: c.TotalEarlyLeaveMinutes,
		LateBlocks:             c.LateBlocks,
		EarlyLeaveBlocks:       c.EarlyLeaveBlocks,
		AbsentDeduction:        c.AbsentDeduction,
		LeaveDeduction:         c.LeaveDeduction,
		LateDeduction:          c.LateDeduction,
		EarlyLeaveDeduction:    c.EarlyLeaveDeduction,
		TotalDeduction:         c.TotalDeduction,
		NetSalary:              c.NetSalary,
		Status:                 string(c.Status),
		CalculatedAt:           c.CalculatedAt.Format(time.RFC3339),
		FinalizedAt:            finalizedAt,
		PaidAt:                 paidAt,
	}
}
