package payroll

import "context"

// PayrollRepository defines data access for deduction settings and salary
// calculations.
type PayrollRepository interface {
	// Settings
	GetSettings(ctx context.Context) (DeductionSettings, error)
	UpsertSettings(ctx context.Context, settings DeductionSettings) (DeductionSettings, error)

	// Calculations
	UpsertCalculation(ctx context.Context, calc SalaryCalculation) (SalaryCalculation, error)
	GetCalculationByID(ctx context.Context, id string) (SalaryCalculation, error)
	GetCalculationByEmployeePeriod(ctx context.Context, employeeID string, period string) (SalaryCalculation, error)
	ListCalculations(ctx context.Context, filter CalculationFilter) ([]SalaryCalculation, int64, error)
	UpdateStatus(ctx context.Context, calc SalaryCalculation) error

	// Aggregations
	GetSummary(ctx context.Context, period string) (SummaryResponse, error)
}
