package payroll

import "context"

type PayrollService interface {
	// Settings
	GetSettings(ctx context.Context) (DeductionSettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateDeductionSettingsRequest) (DeductionSettingsResponse, error)

	// Calculations
	Calculate(ctx context.Context, req CalculateRequest) (CalculateResult, error)
	GetCalculation(ctx context.Context, id string) (CalculationResponse, error)
	ListCalculations(ctx context.Context, filter CalculationFilter) (ListCalculationsResponse, error)
	Finalize(ctx context.Context, req StatusRequest) ([]CalculationResponse, error)
	MarkPaid(ctx context.Context, req StatusRequest) ([]CalculationResponse, error)

	// Summary
	GetSummary(ctx context.Context, period string) (SummaryResponse, error)
}
