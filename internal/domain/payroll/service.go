package payroll

import "context"

type PayrollService interface {
	// Salary settings
	UpsertSalarySettings(ctx context.Context, req UpsertSalarySettingsRequest) (SalarySettingsResponse, error)
	GetSalarySettings(ctx context.Context, employeeID string) (SalarySettingsResponse, error)

	// Payroll records
	GenerateRecord(ctx context.Context, req GeneratePayrollRequest) (PayrollRecordResponse, error)
	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]PayrollRecordResponse, error)
	UpdatePaymentStatus(ctx context.Context, req UpdatePaymentStatusRequest) (PayrollRecordResponse, error)
	RenderPayslip(ctx context.Context, id string) ([]byte, error)
}
