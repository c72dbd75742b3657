package payroll

import "context"

// PayrollRepository defines data access for salary settings and payroll
// records. All methods take organizationID to prevent cross-tenant access.
// The payroll_records table must carry a unique index on
// (employee_id, payroll_month): the service's duplicate check is
// lookup-then-insert and is not atomic on its own.
type PayrollRepository interface {
	// Salary settings
	GetSalarySettings(ctx context.Context, employeeID string, organizationID string) (SalarySettings, error)
	UpsertSalarySettings(ctx context.Context, settings SalarySettings) (SalarySettings, error)

	// Payroll records
	CreateRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetRecordByID(ctx context.Context, id string, organizationID string) (PayrollRecord, error)
	GetRecordByEmployeeMonth(ctx context.Context, employeeID string, payrollMonth string, organizationID string) (PayrollRecord, error)
	ListRecords(ctx context.Context, organizationID string, filter RecordFilter) ([]PayrollRecord, error)
	UpdatePaymentStatus(ctx context.Context, organizationID string, req UpdatePaymentStatusRequest) error
}
