package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/payroll"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== SALARY SETTINGS ==========

const salarySettingsColumns = `id, employee_id, organization_id, base_salary, currency, tax_percentage, custom_tax_amount, monthly_allowances, created_at, updated_at`

func scanSalarySettings(row pgx.Row) (payroll.SalarySettings, error) {
	var s payroll.SalarySettings
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.OrganizationID, &s.BaseSalary, &s.Currency,
		&s.TaxPercentage, &s.CustomTaxAmount, &s.MonthlyAllowances,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *payrollRepository) GetSalarySettings(ctx context.Context, employeeID string, organizationID string) (payroll.SalarySettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salarySettingsColumns + `
		FROM salary_settings
		WHERE employee_id = $1 AND organization_id = $2
	`
	s, err := scanSalarySettings(q.QueryRow(ctx, query, employeeID, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalarySettings{}, payroll.ErrSalarySettingsNotFound
		}
		return payroll.SalarySettings{}, fmt.Errorf("failed to get salary settings: %w", err)
	}
	return s, nil
}

func (r *payrollRepository) UpsertSalarySettings(ctx context.Context, settings payroll.SalarySettings) (payroll.SalarySettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_settings (
			id, employee_id, organization_id, base_salary, currency,
			tax_percentage, custom_tax_amount, monthly_allowances
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			currency = EXCLUDED.currency,
			tax_percentage = EXCLUDED.tax_percentage,
			custom_tax_amount = EXCLUDED.custom_tax_amount,
			monthly_allowances = EXCLUDED.monthly_allowances,
			updated_at = NOW()
		RETURNING ` + salarySettingsColumns
	s, err := scanSalarySettings(q.QueryRow(ctx, query,
		settings.ID, settings.EmployeeID, settings.OrganizationID,
		settings.BaseSalary, settings.Currency, settings.TaxPercentage,
		settings.CustomTaxAmount, settings.MonthlyAllowances,
	))
	if err != nil {
		return payroll.SalarySettings{}, fmt.Errorf("failed to upsert salary settings: %w", err)
	}
	return s, nil
}

// ========== PAYROLL RECORDS ==========

const payrollRecordColumns = `
	r.id, r.employee_id, r.organization_id, r.payroll_month,
	r.base_salary, r.bonuses, r.allowances, r.unpaid_leave_days,
	r.per_day_rate, r.leave_deduction, r.tax_percentage, r.tax_deduction,
	r.gross_pay, r.total_deductions, r.net_pay, r.currency,
	r.payment_status, r.payment_date, r.payment_reference,
	r.generated_by, r.notes, r.created_at, r.updated_at, e.full_name`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.OrganizationID, &rec.PayrollMonth,
		&rec.BaseSalary, &rec.Bonuses, &rec.Allowances, &rec.UnpaidLeaveDays,
		&rec.PerDayRate, &rec.LeaveDeduction, &rec.TaxPercentage, &rec.TaxDeduction,
		&rec.GrossPay, &rec.TotalDeductions, &rec.NetPay, &rec.Currency,
		&rec.PaymentStatus, &rec.PaymentDate, &rec.PaymentReference,
		&rec.GeneratedBy, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
	)
	return rec, err
}

func (r *payrollRepository) CreateRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	// Unique index on (employee_id, payroll_month) backs the duplicate-month
	// guarantee against concurrent generation.
	query := `
		WITH inserted AS (
			INSERT INTO payroll_records (
				id, employee_id, organization_id, payroll_month,
				base_salary, bonuses, allowances, unpaid_leave_days,
				per_day_rate, leave_deduction, tax_percentage, tax_deduction,
				gross_pay, total_deductions, net_pay, currency,
				payment_status, generated_by, notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
			RETURNING *
		)
		SELECT ` + payrollRecordColumns + `
		FROM inserted r
		JOIN employees e ON e.id = r.employee_id
	`
	rec, err := scanPayrollRecord(q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.OrganizationID, record.PayrollMonth,
		record.BaseSalary, record.Bonuses, record.Allowances, record.UnpaidLeaveDays,
		record.PerDayRate, record.LeaveDeduction, record.TaxPercentage, record.TaxDeduction,
		record.GrossPay, record.TotalDeductions, record.NetPay, record.Currency,
		record.PaymentStatus, record.GeneratedBy, record.Notes,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}
	return rec, nil
}

func (r *payrollRepository) GetRecordByID(ctx context.Context, id string, organizationID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.id = $1 AND r.organization_id = $2
	`
	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return rec, nil
}

func (r *payrollRepository) GetRecordByEmployeeMonth(ctx context.Context, employeeID string, payrollMonth string, organizationID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.employee_id = $1 AND r.payroll_month = $2 AND r.organization_id = $3
	`
	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, payrollMonth, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record by month: %w", err)
	}
	return rec, nil
}

func (r *payrollRepository) ListRecords(ctx context.Context, organizationID string, filter payroll.RecordFilter) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"r.organization_id = $1"}
	args := []interface{}{organizationID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("r.employee_id = $%d", len(args)))
	}
	if filter.Month != nil {
		args = append(args, *filter.Month)
		conditions = append(conditions, fmt.Sprintf("r.payroll_month = $%d", len(args)))
	}
	if filter.Year != nil {
		args = append(args, fmt.Sprintf("%04d-%%", *filter.Year))
		conditions = append(conditions, fmt.Sprintf("r.payroll_month LIKE $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records r
		JOIN employees e ON e.id = r.employee_id
		WHERE %s
		ORDER BY r.payroll_month DESC, e.full_name
	`, payrollRecordColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *payrollRepository) UpdatePaymentStatus(ctx context.Context, organizationID string, req payroll.UpdatePaymentStatusRequest) error {
	q := GetQuerier(ctx, r.db)

	var paymentDate *time.Time
	if req.PaymentDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.PaymentDate)
		if err != nil {
			return fmt.Errorf("failed to parse payment date: %w", err)
		}
		paymentDate = &parsed
	}

	// Only the payment fields ever change; monetary columns are immutable.
	query := `
		UPDATE payroll_records
		SET payment_status = $3, payment_date = $4, payment_reference = $5, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2
	`
	tag, err := q.Exec(ctx, query, req.ID, organizationID, req.Status, paymentDate, req.PaymentReference)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}
	return nil
}
