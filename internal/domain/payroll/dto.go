package payroll

import (
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SALARY SETTINGS DTOs ==========

type UpsertSalarySettingsRequest struct {
	EmployeeID        string           `json:"-"`
	BaseSalary        decimal.Decimal  `json:"base_salary"`
	Currency          string           `json:"currency"`
	TaxPercentage     decimal.Decimal  `json:"tax_percentage"`
	CustomTaxAmount   *decimal.Decimal `json:"custom_tax_amount,omitempty"`
	MonthlyAllowances *decimal.Decimal `json:"monthly_allowances,omitempty"`
}

func (r *UpsertSalarySettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be positive"})
	}
	if !validator.IsValidCurrency(r.Currency) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "must be a three-letter currency code"})
	}
	if r.TaxPercentage.IsNegative() || r.TaxPercentage.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "tax_percentage", Message: "must be between 0 and 100"})
	}
	if r.CustomTaxAmount != nil && r.CustomTaxAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "custom_tax_amount", Message: "must be non-negative"})
	}
	if r.MonthlyAllowances != nil && r.MonthlyAllowances.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_allowances", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalarySettingsResponse struct {
	ID                string           `json:"id"`
	EmployeeID        string           `json:"employee_id"`
	BaseSalary        decimal.Decimal  `json:"base_salary"`
	Currency          string           `json:"currency"`
	TaxPercentage     decimal.Decimal  `json:"tax_percentage"`
	CustomTaxAmount   *decimal.Decimal `json:"custom_tax_amount,omitempty"`
	MonthlyAllowances decimal.Decimal  `json:"monthly_allowances"`
}

// ========== PAYROLL RECORD DTOs ==========

type GeneratePayrollRequest struct {
	EmployeeID      string           `json:"employee_id"`
	PayrollMonth    string           `json:"payroll_month"` // "YYYY-MM"
	Bonuses         *decimal.Decimal `json:"bonuses,omitempty"`
	UnpaidLeaveDays *int             `json:"unpaid_leave_days,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidPayrollMonth(r.PayrollMonth); !ok {
		errs = append(errs, validator.ValidationError{Field: "payroll_month", Message: "must be in YYYY-MM format"})
	}
	if r.Bonuses != nil && r.Bonuses.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonuses", Message: "must be non-negative"})
	}
	if r.UnpaidLeaveDays != nil && *r.UnpaidLeaveDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "unpaid_leave_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePaymentStatusRequest struct {
	ID               string  `json:"-"`
	Status           string  `json:"status"`
	PaymentDate      *string `json:"payment_date,omitempty"` // ISO8601
	PaymentReference *string `json:"payment_reference,omitempty"`
}

var validPaymentStatuses = []string{
	string(PaymentStatusPending),
	string(PaymentStatusPaid),
	string(PaymentStatusCancelled),
}

func (r *UpdatePaymentStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, validPaymentStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, paid or cancelled"})
	}
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDateTime(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be a valid ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRecordResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	PayrollMonth     string          `json:"payroll_month"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	Bonuses          decimal.Decimal `json:"bonuses"`
	Allowances       decimal.Decimal `json:"allowances"`
	UnpaidLeaveDays  int             `json:"unpaid_leave_days"`
	PerDayRate       decimal.Decimal `json:"per_day_rate"`
	LeaveDeduction   decimal.Decimal `json:"leave_deduction"`
	TaxPercentage    decimal.Decimal `json:"tax_percentage"`
	TaxDeduction     decimal.Decimal `json:"tax_deduction"`
	GrossPay         decimal.Decimal `json:"gross_pay"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	NetPay           decimal.Decimal `json:"net_pay"`
	Currency         string          `json:"currency"`
	PaymentStatus    string          `json:"payment_status"`
	PaymentDate      *string         `json:"payment_date,omitempty"`
	PaymentReference *string         `json:"payment_reference,omitempty"`
	GeneratedBy      string          `json:"generated_by"`
	Notes            *string         `json:"notes,omitempty"`
}

type RecordFilter struct {
	EmployeeID *string
	Month      *string // "YYYY-MM"
	Year       *int
}
