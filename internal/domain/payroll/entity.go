package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalarySettings - per-employee salary configuration. Upsert semantics; must
// exist before a payroll record can be generated for the employee.
type SalarySettings struct {
	ID                string
	EmployeeID        string
	OrganizationID    string
	BaseSalary        decimal.Decimal
	Currency          string
	TaxPercentage     decimal.Decimal
	CustomTaxAmount   *decimal.Decimal // flat amount overriding the percentage
	MonthlyAllowances decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// PayrollRecord - immutable monthly snapshot for one (employee, month) pair.
// Monetary fields are never recomputed after creation; only the payment
// status fields may change.
type PayrollRecord struct {
	ID               string
	EmployeeID       string
	OrganizationID   string
	PayrollMonth     string // "YYYY-MM"
	BaseSalary       decimal.Decimal
	Bonuses          decimal.Decimal
	Allowances       decimal.Decimal
	UnpaidLeaveDays  int
	PerDayRate       decimal.Decimal
	LeaveDeduction   decimal.Decimal
	TaxPercentage    decimal.Decimal
	TaxDeduction     decimal.Decimal
	GrossPay         decimal.Decimal
	TotalDeductions  decimal.Decimal
	NetPay           decimal.Decimal
	Currency         string
	PaymentStatus    PaymentStatus
	PaymentDate      *time.Time
	PaymentReference *string
	GeneratedBy      string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
}
