package payroll

import "errors"

var (
	ErrSalarySettingsNotFound = errors.New("salary settings not configured for employee")
	ErrPayrollRecordNotFound  = errors.New("payroll record not found")
	ErrPayrollRecordExists    = errors.New("payroll record already generated for this month")
	ErrInvalidPaymentStatus   = errors.New("invalid payment status")
)
