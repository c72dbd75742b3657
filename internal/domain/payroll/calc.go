package payroll

import "github.com/shopspring/decimal"

// Fixed 30-day month assumption for the per-day rate.
var daysPerMonth = decimal.NewFromInt(30)

var hundred = decimal.NewFromInt(100)

// Breakdown holds the derived monetary fields of one payroll computation.
// All values are rounded to two decimal places.
type Breakdown struct {
	PerDayRate      decimal.Decimal
	LeaveDeduction  decimal.Decimal
	GrossPay        decimal.Decimal
	TaxDeduction    decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

// Compute derives gross, deductions and net pay from the salary settings
// snapshot and the month's adjustments. When customTax is set it replaces the
// percentage-based tax deduction as a flat amount.
func Compute(baseSalary, bonuses decimal.Decimal, unpaidLeaveDays int, taxPercentage decimal.Decimal, customTax *decimal.Decimal) Breakdown {
	perDayRate := baseSalary.DivRound(daysPerMonth, 2)
	leaveDeduction := perDayRate.Mul(decimal.NewFromInt(int64(unpaidLeaveDays))).Round(2)
	grossPay := baseSalary.Add(bonuses).Round(2)

	var taxDeduction decimal.Decimal
	if customTax != nil {
		taxDeduction = customTax.Round(2)
	} else {
		taxDeduction = grossPay.Mul(taxPercentage).DivRound(hundred, 2)
	}

	totalDeductions := leaveDeduction.Add(taxDeduction)

	return Breakdown{
		PerDayRate:      perDayRate,
		LeaveDeduction:  leaveDeduction,
		GrossPay:        grossPay,
		TaxDeduction:    taxDeduction,
		TotalDeductions: totalDeductions,
		NetPay:          grossPay.Sub(totalDeductions),
	}
}
