package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCompute_PercentageTaxWithUnpaidLeave(t *testing.T) {
	got := Compute(dec("3000"), dec("200"), 2, dec("10"), nil)

	assert.Equal(t, "100.00", got.PerDayRate.StringFixed(2))
	assert.Equal(t, "200.00", got.LeaveDeduction.StringFixed(2))
	assert.Equal(t, "3200.00", got.GrossPay.StringFixed(2))
	assert.Equal(t, "320.00", got.TaxDeduction.StringFixed(2))
	assert.Equal(t, "520.00", got.TotalDeductions.StringFixed(2))
	assert.Equal(t, "2680.00", got.NetPay.StringFixed(2))
}

func TestCompute_NoAdjustments(t *testing.T) {
	got := Compute(dec("5000"), decimal.Zero, 0, decimal.Zero, nil)

	assert.Equal(t, "166.67", got.PerDayRate.StringFixed(2))
	assert.Equal(t, "0.00", got.LeaveDeduction.StringFixed(2))
	assert.Equal(t, "5000.00", got.GrossPay.StringFixed(2))
	assert.Equal(t, "0.00", got.TaxDeduction.StringFixed(2))
	assert.Equal(t, "5000.00", got.NetPay.StringFixed(2))
}

func TestCompute_CustomTaxReplacesPercentage(t *testing.T) {
	customTax := dec("150")
	got := Compute(dec("3000"), dec("200"), 0, dec("10"), &customTax)

	assert.Equal(t, "150.00", got.TaxDeduction.StringFixed(2), "flat custom tax overrides the percentage")
	assert.Equal(t, "150.00", got.TotalDeductions.StringFixed(2))
	assert.Equal(t, "3050.00", got.NetPay.StringFixed(2))
}

func TestCompute_CustomTaxZeroStillOverrides(t *testing.T) {
	customTax := decimal.Zero
	got := Compute(dec("3000"), decimal.Zero, 0, dec("10"), &customTax)

	assert.Equal(t, "0.00", got.TaxDeduction.StringFixed(2))
	assert.Equal(t, "3000.00", got.NetPay.StringFixed(2))
}

func TestCompute_RoundsToTwoPlaces(t *testing.T) {
	// 1000/30 = 33.333..., per-day rounds to 33.33; three unpaid days deduct 99.99.
	got := Compute(dec("1000"), decimal.Zero, 3, decimal.Zero, nil)

	assert.Equal(t, "33.33", got.PerDayRate.StringFixed(2))
	assert.Equal(t, "99.99", got.LeaveDeduction.StringFixed(2))
	assert.Equal(t, "900.01", got.NetPay.StringFixed(2))
}

func TestCompute_DeductionsCanExceedGross(t *testing.T) {
	got := Compute(dec("300"), decimal.Zero, 30, dec("50"), nil)

	assert.True(t, got.NetPay.IsNegative(), "net pay is not clamped at zero")
}
