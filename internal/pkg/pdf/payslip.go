package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PayslipData carries the rendered fields of one payroll record. Monetary
// values arrive pre-formatted as decimal strings; this package never does
// arithmetic.
type PayslipData struct {
	OrganizationName string
	EmployeeName     string
	PayrollMonth     string
	Currency         string
	BaseSalary       string
	Bonuses          string
	Allowances       string
	GrossPay         string
	LeaveDeduction   string
	TaxDeduction     string
	TotalDeductions  string
	NetPay           string
	PaymentStatus    string
}

// RenderPayslip renders a single-page A4 payslip PDF.
func RenderPayslip(data PayslipData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Organization: %s", data.OrganizationName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", data.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", data.PayrollMonth))
	pdf.Ln(10)

	line := func(label, amount string) {
		pdf.Cell(90, 8, label)
		pdf.CellFormat(60, 8, fmt.Sprintf("%s %s", amount, data.Currency), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	line("Base salary", data.BaseSalary)
	line("Bonuses", data.Bonuses)
	line("Allowances", data.Allowances)
	pdf.SetFont("Helvetica", "B", 12)
	line("Gross pay", data.GrossPay)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Ln(3)

	line("Unpaid leave deduction", data.LeaveDeduction)
	line("Tax deduction", data.TaxDeduction)
	pdf.SetFont("Helvetica", "B", 12)
	line("Total deductions", data.TotalDeductions)
	line("Net pay", data.NetPay)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Ln(5)

	pdf.Cell(0, 8, fmt.Sprintf("Payment status: %s", data.PaymentStatus))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}
