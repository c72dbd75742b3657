package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/leave"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/organization"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/payroll"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/pdf"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/requestctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.EmployeeRepository
	organization.OrganizationRepository
	leaveRequests leave.LeaveRequestRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	organizationRepo organization.OrganizationRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:      payrollRepo,
		EmployeeRepository:     employeeRepo,
		OrganizationRepository: organizationRepo,
		leaveRequests:          leaveRequestRepo,
	}
}

// UpsertSalarySettings implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpsertSalarySettings(ctx context.Context, req payroll.UpsertSalarySettingsRequest) (payroll.SalarySettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalarySettingsResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return payroll.SalarySettingsResponse{}, ability.ErrNotAMember
	}

	// The target must be a member of the same organization.
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, actor.OrganizationID); err != nil {
		return payroll.SalarySettingsResponse{}, err
	}

	allowances := decimal.Zero
	if req.MonthlyAllowances != nil {
		allowances = *req.MonthlyAllowances
	}

	settings, err := s.PayrollRepository.UpsertSalarySettings(ctx, payroll.SalarySettings{
		ID:                uuid.NewString(),
		EmployeeID:        req.EmployeeID,
		OrganizationID:    actor.OrganizationID,
		BaseSalary:        req.BaseSalary,
		Currency:          req.Currency,
		TaxPercentage:     req.TaxPercentage,
		CustomTaxAmount:   req.CustomTaxAmount,
		MonthlyAllowances: allowances,
	})
	if err != nil {
		return payroll.SalarySettingsResponse{}, err
	}
	return toSalarySettingsResponse(settings), nil
}

// GetSalarySettings implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSalarySettings(ctx context.Context, employeeID string) (payroll.SalarySettingsResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return payroll.SalarySettingsResponse{}, ability.ErrNotAMember
	}

	ab := requestctx.Ability(ctx)
	if !ab.Can(ability.CapabilityRead, ability.SubjectSalarySettings, ability.OwnedBy(employeeID)) {
		return payroll.SalarySettingsResponse{}, ability.ErrForbidden
	}

	settings, err := s.PayrollRepository.GetSalarySettings(ctx, employeeID, actor.OrganizationID)
	if err != nil {
		return payroll.SalarySettingsResponse{}, err
	}
	return toSalarySettingsResponse(settings), nil
}

// GenerateRecord implements payroll.PayrollService. Salary settings are
// snapshotted into the record at generation time; later settings changes never
// touch existing records.
func (s *PayrollServiceImpl) GenerateRecord(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return payroll.PayrollRecordResponse{}, ability.ErrNotAMember
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, actor.OrganizationID); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	settings, err := s.PayrollRepository.GetSalarySettings(ctx, req.EmployeeID, actor.OrganizationID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	// Lookup-then-insert; the unique index on (employee_id, payroll_month)
	// closes the race between concurrent generations.
	if _, err := s.PayrollRepository.GetRecordByEmployeeMonth(ctx, req.EmployeeID, req.PayrollMonth, actor.OrganizationID); err == nil {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollRecordExists
	} else if err != payroll.ErrPayrollRecordNotFound {
		return payroll.PayrollRecordResponse{}, err
	}

	bonuses := decimal.Zero
	if req.Bonuses != nil {
		bonuses = *req.Bonuses
	}

	var unpaidLeaveDays int
	if req.UnpaidLeaveDays != nil {
		unpaidLeaveDays = *req.UnpaidLeaveDays
	} else {
		unpaidLeaveDays, err = s.leaveRequests.CountApprovedUnpaidDays(ctx, req.EmployeeID, actor.OrganizationID, req.PayrollMonth)
		if err != nil {
			return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to derive unpaid leave days: %w", err)
		}
	}

	breakdown := payroll.Compute(settings.BaseSalary, bonuses, unpaidLeaveDays, settings.TaxPercentage, settings.CustomTaxAmount)

	record, err := s.PayrollRepository.CreateRecord(ctx, payroll.PayrollRecord{
		ID:              uuid.NewString(),
		EmployeeID:      req.EmployeeID,
		OrganizationID:  actor.OrganizationID,
		PayrollMonth:    req.PayrollMonth,
		BaseSalary:      settings.BaseSalary,
		Bonuses:         bonuses,
		Allowances:      settings.MonthlyAllowances,
		UnpaidLeaveDays: unpaidLeaveDays,
		PerDayRate:      breakdown.PerDayRate,
		LeaveDeduction:  breakdown.LeaveDeduction,
		TaxPercentage:   settings.TaxPercentage,
		TaxDeduction:    breakdown.TaxDeduction,
		GrossPay:        breakdown.GrossPay,
		TotalDeductions: breakdown.TotalDeductions,
		NetPay:          breakdown.NetPay,
		Currency:        settings.Currency,
		PaymentStatus:   payroll.PaymentStatusPending,
		GeneratedBy:     actor.ID,
		Notes:           req.Notes,
	})
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return toPayrollRecordResponse(record), nil
}

// GetRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return payroll.PayrollRecordResponse{}, ability.ErrNotAMember
	}

	record, err := s.PayrollRepository.GetRecordByID(ctx, id, actor.OrganizationID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	ab := requestctx.Ability(ctx)
	if !ab.Can(ability.CapabilityRead, ability.SubjectPayroll, ability.OwnedBy(record.EmployeeID)) {
		return payroll.PayrollRecordResponse{}, ability.ErrForbidden
	}
	return toPayrollRecordResponse(record), nil
}

// ListRecords implements payroll.PayrollService. Callers without the
// organization-wide read grant only ever see their own records, whatever
// filter they pass.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) ([]payroll.PayrollRecordResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return nil, ability.ErrNotAMember
	}

	ab := requestctx.Ability(ctx)
	if !ab.Can(ability.CapabilityRead, ability.SubjectPayroll) {
		if !ab.Can(ability.CapabilityRead, ability.SubjectPayroll, ability.OwnedBy(actor.ID)) {
			return nil, ability.ErrForbidden
		}
		own := actor.ID
		filter.EmployeeID = &own
	}

	records, err := s.PayrollRepository.ListRecords(ctx, actor.OrganizationID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toPayrollRecordResponse(record))
	}
	return responses, nil
}

// UpdatePaymentStatus implements payroll.PayrollService. Only the payment
// status fields change; monetary fields stay as generated.
func (s *PayrollServiceImpl) UpdatePaymentStatus(ctx context.Context, req payroll.UpdatePaymentStatusRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return payroll.PayrollRecordResponse{}, ability.ErrNotAMember
	}

	if err := s.PayrollRepository.UpdatePaymentStatus(ctx, actor.OrganizationID, req); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.PayrollRepository.GetRecordByID(ctx, req.ID, actor.OrganizationID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return toPayrollRecordResponse(record), nil
}

// RenderPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) RenderPayslip(ctx context.Context, id string) ([]byte, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return nil, ability.ErrNotAMember
	}

	record, err := s.PayrollRepository.GetRecordByID(ctx, id, actor.OrganizationID)
	if err != nil {
		return nil, err
	}

	ab := requestctx.Ability(ctx)
	if !ab.Can(ability.CapabilityRead, ability.SubjectPayroll, ability.OwnedBy(record.EmployeeID)) {
		return nil, ability.ErrForbidden
	}

	org, err := s.OrganizationRepository.GetByID(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}

	employeeName := ""
	if record.EmployeeName != nil {
		employeeName = *record.EmployeeName
	}

	return pdf.RenderPayslip(pdf.PayslipData{
		OrganizationName: org.Name,
		EmployeeName:     employeeName,
		PayrollMonth:     record.PayrollMonth,
		Currency:         record.Currency,
		BaseSalary:       record.BaseSalary.StringFixed(2),
		Bonuses:          record.Bonuses.StringFixed(2),
		Allowances:       record.Allowances.StringFixed(2),
		GrossPay:         record.GrossPay.StringFixed(2),
		LeaveDeduction:   record.LeaveDeduction.StringFixed(2),
		TaxDeduction:     record.TaxDeduction.StringFixed(2),
		TotalDeductions:  record.TotalDeductions.StringFixed(2),
		NetPay:           record.NetPay.StringFixed(2),
		PaymentStatus:    string(record.PaymentStatus),
	})
}

func toSalarySettingsResponse(settings payroll.SalarySettings) payroll.SalarySettingsResponse {
	return payroll.SalarySettingsResponse{
		ID:                settings.ID,
		EmployeeID:        settings.EmployeeID,
		BaseSalary:        settings.BaseSalary,
		Currency:          settings.Currency,
		TaxPercentage:     settings.TaxPercentage,
		CustomTaxAmount:   settings.CustomTaxAmount,
		MonthlyAllowances: settings.MonthlyAllowances,
	}
}

func toPayrollRecordResponse(record payroll.PayrollRecord) payroll.PayrollRecordResponse {
	var paymentDate *string
	if record.PaymentDate != nil {
		formatted := record.PaymentDate.Format(time.RFC3339)
		paymentDate = &formatted
	}

	return payroll.PayrollRecordResponse{
		ID:               record.ID,
		EmployeeID:       record.EmployeeID,
		EmployeeName:     record.EmployeeName,
		PayrollMonth:     record.PayrollMonth,
		BaseSalary:       record.BaseSalary,
		Bonuses:          record.Bonuses,
		Allowances:       record.Allowances,
		UnpaidLeaveDays:  record.UnpaidLeaveDays,
		PerDayRate:       record.PerDayRate,
		LeaveDeduction:   record.LeaveDeduction,
		TaxPercentage:    record.TaxPercentage,
		TaxDeduction:     record.TaxDeduction,
		GrossPay:         record.GrossPay,
		TotalDeductions:  record.TotalDeductions,
		NetPay:           record.NetPay,
		Currency:         record.Currency,
		PaymentStatus:    string(record.PaymentStatus),
		PaymentDate:      paymentDate,
		PaymentReference: record.PaymentReference,
		GeneratedBy:      record.GeneratedBy,
		Notes:            record.Notes,
	}
}
