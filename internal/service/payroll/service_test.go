package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/leave"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/organization"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/payroll"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/requestctx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrgID = "org-1"

// ========== FAKES ==========

type fakePayrollRepo struct {
	settings map[string]payroll.SalarySettings // keyed by employee id
	records  map[string]payroll.PayrollRecord  // keyed by record id
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		settings: make(map[string]payroll.SalarySettings),
		records:  make(map[string]payroll.PayrollRecord),
	}
}

func (f *fakePayrollRepo) GetSalarySettings(_ context.Context, employeeID string, organizationID string) (payroll.SalarySettings, error) {
	s, ok := f.settings[employeeID]
	if !ok || s.OrganizationID != organizationID {
		return payroll.SalarySettings{}, payroll.ErrSalarySettingsNotFound
	}
	return s, nil
}

func (f *fakePayrollRepo) UpsertSalarySettings(_ context.Context, settings payroll.SalarySettings) (payroll.SalarySettings, error) {
	f.settings[settings.EmployeeID] = settings
	return settings, nil
}

func (f *fakePayrollRepo) CreateRecord(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == record.EmployeeID && existing.PayrollMonth == record.PayrollMonth {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordExists
		}
	}
	f.records[record.ID] = record
	return record, nil
}

func (f *fakePayrollRepo) GetRecordByID(_ context.Context, id string, organizationID string) (payroll.PayrollRecord, error) {
	r, ok := f.records[id]
	if !ok || r.OrganizationID != organizationID {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return r, nil
}

func (f *fakePayrollRepo) GetRecordByEmployeeMonth(_ context.Context, employeeID string, payrollMonth string, organizationID string) (payroll.PayrollRecord, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.PayrollMonth == payrollMonth && r.OrganizationID == organizationID {
			return r, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) ListRecords(_ context.Context, organizationID string, filter payroll.RecordFilter) ([]payroll.PayrollRecord, error) {
	var out []payroll.PayrollRecord
	for _, r := range f.records {
		if r.OrganizationID != organizationID {
			continue
		}
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Month != nil && r.PayrollMonth != *filter.Month {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakePayrollRepo) UpdatePaymentStatus(_ context.Context, organizationID string, req payroll.UpdatePaymentStatusRequest) error {
	r, ok := f.records[req.ID]
	if !ok || r.OrganizationID != organizationID {
		return payroll.ErrPayrollRecordNotFound
	}
	r.PaymentStatus = payroll.PaymentStatus(req.Status)
	if req.PaymentDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.PaymentDate)
		if err != nil {
			return err
		}
		r.PaymentDate = &parsed
	}
	r.PaymentReference = req.PaymentReference
	f.records[req.ID] = r
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, organizationID string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok || e.OrganizationID != organizationID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserAndOrganization(context.Context, string, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListByOrganization(context.Context, string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListOrganizationIDsByUser(context.Context, string) ([]string, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(context.Context, string, employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(context.Context, string, string) error {
	return nil
}

type fakeOrganizationRepo struct{}

func (fakeOrganizationRepo) GetByID(_ context.Context, id string) (organization.Organization, error) {
	return organization.Organization{ID: id, Name: "Acme Corp"}, nil
}

func (fakeOrganizationRepo) GetBySlug(context.Context, string) (organization.Organization, error) {
	return organization.Organization{}, organization.ErrOrganizationNotFound
}

func (fakeOrganizationRepo) Create(_ context.Context, newOrganization organization.Organization) (organization.Organization, error) {
	return newOrganization, nil
}

func (fakeOrganizationRepo) ExistsBySlug(context.Context, string) (bool, error) {
	return false, nil
}

type fakeLeaveRequestRepo struct {
	unpaidDays int
}

func (f *fakeLeaveRequestRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	return request, nil
}

func (f *fakeLeaveRequestRepo) GetByID(context.Context, string, string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRequestRepo) List(context.Context, string, leave.RequestFilter) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRequestRepo) UpdateStatus(context.Context, string, string, leave.RequestStatus, string) error {
	return nil
}

func (f *fakeLeaveRequestRepo) CountApprovedUnpaidDays(context.Context, string, string, string) (int, error) {
	return f.unpaidDays, nil
}

// ========== HELPERS ==========

func member(id string, designation employee.Designation) employee.Employee {
	return employee.Employee{
		ID:             id,
		OrganizationID: testOrgID,
		UserID:         "user-" + id,
		Designation:    designation,
		Status:         employee.StatusActive,
	}
}

func contextFor(emp employee.Employee) context.Context {
	ctx := requestctx.WithEmployee(context.Background(), emp)
	return requestctx.WithAbility(ctx, ability.BuildForEmployee(&emp))
}

func newTestService(repo *fakePayrollRepo, employees map[string]employee.Employee, unpaidDays int) payroll.PayrollService {
	return NewPayrollService(
		repo,
		&fakeEmployeeRepo{employees: employees},
		fakeOrganizationRepo{},
		&fakeLeaveRequestRepo{unpaidDays: unpaidDays},
	)
}

func seedSettings(repo *fakePayrollRepo, employeeID, base, taxPct string) {
	repo.settings[employeeID] = payroll.SalarySettings{
		ID:                "settings-" + employeeID,
		EmployeeID:        employeeID,
		OrganizationID:    testOrgID,
		BaseSalary:        decimal.RequireFromString(base),
		Currency:          "USD",
		TaxPercentage:     decimal.RequireFromString(taxPct),
		MonthlyAllowances: decimal.Zero,
	}
}

// ========== TESTS ==========

func TestGenerateRecord_Success(t *testing.T) {
	hr := member("emp-hr", employee.DesignationHR)
	target := member("emp-1", employee.DesignationEmployee)
	repo := newFakePayrollRepo()
	seedSettings(repo, target.ID, "3000", "10")

	svc := newTestService(repo, map[string]employee.Employee{hr.ID: hr, target.ID: target}, 0)

	bonuses := decimal.RequireFromString("200")
	unpaidDays := 2
	resp, err := svc.GenerateRecord(contextFor(hr), payroll.GeneratePayrollRequest{
		EmployeeID:      target.ID,
		PayrollMonth:    "2025-06",
		Bonuses:         &bonuses,
		UnpaidLeaveDays: &unpaidDays,
	})

	require.NoError(t, err)
	assert.Equal(t, "3200.00", resp.GrossPay.StringFixed(2))
	assert.Equal(t, "320.00", resp.TaxDeduction.StringFixed(2))
	assert.Equal(t, "200.00", resp.LeaveDeduction.StringFixed(2))
	assert.Equal(t, "2680.00", resp.NetPay.StringFixed(2))
	assert.Equal(t, string(payroll.PaymentStatusPending), resp.PaymentStatus)
	assert.Equal(t, hr.ID, resp.GeneratedBy)
}

func TestGenerateRecord_DuplicateMonth(t *testing.T) {
	hr := member("emp-hr", employee.DesignationHR)
	target := member("emp-1", employee.DesignationEmployee)
	repo := newFakePayrollRepo()
	seedSettings(repo, target.ID, "3000", "10")

	svc := newTestService(repo, map[string]employee.Employee{hr.ID: hr, target.ID: target}, 0)
	ctx := contextFor(hr)
	req := payroll.GeneratePayrollRequest{EmployeeID: target.ID, PayrollMonth: "2025-06"}

	_, err := svc.GenerateRecord(ctx, req)
	require.NoError(t, err)

	_, err = svc.GenerateRecord(ctx, req)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordExists)

	_, err = svc.GenerateRecord(ctx, payroll.GeneratePayrollRequest{EmployeeID: target.ID, PayrollMonth: "2025-07"})
	assert.NoError(t, err, "a different month must still generate")
}

func TestGenerateRecord_MissingSettings(t *testing.T) {
	hr := member("emp-hr", employee.DesignationHR)
	target := member("emp-1", employee.DesignationEmployee)
	repo := newFakePayrollRepo()

	svc := newTestService(repo, map[string]employee.Employee{hr.ID: hr, target.ID: target}, 0)

	_, err := svc.GenerateRecord(contextFor(hr), payroll.GeneratePayrollRequest{
		EmployeeID:   target.ID,
		PayrollMonth: "2025-06",
	})
	assert.ErrorIs(t, err, payroll.ErrSalarySettingsNotFound)
}

func TestGenerateRecord_UnknownEmployee(t *testing.T) {
	hr := member("emp-hr", employee.DesignationHR)
	repo := newFakePayrollRepo()

	svc := newTestService(repo, map[string]employee.Employee{hr.ID: hr}, 0)

	_, err := svc.GenerateRecord(contextFor(hr), payroll.GeneratePayrollRequest{
		EmployeeID:   "emp-missing",
		PayrollMonth: "2025-06",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGenerateRecord_DerivesUnpaidDaysFromLeave(t *testing.T) {
	hr := member("emp-hr", employee.DesignationHR)
	target := member("emp-1", employee.DesignationEmployee)
	repo := newFakePayrollRepo()
	seedSettings(repo, target.ID, "3000", "0")

	svc := newTestService(repo, map[string]employee.Employee{hr.ID: hr, target.ID: target}, 3)

	resp, err := svc.GenerateRecord(contextFor(hr), payroll.GeneratePayrollRequest{
		EmployeeID:   target.ID,
		PayrollMonth: "2025-06",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.UnpaidLeaveDays)
	assert.Equal(t, "300.00", resp.LeaveDeduction.StringFixed(2))
}

func TestGenerateRecord_ExplicitZeroOverridesDerivation(t *testing.T) {
	hr := member("emp-hr", employee.DesignationHR)
	target := member("emp-1", employee.DesignationEmployee)
	repo := newFakePayrollRepo()
	seedSettings(repo, target.ID, "3000", "0")

	svc := newTestService(repo, map[string]employee.Employee{hr.ID: hr, target.ID: target}, 3)

	zero := 0
	resp, err := svc.GenerateRecord(contextFor(hr), payroll.GeneratePayrollRequest{
		EmployeeID:      target.ID,
		PayrollMonth:    "2025-06",
		UnpaidLeaveDays: &zero,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.UnpaidLeaveDays)
	assert.Equal(t, "0.00", resp.LeaveDeduction.StringFixed(2))
}

func TestUpdatePaymentStatus_LeavesMonetaryFieldsUntouched(t *testing.T) {
	hr := member("emp-hr", employee.DesignationHR)
	target := member("emp-1", employee.DesignationEmployee)
	repo := newFakePayrollRepo()
	seedSettings(repo, target.ID, "3000", "10")

	svc := newTestService(repo, map[string]employee.Employee{hr.ID: hr, target.ID: target}, 0)
	ctx := contextFor(hr)

	generated, err := svc.GenerateRecord(ctx, payroll.GeneratePayrollRequest{EmployeeID: target.ID, PayrollMonth: "2025-06"})
	require.NoError(t, err)

	paymentDate := "2025-07-01T10:00:00Z"
	reference := "TRX-42"
	updated, err := svc.UpdatePaymentStatus(ctx, payroll.UpdatePaymentStatusRequest{
		ID:               generated.ID,
		Status:           string(payroll.PaymentStatusPaid),
		PaymentDate:      &paymentDate,
		PaymentReference: &reference,
	})

	require.NoError(t, err)
	assert.Equal(t, string(payroll.PaymentStatusPaid), updated.PaymentStatus)
	require.NotNil(t, updated.PaymentReference)
	assert.Equal(t, reference, *updated.PaymentReference)
	assert.True(t, generated.NetPay.Equal(updated.NetPay))
	assert.True(t, generated.GrossPay.Equal(updated.GrossPay))
	assert.True(t, generated.TaxDeduction.Equal(updated.TaxDeduction))
}

func TestUpdatePaymentStatus_InvalidStatus(t *testing.T) {
	hr := member("emp-hr", employee.DesignationHR)
	svc := newTestService(newFakePayrollRepo(), map[string]employee.Employee{hr.ID: hr}, 0)

	_, err := svc.UpdatePaymentStatus(contextFor(hr), payroll.UpdatePaymentStatusRequest{
		ID:     "rec-1",
		Status: "refunded",
	})
	assert.Error(t, err)
}

func TestListRecords_SelfScopedForPlainEmployee(t *testing.T) {
	hr := member("emp-hr", employee.DesignationHR)
	self := member("emp-1", employee.DesignationEmployee)
	other := member("emp-2", employee.DesignationEmployee)
	repo := newFakePayrollRepo()
	seedSettings(repo, self.ID, "3000", "0")
	seedSettings(repo, other.ID, "4000", "0")

	svc := newTestService(repo, map[string]employee.Employee{hr.ID: hr, self.ID: self, other.ID: other}, 0)
	hrCtx := contextFor(hr)

	_, err := svc.GenerateRecord(hrCtx, payroll.GeneratePayrollRequest{EmployeeID: self.ID, PayrollMonth: "2025-06"})
	require.NoError(t, err)
	_, err = svc.GenerateRecord(hrCtx, payroll.GeneratePayrollRequest{EmployeeID: other.ID, PayrollMonth: "2025-06"})
	require.NoError(t, err)

	// The filter asks for someone else's records; the scope forces it back.
	otherID := other.ID
	records, err := svc.ListRecords(contextFor(self), payroll.RecordFilter{EmployeeID: &otherID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, self.ID, records[0].EmployeeID)

	records, err = svc.ListRecords(hrCtx, payroll.RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestGetRecord_ForbiddenForForeignRecord(t *testing.T) {
	hr := member("emp-hr", employee.DesignationHR)
	self := member("emp-1", employee.DesignationEmployee)
	other := member("emp-2", employee.DesignationEmployee)
	repo := newFakePayrollRepo()
	seedSettings(repo, other.ID, "4000", "0")

	svc := newTestService(repo, map[string]employee.Employee{hr.ID: hr, self.ID: self, other.ID: other}, 0)

	generated, err := svc.GenerateRecord(contextFor(hr), payroll.GeneratePayrollRequest{EmployeeID: other.ID, PayrollMonth: "2025-06"})
	require.NoError(t, err)

	_, err = svc.GetRecord(contextFor(self), generated.ID)
	assert.ErrorIs(t, err, ability.ErrForbidden)

	got, err := svc.GetRecord(contextFor(other), generated.ID)
	require.NoError(t, err)
	assert.Equal(t, generated.ID, got.ID)
}

func TestGetSalarySettings_SelfOnlyForPlainEmployee(t *testing.T) {
	self := member("emp-1", employee.DesignationEmployee)
	other := member("emp-2", employee.DesignationEmployee)
	repo := newFakePayrollRepo()
	seedSettings(repo, self.ID, "3000", "10")
	seedSettings(repo, other.ID, "4000", "10")

	svc := newTestService(repo, map[string]employee.Employee{self.ID: self, other.ID: other}, 0)
	ctx := contextFor(self)

	got, err := svc.GetSalarySettings(ctx, self.ID)
	require.NoError(t, err)
	assert.Equal(t, self.ID, got.EmployeeID)

	_, err = svc.GetSalarySettings(ctx, other.ID)
	assert.ErrorIs(t, err, ability.ErrForbidden)
}

func TestGenerateRecord_NoRequestContext(t *testing.T) {
	svc := newTestService(newFakePayrollRepo(), nil, 0)

	_, err := svc.GenerateRecord(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID:   "emp-1",
		PayrollMonth: "2025-06",
	})
	assert.ErrorIs(t, err, ability.ErrNotAMember)
}
