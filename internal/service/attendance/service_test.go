package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/attendance"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/requestctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) GetOpenForDay(_ context.Context, employeeID string, organizationID string, day time.Time) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.OrganizationID == organizationID && r.WorkDate.Equal(day) {
			return r, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.EmployeeID == record.EmployeeID && r.WorkDate.Equal(record.WorkDate) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
	}
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeAttendanceRepo) SetClockOut(_ context.Context, id string, organizationID string, clockOut time.Time, notes *string) error {
	r, ok := f.records[id]
	if !ok || r.OrganizationID != organizationID {
		return attendance.ErrAttendanceNotFound
	}
	r.ClockOut = &clockOut
	if notes != nil {
		r.Notes = notes
	}
	f.records[id] = r
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, organizationID string, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.OrganizationID != organizationID {
			continue
		}
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func contextFor(emp employee.Employee) context.Context {
	ctx := requestctx.WithEmployee(context.Background(), emp)
	return requestctx.WithAbility(ctx, ability.BuildForEmployee(&emp))
}

func fixedClockService(repo *fakeAttendanceRepo, at time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		now:                  func() time.Time { return at },
	}
}

var testActor = employee.Employee{
	ID:             "emp-1",
	OrganizationID: "org-1",
	Designation:    employee.DesignationEmployee,
	Status:         employee.StatusActive,
}

func TestClockIn(t *testing.T) {
	at := time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC)
	svc := fixedClockService(newFakeAttendanceRepo(), at)

	resp, err := svc.ClockIn(contextFor(testActor), attendance.ClockInRequest{})

	require.NoError(t, err)
	assert.Equal(t, testActor.ID, resp.EmployeeID)
	assert.Equal(t, "2025-06-10", resp.WorkDate)
	assert.Equal(t, at.Format(time.RFC3339), resp.ClockIn)
	assert.Nil(t, resp.ClockOut)
}

func TestClockIn_TwiceSameDayConflicts(t *testing.T) {
	repo := newFakeAttendanceRepo()
	at := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc := fixedClockService(repo, at)
	ctx := contextFor(testActor)

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)

	// The next day opens a new record.
	nextDay := fixedClockService(repo, at.Add(24*time.Hour))
	_, err = nextDay.ClockIn(ctx, attendance.ClockInRequest{})
	assert.NoError(t, err)
}

func TestClockOut(t *testing.T) {
	repo := newFakeAttendanceRepo()
	in := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	ctx := contextFor(testActor)

	_, err := fixedClockService(repo, in).ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	out := in.Add(8 * time.Hour)
	resp, err := fixedClockService(repo, out).ClockOut(ctx, attendance.ClockOutRequest{})

	require.NoError(t, err)
	require.NotNil(t, resp.ClockOut)
	assert.Equal(t, out.Format(time.RFC3339), *resp.ClockOut)
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	at := time.Date(2025, 6, 10, 17, 0, 0, 0, time.UTC)
	svc := fixedClockService(newFakeAttendanceRepo(), at)

	_, err := svc.ClockOut(contextFor(testActor), attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOut_TwiceSameDay(t *testing.T) {
	repo := newFakeAttendanceRepo()
	in := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	ctx := contextFor(testActor)

	_, err := fixedClockService(repo, in).ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	svc := fixedClockService(repo, in.Add(8*time.Hour))
	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestList_SelfScopedForPlainEmployee(t *testing.T) {
	repo := newFakeAttendanceRepo()
	at := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	other := testActor
	other.ID = "emp-2"

	_, err := fixedClockService(repo, at).ClockIn(contextFor(testActor), attendance.ClockInRequest{})
	require.NoError(t, err)
	_, err = fixedClockService(repo, at).ClockIn(contextFor(other), attendance.ClockInRequest{})
	require.NoError(t, err)

	// A plain employee asking for someone else's records gets their own.
	otherID := other.ID
	records, err := fixedClockService(repo, at).List(contextFor(testActor), attendance.ListFilter{EmployeeID: &otherID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, testActor.ID, records[0].EmployeeID)

	hr := testActor
	hr.ID = "emp-hr"
	hr.Designation = employee.DesignationHR
	records, err = fixedClockService(repo, at).List(contextFor(hr), attendance.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestList_InvalidDateFilter(t *testing.T) {
	svc := fixedClockService(newFakeAttendanceRepo(), time.Now())

	from := "10-06-2025"
	_, err := svc.List(contextFor(testActor), attendance.ListFilter{From: &from})
	assert.Error(t, err)
}
