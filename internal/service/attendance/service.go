package attendance

import (
	"context"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/attendance"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/requestctx"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	now func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		now:                  time.Now,
	}
}

// ClockIn implements attendance.AttendanceService. One record per employee
// per calendar day; a second clock-in conflicts.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return attendance.AttendanceResponse{}, ability.ErrNotAMember
	}

	now := s.now().UTC()
	workDate := now.Truncate(24 * time.Hour)

	record, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		ID:             uuid.NewString(),
		EmployeeID:     actor.ID,
		OrganizationID: actor.OrganizationID,
		WorkDate:       workDate,
		ClockIn:        now,
		Notes:          req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(record), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return attendance.AttendanceResponse{}, ability.ErrNotAMember
	}

	now := s.now().UTC()
	workDate := now.Truncate(24 * time.Hour)

	open, err := s.AttendanceRepository.GetOpenForDay(ctx, actor.ID, actor.OrganizationID, workDate)
	if err != nil {
		if err == attendance.ErrAttendanceNotFound {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, err
	}
	if open.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}

	if err := s.AttendanceRepository.SetClockOut(ctx, open.ID, actor.OrganizationID, now, req.Notes); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.AttendanceRepository.GetOpenForDay(ctx, actor.ID, actor.OrganizationID, workDate)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(updated), nil
}

// List implements attendance.AttendanceService. Callers without the
// organization-wide read grant only ever see their own records.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return nil, ability.ErrNotAMember
	}

	ab := requestctx.Ability(ctx)
	if !ab.Can(ability.CapabilityRead, ability.SubjectAttendance) {
		if !ab.Can(ability.CapabilityRead, ability.SubjectAttendance, ability.OwnedBy(actor.ID)) {
			return nil, ability.ErrForbidden
		}
		own := actor.ID
		filter.EmployeeID = &own
	}

	records, err := s.AttendanceRepository.List(ctx, actor.OrganizationID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toAttendanceResponse(record))
	}
	return responses, nil
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	var clockOut *string
	if a.ClockOut != nil {
		formatted := a.ClockOut.Format(time.RFC3339)
		clockOut = &formatted
	}

	return attendance.AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		WorkDate:     a.WorkDate.Format(dateLayout),
		ClockIn:      a.ClockIn.Format(time.RFC3339),
		ClockOut:     clockOut,
		Notes:        a.Notes,
	}
}
