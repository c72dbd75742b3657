package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	GetOpenForDay(ctx context.Context, employeeID string, organizationID string, day time.Time) (Attendance, error)
	Create(ctx context.Context, record Attendance) (Attendance, error)
	SetClockOut(ctx context.Context, id string, organizationID string, clockOut time.Time, notes *string) error
	List(ctx context.Context, organizationID string, filter ListFilter) ([]Attendance, error)
}
