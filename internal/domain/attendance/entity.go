package attendance

import "time"

type Attendance struct {
	ID             string
	EmployeeID     string
	OrganizationID string
	WorkDate       time.Time // date only
	ClockIn        time.Time
	ClockOut       *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
}
