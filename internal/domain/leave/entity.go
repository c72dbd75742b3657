package leave

import "time"

type LeavePolicy struct {
	ID             string
	OrganizationID string
	Name           string
	DaysPerYear    int
	Paid           bool
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

type LeaveRequest struct {
	ID             string
	EmployeeID     string
	OrganizationID string
	PolicyID       string
	StartDate      time.Time
	EndDate        time.Time
	Days           int
	Status         RequestStatus
	Reason         *string
	ReviewedBy     *string // employee id of the reviewer
	ReviewedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
	PolicyName   *string
	PolicyPaid   *bool
}
