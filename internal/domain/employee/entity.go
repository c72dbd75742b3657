package employee

import "time"

// Employee is a tenant-scoped membership record. Exactly one active record
// exists per (user, organization) pair; removal tombstones via DeletedAt.
type Employee struct {
	ID             string
	UserID         string
	OrganizationID string
	FullName       string
	Email          string
	Designation    Designation
	Department     *string
	Status         Status
	JoinedAt       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// Designation drives the default permission rules built for the employee.
type Designation string

const (
	DesignationFounder        Designation = "founder"
	DesignationHR             Designation = "hr"
	DesignationProjectManager Designation = "project_manager"
	DesignationEmployee       Designation = "employee"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusInvited    Status = "invited"
	StatusTerminated Status = "terminated"
	StatusResigned   Status = "resigned"
	StatusOnLeave    Status = "on_leave"
)
