package invitation

import "time"

type Invitation struct {
	ID             string
	OrganizationID string
	Email          string
	Designation    string
	Department     *string
	Token          string
	ExpiresAt      time.Time
	AcceptedAt     *time.Time
	InvitedBy      string // employee id
	CreatedAt      time.Time
}
