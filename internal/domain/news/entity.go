package news

import "time"

type News struct {
	ID               string
	OrganizationID   string
	AuthorEmployeeID string
	Title            string
	Body             string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	AuthorName *string
}
