package organization

import "time"

// Organization is an isolated tenant; every employee, payroll and recruitment
// row belongs to exactly one organization.
type Organization struct {
	ID        string
	Name      string
	Slug      string
	Industry  *string
	LogoURL   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
