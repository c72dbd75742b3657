package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, organizationID string) (Employee, error)
	GetByUserAndOrganization(ctx context.Context, userID string, organizationID string) (Employee, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Employee, error)
	ListOrganizationIDsByUser(ctx context.Context, userID string) ([]string, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, organizationID string, req UpdateEmployeeRequest) error
	SoftDelete(ctx context.Context, id string, organizationID string) error
}
