package organization

import "context"

type OrganizationService interface {
	// Create creates the organization and its founder employee in one
	// transaction. The caller becomes the founder.
	Create(ctx context.Context, userID string, req CreateOrganizationRequest) (OrganizationResponse, error)
	GetMine(ctx context.Context) (OrganizationResponse, error)
	// ListMemberships lists the organizations a user belongs to, for the
	// active-organization picker. Runs before a tenant is selected, so it is
	// keyed by user id rather than the request employee.
	ListMemberships(ctx context.Context, userID string) ([]MembershipResponse, error)
}
