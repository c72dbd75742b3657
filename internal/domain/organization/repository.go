package organization

import "context"

type OrganizationRepository interface {
	GetByID(ctx context.Context, id string) (Organization, error)
	GetBySlug(ctx context.Context, slug string) (Organization, error)
	Create(ctx context.Context, newOrganization Organization) (Organization, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
