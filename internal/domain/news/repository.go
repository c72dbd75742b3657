package news

import "context"

type NewsRepository interface {
	Create(ctx context.Context, item News) (News, error)
	GetByID(ctx context.Context, id string, organizationID string) (News, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]News, error)
	Update(ctx context.Context, organizationID string, req UpdateNewsRequest) error
	Delete(ctx context.Context, id string, organizationID string) error
}
