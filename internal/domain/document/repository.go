package document

import "context"

type DocumentRepository interface {
	Create(ctx context.Context, doc Document) (Document, error)
	GetByID(ctx context.Context, id string, organizationID string) (Document, error)
	ListByEmployee(ctx context.Context, employeeID string, organizationID string) ([]Document, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Document, error)
	Delete(ctx context.Context, id string, organizationID string) error
}
