package invitation

import "context"

type InvitationRepository interface {
	Create(ctx context.Context, inv Invitation) (Invitation, error)
	GetByToken(ctx context.Context, token string) (Invitation, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Invitation, error)
	MarkAccepted(ctx context.Context, id string) error
}
