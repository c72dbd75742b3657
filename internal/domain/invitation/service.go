package invitation

import "context"

type InvitationService interface {
	Create(ctx context.Context, req CreateInvitationRequest) (InvitationResponse, error)
	List(ctx context.Context) ([]InvitationResponse, error)
	// Accept creates the tenant membership for the calling user with the
	// invited designation. userID comes from the access token, not the body.
	Accept(ctx context.Context, userID string, req AcceptInvitationRequest) error
}
