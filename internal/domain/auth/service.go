package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	LoginWithGoogle(ctx context.Context, code string) (AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	// SelectOrganization verifies membership and issues a new access token
	// carrying the active organization, employee id and designation claims.
	SelectOrganization(ctx context.Context, userID string, req SelectOrganizationRequest) (TokenResponse, error)
}
