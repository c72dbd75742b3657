package auth

import (
	"context"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/auth"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/user"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/jwt"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/oauth"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:     userRepo,
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
		googleService:      googleService,
	}
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	exists, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	if exists {
		return auth.AuthResponse{}, user.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	passwordHash := string(hash)

	created, err := s.UserRepository.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &passwordHash,
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}
	return s.issueTokens(created)
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	account, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, err
	}

	// OAuth-only accounts carry no password hash.
	if account.PasswordHash == nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}
	return s.issueTokens(account)
}

// LoginWithGoogle implements auth.AuthService. Accounts are matched by
// Google id first, then by email, and created on first login.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.AuthResponse, error) {
	token, err := s.googleService.Exchange(ctx, code)
	if err != nil {
		return auth.AuthResponse{}, auth.ErrOAuthFailed
	}

	info, err := s.googleService.FetchUser(ctx, token)
	if err != nil {
		return auth.AuthResponse{}, auth.ErrOAuthFailed
	}
	if !info.VerifiedEmail {
		return auth.AuthResponse{}, auth.ErrOAuthFailed
	}

	account, err := s.UserRepository.GetByGoogleID(ctx, info.GoogleID)
	if err == user.ErrUserNotFound {
		account, err = s.UserRepository.GetByEmail(ctx, info.Email)
		if err == user.ErrUserNotFound {
			var avatarURL *string
			if info.Picture != "" {
				avatarURL = &info.Picture
			}
			account, err = s.UserRepository.Create(ctx, user.User{
				ID:        uuid.NewString(),
				Email:     info.Email,
				FullName:  info.Name,
				GoogleID:  &info.GoogleID,
				AvatarURL: avatarURL,
			})
		}
	}
	if err != nil {
		return auth.AuthResponse{}, err
	}
	return s.issueTokens(account)
}

// Refresh implements auth.AuthService. Refresh tokens rotate: the presented
// token is revoked and a fresh pair is issued. The new access token carries
// no tenant claims; the client re-selects its organization.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	decoded, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := decoded.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if claims["type"] != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if decoded.Expiration().Before(time.Now()) {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	userID, _ := claims["user_id"].(string)
	account, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	s.jwtService.RevokeToken(refreshToken)

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, nil)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	newRefreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     newRefreshToken,
		ExpiresAt:        expiresAt,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// SelectOrganization implements auth.AuthService.
func (s *AuthServiceImpl) SelectOrganization(ctx context.Context, userID string, req auth.SelectOrganizationRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	membership, err := s.EmployeeRepository.GetByUserAndOrganization(ctx, userID, req.OrganizationID)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if membership.Status != employee.StatusActive {
		return auth.TokenResponse{}, employee.ErrEmployeeInactive
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, &jwt.TenantClaims{
		OrganizationID: membership.OrganizationID,
		EmployeeID:     membership.ID,
		Designation:    string(membership.Designation),
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AuthServiceImpl) issueTokens(account user.User) (auth.AuthResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, nil)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return auth.AuthResponse{
		User: auth.UserResponse{
			ID:        account.ID,
			Email:     account.Email,
			FullName:  account.FullName,
			AvatarURL: account.AvatarURL,
		},
		Tokens: auth.TokenResponse{
			AccessToken:      accessToken,
			RefreshToken:     refreshToken,
			ExpiresAt:        expiresAt,
			RefreshExpiresAt: refreshExpiresAt,
		},
	}, nil
}
