package invitation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/config"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/invitation"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/organization"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/user"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/database"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/email"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/repository/postgresql"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/requestctx"
	"github.com/google/uuid"
)

type InvitationServiceImpl struct {
	db *database.DB
	invitation.InvitationRepository
	employee.EmployeeRepository
	organization.OrganizationRepository
	user.UserRepository
	emailService email.EmailService
	frontendURL  string
	expiration   time.Duration
}

func NewInvitationService(
	db *database.DB,
	invitationRepo invitation.InvitationRepository,
	employeeRepo employee.EmployeeRepository,
	organizationRepo organization.OrganizationRepository,
	userRepo user.UserRepository,
	emailService email.EmailService,
	appConfig config.AppConfig,
	invitationConfig config.InvitationConfig,
) invitation.InvitationService {
	return &InvitationServiceImpl{
		db:                     db,
		InvitationRepository:   invitationRepo,
		EmployeeRepository:     employeeRepo,
		OrganizationRepository: organizationRepo,
		UserRepository:         userRepo,
		emailService:           emailService,
		frontendURL:            appConfig.FrontendURL,
		expiration:             time.Duration(invitationConfig.ExpirationHours) * time.Hour,
	}
}

// Create implements invitation.InvitationService. Email delivery is best
// effort: a failed send leaves the invitation valid and is only logged.
func (s *InvitationServiceImpl) Create(ctx context.Context, req invitation.CreateInvitationRequest) (invitation.InvitationResponse, error) {
	if err := req.Validate(); err != nil {
		return invitation.InvitationResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return invitation.InvitationResponse{}, ability.ErrNotAMember
	}

	token, err := generateToken()
	if err != nil {
		return invitation.InvitationResponse{}, err
	}

	expiresAt := time.Now().UTC().Add(s.expiration)
	created, err := s.InvitationRepository.Create(ctx, invitation.Invitation{
		ID:             uuid.NewString(),
		OrganizationID: actor.OrganizationID,
		Email:          req.Email,
		Designation:    req.Designation,
		Department:     req.Department,
		Token:          token,
		ExpiresAt:      expiresAt,
		InvitedBy:      actor.ID,
	})
	if err != nil {
		return invitation.InvitationResponse{}, err
	}

	org, err := s.OrganizationRepository.GetByID(ctx, actor.OrganizationID)
	if err != nil {
		return invitation.InvitationResponse{}, err
	}

	link := fmt.Sprintf("%s/invitations/accept?token=%s", s.frontendURL, token)
	if err := s.emailService.SendInvitation(req.Email, org.Name, req.Designation, link, expiresAt.Format(time.RFC1123)); err != nil {
		slog.Warn("failed to send invitation email",
			slog.String("invitation_id", created.ID),
			slog.String("error", err.Error()),
		)
	}
	return toInvitationResponse(created), nil
}

// List implements invitation.InvitationService.
func (s *InvitationServiceImpl) List(ctx context.Context) ([]invitation.InvitationResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return nil, ability.ErrNotAMember
	}

	invitations, err := s.InvitationRepository.ListByOrganization(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]invitation.InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		responses = append(responses, toInvitationResponse(inv))
	}
	return responses, nil
}

// Accept implements invitation.InvitationService. Marking the invitation
// accepted and creating the membership happen in one transaction.
func (s *InvitationServiceImpl) Accept(ctx context.Context, userID string, req invitation.AcceptInvitationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	inv, err := s.InvitationRepository.GetByToken(ctx, req.Token)
	if err != nil {
		return err
	}
	if inv.AcceptedAt != nil {
		return invitation.ErrInvitationAccepted
	}
	if time.Now().After(inv.ExpiresAt) {
		return invitation.ErrInvitationExpired
	}

	account, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.InvitationRepository.MarkAccepted(txCtx, inv.ID); err != nil {
			return err
		}
		_, err := s.EmployeeRepository.Create(txCtx, employee.Employee{
			ID:             uuid.NewString(),
			UserID:         account.ID,
			OrganizationID: inv.OrganizationID,
			FullName:       account.FullName,
			Email:          account.Email,
			Designation:    employee.Designation(inv.Designation),
			Department:     inv.Department,
			Status:         employee.StatusActive,
			JoinedAt:       time.Now().UTC(),
		})
		return err
	})
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func toInvitationResponse(inv invitation.Invitation) invitation.InvitationResponse {
	var acceptedAt *string
	if inv.AcceptedAt != nil {
		formatted := inv.AcceptedAt.Format(time.RFC3339)
		acceptedAt = &formatted
	}

	return invitation.InvitationResponse{
		ID:          inv.ID,
		Email:       inv.Email,
		Designation: inv.Designation,
		Department:  inv.Department,
		ExpiresAt:   inv.ExpiresAt.Format(time.RFC3339),
		AcceptedAt:  acceptedAt,
	}
}
