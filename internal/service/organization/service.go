package organization

import (
	"context"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/organization"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/user"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/database"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/repository/postgresql"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/requestctx"
	"github.com/google/uuid"
)

type OrganizationServiceImpl struct {
	db *database.DB
	organization.OrganizationRepository
	employee.EmployeeRepository
	user.UserRepository
}

func NewOrganizationService(
	db *database.DB,
	organizationRepo organization.OrganizationRepository,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
) organization.OrganizationService {
	return &OrganizationServiceImpl{
		db:                     db,
		OrganizationRepository: organizationRepo,
		EmployeeRepository:     employeeRepo,
		UserRepository:         userRepo,
	}
}

// Create implements organization.OrganizationService. The organization and
// its founder membership are created in one transaction so an organization
// never exists without a founder.
func (s *OrganizationServiceImpl) Create(ctx context.Context, userID string, req organization.CreateOrganizationRequest) (organization.OrganizationResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.OrganizationResponse{}, err
	}

	founder, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	exists, err := s.OrganizationRepository.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}
	if exists {
		return organization.OrganizationResponse{}, organization.ErrSlugExists
	}

	var created organization.Organization
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.OrganizationRepository.Create(txCtx, organization.Organization{
			ID:       uuid.NewString(),
			Name:     req.Name,
			Slug:     req.Slug,
			Industry: req.Industry,
		})
		if err != nil {
			return err
		}

		_, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			ID:             uuid.NewString(),
			UserID:         founder.ID,
			OrganizationID: created.ID,
			FullName:       founder.FullName,
			Email:          founder.Email,
			Designation:    employee.DesignationFounder,
			Status:         employee.StatusActive,
			JoinedAt:       time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		return organization.OrganizationResponse{}, err
	}
	return toOrganizationResponse(created), nil
}

// GetMine implements organization.OrganizationService.
func (s *OrganizationServiceImpl) GetMine(ctx context.Context) (organization.OrganizationResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return organization.OrganizationResponse{}, ability.ErrNotAMember
	}

	org, err := s.OrganizationRepository.GetByID(ctx, actor.OrganizationID)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}
	return toOrganizationResponse(org), nil
}

// ListMemberships implements organization.OrganizationService.
func (s *OrganizationServiceImpl) ListMemberships(ctx context.Context, userID string) ([]organization.MembershipResponse, error) {
	organizationIDs, err := s.EmployeeRepository.ListOrganizationIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	memberships := make([]organization.MembershipResponse, 0, len(organizationIDs))
	for _, organizationID := range organizationIDs {
		org, err := s.OrganizationRepository.GetByID(ctx, organizationID)
		if err != nil {
			return nil, err
		}
		emp, err := s.EmployeeRepository.GetByUserAndOrganization(ctx, userID, organizationID)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, organization.MembershipResponse{
			Organization: toOrganizationResponse(org),
			EmployeeID:   emp.ID,
			Designation:  string(emp.Designation),
		})
	}
	return memberships, nil
}

func toOrganizationResponse(o organization.Organization) organization.OrganizationResponse {
	return organization.OrganizationResponse{
		ID:       o.ID,
		Name:     o.Name,
		Slug:     o.Slug,
		Industry: o.Industry,
		LogoURL:  o.LogoURL,
	}
}
