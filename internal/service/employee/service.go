package employee

import (
	"context"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/cache"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/requestctx"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	cache *cache.EmployeeCache
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, employeeCache *cache.EmployeeCache) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		cache:              employeeCache,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return nil, ability.ErrNotAMember
	}

	employees, err := s.EmployeeRepository.ListByOrganization(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toEmployeeResponse(e))
	}
	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return employee.EmployeeResponse{}, ability.ErrNotAMember
	}

	e, err := s.EmployeeRepository.GetByID(ctx, id, actor.OrganizationID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(e), nil
}

// Update implements employee.EmployeeService. The membership cache entry is
// dropped so the next request rebuilds permissions from the new designation.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return employee.EmployeeResponse{}, ability.ErrNotAMember
	}

	if err := s.EmployeeRepository.Update(ctx, actor.OrganizationID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, req.ID, actor.OrganizationID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.cache.Invalidate(updated.OrganizationID, updated.UserID)
	return toEmployeeResponse(updated), nil
}

// Terminate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Terminate(ctx context.Context, id string) error {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return ability.ErrNotAMember
	}

	target, err := s.EmployeeRepository.GetByID(ctx, id, actor.OrganizationID)
	if err != nil {
		return err
	}

	if err := s.EmployeeRepository.SoftDelete(ctx, id, actor.OrganizationID); err != nil {
		return err
	}

	s.cache.Invalidate(target.OrganizationID, target.UserID)
	return nil
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		OrganizationID: e.OrganizationID,
		FullName:       e.FullName,
		Email:          e.Email,
		Designation:    string(e.Designation),
		Department:     e.Department,
		Status:         string(e.Status),
		JoinedAt:       e.JoinedAt.Format(time.RFC3339),
	}
}
