package leave

import (
	"context"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/leave"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/requestctx"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type LeaveServiceImpl struct {
	leave.LeavePolicyRepository
	leave.LeaveRequestRepository
}

func NewLeaveService(policyRepo leave.LeavePolicyRepository, requestRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeavePolicyRepository:  policyRepo,
		LeaveRequestRepository: requestRepo,
	}
}

// CreatePolicy implements leave.LeaveService.
func (s *LeaveServiceImpl) CreatePolicy(ctx context.Context, req leave.CreateLeavePolicyRequest) (leave.LeavePolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeavePolicyResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return leave.LeavePolicyResponse{}, ability.ErrNotAMember
	}

	// Paid defaults to true; unpaid policies must be opted into explicitly
	// because they feed payroll deductions.
	paid := true
	if req.Paid != nil {
		paid = *req.Paid
	}

	policy, err := s.LeavePolicyRepository.Create(ctx, leave.LeavePolicy{
		ID:             uuid.NewString(),
		OrganizationID: actor.OrganizationID,
		Name:           req.Name,
		DaysPerYear:    req.DaysPerYear,
		Paid:           paid,
		Description:    req.Description,
	})
	if err != nil {
		return leave.LeavePolicyResponse{}, err
	}
	return toPolicyResponse(policy), nil
}

// ListPolicies implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPolicies(ctx context.Context) ([]leave.LeavePolicyResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return nil, ability.ErrNotAMember
	}

	policies, err := s.LeavePolicyRepository.ListByOrganization(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeavePolicyResponse, 0, len(policies))
	for _, p := range policies {
		responses = append(responses, toPolicyResponse(p))
	}
	return responses, nil
}

// UpdatePolicy implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdatePolicy(ctx context.Context, req leave.UpdateLeavePolicyRequest) (leave.LeavePolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeavePolicyResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return leave.LeavePolicyResponse{}, ability.ErrNotAMember
	}

	if err := s.LeavePolicyRepository.Update(ctx, actor.OrganizationID, req); err != nil {
		return leave.LeavePolicyResponse{}, err
	}

	policy, err := s.LeavePolicyRepository.GetByID(ctx, req.ID, actor.OrganizationID)
	if err != nil {
		return leave.LeavePolicyResponse{}, err
	}
	return toPolicyResponse(policy), nil
}

// DeletePolicy implements leave.LeaveService.
func (s *LeaveServiceImpl) DeletePolicy(ctx context.Context, id string) error {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return ability.ErrNotAMember
	}
	return s.LeavePolicyRepository.Delete(ctx, id, actor.OrganizationID)
}

// CreateRequest implements leave.LeaveService. The request is always filed
// for the caller; filing on behalf of another employee is not supported.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return leave.LeaveRequestResponse{}, ability.ErrNotAMember
	}

	if _, err := s.LeavePolicyRepository.GetByID(ctx, req.PolicyID, actor.OrganizationID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)
	days := int(endDate.Sub(startDate).Hours()/24) + 1

	request, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		ID:             uuid.NewString(),
		EmployeeID:     actor.ID,
		OrganizationID: actor.OrganizationID,
		PolicyID:       req.PolicyID,
		StartDate:      startDate,
		EndDate:        endDate,
		Days:           days,
		Status:         leave.RequestStatusPending,
		Reason:         req.Reason,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toRequestResponse(request), nil
}

// ListRequests implements leave.LeaveService. Callers without the
// organization-wide read grant only ever see their own requests.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.RequestFilter) ([]leave.LeaveRequestResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return nil, ability.ErrNotAMember
	}

	ab := requestctx.Ability(ctx)
	if !ab.Can(ability.CapabilityRead, ability.SubjectLeaveRequest) {
		if !ab.Can(ability.CapabilityRead, ability.SubjectLeaveRequest, ability.OwnedBy(actor.ID)) {
			return nil, ability.ErrForbidden
		}
		own := actor.ID
		filter.EmployeeID = &own
	}

	requests, err := s.LeaveRequestRepository.List(ctx, actor.OrganizationID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toRequestResponse(r))
	}
	return responses, nil
}

// ReviewRequest implements leave.LeaveService. Only pending requests can be
// reviewed; a second review fails with ErrRequestAlreadyClosed.
func (s *LeaveServiceImpl) ReviewRequest(ctx context.Context, req leave.ReviewLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return leave.LeaveRequestResponse{}, ability.ErrNotAMember
	}

	if _, err := s.LeaveRequestRepository.GetByID(ctx, req.ID, actor.OrganizationID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, req.ID, actor.OrganizationID, leave.RequestStatus(req.Status), actor.ID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := s.LeaveRequestRepository.GetByID(ctx, req.ID, actor.OrganizationID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toRequestResponse(updated), nil
}

// UnpaidDays implements leave.LeaveService.
func (s *LeaveServiceImpl) UnpaidDays(ctx context.Context, employeeID string, month string) (int, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return 0, ability.ErrNotAMember
	}
	return s.LeaveRequestRepository.CountApprovedUnpaidDays(ctx, employeeID, actor.OrganizationID, month)
}

func toPolicyResponse(p leave.LeavePolicy) leave.LeavePolicyResponse {
	return leave.LeavePolicyResponse{
		ID:          p.ID,
		Name:        p.Name,
		DaysPerYear: p.DaysPerYear,
		Paid:        p.Paid,
		Description: p.Description,
	}
}

func toRequestResponse(r leave.LeaveRequest) leave.LeaveRequestResponse {
	var reviewedAt *string
	if r.ReviewedAt != nil {
		formatted := r.ReviewedAt.Format(time.RFC3339)
		reviewedAt = &formatted
	}

	return leave.LeaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		PolicyID:     r.PolicyID,
		PolicyName:   r.PolicyName,
		StartDate:    r.StartDate.Format(dateLayout),
		EndDate:      r.EndDate.Format(dateLayout),
		Days:         r.Days,
		Status:       string(r.Status),
		Reason:       r.Reason,
		ReviewedBy:   r.ReviewedBy,
		ReviewedAt:   reviewedAt,
	}
}
