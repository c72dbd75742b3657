package leave

import "context"

type LeavePolicyRepository interface {
	Create(ctx context.Context, policy LeavePolicy) (LeavePolicy, error)
	GetByID(ctx context.Context, id string, organizationID string) (LeavePolicy, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]LeavePolicy, error)
	Update(ctx context.Context, organizationID string, req UpdateLeavePolicyRequest) error
	Delete(ctx context.Context, id string, organizationID string) error
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string, organizationID string) (LeaveRequest, error)
	List(ctx context.Context, organizationID string, filter RequestFilter) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, organizationID string, status RequestStatus, reviewedBy string) error
	// CountApprovedUnpaidDays sums approved leave days on unpaid policies for
	// one employee within one payroll month. Input aid for payroll generation.
	CountApprovedUnpaidDays(ctx context.Context, employeeID string, organizationID string, month string) (int, error)
}
