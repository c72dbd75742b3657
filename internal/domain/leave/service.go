package leave

import "context"

type LeaveService interface {
	// Policies
	CreatePolicy(ctx context.Context, req CreateLeavePolicyRequest) (LeavePolicyResponse, error)
	ListPolicies(ctx context.Context) ([]LeavePolicyResponse, error)
	UpdatePolicy(ctx context.Context, req UpdateLeavePolicyRequest) (LeavePolicyResponse, error)
	DeletePolicy(ctx context.Context, id string) error

	// Requests
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	ListRequests(ctx context.Context, filter RequestFilter) ([]LeaveRequestResponse, error)
	ReviewRequest(ctx context.Context, req ReviewLeaveRequestRequest) (LeaveRequestResponse, error)
	// UnpaidDays reports the approved unpaid-leave day count for an employee
	// and payroll month, surfaced for payroll input.
	UnpaidDays(ctx context.Context, employeeID string, month string) (int, error)
}
