package leave

import "errors"

var (
	ErrLeavePolicyNotFound  = errors.New("leave policy not found")
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrRequestAlreadyClosed = errors.New("leave request already reviewed")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
)
