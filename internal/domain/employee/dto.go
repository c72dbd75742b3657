package employee

import (
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/validator"
)

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	Designation *string `json:"designation,omitempty"`
	Department  *string `json:"department,omitempty"`
	Status      *string `json:"status,omitempty"`
}

var validDesignations = []string{
	string(DesignationFounder),
	string(DesignationHR),
	string(DesignationProjectManager),
	string(DesignationEmployee),
}

var validStatuses = []string{
	string(StatusActive),
	string(StatusInvited),
	string(StatusTerminated),
	string(StatusResigned),
	string(StatusOnLeave),
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Designation != nil && !validator.IsInSlice(*r.Designation, validDesignations) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "must be one of founder, hr, project_manager, employee"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid employment status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	OrganizationID string  `json:"organization_id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Designation    string  `json:"designation"`
	Department     *string `json:"department,omitempty"`
	Status         string  `json:"status"`
	JoinedAt       string  `json:"joined_at"`
}
