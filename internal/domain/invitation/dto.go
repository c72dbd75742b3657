package invitation

import (
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/validator"
)

type CreateInvitationRequest struct {
	Email       string  `json:"email"`
	Designation string  `json:"designation"`
	Department  *string `json:"department,omitempty"`
}

var invitableDesignations = []string{
	string(employee.DesignationHR),
	string(employee.DesignationProjectManager),
	string(employee.DesignationEmployee),
}

func (r *CreateInvitationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	// Founders are created with the organization, never invited.
	if !validator.IsInSlice(r.Designation, invitableDesignations) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "must be hr, project_manager or employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AcceptInvitationRequest struct {
	Token string `json:"token"`
}

func (r *AcceptInvitationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{Field: "token", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InvitationResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Designation string  `json:"designation"`
	Department  *string `json:"department,omitempty"`
	ExpiresAt   string  `json:"expires_at"`
	AcceptedAt  *string `json:"accepted_at,omitempty"`
}
