package leave

import (
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/validator"
)

// ========== POLICY DTOs ==========

type CreateLeavePolicyRequest struct {
	Name        string  `json:"name"`
	DaysPerYear int     `json:"days_per_year"`
	Paid        *bool   `json:"paid,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateLeavePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.DaysPerYear < 0 {
		errs = append(errs, validator.ValidationError{Field: "days_per_year", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeavePolicyRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	DaysPerYear *int    `json:"days_per_year,omitempty"`
	Paid        *bool   `json:"paid,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateLeavePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.DaysPerYear != nil && *r.DaysPerYear < 0 {
		errs = append(errs, validator.ValidationError{Field: "days_per_year", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeavePolicyResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DaysPerYear int     `json:"days_per_year"`
	Paid        bool    `json:"paid"`
	Description *string `json:"description,omitempty"`
}

// ========== REQUEST DTOs ==========

type CreateLeaveRequestRequest struct {
	PolicyID  string  `json:"policy_id"`
	StartDate string  `json:"start_date"` // "YYYY-MM-DD"
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PolicyID) {
		errs = append(errs, validator.ValidationError{Field: "policy_id", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewLeaveRequestRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"` // approved or rejected
}

func (r *ReviewLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(RequestStatusApproved) && r.Status != string(RequestStatusRejected) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be approved or rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	PolicyID     string  `json:"policy_id"`
	PolicyName   *string `json:"policy_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Status       string  `json:"status"`
	Reason       *string `json:"reason,omitempty"`
	ReviewedBy   *string `json:"reviewed_by,omitempty"`
	ReviewedAt   *string `json:"reviewed_at,omitempty"`
}

type RequestFilter struct {
	EmployeeID *string
	Status     *string
	Month      *string // "YYYY-MM"
}
