package organization

import (
	"regexp"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/validator"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type CreateOrganizationRequest struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Industry *string `json:"industry,omitempty"`
}

func (r *CreateOrganizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !slugRegex.MatchString(r.Slug) {
		errs = append(errs, validator.ValidationError{Field: "slug", Message: "must be lowercase letters, digits and hyphens"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OrganizationResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Industry *string `json:"industry,omitempty"`
	LogoURL  *string `json:"logo_url,omitempty"`
}

// MembershipResponse pairs an organization with the caller's designation in
// it, for the organization picker after login.
type MembershipResponse struct {
	Organization OrganizationResponse `json:"organization"`
	EmployeeID   string               `json:"employee_id"`
	Designation  string               `json:"designation"`
}
