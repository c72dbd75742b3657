package recruitment

import (
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/validator"
)

type CreateJobPostingRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Department  *string `json:"department,omitempty"`
}

func (r *CreateJobPostingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateJobPostingRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Department  *string `json:"department,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r *UpdateJobPostingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && *r.Status != string(PostingStatusOpen) && *r.Status != string(PostingStatusClosed) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be open or closed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JobPostingResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Department  *string `json:"department,omitempty"`
	Status      string  `json:"status"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
}

type AddCandidateRequest struct {
	JobPostingID string `json:"-"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
}

func (r *AddCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CandidateResponse struct {
	ID               string   `json:"id"`
	JobPostingID     string   `json:"job_posting_id"`
	FullName         string   `json:"full_name"`
	Email            string   `json:"email"`
	ResumeURL        *string  `json:"resume_url,omitempty"`
	ScreeningScore   *float64 `json:"screening_score,omitempty"`
	ScreeningSummary *string  `json:"screening_summary,omitempty"`
	Status           string   `json:"status"`
}
