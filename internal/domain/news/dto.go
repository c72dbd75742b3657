package news

import (
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/validator"
)

type CreateNewsRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (r *CreateNewsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateNewsRequest struct {
	ID    string  `json:"-"`
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

func (r *UpdateNewsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "must not be empty"})
	}
	if r.Body != nil && validator.IsEmpty(*r.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NewsResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Body       string  `json:"body"`
	AuthorID   string  `json:"author_id"`
	AuthorName *string `json:"author_name,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
