package attendance

import (
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/validator"
)

type ClockInRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type ClockOutRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	WorkDate     string  `json:"work_date"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     *string `json:"clock_out,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type ListFilter struct {
	EmployeeID *string
	From       *string // "YYYY-MM-DD"
	To         *string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.From != nil {
		if _, ok := validator.IsValidDate(*f.From); !ok {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if f.To != nil {
		if _, ok := validator.IsValidDate(*f.To); !ok {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
