package document

import "time"

type Document struct {
	ID             string
	OrganizationID string
	EmployeeID     string // owner
	Name           string
	FilePath       string
	ContentType    string
	SizeBytes      int64
	UploadedBy     string // employee id
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
