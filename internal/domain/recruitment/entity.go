package recruitment

import "time"

type PostingStatus string

const (
	PostingStatusOpen   PostingStatus = "open"
	PostingStatusClosed PostingStatus = "closed"
)

type JobPosting struct {
	ID             string
	OrganizationID string
	Title          string
	Description    string
	Department     *string
	Status         PostingStatus
	CreatedBy      string // employee id
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CandidateStatus string

const (
	CandidateStatusApplied  CandidateStatus = "applied"
	CandidateStatusScreened CandidateStatus = "screened"
	CandidateStatusRejected CandidateStatus = "rejected"
	CandidateStatusHired    CandidateStatus = "hired"
)

type Candidate struct {
	ID               string
	OrganizationID   string
	JobPostingID     string
	FullName         string
	Email            string
	ResumePath       *string
	ScreeningScore   *float64 // 0-100, set by the screening API
	ScreeningSummary *string
	Status           CandidateStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
