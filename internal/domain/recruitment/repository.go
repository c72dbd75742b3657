package recruitment

import "context"

type RecruitmentRepository interface {
	// Job postings
	CreatePosting(ctx context.Context, posting JobPosting) (JobPosting, error)
	GetPostingByID(ctx context.Context, id string, organizationID string) (JobPosting, error)
	ListPostings(ctx context.Context, organizationID string) ([]JobPosting, error)
	UpdatePosting(ctx context.Context, organizationID string, req UpdateJobPostingRequest) error

	// Candidates
	CreateCandidate(ctx context.Context, candidate Candidate) (Candidate, error)
	GetCandidateByID(ctx context.Context, id string, organizationID string) (Candidate, error)
	ListCandidatesByPosting(ctx context.Context, postingID string, organizationID string) ([]Candidate, error)
	SetResumePath(ctx context.Context, id string, organizationID string, path string) error
	SetScreeningResult(ctx context.Context, id string, organizationID string, score float64, summary string) error
	UpdateCandidateStatus(ctx context.Context, id string, organizationID string, status CandidateStatus) error
}
