package recruitment

import (
	"context"
	"io"
)

type RecruitmentService interface {
	// Postings
	CreatePosting(ctx context.Context, req CreateJobPostingRequest) (JobPostingResponse, error)
	ListPostings(ctx context.Context) ([]JobPostingResponse, error)
	UpdatePosting(ctx context.Context, req UpdateJobPostingRequest) (JobPostingResponse, error)

	// Candidates
	AddCandidate(ctx context.Context, req AddCandidateRequest) (CandidateResponse, error)
	ListCandidates(ctx context.Context, postingID string) ([]CandidateResponse, error)
	UploadResume(ctx context.Context, candidateID string, file io.Reader, filename string, contentType string) (CandidateResponse, error)
	// ScreenCandidate calls the external screening API and stores its score
	// and summary on the candidate.
	ScreenCandidate(ctx context.Context, candidateID string) (CandidateResponse, error)
}
