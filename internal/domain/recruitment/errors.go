package recruitment

import "errors"

var (
	ErrJobPostingNotFound = errors.New("job posting not found")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrPostingClosed      = errors.New("job posting is closed")
	ErrNoResume           = errors.New("candidate has no resume to screen")
)
