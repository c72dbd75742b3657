package recruitment

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/recruitment"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/screening"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/storage"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/requestctx"
	"github.com/google/uuid"
)

const resumeURLExpiry = 15 * time.Minute

type RecruitmentServiceImpl struct {
	recruitment.RecruitmentRepository
	fileStorage     storage.FileStorage
	screeningClient *screening.Client
}

func NewRecruitmentService(
	recruitmentRepo recruitment.RecruitmentRepository,
	fileStorage storage.FileStorage,
	screeningClient *screening.Client,
) recruitment.RecruitmentService {
	return &RecruitmentServiceImpl{
		RecruitmentRepository: recruitmentRepo,
		fileStorage:           fileStorage,
		screeningClient:       screeningClient,
	}
}

// CreatePosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) CreatePosting(ctx context.Context, req recruitment.CreateJobPostingRequest) (recruitment.JobPostingResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.JobPostingResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return recruitment.JobPostingResponse{}, ability.ErrNotAMember
	}

	posting, err := s.RecruitmentRepository.CreatePosting(ctx, recruitment.JobPosting{
		ID:             uuid.NewString(),
		OrganizationID: actor.OrganizationID,
		Title:          req.Title,
		Description:    req.Description,
		Department:     req.Department,
		Status:         recruitment.PostingStatusOpen,
		CreatedBy:      actor.ID,
	})
	if err != nil {
		return recruitment.JobPostingResponse{}, err
	}
	return toPostingResponse(posting), nil
}

// ListPostings implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListPostings(ctx context.Context) ([]recruitment.JobPostingResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return nil, ability.ErrNotAMember
	}

	postings, err := s.RecruitmentRepository.ListPostings(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.JobPostingResponse, 0, len(postings))
	for _, posting := range postings {
		responses = append(responses, toPostingResponse(posting))
	}
	return responses, nil
}

// UpdatePosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UpdatePosting(ctx context.Context, req recruitment.UpdateJobPostingRequest) (recruitment.JobPostingResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.JobPostingResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return recruitment.JobPostingResponse{}, ability.ErrNotAMember
	}

	if err := s.RecruitmentRepository.UpdatePosting(ctx, actor.OrganizationID, req); err != nil {
		return recruitment.JobPostingResponse{}, err
	}

	posting, err := s.RecruitmentRepository.GetPostingByID(ctx, req.ID, actor.OrganizationID)
	if err != nil {
		return recruitment.JobPostingResponse{}, err
	}
	return toPostingResponse(posting), nil
}

// AddCandidate implements recruitment.RecruitmentService. Candidates can only
// be added to open postings.
func (s *RecruitmentServiceImpl) AddCandidate(ctx context.Context, req recruitment.AddCandidateRequest) (recruitment.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.CandidateResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return recruitment.CandidateResponse{}, ability.ErrNotAMember
	}

	posting, err := s.RecruitmentRepository.GetPostingByID(ctx, req.JobPostingID, actor.OrganizationID)
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}
	if posting.Status != recruitment.PostingStatusOpen {
		return recruitment.CandidateResponse{}, recruitment.ErrPostingClosed
	}

	candidate, err := s.RecruitmentRepository.CreateCandidate(ctx, recruitment.Candidate{
		ID:             uuid.NewString(),
		OrganizationID: actor.OrganizationID,
		JobPostingID:   req.JobPostingID,
		FullName:       req.FullName,
		Email:          req.Email,
		Status:         recruitment.CandidateStatusApplied,
	})
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}
	return s.toCandidateResponse(ctx, candidate), nil
}

// ListCandidates implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListCandidates(ctx context.Context, postingID string) ([]recruitment.CandidateResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return nil, ability.ErrNotAMember
	}

	if _, err := s.RecruitmentRepository.GetPostingByID(ctx, postingID, actor.OrganizationID); err != nil {
		return nil, err
	}

	candidates, err := s.RecruitmentRepository.ListCandidatesByPosting(ctx, postingID, actor.OrganizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.CandidateResponse, 0, len(candidates))
	for _, candidate := range candidates {
		responses = append(responses, s.toCandidateResponse(ctx, candidate))
	}
	return responses, nil
}

// UploadResume implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UploadResume(ctx context.Context, candidateID string, file io.Reader, filename string, contentType string) (recruitment.CandidateResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return recruitment.CandidateResponse{}, ability.ErrNotAMember
	}

	candidate, err := s.RecruitmentRepository.GetCandidateByID(ctx, candidateID, actor.OrganizationID)
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}

	path := fmt.Sprintf("resumes/%s/%s%s", actor.OrganizationID, candidate.ID, filepath.Ext(filename))
	storedPath, err := s.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return recruitment.CandidateResponse{}, fmt.Errorf("failed to store resume: %w", err)
	}

	if err := s.RecruitmentRepository.SetResumePath(ctx, candidate.ID, actor.OrganizationID, storedPath); err != nil {
		return recruitment.CandidateResponse{}, err
	}

	candidate.ResumePath = &storedPath
	return s.toCandidateResponse(ctx, candidate), nil
}

// ScreenCandidate implements recruitment.RecruitmentService. The stored
// resume is read back as plain text and sent to the screening API along with
// the posting's title and description.
func (s *RecruitmentServiceImpl) ScreenCandidate(ctx context.Context, candidateID string) (recruitment.CandidateResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return recruitment.CandidateResponse{}, ability.ErrNotAMember
	}

	candidate, err := s.RecruitmentRepository.GetCandidateByID(ctx, candidateID, actor.OrganizationID)
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}
	if candidate.ResumePath == nil {
		return recruitment.CandidateResponse{}, recruitment.ErrNoResume
	}

	posting, err := s.RecruitmentRepository.GetPostingByID(ctx, candidate.JobPostingID, actor.OrganizationID)
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}

	resume, err := s.fileStorage.Download(ctx, *candidate.ResumePath)
	if err != nil {
		return recruitment.CandidateResponse{}, fmt.Errorf("failed to read resume: %w", err)
	}
	defer resume.Close()

	content, err := io.ReadAll(resume)
	if err != nil {
		return recruitment.CandidateResponse{}, fmt.Errorf("failed to read resume: %w", err)
	}

	result, err := s.screeningClient.Screen(ctx, screening.ScreenRequest{
		ResumeText:     strings.ToValidUTF8(string(content), ""),
		JobTitle:       posting.Title,
		JobDescription: posting.Description,
	})
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}

	if err := s.RecruitmentRepository.SetScreeningResult(ctx, candidate.ID, actor.OrganizationID, result.Score, result.Summary); err != nil {
		return recruitment.CandidateResponse{}, err
	}

	updated, err := s.RecruitmentRepository.GetCandidateByID(ctx, candidateID, actor.OrganizationID)
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}
	return s.toCandidateResponse(ctx, updated), nil
}

func toPostingResponse(p recruitment.JobPosting) recruitment.JobPostingResponse {
	return recruitment.JobPostingResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Department:  p.Department,
		Status:      string(p.Status),
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func (s *RecruitmentServiceImpl) toCandidateResponse(ctx context.Context, c recruitment.Candidate) recruitment.CandidateResponse {
	var resumeURL *string
	if c.ResumePath != nil {
		if url, err := s.fileStorage.GetURL(ctx, *c.ResumePath, resumeURLExpiry); err == nil {
			resumeURL = &url
		}
	}

	return recruitment.CandidateResponse{
		ID:               c.ID,
		JobPostingID:     c.JobPostingID,
		FullName:         c.FullName,
		Email:            c.Email,
		ResumeURL:        resumeURL,
		ScreeningScore:   c.ScreeningScore,
		ScreeningSummary: c.ScreeningSummary,
		Status:           string(c.Status),
	}
}
