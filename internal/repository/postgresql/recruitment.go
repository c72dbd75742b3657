package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/recruitment"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type recruitmentRepository struct {
	db *database.DB
}

func NewRecruitmentRepository(db *database.DB) recruitment.RecruitmentRepository {
	return &recruitmentRepository{db: db}
}

// ========== JOB POSTINGS ==========

const jobPostingColumns = `id, organization_id, title, description, department, status, created_by, created_at, updated_at`

func scanJobPosting(row pgx.Row) (recruitment.JobPosting, error) {
	var p recruitment.JobPosting
	err := row.Scan(
		&p.ID, &p.OrganizationID, &p.Title, &p.Description, &p.Department,
		&p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *recruitmentRepository) CreatePosting(ctx context.Context, posting recruitment.JobPosting) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_postings (id, organization_id, title, description, department, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + jobPostingColumns
	p, err := scanJobPosting(q.QueryRow(ctx, query,
		posting.ID, posting.OrganizationID, posting.Title, posting.Description,
		posting.Department, posting.Status, posting.CreatedBy,
	))
	if err != nil {
		return recruitment.JobPosting{}, fmt.Errorf("failed to create job posting: %w", err)
	}
	return p, nil
}

func (r *recruitmentRepository) GetPostingByID(ctx context.Context, id string, organizationID string) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobPostingColumns + ` FROM job_postings WHERE id = $1 AND organization_id = $2`
	p, err := scanJobPosting(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.JobPosting{}, recruitment.ErrJobPostingNotFound
		}
		return recruitment.JobPosting{}, fmt.Errorf("failed to get job posting: %w", err)
	}
	return p, nil
}

func (r *recruitmentRepository) ListPostings(ctx context.Context, organizationID string) ([]recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobPostingColumns + ` FROM job_postings WHERE organization_id = $1 ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var postings []recruitment.JobPosting
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}

func (r *recruitmentRepository) UpdatePosting(ctx context.Context, organizationID string, req recruitment.UpdateJobPostingRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID, organizationID}

	if req.Title != nil {
		args = append(args, *req.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if req.Department != nil {
		args = append(args, *req.Department)
		sets = append(sets, fmt.Sprintf("department = $%d", len(args)))
	}
	if req.Status != nil {
		args = append(args, *req.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}

	query := fmt.Sprintf(`UPDATE job_postings SET %s WHERE id = $1 AND organization_id = $2`, strings.Join(sets, ", "))
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrJobPostingNotFound
	}
	return nil
}

// ========== CANDIDATES ==========

const candidateColumns = `id, organization_id, job_posting_id, full_name, email, resume_path, screening_score, screening_summary, status, created_at, updated_at`

func scanCandidate(row pgx.Row) (recruitment.Candidate, error) {
	var c recruitment.Candidate
	err := row.Scan(
		&c.ID, &c.OrganizationID, &c.JobPostingID, &c.FullName, &c.Email,
		&c.ResumePath, &c.ScreeningScore, &c.ScreeningSummary, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *recruitmentRepository) CreateCandidate(ctx context.Context, candidate recruitment.Candidate) (recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO candidates (id, organization_id, job_posting_id, full_name, email, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + candidateColumns
	c, err := scanCandidate(q.QueryRow(ctx, query,
		candidate.ID, candidate.OrganizationID, candidate.JobPostingID,
		candidate.FullName, candidate.Email, candidate.Status,
	))
	if err != nil {
		return recruitment.Candidate{}, fmt.Errorf("failed to create candidate: %w", err)
	}
	return c, nil
}

func (r *recruitmentRepository) GetCandidateByID(ctx context.Context, id string, organizationID string) (recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1 AND organization_id = $2`
	c, err := scanCandidate(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.Candidate{}, recruitment.ErrCandidateNotFound
		}
		return recruitment.Candidate{}, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

func (r *recruitmentRepository) ListCandidatesByPosting(ctx context.Context, postingID string, organizationID string) ([]recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE job_posting_id = $1 AND organization_id = $2
		ORDER BY created_at DESC
	`
	rows, err := q.Query(ctx, query, postingID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []recruitment.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *recruitmentRepository) SetResumePath(ctx context.Context, id string, organizationID string, path string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE candidates SET resume_path = $3, updated_at = NOW() WHERE id = $1 AND organization_id = $2`
	tag, err := q.Exec(ctx, query, id, organizationID, path)
	if err != nil {
		return fmt.Errorf("failed to set resume path: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrCandidateNotFound
	}
	return nil
}

func (r *recruitmentRepository) SetScreeningResult(ctx context.Context, id string, organizationID string, score float64, summary string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE candidates
		SET screening_score = $3, screening_summary = $4, status = $5, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2
	`
	tag, err := q.Exec(ctx, query, id, organizationID, score, summary, recruitment.CandidateStatusScreened)
	if err != nil {
		return fmt.Errorf("failed to set screening result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrCandidateNotFound
	}
	return nil
}

func (r *recruitmentRepository) UpdateCandidateStatus(ctx context.Context, id string, organizationID string, status recruitment.CandidateStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE candidates SET status = $3, updated_at = NOW() WHERE id = $1 AND organization_id = $2`
	tag, err := q.Exec(ctx, query, id, organizationID, status)
	if err != nil {
		return fmt.Errorf("failed to update candidate status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrCandidateNotFound
	}
	return nil
}
