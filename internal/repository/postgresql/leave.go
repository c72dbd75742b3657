package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/leave"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// ========== POLICIES ==========

type leavePolicyRepository struct {
	db *database.DB
}

func NewLeavePolicyRepository(db *database.DB) leave.LeavePolicyRepository {
	return &leavePolicyRepository{db: db}
}

const leavePolicyColumns = `id, organization_id, name, days_per_year, paid, description, created_at, updated_at`

func scanLeavePolicy(row pgx.Row) (leave.LeavePolicy, error) {
	var p leave.LeavePolicy
	err := row.Scan(&p.ID, &p.OrganizationID, &p.Name, &p.DaysPerYear, &p.Paid, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *leavePolicyRepository) Create(ctx context.Context, policy leave.LeavePolicy) (leave.LeavePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_policies (id, organization_id, name, days_per_year, paid, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leavePolicyColumns
	p, err := scanLeavePolicy(q.QueryRow(ctx, query,
		policy.ID, policy.OrganizationID, policy.Name, policy.DaysPerYear, policy.Paid, policy.Description,
	))
	if err != nil {
		return leave.LeavePolicy{}, fmt.Errorf("failed to create leave policy: %w", err)
	}
	return p, nil
}

func (r *leavePolicyRepository) GetByID(ctx context.Context, id string, organizationID string) (leave.LeavePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leavePolicyColumns + ` FROM leave_policies WHERE id = $1 AND organization_id = $2`
	p, err := scanLeavePolicy(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeavePolicy{}, leave.ErrLeavePolicyNotFound
		}
		return leave.LeavePolicy{}, fmt.Errorf("failed to get leave policy: %w", err)
	}
	return p, nil
}

func (r *leavePolicyRepository) ListByOrganization(ctx context.Context, organizationID string) ([]leave.LeavePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leavePolicyColumns + ` FROM leave_policies WHERE organization_id = $1 ORDER BY name`
	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave policies: %w", err)
	}
	defer rows.Close()

	var policies []leave.LeavePolicy
	for rows.Next() {
		p, err := scanLeavePolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave policy: %w", err)
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

func (r *leavePolicyRepository) Update(ctx context.Context, organizationID string, req leave.UpdateLeavePolicyRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID, organizationID}

	if req.Name != nil {
		args = append(args, *req.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.DaysPerYear != nil {
		args = append(args, *req.DaysPerYear)
		sets = append(sets, fmt.Sprintf("days_per_year = $%d", len(args)))
	}
	if req.Paid != nil {
		args = append(args, *req.Paid)
		sets = append(sets, fmt.Sprintf("paid = $%d", len(args)))
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}

	query := fmt.Sprintf(`UPDATE leave_policies SET %s WHERE id = $1 AND organization_id = $2`, strings.Join(sets, ", "))
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update leave policy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeavePolicyNotFound
	}
	return nil
}

func (r *leavePolicyRepository) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_policies WHERE id = $1 AND organization_id = $2`, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete leave policy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeavePolicyNotFound
	}
	return nil
}

// ========== REQUESTS ==========

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.organization_id, lr.policy_id,
	lr.start_date, lr.end_date, lr.days, lr.status, lr.reason,
	lr.reviewed_by, lr.reviewed_at, lr.created_at, lr.updated_at,
	e.full_name, p.name, p.paid`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.OrganizationID, &lr.PolicyID,
		&lr.StartDate, &lr.EndDate, &lr.Days, &lr.Status, &lr.Reason,
		&lr.ReviewedBy, &lr.ReviewedAt, &lr.CreatedAt, &lr.UpdatedAt,
		&lr.EmployeeName, &lr.PolicyName, &lr.PolicyPaid,
	)
	return lr, err
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO leave_requests (id, employee_id, organization_id, policy_id, start_date, end_date, days, status, reason)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		)
		SELECT ` + leaveRequestColumns + `
		FROM inserted lr
		JOIN employees e ON e.id = lr.employee_id
		JOIN leave_policies p ON p.id = lr.policy_id
	`
	lr, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.OrganizationID, request.PolicyID,
		request.StartDate, request.EndDate, request.Days, request.Status, request.Reason,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return lr, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string, organizationID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		JOIN leave_policies p ON p.id = lr.policy_id
		WHERE lr.id = $1 AND lr.organization_id = $2
	`
	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return lr, nil
}

func (r *leaveRequestRepository) List(ctx context.Context, organizationID string, filter leave.RequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"lr.organization_id = $1"}
	args := []interface{}{organizationID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", len(args)))
	}
	if filter.Month != nil {
		args = append(args, *filter.Month)
		conditions = append(conditions, fmt.Sprintf("to_char(lr.start_date, 'YYYY-MM') = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		JOIN leave_policies p ON p.id = lr.policy_id
		WHERE %s
		ORDER BY lr.created_at DESC
	`, leaveRequestColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, organizationID string, status leave.RequestStatus, reviewedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $3, reviewed_by = $4, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status = $5
	`
	tag, err := q.Exec(ctx, query, id, organizationID, status, reviewedBy, leave.RequestStatusPending)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestAlreadyClosed
	}
	return nil
}

func (r *leaveRequestRepository) CountApprovedUnpaidDays(ctx context.Context, employeeID string, organizationID string, month string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(lr.days), 0)
		FROM leave_requests lr
		JOIN leave_policies p ON p.id = lr.policy_id
		WHERE lr.employee_id = $1
		  AND lr.organization_id = $2
		  AND lr.status = $3
		  AND p.paid = FALSE
		  AND to_char(lr.start_date, 'YYYY-MM') = $4
	`
	var days int
	err := q.QueryRow(ctx, query, employeeID, organizationID, leave.RequestStatusApproved, month).Scan(&days)
	if err != nil {
		return 0, fmt.Errorf("failed to count unpaid leave days: %w", err)
	}
	return days, nil
}
