package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, user_id, organization_id, full_name, email, designation, department, status, joined_at, created_at, updated_at, deleted_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.OrganizationID, &e.FullName, &e.Email,
		&e.Designation, &e.Department, &e.Status, &e.JoinedAt,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	return e, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id string, organizationID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND organization_id = $2 AND deleted_at IS NULL
	`
	e, err := scanEmployee(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) GetByUserAndOrganization(ctx context.Context, userID string, organizationID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE user_id = $1 AND organization_id = $2 AND deleted_at IS NULL
	`
	e, err := scanEmployee(q.QueryRow(ctx, query, userID, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee membership: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) ListByOrganization(ctx context.Context, organizationID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE organization_id = $1 AND deleted_at IS NULL
		ORDER BY full_name
	`
	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) ListOrganizationIDsByUser(ctx context.Context, userID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT organization_id
		FROM employees
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization memberships: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan organization id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, user_id, organization_id, full_name, email, designation, department, status, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumns
	e, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.UserID, newEmployee.OrganizationID,
		newEmployee.FullName, newEmployee.Email, newEmployee.Designation,
		newEmployee.Department, newEmployee.Status, newEmployee.JoinedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrAlreadyMember
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) Update(ctx context.Context, organizationID string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID, organizationID}

	if req.Designation != nil {
		args = append(args, *req.Designation)
		sets = append(sets, fmt.Sprintf("designation = $%d", len(args)))
	}
	if req.Department != nil {
		args = append(args, *req.Department)
		sets = append(sets, fmt.Sprintf("department = $%d", len(args)))
	}
	if req.Status != nil {
		args = append(args, *req.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1 AND organization_id = $2 AND deleted_at IS NULL
	`, strings.Join(sets, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) SoftDelete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET status = $3, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND deleted_at IS NULL
	`
	tag, err := q.Exec(ctx, query, id, organizationID, employee.StatusTerminated)
	if err != nil {
		return fmt.Errorf("failed to soft delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
