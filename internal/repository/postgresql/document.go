package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/document"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type documentRepository struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepository{db: db}
}

const documentColumns = `id, organization_id, employee_id, name, file_path, content_type, size_bytes, uploaded_by, created_at, updated_at`

func scanDocument(row pgx.Row) (document.Document, error) {
	var d document.Document
	err := row.Scan(
		&d.ID, &d.OrganizationID, &d.EmployeeID, &d.Name, &d.FilePath,
		&d.ContentType, &d.SizeBytes, &d.UploadedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func (r *documentRepository) Create(ctx context.Context, doc document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (id, organization_id, employee_id, name, file_path, content_type, size_bytes, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + documentColumns
	d, err := scanDocument(q.QueryRow(ctx, query,
		doc.ID, doc.OrganizationID, doc.EmployeeID, doc.Name, doc.FilePath,
		doc.ContentType, doc.SizeBytes, doc.UploadedBy,
	))
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to create document: %w", err)
	}
	return d, nil
}

func (r *documentRepository) GetByID(ctx context.Context, id string, organizationID string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 AND organization_id = $2`
	d, err := scanDocument(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, fmt.Errorf("failed to get document: %w", err)
	}
	return d, nil
}

func (r *documentRepository) ListByEmployee(ctx context.Context, employeeID string, organizationID string) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE employee_id = $1 AND organization_id = $2
		ORDER BY created_at DESC
	`
	rows, err := q.Query(ctx, query, employeeID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

func (r *documentRepository) ListByOrganization(ctx context.Context, organizationID string) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE organization_id = $1
		ORDER BY created_at DESC
	`
	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

func collectDocuments(rows pgx.Rows) ([]document.Document, error) {
	var docs []document.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *documentRepository) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM documents WHERE id = $1 AND organization_id = $2`, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}
	return nil
}
