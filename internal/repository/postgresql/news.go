package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/news"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type newsRepository struct {
	db *database.DB
}

func NewNewsRepository(db *database.DB) news.NewsRepository {
	return &newsRepository{db: db}
}

const newsColumns = `n.id, n.organization_id, n.author_employee_id, n.title, n.body, n.created_at, n.updated_at, e.full_name`

func scanNews(row pgx.Row) (news.News, error) {
	var n news.News
	err := row.Scan(
		&n.ID, &n.OrganizationID, &n.AuthorEmployeeID, &n.Title, &n.Body,
		&n.CreatedAt, &n.UpdatedAt, &n.AuthorName,
	)
	return n, err
}

func (r *newsRepository) Create(ctx context.Context, item news.News) (news.News, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO news (id, organization_id, author_employee_id, title, body)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)
		SELECT ` + newsColumns + `
		FROM inserted n
		JOIN employees e ON e.id = n.author_employee_id
	`
	n, err := scanNews(q.QueryRow(ctx, query,
		item.ID, item.OrganizationID, item.AuthorEmployeeID, item.Title, item.Body,
	))
	if err != nil {
		return news.News{}, fmt.Errorf("failed to create news item: %w", err)
	}
	return n, nil
}

func (r *newsRepository) GetByID(ctx context.Context, id string, organizationID string) (news.News, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + newsColumns + `
		FROM news n
		JOIN employees e ON e.id = n.author_employee_id
		WHERE n.id = $1 AND n.organization_id = $2
	`
	n, err := scanNews(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return news.News{}, news.ErrNewsNotFound
		}
		return news.News{}, fmt.Errorf("failed to get news item: %w", err)
	}
	return n, nil
}

func (r *newsRepository) ListByOrganization(ctx context.Context, organizationID string) ([]news.News, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + newsColumns + `
		FROM news n
		JOIN employees e ON e.id = n.author_employee_id
		WHERE n.organization_id = $1
		ORDER BY n.created_at DESC
	`
	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	defer rows.Close()

	var items []news.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news item: %w", err)
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r *newsRepository) Update(ctx context.Context, organizationID string, req news.UpdateNewsRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID, organizationID}

	if req.Title != nil {
		args = append(args, *req.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if req.Body != nil {
		args = append(args, *req.Body)
		sets = append(sets, fmt.Sprintf("body = $%d", len(args)))
	}

	query := fmt.Sprintf(`UPDATE news SET %s WHERE id = $1 AND organization_id = $2`, strings.Join(sets, ", "))
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update news item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return news.ErrNewsNotFound
	}
	return nil
}

func (r *newsRepository) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM news WHERE id = $1 AND organization_id = $2`, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete news item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return news.ErrNewsNotFound
	}
	return nil
}
