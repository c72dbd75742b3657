package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/organization"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type organizationRepository struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepository{db: db}
}

const organizationColumns = `id, name, slug, industry, logo_url, created_at, updated_at`

func scanOrganization(row pgx.Row) (organization.Organization, error) {
	var o organization.Organization
	err := row.Scan(&o.ID, &o.Name, &o.Slug, &o.Industry, &o.LogoURL, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func (r *organizationRepository) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE id = $1`
	o, err := scanOrganization(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}
	return o, nil
}

func (r *organizationRepository) GetBySlug(ctx context.Context, slug string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE slug = $1`
	o, err := scanOrganization(q.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization by slug: %w", err)
	}
	return o, nil
}

func (r *organizationRepository) Create(ctx context.Context, newOrganization organization.Organization) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO organizations (id, name, slug, industry, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + organizationColumns
	o, err := scanOrganization(q.QueryRow(ctx, query,
		newOrganization.ID, newOrganization.Name, newOrganization.Slug, newOrganization.Industry, newOrganization.LogoURL,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return organization.Organization{}, organization.ErrSlugExists
		}
		return organization.Organization{}, fmt.Errorf("failed to create organization: %w", err)
	}
	return o, nil
}

func (r *organizationRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM organizations WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check organization slug: %w", err)
	}
	return exists, nil
}
