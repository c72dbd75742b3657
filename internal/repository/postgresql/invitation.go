package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/invitation"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type invitationRepository struct {
	db *database.DB
}

func NewInvitationRepository(db *database.DB) invitation.InvitationRepository {
	return &invitationRepository{db: db}
}

const invitationColumns = `id, organization_id, email, designation, department, token, expires_at, accepted_at, invited_by, created_at`

func scanInvitation(row pgx.Row) (invitation.Invitation, error) {
	var inv invitation.Invitation
	err := row.Scan(
		&inv.ID, &inv.OrganizationID, &inv.Email, &inv.Designation, &inv.Department,
		&inv.Token, &inv.ExpiresAt, &inv.AcceptedAt, &inv.InvitedBy, &inv.CreatedAt,
	)
	return inv, err
}

func (r *invitationRepository) Create(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invitations (id, organization_id, email, designation, department, token, expires_at, invited_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + invitationColumns
	created, err := scanInvitation(q.QueryRow(ctx, query,
		inv.ID, inv.OrganizationID, inv.Email, inv.Designation, inv.Department,
		inv.Token, inv.ExpiresAt, inv.InvitedBy,
	))
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to create invitation: %w", err)
	}
	return created, nil
}

func (r *invitationRepository) GetByToken(ctx context.Context, token string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE token = $1`
	inv, err := scanInvitation(q.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get invitation by token: %w", err)
	}
	return inv, nil
}

func (r *invitationRepository) ListByOrganization(ctx context.Context, organizationID string) ([]invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE organization_id = $1 ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []invitation.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *invitationRepository) MarkAccepted(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE invitations SET accepted_at = NOW() WHERE id = $1 AND accepted_at IS NULL`
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark invitation accepted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invitation.ErrInvitationAccepted
	}
	return nil
}
