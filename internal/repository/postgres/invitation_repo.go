package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sapeol/memorial-app/internal/domain"
)

const invitationColumns = "id, memorial_id, email, phone, access_code, access_level, invited_by, expires_at, accepted_at, created_at"

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{DB: db}
}

func scanInvitation(row interface{ Scan(...any) error }) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	var email, phone sql.NullString
	var expiresNull, acceptedNull sql.NullTime
	err := row.Scan(
		&inv.ID, &inv.MemorialID, &email, &phone, &inv.AccessCode,
		&inv.AccessLevel, &inv.InvitedBy, &expiresNull, &acceptedNull, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if email.Valid {
		inv.Email = &email.String
	}
	if phone.Valid {
		inv.Phone = &phone.String
	}
	if expiresNull.Valid {
		inv.ExpiresAt = &expiresNull.Time
	}
	if acceptedNull.Valid {
		inv.AcceptedAt = &acceptedNull.Time
	}
	return inv, nil
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (memorial_id, email, phone, access_code, access_level, invited_by, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		inv.MemorialID, inv.Email, inv.Phone, inv.AccessCode, inv.AccessLevel, inv.InvitedBy, inv.ExpiresAt, inv.CreatedAt,
	).Scan(&inv.ID)
}

func (r *invitationRepository) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE id = $1
	`
	inv, err := scanInvitation(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) ListByMemorialID(ctx context.Context, memorialID, search string, params domain.PaginationParams) ([]*domain.Invitation, int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM invitations
		WHERE memorial_id = $1 AND ($2 = '' OR email ILIKE '%' || $2 || '%')
	`
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, memorialID, search).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE memorial_id = $1 AND ($2 = '' OR email ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.DB.QueryContext(ctx, query, memorialID, search, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	invs := make([]*domain.Invitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, 0, err
		}
		invs = append(invs, inv)
	}
	return invs, total, rows.Err()
}

// MarkAccepted only touches rows still pending, so a second accept of the
// same invitation is a no-op.
func (r *invitationRepository) MarkAccepted(ctx context.Context, id string, acceptedAt time.Time) error {
	query := `
		UPDATE invitations SET accepted_at = $1
		WHERE id = $2 AND accepted_at IS NULL
	`
	_, err := r.DB.ExecContext(ctx, query, acceptedAt, id)
	return err
}

func (r *invitationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM invitations WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
