package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sapeol/memorial-app/internal/domain"
)

const participantColumns = "id, memorial_id, user_id, guest_name, guest_email, access_level, invited_by, invited_at, accepted_at"

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{DB: db}
}

func scanParticipant(row interface{ Scan(...any) error }) (*domain.Participant, error) {
	p := &domain.Participant{}
	var guestName, guestEmail sql.NullString
	var acceptedNull sql.NullTime
	err := row.Scan(
		&p.ID, &p.MemorialID, &p.UserID, &guestName, &guestEmail,
		&p.AccessLevel, &p.InvitedBy, &p.InvitedAt, &acceptedNull,
	)
	if err != nil {
		return nil, err
	}
	if guestName.Valid {
		p.GuestName = &guestName.String
	}
	if guestEmail.Valid {
		p.GuestEmail = &guestEmail.String
	}
	if acceptedNull.Valid {
		p.AcceptedAt = &acceptedNull.Time
	}
	return p, nil
}

// Upsert relies on the UNIQUE (memorial_id, user_id) constraint: a conflicting
// insert leaves the existing row untouched and the query returns no row, in
// which case the existing row is loaded and returned with created=false.
func (r *participantRepository) Upsert(ctx context.Context, p *domain.Participant) (bool, error) {
	query := `
		INSERT INTO memorial_participants (memorial_id, user_id, guest_name, guest_email, access_level, invited_by, invited_at, accepted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (memorial_id, user_id) DO NOTHING
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		p.MemorialID, p.UserID, p.GuestName, p.GuestEmail, p.AccessLevel, p.InvitedBy, p.InvitedAt, p.AcceptedAt,
	).Scan(&p.ID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}
	existing, err := r.GetByMemorialAndUser(ctx, p.MemorialID, p.UserID)
	if err != nil {
		return false, err
	}
	*p = *existing
	return false, nil
}

func (r *participantRepository) GetByMemorialAndUser(ctx context.Context, memorialID, userID string) (*domain.Participant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM memorial_participants
		WHERE memorial_id = $1 AND user_id = $2
	`
	p, err := scanParticipant(r.DB.QueryRowContext(ctx, query, memorialID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM memorial_participants
		WHERE id = $1
	`
	p, err := scanParticipant(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) ListByMemorialID(ctx context.Context, memorialID string) ([]*domain.Participant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM memorial_participants
		WHERE memorial_id = $1
		ORDER BY invited_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, memorialID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *participantRepository) UpdateAccessLevel(ctx context.Context, id string, level domain.AccessLevel) (*domain.Participant, error) {
	query := `
		UPDATE memorial_participants SET access_level = $1
		WHERE id = $2
		RETURNING ` + participantColumns + `
	`
	p, err := scanParticipant(r.DB.QueryRowContext(ctx, query, level, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM memorial_participants WHERE id = $1`
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
