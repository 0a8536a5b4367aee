package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sapeol/memorial-app/internal/domain"
)

const ritualColumns = "id, memorial_id, ritual_type, user_id, message, expires_at, created_at"

type ritualRepository struct {
	DB *sql.DB
}

func NewRitualRepository(db *sql.DB) domain.RitualRepository {
	return &ritualRepository{DB: db}
}

func scanRitual(row interface{ Scan(...any) error }) (*domain.Ritual, error) {
	rt := &domain.Ritual{}
	var msgNull sql.NullString
	var expiresNull sql.NullTime
	err := row.Scan(
		&rt.ID, &rt.MemorialID, &rt.RitualType, &rt.UserID, &msgNull, &expiresNull, &rt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if msgNull.Valid {
		rt.Message = &msgNull.String
	}
	if expiresNull.Valid {
		rt.ExpiresAt = &expiresNull.Time
	}
	return rt, nil
}

func (r *ritualRepository) Create(ctx context.Context, rt *domain.Ritual) error {
	query := `
		INSERT INTO rituals (memorial_id, ritual_type, user_id, message, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		rt.MemorialID, rt.RitualType, rt.UserID, rt.Message, rt.ExpiresAt, rt.CreatedAt,
	).Scan(&rt.ID)
}

func (r *ritualRepository) GetByID(ctx context.Context, id string) (*domain.Ritual, error) {
	query := `
		SELECT ` + ritualColumns + `
		FROM rituals
		WHERE id = $1
	`
	rt, err := scanRitual(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rt, nil
}

// ListActiveByMemorialID skips rituals whose expiry has already passed.
// Permanent rituals have a NULL expires_at and always show.
func (r *ritualRepository) ListActiveByMemorialID(ctx context.Context, memorialID string, now time.Time) ([]*domain.Ritual, error) {
	query := `
		SELECT ` + ritualColumns + `
		FROM rituals
		WHERE memorial_id = $1 AND (expires_at IS NULL OR expires_at > $2)
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, memorialID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rituals := make([]*domain.Ritual, 0)
	for rows.Next() {
		rt, err := scanRitual(rows)
		if err != nil {
			return nil, err
		}
		rituals = append(rituals, rt)
	}
	return rituals, rows.Err()
}

func (r *ritualRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM rituals WHERE id = $1`
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
