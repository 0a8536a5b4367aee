package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sapeol/memorial-app/internal/domain"
)

const guestbookColumns = "id, memorial_id, author_id, author_name, message, relationship, created_at"

type guestbookRepository struct {
	DB *sql.DB
}

func NewGuestbookRepository(db *sql.DB) domain.GuestbookRepository {
	return &guestbookRepository{DB: db}
}

func scanGuestbookEntry(row interface{ Scan(...any) error }) (*domain.GuestbookEntry, error) {
	e := &domain.GuestbookEntry{}
	var relNull sql.NullString
	err := row.Scan(
		&e.ID, &e.MemorialID, &e.AuthorID, &e.AuthorName, &e.Message, &relNull, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if relNull.Valid {
		e.Relationship = &relNull.String
	}
	return e, nil
}

func (r *guestbookRepository) Create(ctx context.Context, e *domain.GuestbookEntry) error {
	query := `
		INSERT INTO guestbook_entries (memorial_id, author_id, author_name, message, relationship, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.MemorialID, e.AuthorID, e.AuthorName, e.Message, e.Relationship, e.CreatedAt,
	).Scan(&e.ID)
}

func (r *guestbookRepository) GetByID(ctx context.Context, id string) (*domain.GuestbookEntry, error) {
	query := `
		SELECT ` + guestbookColumns + `
		FROM guestbook_entries
		WHERE id = $1
	`
	e, err := scanGuestbookEntry(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *guestbookRepository) ListByMemorialID(ctx context.Context, memorialID string) ([]*domain.GuestbookEntry, error) {
	query := `
		SELECT ` + guestbookColumns + `
		FROM guestbook_entries
		WHERE memorial_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, memorialID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]*domain.GuestbookEntry, 0)
	for rows.Next() {
		e, err := scanGuestbookEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *guestbookRepository) UpdateMessage(ctx context.Context, id, message string) (*domain.GuestbookEntry, error) {
	query := `
		UPDATE guestbook_entries SET message = $1
		WHERE id = $2
		RETURNING ` + guestbookColumns + `
	`
	e, err := scanGuestbookEntry(r.DB.QueryRowContext(ctx, query, message, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *guestbookRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM guestbook_entries WHERE id = $1`
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
