package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/sapeol/memorial-app/internal/domain"
)

const mediaColumns = "id, memorial_id, media_type, url, thumbnail_url, caption, captured_at, uploaded_by, tags, created_at"

type mediaRepository struct {
	DB *sql.DB
}

func NewMediaRepository(db *sql.DB) domain.MediaRepository {
	return &mediaRepository{DB: db}
}

func scanMediaItem(row interface{ Scan(...any) error }) (*domain.MediaItem, error) {
	item := &domain.MediaItem{}
	var thumbNull, captionNull sql.NullString
	var capturedNull sql.NullTime
	err := row.Scan(
		&item.ID, &item.MemorialID, &item.MediaType, &item.URL, &thumbNull,
		&captionNull, &capturedNull, &item.UploadedBy, pq.Array(&item.Tags), &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if thumbNull.Valid {
		item.ThumbnailURL = &thumbNull.String
	}
	item.Caption = captionNull.String
	if capturedNull.Valid {
		item.CapturedAt = &capturedNull.Time
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	return item, nil
}

func (r *mediaRepository) Create(ctx context.Context, item *domain.MediaItem) error {
	query := `
		INSERT INTO media_items (memorial_id, media_type, url, thumbnail_url, caption, captured_at, uploaded_by, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		item.MemorialID, item.MediaType, item.URL, item.ThumbnailURL,
		item.Caption, item.CapturedAt, item.UploadedBy, pq.Array(item.Tags), item.CreatedAt,
	).Scan(&item.ID)
}

func (r *mediaRepository) GetByID(ctx context.Context, id string) (*domain.MediaItem, error) {
	query := `
		SELECT ` + mediaColumns + `
		FROM media_items
		WHERE id = $1
	`
	item, err := scanMediaItem(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *mediaRepository) ListByMemorialID(ctx context.Context, memorialID string) ([]*domain.MediaItem, error) {
	query := `
		SELECT ` + mediaColumns + `
		FROM media_items
		WHERE memorial_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, memorialID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]*domain.MediaItem, 0)
	for rows.Next() {
		item, err := scanMediaItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *mediaRepository) Update(ctx context.Context, id string, upd domain.MediaUpdate) (*domain.MediaItem, error) {
	setClauses := []string{}
	args := []interface{}{}
	n := 1
	if upd.Caption != nil {
		setClauses = append(setClauses, fmt.Sprintf("caption = $%d", n))
		args = append(args, *upd.Caption)
		n++
	}
	if upd.CapturedAt != nil {
		setClauses = append(setClauses, fmt.Sprintf("captured_at = $%d", n))
		args = append(args, *upd.CapturedAt)
		n++
	}
	if upd.Tags != nil {
		setClauses = append(setClauses, fmt.Sprintf("tags = $%d", n))
		args = append(args, pq.Array(upd.Tags))
		n++
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE media_items SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, mediaColumns)
	item, err := scanMediaItem(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *mediaRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM media_items WHERE id = $1`
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
