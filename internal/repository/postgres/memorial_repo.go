package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sapeol/memorial-app/internal/domain"
)

const memorialColumns = "id, name, birth_date, passing_date, bio, owner_id, cover_image, theme_color, created_at, updated_at"

type memorialRepository struct {
	DB *sql.DB
}

func NewMemorialRepository(db *sql.DB) domain.MemorialRepository {
	return &memorialRepository{DB: db}
}

func scanMemorial(row interface{ Scan(...any) error }) (*domain.Memorial, error) {
	m := &domain.Memorial{}
	var birthNull, passingNull sql.NullTime
	var bioNull, coverNull, themeNull sql.NullString
	err := row.Scan(
		&m.ID, &m.Name, &birthNull, &passingNull, &bioNull,
		&m.OwnerID, &coverNull, &themeNull, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if birthNull.Valid {
		m.BirthDate = &birthNull.Time
	}
	if passingNull.Valid {
		m.PassingDate = &passingNull.Time
	}
	m.Bio = bioNull.String
	if coverNull.Valid {
		m.CoverImage = &coverNull.String
	}
	m.ThemeColor = themeNull.String
	return m, nil
}

func (r *memorialRepository) Create(ctx context.Context, m *domain.Memorial) error {
	query := `
		INSERT INTO memorials (name, birth_date, passing_date, bio, owner_id, cover_image, theme_color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		m.Name, m.BirthDate, m.PassingDate, m.Bio, m.OwnerID, m.CoverImage, m.ThemeColor, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
}

func (r *memorialRepository) GetByID(ctx context.Context, id string) (*domain.Memorial, error) {
	query := `
		SELECT ` + memorialColumns + `
		FROM memorials
		WHERE id = $1
	`
	m, err := scanMemorial(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// GetByIDForUser is the retrieval gate: the row comes back only when userID
// is the owner or an accepted participant. Missing and inaccessible rows are
// both ErrNotFound.
func (r *memorialRepository) GetByIDForUser(ctx context.Context, id, userID string) (*domain.Memorial, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM memorials m
		WHERE m.id = $1
		  AND (m.owner_id = $2 OR EXISTS (
			SELECT 1 FROM memorial_participants p
			WHERE p.memorial_id = m.id AND p.user_id = $2 AND p.accepted_at IS NOT NULL
		  ))
	`, prefixColumns("m", memorialColumns))
	m, err := scanMemorial(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *memorialRepository) ListForUser(ctx context.Context, userID string) ([]*domain.Memorial, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM memorials m
		WHERE m.owner_id = $1 OR EXISTS (
			SELECT 1 FROM memorial_participants p
			WHERE p.memorial_id = m.id AND p.user_id = $1 AND p.accepted_at IS NOT NULL
		)
		ORDER BY m.created_at DESC
	`, prefixColumns("m", memorialColumns))
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	memorials := make([]*domain.Memorial, 0)
	for rows.Next() {
		m, err := scanMemorial(rows)
		if err != nil {
			return nil, err
		}
		memorials = append(memorials, m)
	}
	return memorials, rows.Err()
}

func (r *memorialRepository) Update(ctx context.Context, id string, upd domain.MemorialUpdate) (*domain.Memorial, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if upd.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", n))
		args = append(args, *upd.Name)
		n++
	}
	if upd.Bio != nil {
		setClauses = append(setClauses, fmt.Sprintf("bio = $%d", n))
		args = append(args, *upd.Bio)
		n++
	}
	if upd.BirthDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("birth_date = $%d", n))
		args = append(args, *upd.BirthDate)
		n++
	}
	if upd.PassingDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("passing_date = $%d", n))
		args = append(args, *upd.PassingDate)
		n++
	}
	if upd.CoverImage != nil {
		setClauses = append(setClauses, fmt.Sprintf("cover_image = $%d", n))
		args = append(args, *upd.CoverImage)
		n++
	}
	if upd.ThemeColor != nil {
		setClauses = append(setClauses, fmt.Sprintf("theme_color = $%d", n))
		args = append(args, *upd.ThemeColor)
		n++
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE memorials SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, memorialColumns)
	m, err := scanMemorial(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// DeleteCascade removes the memorial and all child rows in one transaction,
// children first so the run is safe without engine-level cascades.
func (r *memorialRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	childTables := []string{
		"rituals",
		"guestbook_entries",
		"media_items",
		"milestones",
		"memorial_participants",
		"invitations",
	}
	for _, table := range childTables {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE memorial_id = $1", table), id); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}
	result, err := tx.ExecContext(ctx, "DELETE FROM memorials WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

// prefixColumns qualifies each column in a comma-separated list with an alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}
