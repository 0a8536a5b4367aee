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

const milestoneColumns = "id, memorial_id, title, description, event_date, location, submitted_by, status, image_urls, created_at"

type milestoneRepository struct {
	DB *sql.DB
}

func NewMilestoneRepository(db *sql.DB) domain.MilestoneRepository {
	return &milestoneRepository{DB: db}
}

func scanMilestone(row interface{ Scan(...any) error }) (*domain.Milestone, error) {
	m := &domain.Milestone{}
	var descNull, locNull sql.NullString
	var eventNull sql.NullTime
	err := row.Scan(
		&m.ID, &m.MemorialID, &m.Title, &descNull, &eventNull,
		&locNull, &m.SubmittedBy, &m.Status, pq.Array(&m.ImageURLs), &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Description = descNull.String
	if eventNull.Valid {
		m.EventDate = &eventNull.Time
	}
	if locNull.Valid {
		m.Location = &locNull.String
	}
	if m.ImageURLs == nil {
		m.ImageURLs = []string{}
	}
	return m, nil
}

func (r *milestoneRepository) Create(ctx context.Context, m *domain.Milestone) error {
	query := `
		INSERT INTO milestones (memorial_id, title, description, event_date, location, submitted_by, status, image_urls, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		m.MemorialID, m.Title, m.Description, m.EventDate, m.Location,
		m.SubmittedBy, m.Status, pq.Array(m.ImageURLs), m.CreatedAt,
	).Scan(&m.ID)
}

func (r *milestoneRepository) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	query := `
		SELECT ` + milestoneColumns + `
		FROM milestones
		WHERE id = $1
	`
	m, err := scanMilestone(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *milestoneRepository) ListByMemorialID(ctx context.Context, memorialID string) ([]*domain.Milestone, error) {
	query := `
		SELECT ` + milestoneColumns + `
		FROM milestones
		WHERE memorial_id = $1
		ORDER BY event_date ASC NULLS LAST, created_at ASC
	`
	return r.queryMilestones(ctx, query, memorialID)
}

// ListVisibleToUser applies the timeline visibility rule in SQL: approved
// rows plus the caller's own submissions, whatever their status.
func (r *milestoneRepository) ListVisibleToUser(ctx context.Context, memorialID, userID string) ([]*domain.Milestone, error) {
	query := `
		SELECT ` + milestoneColumns + `
		FROM milestones
		WHERE memorial_id = $1 AND (status = 'approved' OR submitted_by = $2)
		ORDER BY event_date ASC NULLS LAST, created_at ASC
	`
	return r.queryMilestones(ctx, query, memorialID, userID)
}

func (r *milestoneRepository) queryMilestones(ctx context.Context, query string, args ...any) ([]*domain.Milestone, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	milestones := make([]*domain.Milestone, 0)
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

func (r *milestoneRepository) UpdateStatus(ctx context.Context, id string, status domain.ApprovalStatus) (*domain.Milestone, error) {
	query := `
		UPDATE milestones SET status = $1
		WHERE id = $2
		RETURNING ` + milestoneColumns + `
	`
	m, err := scanMilestone(r.DB.QueryRowContext(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *milestoneRepository) Update(ctx context.Context, id string, upd domain.MilestoneUpdate) (*domain.Milestone, error) {
	setClauses := []string{}
	args := []interface{}{}
	n := 1
	if upd.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", n))
		args = append(args, *upd.Title)
		n++
	}
	if upd.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *upd.Description)
		n++
	}
	if upd.EventDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("event_date = $%d", n))
		args = append(args, *upd.EventDate)
		n++
	}
	if upd.Location != nil {
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", n))
		args = append(args, *upd.Location)
		n++
	}
	if upd.ImageURLs != nil {
		setClauses = append(setClauses, fmt.Sprintf("image_urls = $%d", n))
		args = append(args, pq.Array(upd.ImageURLs))
		n++
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE milestones SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, milestoneColumns)
	m, err := scanMilestone(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *milestoneRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM milestones WHERE id = $1`
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
