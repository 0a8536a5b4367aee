package domain

import (
	"context"
	"time"
)

// Participant is a user's access grant for a specific memorial. The stored
// access_level is always contributor or visitor; owner entries returned by
// listings are derived from Memorial.OwnerID, never stored.
// swagger:model Participant
type Participant struct {
	ID          string      `json:"id"`
	MemorialID  string      `json:"memorial_id"`
	UserID      string      `json:"user_id"`
	GuestName   *string     `json:"guest_name"`
	GuestEmail  *string     `json:"guest_email"`
	AccessLevel AccessLevel `json:"access_level"`
	InvitedBy   string      `json:"invited_by"`
	InvitedAt   time.Time   `json:"invited_at"`
	AcceptedAt  *time.Time  `json:"accepted_at"`
}

// ParticipantRepository defines storage operations for memorial participants.
type ParticipantRepository interface {
	// Upsert inserts the participant keyed on (memorial_id, user_id). When a
	// row already exists it is left untouched and the existing row is
	// returned with created=false. Idempotency is enforced by the store's
	// uniqueness constraint, not by a read-check-then-insert.
	Upsert(ctx context.Context, p *Participant) (created bool, err error)
	GetByMemorialAndUser(ctx context.Context, memorialID, userID string) (*Participant, error)
	GetByID(ctx context.Context, id string) (*Participant, error)
	ListByMemorialID(ctx context.Context, memorialID string) ([]*Participant, error)
	UpdateAccessLevel(ctx context.Context, id string, level AccessLevel) (*Participant, error)
	Remove(ctx context.Context, id string) error
}
