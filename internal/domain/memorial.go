package domain

import (
	"context"
	"time"
)

// Memorial represents a private memorial page for a deceased person.
// OwnerID is the single source of truth for ownership; the owner never has a
// participant row and cannot be removed or demoted.
// swagger:model Memorial
type Memorial struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	BirthDate   *time.Time `json:"birth_date"`
	PassingDate *time.Time `json:"passing_date"`
	Bio         string     `json:"bio"`
	OwnerID     string     `json:"owner_id"`
	CoverImage  *string    `json:"cover_image"`
	ThemeColor  string     `json:"theme_color"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewMemorial returns a new Memorial. ID is set by the repository on create.
func NewMemorial(name, bio, ownerID, themeColor string, birthDate, passingDate *time.Time, coverImage *string, createdAt, updatedAt time.Time) *Memorial {
	return &Memorial{
		Name:        name,
		Bio:         bio,
		OwnerID:     ownerID,
		ThemeColor:  themeColor,
		BirthDate:   birthDate,
		PassingDate: passingDate,
		CoverImage:  coverImage,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// MemorialUpdate carries optional settings changes; nil fields are unchanged.
type MemorialUpdate struct {
	Name        *string
	Bio         *string
	BirthDate   *time.Time
	PassingDate *time.Time
	CoverImage  *string
	ThemeColor  *string
}

// MemorialRepository defines the interface for memorial storage.
//
// GetByIDForUser and ListForUser apply the retrieval gate: a memorial row is
// only returned when userID is the owner or an accepted participant. Both
// return ErrNotFound uniformly for "does not exist" and "exists but no
// access" so existence never leaks.
type MemorialRepository interface {
	Create(ctx context.Context, m *Memorial) error
	// GetByID loads a memorial without the gate. Reserved for internal
	// lookups (invitation previews); handlers go through GetByIDForUser.
	GetByID(ctx context.Context, id string) (*Memorial, error)
	GetByIDForUser(ctx context.Context, id, userID string) (*Memorial, error)
	ListForUser(ctx context.Context, userID string) ([]*Memorial, error)
	Update(ctx context.Context, id string, upd MemorialUpdate) (*Memorial, error)
	// DeleteCascade removes the memorial and all of its child rows (rituals,
	// guestbook entries, media items, milestones, participants, invitations)
	// in a single transaction.
	DeleteCascade(ctx context.Context, id string) error
}

// MemorialWithAccess bundles a memorial with the caller's resolved access level.
type MemorialWithAccess struct {
	Memorial    *Memorial   `json:"memorial"`
	AccessLevel AccessLevel `json:"access_level"`
}

// MemorialService defines memorial lifecycle and participant management.
type MemorialService interface {
	CreateMemorial(ctx context.Context, m *Memorial) error
	// GetMemorial returns the memorial and the caller's access level, or
	// ErrNotFound when the caller may not see it.
	GetMemorial(ctx context.Context, memorialID, userID string) (*MemorialWithAccess, error)
	ListMyMemorials(ctx context.Context, userID string) ([]*Memorial, error)
	UpdateMemorial(ctx context.Context, memorialID, userID string, upd MemorialUpdate) (*Memorial, error)
	DeleteMemorial(ctx context.Context, memorialID, userID string) error

	ListParticipants(ctx context.Context, memorialID, userID string) ([]*Participant, error)
	ChangeParticipantAccess(ctx context.Context, memorialID, participantID, userID string, level AccessLevel) (*Participant, error)
	RemoveParticipant(ctx context.Context, memorialID, participantID, userID string) error
}
