package domain

import (
	"context"
	"time"
)

// GuestbookEntry is a message left in a memorial's guestbook. Any accepted
// participant, including visitors, may sign.
// swagger:model GuestbookEntry
type GuestbookEntry struct {
	ID           string    `json:"id"`
	MemorialID   string    `json:"memorial_id"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	Message      string    `json:"message"`
	Relationship *string   `json:"relationship"`
	CreatedAt    time.Time `json:"created_at"`
}

// GuestbookRepository defines storage operations for guestbook entries.
type GuestbookRepository interface {
	Create(ctx context.Context, e *GuestbookEntry) error
	GetByID(ctx context.Context, id string) (*GuestbookEntry, error)
	ListByMemorialID(ctx context.Context, memorialID string) ([]*GuestbookEntry, error)
	UpdateMessage(ctx context.Context, id, message string) (*GuestbookEntry, error)
	Delete(ctx context.Context, id string) error
}

// GuestbookService defines guestbook operations. Editing and deleting require
// being the author or the owner.
type GuestbookService interface {
	AddEntry(ctx context.Context, e *GuestbookEntry, userID string) error
	ListEntries(ctx context.Context, memorialID, userID string) ([]*GuestbookEntry, error)
	UpdateEntry(ctx context.Context, memorialID, entryID, userID, message string) (*GuestbookEntry, error)
	DeleteEntry(ctx context.Context, memorialID, entryID, userID string) error
}
