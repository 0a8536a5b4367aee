package domain

import (
	"context"
	"time"
)

// MediaType is the kind of media item in the gallery.
type MediaType string

const (
	MediaPhoto MediaType = "photo"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
)

// ValidMediaType reports whether t is a known media type.
func ValidMediaType(t MediaType) bool {
	return t == MediaPhoto || t == MediaVideo || t == MediaAudio
}

// MediaItem is a gallery entry. UploadedBy tracks per-item ownership so
// contributors can edit and delete their own uploads regardless of
// memorial-level role.
// swagger:model MediaItem
type MediaItem struct {
	ID           string     `json:"id"`
	MemorialID   string     `json:"memorial_id"`
	MediaType    MediaType  `json:"media_type"`
	URL          string     `json:"url"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	Caption      string     `json:"caption"`
	CapturedAt   *time.Time `json:"captured_at"`
	UploadedBy   string     `json:"uploaded_by"`
	Tags         []string   `json:"tags"`
	CreatedAt    time.Time  `json:"created_at"`
}

// MediaUpdate carries optional edits; nil fields are unchanged.
type MediaUpdate struct {
	Caption    *string
	CapturedAt *time.Time
	Tags       []string
}

// MediaRepository defines storage operations for media items.
type MediaRepository interface {
	Create(ctx context.Context, item *MediaItem) error
	GetByID(ctx context.Context, id string) (*MediaItem, error)
	ListByMemorialID(ctx context.Context, memorialID string) ([]*MediaItem, error)
	Update(ctx context.Context, id string, upd MediaUpdate) (*MediaItem, error)
	Delete(ctx context.Context, id string) error
}

// MediaService defines gallery operations. Adding requires contributor or
// owner; editing and deleting require being the uploader or the owner.
type MediaService interface {
	AddMedia(ctx context.Context, item *MediaItem, userID string) error
	ListMedia(ctx context.Context, memorialID, userID string) ([]*MediaItem, error)
	UpdateMedia(ctx context.Context, memorialID, mediaID, userID string, upd MediaUpdate) (*MediaItem, error)
	DeleteMedia(ctx context.Context, memorialID, mediaID, userID string) error
}
