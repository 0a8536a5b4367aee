package domain

import (
	"context"
	"time"
)

// RitualType is the kind of symbolic ritual left on a memorial.
type RitualType string

const (
	RitualCandle RitualType = "candle"
	RitualFlower RitualType = "flower"
	RitualHeart  RitualType = "heart"
	RitualCustom RitualType = "custom"
)

// ValidRitualType reports whether t is a known ritual type.
func ValidRitualType(t RitualType) bool {
	switch t {
	case RitualCandle, RitualFlower, RitualHeart, RitualCustom:
		return true
	}
	return false
}

// Ritual is a symbolic gesture (candle, flower, ...) left on a memorial.
// Rituals may be temporary; expired rituals are filtered from listings.
// swagger:model Ritual
type Ritual struct {
	ID         string     `json:"id"`
	MemorialID string     `json:"memorial_id"`
	RitualType RitualType `json:"ritual_type"`
	UserID     string     `json:"user_id"`
	Message    *string    `json:"message"`
	ExpiresAt  *time.Time `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// RitualRepository defines storage operations for rituals. ListActive skips
// rows whose expires_at has passed.
type RitualRepository interface {
	Create(ctx context.Context, rt *Ritual) error
	GetByID(ctx context.Context, id string) (*Ritual, error)
	ListActiveByMemorialID(ctx context.Context, memorialID string, now time.Time) ([]*Ritual, error)
	Delete(ctx context.Context, id string) error
}

// RitualService defines ritual operations. Deleting requires being the user
// who left the ritual or the owner.
type RitualService interface {
	AddRitual(ctx context.Context, rt *Ritual, userID string) error
	ListRituals(ctx context.Context, memorialID, userID string) ([]*Ritual, error)
	DeleteRitual(ctx context.Context, memorialID, ritualID, userID string) error
}
