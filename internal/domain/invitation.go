package domain

import (
	"context"
	"time"
)

// InvitationTTL is how long an invitation stays redeemable after creation.
const InvitationTTL = 30 * 24 * time.Hour

// Invitation is a pending, expiring offer of participant access, redeemable
// via a shareable link carrying the invitation id. The access code is a
// display/fallback identifier, not the access mechanism itself.
// swagger:model Invitation
type Invitation struct {
	ID          string      `json:"id"`
	MemorialID  string      `json:"memorial_id"`
	Email       *string     `json:"email"`
	Phone       *string     `json:"phone"`
	AccessCode  string      `json:"access_code"`
	AccessLevel AccessLevel `json:"access_level"`
	InvitedBy   string      `json:"invited_by"`
	ExpiresAt   *time.Time  `json:"expires_at"`
	AcceptedAt  *time.Time  `json:"accepted_at"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Expired reports whether the invitation's expiry has passed at now.
// Invitations without an expiry never expire.
func (i *Invitation) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && i.ExpiresAt.Before(now)
}

// InvitationRepository defines storage operations for invitations.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	GetByID(ctx context.Context, id string) (*Invitation, error)
	ListByMemorialID(ctx context.Context, memorialID, search string, params PaginationParams) ([]*Invitation, int, error)
	// MarkAccepted sets accepted_at if it is still null. Already-accepted
	// invitations are left untouched (no error).
	MarkAccepted(ctx context.Context, id string, acceptedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// InvitationPreview is the public metadata shown on the invite landing page
// before the visitor authenticates.
type InvitationPreview struct {
	ID           string      `json:"id"`
	MemorialName string      `json:"memorial_name"`
	AccessLevel  AccessLevel `json:"access_level"`
	ExpiresAt    *time.Time  `json:"expires_at"`
	Accepted     bool        `json:"accepted"`
}

// InvitationService defines the invitation lifecycle.
type InvitationService interface {
	// CreateInvitation creates an invitation for the memorial. Only the owner
	// may invite; level must be contributor or visitor. When email is
	// non-empty an invitation email with the shareable link is sent.
	CreateInvitation(ctx context.Context, memorialID, ownerID string, level AccessLevel, email, phone string) (*Invitation, error)
	// GetInvitationPreview returns landing-page metadata. ErrNotFound when
	// the id does not resolve, ErrExpired when past expiry.
	GetInvitationPreview(ctx context.Context, invitationID string) (*InvitationPreview, error)
	// AcceptInvitation redeems the invitation for userID and returns the
	// memorial id to redirect to. Accepting twice is a no-op for the second
	// call; expiry is checked before any write.
	AcceptInvitation(ctx context.Context, invitationID, userID string) (memorialID string, err error)
	RevokeInvitation(ctx context.Context, memorialID, invitationID, ownerID string) error
	ListInvitations(ctx context.Context, memorialID, ownerID, search string, params PaginationParams) ([]*Invitation, int, error)
}
