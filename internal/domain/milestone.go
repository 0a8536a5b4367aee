package domain

import (
	"context"
	"time"
)

// ApprovalStatus is the review state of a contributor-submitted milestone.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// Milestone is a life-story timeline entry. Owner submissions are approved at
// creation; contributor submissions start pending and require owner review.
// Approved and rejected are terminal states.
// swagger:model Milestone
type Milestone struct {
	ID          string         `json:"id"`
	MemorialID  string         `json:"memorial_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	EventDate   *time.Time     `json:"event_date"`
	Location    *string        `json:"location"`
	SubmittedBy string         `json:"submitted_by"`
	Status      ApprovalStatus `json:"status"`
	ImageURLs   []string       `json:"image_urls"`
	CreatedAt   time.Time      `json:"created_at"`
}

// MilestoneUpdate carries optional edits; nil fields are unchanged.
type MilestoneUpdate struct {
	Title       *string
	Description *string
	EventDate   *time.Time
	Location    *string
	ImageURLs   []string
}

// MilestoneRepository defines storage operations for milestones.
//
// ListVisibleToUser applies the visibility rule at retrieval time: rows where
// status is approved or submitted_by = userID. ListByMemorialID returns all
// rows and is reserved for the owner.
type MilestoneRepository interface {
	Create(ctx context.Context, m *Milestone) error
	GetByID(ctx context.Context, id string) (*Milestone, error)
	ListByMemorialID(ctx context.Context, memorialID string) ([]*Milestone, error)
	ListVisibleToUser(ctx context.Context, memorialID, userID string) ([]*Milestone, error)
	UpdateStatus(ctx context.Context, id string, status ApprovalStatus) (*Milestone, error)
	Update(ctx context.Context, id string, upd MilestoneUpdate) (*Milestone, error)
	Delete(ctx context.Context, id string) error
}

// MilestoneService defines the timeline and approval workflow.
type MilestoneService interface {
	// SubmitMilestone creates a milestone on behalf of userID. Owners get
	// status approved immediately; contributors get pending; visitors are
	// rejected with ErrForbidden.
	SubmitMilestone(ctx context.Context, m *Milestone, userID string) error
	// ListTimeline returns the milestones userID may see: everything for the
	// owner, approved plus own submissions for everyone else.
	ListTimeline(ctx context.Context, memorialID, userID string) ([]*Milestone, error)
	// ApproveMilestone and RejectMilestone transition a pending milestone.
	// Owner only; non-pending milestones return ErrInvalidInput.
	ApproveMilestone(ctx context.Context, memorialID, milestoneID, userID string) (*Milestone, error)
	RejectMilestone(ctx context.Context, memorialID, milestoneID, userID string) (*Milestone, error)
	// UpdateMilestone edits a milestone: the submitter may edit their own
	// pending submission, the owner may edit any.
	UpdateMilestone(ctx context.Context, memorialID, milestoneID, userID string, upd MilestoneUpdate) (*Milestone, error)
	// DeleteMilestone removes a milestone: submitter own, owner any.
	DeleteMilestone(ctx context.Context, memorialID, milestoneID, userID string) error
}
