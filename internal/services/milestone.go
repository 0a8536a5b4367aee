package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sapeol/memorial-app/internal/domain"
)

type milestoneService struct {
	milestoneRepo   domain.MilestoneRepository
	memorialRepo    domain.MemorialRepository
	participantRepo domain.ParticipantRepository
	contextTimeout  time.Duration
}

func NewMilestoneService(milestoneRepo domain.MilestoneRepository, memorialRepo domain.MemorialRepository, participantRepo domain.ParticipantRepository, timeout time.Duration) domain.MilestoneService {
	return &milestoneService{
		milestoneRepo:   milestoneRepo,
		memorialRepo:    memorialRepo,
		participantRepo: participantRepo,
		contextTimeout:  timeout,
	}
}

// SubmitMilestone creates a timeline entry. Owner submissions are approved on
// the spot; contributor submissions start pending.
func (s *milestoneService) SubmitMilestone(ctx context.Context, m *domain.Milestone, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if m.Title == "" {
		return domain.ErrInvalidInput
	}

	_, level, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, m.MemorialID, userID)
	if err != nil {
		return err
	}
	switch level {
	case domain.AccessOwner:
		m.Status = domain.StatusApproved
	case domain.AccessContributor:
		m.Status = domain.StatusPending
	default:
		return domain.ErrForbidden
	}

	m.SubmittedBy = userID
	m.CreatedAt = time.Now()
	if m.ImageURLs == nil {
		m.ImageURLs = []string{}
	}
	return s.milestoneRepo.Create(ctx, m)
}

func (s *milestoneService) ListTimeline(ctx context.Context, memorialID, userID string) ([]*domain.Milestone, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	_, level, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return nil, err
	}
	var milestones []*domain.Milestone
	if level == domain.AccessOwner {
		milestones, err = s.milestoneRepo.ListByMemorialID(ctx, memorialID)
	} else {
		milestones, err = s.milestoneRepo.ListVisibleToUser(ctx, memorialID, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	if milestones == nil {
		milestones = []*domain.Milestone{}
	}
	return milestones, nil
}

func (s *milestoneService) ApproveMilestone(ctx context.Context, memorialID, milestoneID, userID string) (*domain.Milestone, error) {
	return s.review(ctx, memorialID, milestoneID, userID, domain.StatusApproved)
}

func (s *milestoneService) RejectMilestone(ctx context.Context, memorialID, milestoneID, userID string) (*domain.Milestone, error) {
	return s.review(ctx, memorialID, milestoneID, userID, domain.StatusRejected)
}

// review transitions a pending milestone to its terminal status. Owner only;
// non-pending milestones are rejected with ErrInvalidInput.
func (s *milestoneService) review(ctx context.Context, memorialID, milestoneID, userID string, status domain.ApprovalStatus) (*domain.Milestone, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return nil, err
	}
	if m.OwnerID != userID {
		return nil, domain.ErrForbidden
	}
	ms, err := s.milestoneRepo.GetByID(ctx, milestoneID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get milestone: %w", err)
	}
	if ms.MemorialID != memorialID {
		return nil, domain.ErrNotFound
	}
	if ms.Status != domain.StatusPending {
		return nil, domain.ErrInvalidInput
	}
	updated, err := s.milestoneRepo.UpdateStatus(ctx, milestoneID, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update milestone status: %w", err)
	}
	return updated, nil
}

func (s *milestoneService) UpdateMilestone(ctx context.Context, memorialID, milestoneID, userID string, upd domain.MilestoneUpdate) (*domain.Milestone, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return nil, err
	}
	ms, err := s.milestoneRepo.GetByID(ctx, milestoneID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get milestone: %w", err)
	}
	if ms.MemorialID != memorialID {
		return nil, domain.ErrNotFound
	}
	isOwner := m.OwnerID == userID
	isOwnPending := ms.SubmittedBy == userID && ms.Status == domain.StatusPending
	if !isOwner && !isOwnPending {
		return nil, domain.ErrForbidden
	}
	updated, err := s.milestoneRepo.Update(ctx, milestoneID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update milestone: %w", err)
	}
	return updated, nil
}

func (s *milestoneService) DeleteMilestone(ctx context.Context, memorialID, milestoneID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return err
	}
	ms, err := s.milestoneRepo.GetByID(ctx, milestoneID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get milestone: %w", err)
	}
	if ms.MemorialID != memorialID {
		return domain.ErrNotFound
	}
	if m.OwnerID != userID && ms.SubmittedBy != userID {
		return domain.ErrForbidden
	}
	if err := s.milestoneRepo.Delete(ctx, milestoneID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete milestone: %w", err)
	}
	return nil
}
