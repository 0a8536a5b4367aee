package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sapeol/memorial-app/internal/domain"
)

type memorialService struct {
	memorialRepo    domain.MemorialRepository
	participantRepo domain.ParticipantRepository
	contextTimeout  time.Duration
}

func NewMemorialService(memorialRepo domain.MemorialRepository, participantRepo domain.ParticipantRepository, timeout time.Duration) domain.MemorialService {
	return &memorialService{
		memorialRepo:    memorialRepo,
		participantRepo: participantRepo,
		contextTimeout:  timeout,
	}
}

func (s *memorialService) CreateMemorial(ctx context.Context, m *domain.Memorial) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if m.OwnerID == "" {
		return fmt.Errorf("memorial owner is required")
	}
	if m.Name == "" {
		return domain.ErrInvalidInput
	}

	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()

	return s.memorialRepo.Create(ctx, m)
}

func (s *memorialService) GetMemorial(ctx context.Context, memorialID, userID string) (*domain.MemorialWithAccess, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, level, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return nil, err
	}
	return &domain.MemorialWithAccess{Memorial: m, AccessLevel: level}, nil
}

func (s *memorialService) ListMyMemorials(ctx context.Context, userID string) ([]*domain.Memorial, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	memorials, err := s.memorialRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list memorials: %w", err)
	}
	if memorials == nil {
		memorials = []*domain.Memorial{}
	}
	return memorials, nil
}

func (s *memorialService) UpdateMemorial(ctx context.Context, memorialID, userID string, upd domain.MemorialUpdate) (*domain.Memorial, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return nil, err
	}
	if m.OwnerID != userID {
		return nil, domain.ErrForbidden
	}
	updated, err := s.memorialRepo.Update(ctx, memorialID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update memorial: %w", err)
	}
	return updated, nil
}

func (s *memorialService) DeleteMemorial(ctx context.Context, memorialID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return err
	}
	if m.OwnerID != userID {
		return domain.ErrForbidden
	}
	if err := s.memorialRepo.DeleteCascade(ctx, memorialID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete memorial: %w", err)
	}
	return nil
}

// ListParticipants returns the stored participant rows with a derived owner
// entry prepended. The owner never has a stored row.
func (s *memorialService) ListParticipants(ctx context.Context, memorialID, userID string) ([]*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return nil, err
	}
	stored, err := s.participantRepo.ListByMemorialID(ctx, memorialID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	createdAt := m.CreatedAt
	owner := &domain.Participant{
		MemorialID:  m.ID,
		UserID:      m.OwnerID,
		AccessLevel: domain.AccessOwner,
		InvitedBy:   m.OwnerID,
		InvitedAt:   createdAt,
		AcceptedAt:  &createdAt,
	}
	return append([]*domain.Participant{owner}, stored...), nil
}

func (s *memorialService) ChangeParticipantAccess(ctx context.Context, memorialID, participantID, userID string, level domain.AccessLevel) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return nil, err
	}
	if m.OwnerID != userID {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidParticipantLevel(level) {
		return nil, domain.ErrInvalidInput
	}
	p, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}
	if p.MemorialID != memorialID {
		return nil, domain.ErrNotFound
	}
	updated, err := s.participantRepo.UpdateAccessLevel(ctx, participantID, level)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update access level: %w", err)
	}
	return updated, nil
}

func (s *memorialService) RemoveParticipant(ctx context.Context, memorialID, participantID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return err
	}
	if m.OwnerID != userID {
		return domain.ErrForbidden
	}
	p, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get participant: %w", err)
	}
	if p.MemorialID != memorialID {
		return domain.ErrNotFound
	}
	if err := s.participantRepo.Remove(ctx, participantID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("remove participant: %w", err)
	}
	return nil
}
