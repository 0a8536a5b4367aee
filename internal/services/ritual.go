package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sapeol/memorial-app/internal/domain"
)

type ritualService struct {
	ritualRepo      domain.RitualRepository
	memorialRepo    domain.MemorialRepository
	participantRepo domain.ParticipantRepository
	contextTimeout  time.Duration
}

func NewRitualService(ritualRepo domain.RitualRepository, memorialRepo domain.MemorialRepository, participantRepo domain.ParticipantRepository, timeout time.Duration) domain.RitualService {
	return &ritualService{
		ritualRepo:      ritualRepo,
		memorialRepo:    memorialRepo,
		participantRepo: participantRepo,
		contextTimeout:  timeout,
	}
}

func (s *ritualService) AddRitual(ctx context.Context, rt *domain.Ritual, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !domain.ValidRitualType(rt.RitualType) {
		return domain.ErrInvalidInput
	}
	if _, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, rt.MemorialID, userID); err != nil {
		return err
	}

	rt.UserID = userID
	rt.CreatedAt = time.Now()
	return s.ritualRepo.Create(ctx, rt)
}

func (s *ritualService) ListRituals(ctx context.Context, memorialID, userID string) ([]*domain.Ritual, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID); err != nil {
		return nil, err
	}
	rituals, err := s.ritualRepo.ListActiveByMemorialID(ctx, memorialID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("list rituals: %w", err)
	}
	if rituals == nil {
		rituals = []*domain.Ritual{}
	}
	return rituals, nil
}

func (s *ritualService) DeleteRitual(ctx context.Context, memorialID, ritualID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return err
	}
	rt, err := s.ritualRepo.GetByID(ctx, ritualID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get ritual: %w", err)
	}
	if rt.MemorialID != memorialID {
		return domain.ErrNotFound
	}
	if m.OwnerID != userID && rt.UserID != userID {
		return domain.ErrForbidden
	}
	if err := s.ritualRepo.Delete(ctx, ritualID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete ritual: %w", err)
	}
	return nil
}
