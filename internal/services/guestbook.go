package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sapeol/memorial-app/internal/domain"
)

type guestbookService struct {
	guestbookRepo   domain.GuestbookRepository
	memorialRepo    domain.MemorialRepository
	participantRepo domain.ParticipantRepository
	userRepo        domain.UserRepository
	contextTimeout  time.Duration
}

func NewGuestbookService(guestbookRepo domain.GuestbookRepository, memorialRepo domain.MemorialRepository, participantRepo domain.ParticipantRepository, userRepo domain.UserRepository, timeout time.Duration) domain.GuestbookService {
	return &guestbookService{
		guestbookRepo:   guestbookRepo,
		memorialRepo:    memorialRepo,
		participantRepo: participantRepo,
		userRepo:        userRepo,
		contextTimeout:  timeout,
	}
}

// AddEntry signs the guestbook. Every accepted participant may sign,
// visitors included.
func (s *guestbookService) AddEntry(ctx context.Context, e *domain.GuestbookEntry, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if e.Message == "" {
		return domain.ErrInvalidInput
	}
	if _, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, e.MemorialID, userID); err != nil {
		return err
	}

	e.AuthorID = userID
	if e.AuthorName == "" {
		if author, err := s.userRepo.GetByID(ctx, userID); err == nil {
			e.AuthorName = author.Name
		}
	}
	e.CreatedAt = time.Now()
	return s.guestbookRepo.Create(ctx, e)
}

func (s *guestbookService) ListEntries(ctx context.Context, memorialID, userID string) ([]*domain.GuestbookEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID); err != nil {
		return nil, err
	}
	entries, err := s.guestbookRepo.ListByMemorialID(ctx, memorialID)
	if err != nil {
		return nil, fmt.Errorf("list guestbook entries: %w", err)
	}
	if entries == nil {
		entries = []*domain.GuestbookEntry{}
	}
	return entries, nil
}

func (s *guestbookService) UpdateEntry(ctx context.Context, memorialID, entryID, userID, message string) (*domain.GuestbookEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if message == "" {
		return nil, domain.ErrInvalidInput
	}
	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return nil, err
	}
	e, err := s.guestbookRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get guestbook entry: %w", err)
	}
	if e.MemorialID != memorialID {
		return nil, domain.ErrNotFound
	}
	if m.OwnerID != userID && e.AuthorID != userID {
		return nil, domain.ErrForbidden
	}
	updated, err := s.guestbookRepo.UpdateMessage(ctx, entryID, message)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update guestbook entry: %w", err)
	}
	return updated, nil
}

func (s *guestbookService) DeleteEntry(ctx context.Context, memorialID, entryID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return err
	}
	e, err := s.guestbookRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get guestbook entry: %w", err)
	}
	if e.MemorialID != memorialID {
		return domain.ErrNotFound
	}
	if m.OwnerID != userID && e.AuthorID != userID {
		return domain.ErrForbidden
	}
	if err := s.guestbookRepo.Delete(ctx, entryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete guestbook entry: %w", err)
	}
	return nil
}
