package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sapeol/memorial-app/internal/domain"
)

type mediaService struct {
	mediaRepo       domain.MediaRepository
	memorialRepo    domain.MemorialRepository
	participantRepo domain.ParticipantRepository
	contextTimeout  time.Duration
}

func NewMediaService(mediaRepo domain.MediaRepository, memorialRepo domain.MemorialRepository, participantRepo domain.ParticipantRepository, timeout time.Duration) domain.MediaService {
	return &mediaService{
		mediaRepo:       mediaRepo,
		memorialRepo:    memorialRepo,
		participantRepo: participantRepo,
		contextTimeout:  timeout,
	}
}

func (s *mediaService) AddMedia(ctx context.Context, item *domain.MediaItem, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !domain.ValidMediaType(item.MediaType) || item.URL == "" {
		return domain.ErrInvalidInput
	}

	_, level, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, item.MemorialID, userID)
	if err != nil {
		return err
	}
	if !level.CanContribute() {
		return domain.ErrForbidden
	}

	item.UploadedBy = userID
	item.CreatedAt = time.Now()
	if item.Tags == nil {
		item.Tags = []string{}
	}
	return s.mediaRepo.Create(ctx, item)
}

func (s *mediaService) ListMedia(ctx context.Context, memorialID, userID string) ([]*domain.MediaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID); err != nil {
		return nil, err
	}
	items, err := s.mediaRepo.ListByMemorialID(ctx, memorialID)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	if items == nil {
		items = []*domain.MediaItem{}
	}
	return items, nil
}

func (s *mediaService) UpdateMedia(ctx context.Context, memorialID, mediaID, userID string, upd domain.MediaUpdate) (*domain.MediaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get media: %w", err)
	}
	if item.MemorialID != memorialID {
		return nil, domain.ErrNotFound
	}
	if m.OwnerID != userID && item.UploadedBy != userID {
		return nil, domain.ErrForbidden
	}
	updated, err := s.mediaRepo.Update(ctx, mediaID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update media: %w", err)
	}
	return updated, nil
}

func (s *mediaService) DeleteMedia(ctx context.Context, memorialID, mediaID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, userID)
	if err != nil {
		return err
	}
	item, err := s.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get media: %w", err)
	}
	if item.MemorialID != memorialID {
		return domain.ErrNotFound
	}
	if m.OwnerID != userID && item.UploadedBy != userID {
		return domain.ErrForbidden
	}
	if err := s.mediaRepo.Delete(ctx, mediaID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}
