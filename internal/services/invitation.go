package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/sapeol/memorial-app/internal/domain"
)

type invitationService struct {
	invitationRepo  domain.InvitationRepository
	memorialRepo    domain.MemorialRepository
	participantRepo domain.ParticipantRepository
	userRepo        domain.UserRepository
	emailService    domain.EmailService
	baseURL         string
	contextTimeout  time.Duration
}

func NewInvitationService(
	invitationRepo domain.InvitationRepository,
	memorialRepo domain.MemorialRepository,
	participantRepo domain.ParticipantRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	baseURL string,
	timeout time.Duration,
) domain.InvitationService {
	return &invitationService{
		invitationRepo:  invitationRepo,
		memorialRepo:    memorialRepo,
		participantRepo: participantRepo,
		userRepo:        userRepo,
		emailService:    emailService,
		baseURL:         baseURL,
		contextTimeout:  timeout,
	}
}

const accessCodeLength = 8

var accessCodeAlphabet = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

func generateAccessCode() (string, error) {
	b := make([]rune, accessCodeLength)
	max := big.NewInt(int64(len(accessCodeAlphabet)))
	for i := 0; i < accessCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = accessCodeAlphabet[n.Int64()]
	}
	return string(b), nil
}

func (s *invitationService) CreateInvitation(ctx context.Context, memorialID, ownerID string, level domain.AccessLevel, email, phone string) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, ownerID)
	if err != nil {
		return nil, err
	}
	if m.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidParticipantLevel(level) {
		return nil, domain.ErrInvalidInput
	}

	code, err := generateAccessCode()
	if err != nil {
		return nil, fmt.Errorf("generate access code: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(domain.InvitationTTL)
	inv := &domain.Invitation{
		MemorialID:  memorialID,
		AccessCode:  code,
		AccessLevel: level,
		InvitedBy:   ownerID,
		ExpiresAt:   &expiresAt,
		CreatedAt:   now,
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email != "" {
		inv.Email = &email
	}
	phone = strings.TrimSpace(phone)
	if phone != "" {
		inv.Phone = &phone
	}
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}

	if email != "" {
		inviterName := "The memorial owner"
		if owner, err := s.userRepo.GetByID(ctx, ownerID); err == nil && owner.Name != "" {
			inviterName = owner.Name
		}
		data := &domain.InvitationEmailData{
			Email:        email,
			InviterName:  inviterName,
			MemorialName: m.Name,
			AccessLevel:  string(level),
			InviteLink:   fmt.Sprintf("%s/invite/%s", s.baseURL, inv.ID),
			AccessCode:   inv.AccessCode,
			ExpiresIn:    "30 days",
		}
		// An email failure does not invalidate the invitation; the link can
		// still be shared directly.
		_ = s.emailService.SendInvitation(ctx, data)
	}
	return inv, nil
}

func (s *invitationService) GetInvitationPreview(ctx context.Context, invitationID string) (*domain.InvitationPreview, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	inv, err := s.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	if inv.Expired(time.Now()) {
		return nil, domain.ErrExpired
	}
	m, err := s.memorialRepo.GetByID(ctx, inv.MemorialID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get memorial: %w", err)
	}
	return &domain.InvitationPreview{
		ID:           inv.ID,
		MemorialName: m.Name,
		AccessLevel:  inv.AccessLevel,
		ExpiresAt:    inv.ExpiresAt,
		Accepted:     inv.AcceptedAt != nil,
	}, nil
}

// AcceptInvitation redeems the invitation for userID. Accepting an invitation
// twice, or accepting when already a participant, leaves the existing grant
// untouched and still returns the memorial id.
func (s *invitationService) AcceptInvitation(ctx context.Context, invitationID, userID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	inv, err := s.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get invitation: %w", err)
	}
	if inv.Expired(time.Now()) {
		return "", domain.ErrExpired
	}
	m, err := s.memorialRepo.GetByID(ctx, inv.MemorialID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get memorial: %w", err)
	}
	// The owner already has full access; no participant row is written.
	if m.OwnerID == userID {
		return m.ID, nil
	}

	now := time.Now()
	p := &domain.Participant{
		MemorialID:  inv.MemorialID,
		UserID:      userID,
		GuestEmail:  inv.Email,
		AccessLevel: inv.AccessLevel,
		InvitedBy:   inv.InvitedBy,
		InvitedAt:   inv.CreatedAt,
		AcceptedAt:  &now,
	}
	if _, err := s.participantRepo.Upsert(ctx, p); err != nil {
		return "", fmt.Errorf("upsert participant: %w", err)
	}
	if err := s.invitationRepo.MarkAccepted(ctx, invitationID, now); err != nil {
		return "", fmt.Errorf("mark invitation accepted: %w", err)
	}
	return inv.MemorialID, nil
}

func (s *invitationService) RevokeInvitation(ctx context.Context, memorialID, invitationID, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, ownerID)
	if err != nil {
		return err
	}
	if m.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	inv, err := s.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get invitation: %w", err)
	}
	if inv.MemorialID != memorialID {
		return domain.ErrNotFound
	}
	// Revoking an accepted invitation does not remove the granted access;
	// participants are removed through participant management.
	if inv.AcceptedAt != nil {
		return domain.ErrInvalidInput
	}
	if err := s.invitationRepo.Delete(ctx, invitationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete invitation: %w", err)
	}
	return nil
}

func (s *invitationService) ListInvitations(ctx context.Context, memorialID, ownerID, search string, params domain.PaginationParams) ([]*domain.Invitation, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, _, err := resolveMemorialAccess(ctx, s.memorialRepo, s.participantRepo, memorialID, ownerID)
	if err != nil {
		return nil, 0, err
	}
	if m.OwnerID != ownerID {
		return nil, 0, domain.ErrForbidden
	}
	invs, total, err := s.invitationRepo.ListByMemorialID(ctx, memorialID, search, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list invitations: %w", err)
	}
	if invs == nil {
		invs = []*domain.Invitation{}
	}
	return invs, total, nil
}
