package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sapeol/memorial-app/internal/domain"
)

// resolveMemorialAccess loads the memorial through the retrieval gate and
// resolves the caller's access level. Callers that fail the gate get
// ErrNotFound, never ErrForbidden, so existence does not leak.
func resolveMemorialAccess(ctx context.Context, memorials domain.MemorialRepository, participants domain.ParticipantRepository, memorialID, userID string) (*domain.Memorial, domain.AccessLevel, error) {
	m, err := memorials.GetByIDForUser(ctx, memorialID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.AccessNone, domain.ErrNotFound
		}
		return nil, domain.AccessNone, fmt.Errorf("get memorial: %w", err)
	}
	if m.OwnerID == userID {
		return m, domain.AccessOwner, nil
	}
	p, err := participants.GetByMemorialAndUser(ctx, memorialID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return m, domain.AccessNone, nil
		}
		return nil, domain.AccessNone, fmt.Errorf("get participant: %w", err)
	}
	return m, domain.ResolveAccess(m, userID, p), nil
}
