package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapeol/memorial-app/internal/domain"
)

func newMemorialFixture(t *testing.T) (domain.MemorialService, *fakeMemorialRepo, *fakeParticipantRepo, *domain.Memorial) {
	t.Helper()
	participants := newFakeParticipantRepo()
	memorials := newFakeMemorialRepo(participants)
	svc := NewMemorialService(memorials, participants, 2*time.Second)

	m := &domain.Memorial{Name: "Grandma Rose", OwnerID: "owner-1"}
	require.NoError(t, svc.CreateMemorial(context.Background(), m))
	return svc, memorials, participants, m
}

func addAccepted(t *testing.T, participants *fakeParticipantRepo, memorialID, userID string, level domain.AccessLevel) *domain.Participant {
	t.Helper()
	now := time.Now()
	p := &domain.Participant{
		MemorialID: memorialID, UserID: userID, AccessLevel: level,
		InvitedBy: "owner-1", InvitedAt: now, AcceptedAt: &now,
	}
	_, err := participants.Upsert(context.Background(), p)
	require.NoError(t, err)
	return p
}

func TestMemorialService_CreateMemorial_validation(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newMemorialFixture(t)

	err := svc.CreateMemorial(ctx, &domain.Memorial{Name: "No owner"})
	assert.Error(t, err)

	err = svc.CreateMemorial(ctx, &domain.Memorial{OwnerID: "owner-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMemorialService_GetMemorial_access_levels(t *testing.T) {
	ctx := context.Background()
	svc, _, participants, m := newMemorialFixture(t)
	addAccepted(t, participants, m.ID, "contrib-1", domain.AccessContributor)

	got, err := svc.GetMemorial(ctx, m.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, domain.AccessOwner, got.AccessLevel)

	got, err = svc.GetMemorial(ctx, m.ID, "contrib-1")
	require.NoError(t, err)
	assert.Equal(t, domain.AccessContributor, got.AccessLevel)

	_, err = svc.GetMemorial(ctx, m.ID, "stranger")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemorialService_UpdateMemorial_owner_only(t *testing.T) {
	ctx := context.Background()
	svc, _, participants, m := newMemorialFixture(t)
	addAccepted(t, participants, m.ID, "contrib-1", domain.AccessContributor)

	bio := "A life well lived"
	updated, err := svc.UpdateMemorial(ctx, m.ID, "owner-1", domain.MemorialUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)

	_, err = svc.UpdateMemorial(ctx, m.ID, "contrib-1", domain.MemorialUpdate{Bio: &bio})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMemorialService_DeleteMemorial(t *testing.T) {
	ctx := context.Background()
	svc, memorials, participants, m := newMemorialFixture(t)
	addAccepted(t, participants, m.ID, "contrib-1", domain.AccessContributor)

	err := svc.DeleteMemorial(ctx, m.ID, "contrib-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, svc.DeleteMemorial(ctx, m.ID, "owner-1"))
	_, err = memorials.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	// Cascade removed the participant rows too.
	assert.Empty(t, participants.rows)
}

func TestMemorialService_ListParticipants_derived_owner(t *testing.T) {
	ctx := context.Background()
	svc, _, participants, m := newMemorialFixture(t)
	addAccepted(t, participants, m.ID, "contrib-1", domain.AccessContributor)

	got, err := svc.ListParticipants(ctx, m.ID, "contrib-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "owner-1", got[0].UserID)
	assert.Equal(t, domain.AccessOwner, got[0].AccessLevel)
	assert.Equal(t, "contrib-1", got[1].UserID)
}

func TestMemorialService_ChangeParticipantAccess(t *testing.T) {
	ctx := context.Background()
	svc, _, participants, m := newMemorialFixture(t)
	p := addAccepted(t, participants, m.ID, "visitor-1", domain.AccessVisitor)

	updated, err := svc.ChangeParticipantAccess(ctx, m.ID, p.ID, "owner-1", domain.AccessContributor)
	require.NoError(t, err)
	assert.Equal(t, domain.AccessContributor, updated.AccessLevel)

	// Owner is not a grantable level.
	_, err = svc.ChangeParticipantAccess(ctx, m.ID, p.ID, "owner-1", domain.AccessOwner)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Only the owner may change levels.
	_, err = svc.ChangeParticipantAccess(ctx, m.ID, p.ID, "visitor-1", domain.AccessVisitor)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMemorialService_RemoveParticipant(t *testing.T) {
	ctx := context.Background()
	svc, memorials, participants, m := newMemorialFixture(t)
	p := addAccepted(t, participants, m.ID, "visitor-1", domain.AccessVisitor)

	err := svc.RemoveParticipant(ctx, m.ID, p.ID, "visitor-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, svc.RemoveParticipant(ctx, m.ID, p.ID, "owner-1"))
	// Access is gone immediately.
	_, err = memorials.GetByIDForUser(ctx, m.ID, "visitor-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemorialService_RemoveParticipant_wrong_memorial(t *testing.T) {
	ctx := context.Background()
	svc, _, participants, m := newMemorialFixture(t)

	other := &domain.Memorial{Name: "Uncle Jim", OwnerID: "owner-1"}
	require.NoError(t, svc.CreateMemorial(ctx, other))
	p := addAccepted(t, participants, other.ID, "visitor-1", domain.AccessVisitor)

	err := svc.RemoveParticipant(ctx, m.ID, p.ID, "owner-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemorialService_ListMyMemorials(t *testing.T) {
	ctx := context.Background()
	svc, _, participants, m := newMemorialFixture(t)
	addAccepted(t, participants, m.ID, "friend-1", domain.AccessVisitor)

	got, err := svc.ListMyMemorials(ctx, "friend-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, m.ID, got[0].ID)

	got, err = svc.ListMyMemorials(ctx, "stranger")
	require.NoError(t, err)
	assert.Empty(t, got)
}
