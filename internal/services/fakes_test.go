package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sapeol/memorial-app/internal/domain"
)

// fakeParticipantRepo is an in-memory ParticipantRepository for tests.
type fakeParticipantRepo struct {
	rows   []*domain.Participant
	nextID int
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{nextID: 1}
}

func (f *fakeParticipantRepo) Upsert(ctx context.Context, p *domain.Participant) (bool, error) {
	for _, existing := range f.rows {
		if existing.MemorialID == p.MemorialID && existing.UserID == p.UserID {
			*p = *existing
			return false, nil
		}
	}
	p.ID = fmt.Sprintf("part-%d", f.nextID)
	f.nextID++
	clone := *p
	f.rows = append(f.rows, &clone)
	return true, nil
}

func (f *fakeParticipantRepo) GetByMemorialAndUser(ctx context.Context, memorialID, userID string) (*domain.Participant, error) {
	for _, p := range f.rows {
		if p.MemorialID == memorialID && p.UserID == userID {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipantRepo) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	for _, p := range f.rows {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipantRepo) ListByMemorialID(ctx context.Context, memorialID string) ([]*domain.Participant, error) {
	out := []*domain.Participant{}
	for _, p := range f.rows {
		if p.MemorialID == memorialID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) UpdateAccessLevel(ctx context.Context, id string, level domain.AccessLevel) (*domain.Participant, error) {
	for _, p := range f.rows {
		if p.ID == id {
			p.AccessLevel = level
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipantRepo) Remove(ctx context.Context, id string) error {
	for i, p := range f.rows {
		if p.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeMemorialRepo is an in-memory MemorialRepository. It shares the
// participant fake so the retrieval gate behaves like the real query.
type fakeMemorialRepo struct {
	byID         map[string]*domain.Memorial
	participants *fakeParticipantRepo
	nextID       int
}

func newFakeMemorialRepo(participants *fakeParticipantRepo) *fakeMemorialRepo {
	return &fakeMemorialRepo{
		byID:         make(map[string]*domain.Memorial),
		participants: participants,
		nextID:       1,
	}
}

func (f *fakeMemorialRepo) Create(ctx context.Context, m *domain.Memorial) error {
	m.ID = fmt.Sprintf("mem-%d", f.nextID)
	f.nextID++
	f.byID[m.ID] = m
	return nil
}

func (f *fakeMemorialRepo) GetByID(ctx context.Context, id string) (*domain.Memorial, error) {
	if m, ok := f.byID[id]; ok {
		return m, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMemorialRepo) GetByIDForUser(ctx context.Context, id, userID string) (*domain.Memorial, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if m.OwnerID == userID {
		return m, nil
	}
	for _, p := range f.participants.rows {
		if p.MemorialID == id && p.UserID == userID && p.AcceptedAt != nil {
			return m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMemorialRepo) ListForUser(ctx context.Context, userID string) ([]*domain.Memorial, error) {
	out := []*domain.Memorial{}
	for _, m := range f.byID {
		if _, err := f.GetByIDForUser(ctx, m.ID, userID); err == nil {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMemorialRepo) Update(ctx context.Context, id string, upd domain.MemorialUpdate) (*domain.Memorial, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		m.Name = *upd.Name
	}
	if upd.Bio != nil {
		m.Bio = *upd.Bio
	}
	if upd.BirthDate != nil {
		m.BirthDate = upd.BirthDate
	}
	if upd.PassingDate != nil {
		m.PassingDate = upd.PassingDate
	}
	if upd.CoverImage != nil {
		m.CoverImage = upd.CoverImage
	}
	if upd.ThemeColor != nil {
		m.ThemeColor = *upd.ThemeColor
	}
	m.UpdatedAt = time.Now()
	return m, nil
}

func (f *fakeMemorialRepo) DeleteCascade(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	var kept []*domain.Participant
	for _, p := range f.participants.rows {
		if p.MemorialID != id {
			kept = append(kept, p)
		}
	}
	f.participants.rows = kept
	return nil
}

// fakeInvitationRepo is an in-memory InvitationRepository for tests.
type fakeInvitationRepo struct {
	byID   map[string]*domain.Invitation
	nextID int
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{byID: make(map[string]*domain.Invitation), nextID: 1}
}

func (f *fakeInvitationRepo) Create(ctx context.Context, inv *domain.Invitation) error {
	inv.ID = fmt.Sprintf("inv-%d", f.nextID)
	f.nextID++
	f.byID[inv.ID] = inv
	return nil
}

func (f *fakeInvitationRepo) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	if inv, ok := f.byID[id]; ok {
		return inv, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeInvitationRepo) ListByMemorialID(ctx context.Context, memorialID, search string, params domain.PaginationParams) ([]*domain.Invitation, int, error) {
	out := []*domain.Invitation{}
	for _, inv := range f.byID {
		if inv.MemorialID == memorialID {
			out = append(out, inv)
		}
	}
	return out, len(out), nil
}

func (f *fakeInvitationRepo) MarkAccepted(ctx context.Context, id string, acceptedAt time.Time) error {
	inv, ok := f.byID[id]
	if !ok {
		return nil
	}
	if inv.AcceptedAt == nil {
		inv.AcceptedAt = &acceptedAt
	}
	return nil
}

func (f *fakeInvitationRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeMilestoneRepo is an in-memory MilestoneRepository for tests.
type fakeMilestoneRepo struct {
	byID   map[string]*domain.Milestone
	nextID int
}

func newFakeMilestoneRepo() *fakeMilestoneRepo {
	return &fakeMilestoneRepo{byID: make(map[string]*domain.Milestone), nextID: 1}
}

func (f *fakeMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	m.ID = fmt.Sprintf("ms-%d", f.nextID)
	f.nextID++
	f.byID[m.ID] = m
	return nil
}

func (f *fakeMilestoneRepo) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	if m, ok := f.byID[id]; ok {
		return m, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMilestoneRepo) ListByMemorialID(ctx context.Context, memorialID string) ([]*domain.Milestone, error) {
	out := []*domain.Milestone{}
	for _, m := range f.byID {
		if m.MemorialID == memorialID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMilestoneRepo) ListVisibleToUser(ctx context.Context, memorialID, userID string) ([]*domain.Milestone, error) {
	out := []*domain.Milestone{}
	for _, m := range f.byID {
		if m.MemorialID == memorialID && (m.Status == domain.StatusApproved || m.SubmittedBy == userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMilestoneRepo) UpdateStatus(ctx context.Context, id string, status domain.ApprovalStatus) (*domain.Milestone, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	m.Status = status
	return m, nil
}

func (f *fakeMilestoneRepo) Update(ctx context.Context, id string, upd domain.MilestoneUpdate) (*domain.Milestone, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		m.Title = *upd.Title
	}
	if upd.Description != nil {
		m.Description = *upd.Description
	}
	if upd.EventDate != nil {
		m.EventDate = upd.EventDate
	}
	if upd.Location != nil {
		m.Location = upd.Location
	}
	if upd.ImageURLs != nil {
		m.ImageURLs = upd.ImageURLs
	}
	return m, nil
}

func (f *fakeMilestoneRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	byID   map[string]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	for _, u := range f.byID {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	f.nextID++
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

// fakeEmailService records sent emails instead of sending them.
type fakeEmailService struct {
	invitations []*domain.InvitationEmailData
	welcomes    []*domain.WelcomeMessageEmailData
	err         error
}

func (f *fakeEmailService) SendInvitation(ctx context.Context, data *domain.InvitationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.invitations = append(f.invitations, data)
	return nil
}

func (f *fakeEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.welcomes = append(f.welcomes, data)
	return nil
}
