package domain

// AccessLevel is a caller's effective permission level on a memorial.
type AccessLevel string

const (
	AccessOwner       AccessLevel = "owner"
	AccessContributor AccessLevel = "contributor"
	AccessVisitor     AccessLevel = "visitor"
	// AccessNone means the caller may not load the memorial at all.
	AccessNone AccessLevel = "none"
)

// ValidParticipantLevel reports whether l can be stored on a participant or
// invitation row. "owner" is never stored; ownership lives on Memorial.OwnerID.
func ValidParticipantLevel(l AccessLevel) bool {
	return l == AccessContributor || l == AccessVisitor
}

// ResolveAccess determines the effective access level for userID on m.
// participant is the user's row for the memorial, or nil if none exists.
// Resolution is pure: owner wins via Memorial.OwnerID, an accepted participant
// row grants its stored level, anything else resolves to none.
func ResolveAccess(m *Memorial, userID string, participant *Participant) AccessLevel {
	if m == nil || userID == "" {
		return AccessNone
	}
	if m.OwnerID == userID {
		return AccessOwner
	}
	if participant != nil && participant.MemorialID == m.ID && participant.UserID == userID && participant.AcceptedAt != nil {
		return participant.AccessLevel
	}
	return AccessNone
}

// CanView reports whether the level permits loading the memorial and its
// approved content.
func (l AccessLevel) CanView() bool {
	return l == AccessOwner || l == AccessContributor || l == AccessVisitor
}

// CanContribute reports whether the level permits submitting milestones and
// adding media items.
func (l AccessLevel) CanContribute() bool {
	return l == AccessOwner || l == AccessContributor
}

// CanSign reports whether the level permits adding guestbook entries and
// rituals. Visitors may sign; anyone who can view can sign.
func (l AccessLevel) CanSign() bool {
	return l.CanView()
}

// CanManage reports whether the level permits administrative actions:
// editing memorial settings, deleting the memorial, managing participants,
// creating invitations, and approving or rejecting milestones.
func (l AccessLevel) CanManage() bool {
	return l == AccessOwner
}

// CanModerate reports whether the level permits editing or deleting content
// authored by someone else.
func (l AccessLevel) CanModerate() bool {
	return l == AccessOwner
}
