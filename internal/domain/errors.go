package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when an entity does not exist or the caller has
	// no access to it. Reads never distinguish the two cases.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller is authenticated but their
	// access level does not permit the requested mutation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned when the request is invalid (e.g. changing
	// the owner's access level, or approving a non-pending milestone).
	ErrInvalidInput = errors.New("invalid input")

	// ErrExpired is returned when an invitation's expiry timestamp has passed.
	ErrExpired = errors.New("invitation expired")

	// ErrAlreadyParticipant is returned when adding a user who already holds a
	// participant row for the memorial.
	ErrAlreadyParticipant = errors.New("already a participant")
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)
