package services

import (
	"errors"

	"alfredoptarigan/talent-matcher/internal/repositories"
)

var (
	// ErrUnauthenticated is returned when a mutation is attempted without a
	// caller identity.
	ErrUnauthenticated = errors.New("must be signed in")
	// ErrForbidden is returned when the caller does not own the record.
	ErrForbidden = errors.New("not the owner of this record")
	ErrNotFound  = repositories.ErrNotFound
	// ErrInvalidInput marks uploads or values the service cannot accept.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSummaryNotQueued is returned when a summary run finds the match
	// missing or already claimed.
	ErrSummaryNotQueued = errors.New("match summary is not queued")
)

// requireOwner checks that a signed-in caller owns the record.
func requireOwner(userID, ownerID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if userID != ownerID {
		return ErrForbidden
	}
	return nil
}
