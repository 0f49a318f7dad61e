package usecase

import (
	"errors"

	"grantflow/internal/domain/entities"
)

var (
	ErrUnauthorized = errors.New("actor not allowed to perform this operation")
	ErrInvalidActor = errors.New("invalid actor")
)

// authorize is the single capability gate applied to every role-gated
// transition. Organization-scope matching is the upstream resolver's
// job; this core only checks the role capability and, for NGO actors,
// record ownership (enforced by the callers that know the owner).
func authorize(actor entities.Actor, action entities.Action) error {
	if actor.ID == "" {
		return ErrInvalidActor
	}
	if !actor.Role.Allows(action) {
		return ErrUnauthorized
	}
	return nil
}

// authorizeOwner lets an NGO act only on its own records; approver
// roles pass through untouched.
func authorizeOwner(actor entities.Actor, ownerNgoID string) error {
	if actor.Role == entities.RoleNGO && actor.ID != ownerNgoID {
		return ErrUnauthorized
	}
	return nil
}
