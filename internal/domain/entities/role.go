package entities

import (
	"errors"
	"strings"
)

// Role is the sealed set of actor roles consumed from the upstream
// access-scope resolver. Authorization decisions for workflow
// transitions live in Allows, not in per-handler string comparisons.

type Role string

const (
	RoleSuperAdmin     Role = "SUPER_ADMIN"
	RoleAdmin          Role = "ADMIN"
	RoleProjectManager Role = "PROJECT_MANAGER"
	RoleNGO            Role = "NGO"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleSuperAdmin:
		return RoleSuperAdmin, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleProjectManager:
		return RoleProjectManager, nil
	case RoleNGO:
		return RoleNGO, nil
	default:
		return "", ErrUnknownRole
	}
}

// Action enumerates the role-gated workflow operations.
type Action int

const (
	ActionSubmit Action = iota
	ActionApprovePM
	ActionApproveAdmin
	ActionReject
	ActionVerify
)

// Allows is the single capability check per transition. Admins may act
// as PMs; SUPER_ADMIN may do anything an ADMIN can.
func (r Role) Allows(a Action) bool {
	switch a {
	case ActionSubmit:
		return r == RoleNGO
	case ActionApprovePM, ActionReject, ActionVerify:
		return r == RoleProjectManager || r == RoleAdmin || r == RoleSuperAdmin
	case ActionApproveAdmin:
		return r == RoleAdmin || r == RoleSuperAdmin
	default:
		return false
	}
}

// Actor is the current caller as resolved by the upstream gateway.
// OrganizationScope is opaque to this core; empty means unrestricted
// cross-organization visibility (reserved for SUPER_ADMIN).
type Actor struct {
	ID                string
	Role              Role
	OrganizationScope string
}
