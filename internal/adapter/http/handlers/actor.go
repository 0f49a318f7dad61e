package handlers

import (
	"errors"
	"net/http"

	"grantflow/internal/domain/entities"
	"grantflow/internal/usecase"
	"grantflow/pkg"

	"github.com/gin-gonic/gin"
)

const (
	headerActorID      = "X-Actor-Id"
	headerActorRole    = "X-Actor-Role"
	headerOrganization = "X-Organization-Id"
)

var errMissingActor = pkg.NewDomainErrorSimple("INVALID_ACTOR", "Missing or invalid actor headers", http.StatusUnauthorized)

// actorFromRequest builds the acting identity from the gateway-injected
// headers. The upstream gateway authenticates the caller; this service
// only enforces what the resolved role may do.
func actorFromRequest(c *gin.Context) (entities.Actor, *pkg.AppError) {
	id := c.GetHeader(headerActorID)
	role, err := entities.ParseRole(c.GetHeader(headerActorRole))
	if id == "" || err != nil {
		return entities.Actor{}, errMissingActor
	}
	return entities.Actor{
		ID:                id,
		Role:              role,
		OrganizationScope: c.GetHeader(headerOrganization),
	}, nil
}

// mapWorkflowError translates the failures shared by every approval
// workflow. Handler-specific mapError functions check their own
// sentinels first and fall through to this.
func mapWorkflowError(err error) *pkg.AppError {
	var exceeded *usecase.BudgetExceededError
	switch {
	case errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainErrorSimple("INVALID_ACTOR", "Missing or invalid actor headers", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor role not allowed to perform this operation", http.StatusForbidden)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Record is not in a state that allows this operation", http.StatusConflict)
	case errors.Is(err, entities.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Record was modified concurrently, retry with fresh data", http.StatusConflict)
	case errors.As(err, &exceeded):
		return pkg.NewDomainErrorSimple("BUDGET_EXCEEDED", "Requested amount exceeds the remaining budget", http.StatusConflict).
			WithDetails(map[string]any{
				"used_cents":      exceeded.UsedCents,
				"candidate_cents": exceeded.CandidateCents,
				"ceiling_cents":   exceeded.CeilingCents,
			})
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
