package interfaces

import (
	"context"
	"grantflow/internal/domain/entities"
)

// IBudgetRequestRepository abstracts DynamoDB persistence for the RFQ
// tier.
//
// Conventions shared by all repositories here:
//   - Get/list calls return zero values (not errors) when nothing
//     matches; use cases map that to their NotFound sentinel.
//   - Update is a compare-and-swap on the entity's version counter and
//     returns entities.ErrConcurrentModification when the stored
//     version moved underneath the caller.

type IBudgetRequestRepository interface {
	Create(ctx context.Context, b entities.BudgetRequest) (entities.BudgetRequest, error)
	GetByID(ctx context.Context, id string) (entities.BudgetRequest, error)
	GetByProjectAndNgo(ctx context.Context, projectID, ngoID string) (entities.BudgetRequest, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.BudgetRequest, error)
	ListByNgo(ctx context.Context, ngoID string) ([]entities.BudgetRequest, error)
	ListByStatus(ctx context.Context, status entities.ApprovalStatus) ([]entities.BudgetRequest, error)
	Update(ctx context.Context, b entities.BudgetRequest) (entities.BudgetRequest, error)
	Delete(ctx context.Context, id string) error
}
