package interfaces

import (
	"context"
	"grantflow/internal/domain/entities"
)

// IUtilizationRepository abstracts DynamoDB persistence for utilization
// records. Same zero-value and compare-and-swap conventions as
// IBudgetRequestRepository.

type IUtilizationRepository interface {
	Create(ctx context.Context, u entities.UtilizationRecord) (entities.UtilizationRecord, error)
	GetByID(ctx context.Context, id string) (entities.UtilizationRecord, error)
	ListByFundRequest(ctx context.Context, fundRequestID string) ([]entities.UtilizationRecord, error)
	ListByNgo(ctx context.Context, ngoID string) ([]entities.UtilizationRecord, error)
	ListByStatus(ctx context.Context, status entities.UtilizationStatus) ([]entities.UtilizationRecord, error)
	Update(ctx context.Context, u entities.UtilizationRecord) (entities.UtilizationRecord, error)
}
