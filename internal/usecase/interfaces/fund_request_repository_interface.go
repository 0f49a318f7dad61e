package interfaces

import (
	"context"
	"grantflow/internal/domain/entities"
)

// IFundRequestRepository abstracts DynamoDB persistence for the RFP
// tier. Same zero-value and compare-and-swap conventions as
// IBudgetRequestRepository.

type IFundRequestRepository interface {
	Create(ctx context.Context, f entities.FundRequest) (entities.FundRequest, error)
	GetByID(ctx context.Context, id string) (entities.FundRequest, error)
	ListByBudgetRequest(ctx context.Context, budgetRequestID string) ([]entities.FundRequest, error)
	ListByNgo(ctx context.Context, ngoID string) ([]entities.FundRequest, error)
	ListByStatus(ctx context.Context, status entities.ApprovalStatus) ([]entities.FundRequest, error)
	Update(ctx context.Context, f entities.FundRequest) (entities.FundRequest, error)
}
