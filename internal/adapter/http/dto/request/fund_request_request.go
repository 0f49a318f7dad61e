package request

import "grantflow/internal/usecase"

// CreateFundRequestRequest is the NGO withdrawal payload against an
// approved budget request.
type CreateFundRequestRequest struct {
	BudgetRequestID string         `json:"budget_request_id" binding:"required"`
	NgoID           string         `json:"ngo_id" binding:"required"`
	Title           string         `json:"title" binding:"required"`
	AmountCents     int64          `json:"amount_cents" binding:"required"`
	CustomData      map[string]any `json:"custom_data"`
}

func (r CreateFundRequestRequest) ToInput() usecase.CreateFundRequestInput {
	return usecase.CreateFundRequestInput{
		BudgetRequestID: r.BudgetRequestID,
		NgoID:           r.NgoID,
		Title:           r.Title,
		AmountCents:     r.AmountCents,
		CustomData:      r.CustomData,
	}
}

// ResubmitFundRequestRequest carries the mutable fields of a rejected
// fund request being resubmitted.
type ResubmitFundRequestRequest struct {
	Title       string         `json:"title" binding:"required"`
	AmountCents int64          `json:"amount_cents" binding:"required"`
	CustomData  map[string]any `json:"custom_data"`
}

func (r ResubmitFundRequestRequest) ToInput() usecase.ResubmitFundRequestInput {
	return usecase.ResubmitFundRequestInput{
		Title:       r.Title,
		AmountCents: r.AmountCents,
		CustomData:  r.CustomData,
	}
}
