package request

import "grantflow/internal/usecase"

// CreateUtilizationRequest is the NGO expense-report payload against an
// approved fund request.
type CreateUtilizationRequest struct {
	FundRequestID  string         `json:"fund_request_id" binding:"required"`
	NgoID          string         `json:"ngo_id" binding:"required"`
	Title          string         `json:"title" binding:"required"`
	AmountCents    int64          `json:"amount_cents" binding:"required"`
	ProofReference string         `json:"proof_reference"`
	CustomData     map[string]any `json:"custom_data"`
}

func (r CreateUtilizationRequest) ToInput() usecase.CreateUtilizationInput {
	return usecase.CreateUtilizationInput{
		FundRequestID:  r.FundRequestID,
		NgoID:          r.NgoID,
		Title:          r.Title,
		AmountCents:    r.AmountCents,
		ProofReference: r.ProofReference,
		CustomData:     r.CustomData,
	}
}
