package response

import (
	"time"

	"grantflow/internal/domain/entities"
)

type UtilizationResponse struct {
	ID              string         `json:"id"`
	FundRequestID   string         `json:"fund_request_id"`
	NgoID           string         `json:"ngo_id"`
	Title           string         `json:"title"`
	AmountCents     int64          `json:"amount_cents"`
	ProofReference  string         `json:"proof_reference,omitempty"`
	CustomData      map[string]any `json:"custom_data,omitempty"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	VerifiedAt      *time.Time     `json:"verified_at,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	Version         int64          `json:"version"`
}

func FromUtilization(u entities.UtilizationRecord) UtilizationResponse {
	return UtilizationResponse{
		ID:              u.ID,
		FundRequestID:   u.FundRequestID,
		NgoID:           u.NgoID,
		Title:           u.Title,
		AmountCents:     u.AmountCents,
		ProofReference:  u.ProofReference,
		CustomData:      u.CustomData,
		Status:          string(u.Status),
		CreatedAt:       u.CreatedAt,
		VerifiedAt:      u.VerifiedAt,
		RejectionReason: u.RejectionReason,
		Version:         u.Version,
	}
}

func FromUtilizations(list []entities.UtilizationRecord) []UtilizationResponse {
	out := make([]UtilizationResponse, 0, len(list))
	for _, u := range list {
		out = append(out, FromUtilization(u))
	}
	return out
}
