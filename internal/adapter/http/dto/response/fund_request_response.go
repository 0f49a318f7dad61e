package response

import (
	"time"

	"grantflow/internal/domain/entities"
)

type FundRequestResponse struct {
	ID                string         `json:"id"`
	BudgetRequestID   string         `json:"budget_request_id"`
	NgoID             string         `json:"ngo_id"`
	Title             string         `json:"title"`
	AmountCents       int64          `json:"amount_cents"`
	CustomData        map[string]any `json:"custom_data,omitempty"`
	Status            string         `json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	PMApprovalDate    *time.Time     `json:"pm_approval_date,omitempty"`
	AdminApprovalDate *time.Time     `json:"admin_approval_date,omitempty"`
	DecisionDate      *time.Time     `json:"decision_date,omitempty"`
	RejectionReason   string         `json:"rejection_reason,omitempty"`
	Version           int64          `json:"version"`
}

func FromFundRequest(f entities.FundRequest) FundRequestResponse {
	return FundRequestResponse{
		ID:                f.ID,
		BudgetRequestID:   f.BudgetRequestID,
		NgoID:             f.NgoID,
		Title:             f.Title,
		AmountCents:       f.AmountCents,
		CustomData:        f.CustomData,
		Status:            string(f.Status),
		CreatedAt:         f.CreatedAt,
		PMApprovalDate:    f.PMApprovalDate,
		AdminApprovalDate: f.AdminApprovalDate,
		DecisionDate:      f.DecisionDate,
		RejectionReason:   f.RejectionReason,
		Version:           f.Version,
	}
}

func FromFundRequests(list []entities.FundRequest) []FundRequestResponse {
	out := make([]FundRequestResponse, 0, len(list))
	for _, f := range list {
		out = append(out, FromFundRequest(f))
	}
	return out
}
