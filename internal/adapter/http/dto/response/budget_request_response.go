package response

import (
	"time"

	"grantflow/internal/domain/entities"
)

type BudgetBreakdownResponse struct {
	FinancialYear string `json:"financial_year"`
	AmountCents   int64  `json:"amount_cents"`
}

type CustomFieldResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type BudgetRequestResponse struct {
	ID                string                    `json:"id"`
	ProjectID         string                    `json:"project_id"`
	NgoID             string                    `json:"ngo_id"`
	Title             string                    `json:"title"`
	Details           string                    `json:"details,omitempty"`
	TotalBudgetCents  int64                     `json:"total_budget_cents"`
	Breakdown         []BudgetBreakdownResponse `json:"breakdown,omitempty"`
	ExpenseFormat     []CustomFieldResponse     `json:"expense_format,omitempty"`
	Status            string                    `json:"status"`
	CreatedAt         time.Time                 `json:"created_at"`
	PMApprovalDate    *time.Time                `json:"pm_approval_date,omitempty"`
	AdminApprovalDate *time.Time                `json:"admin_approval_date,omitempty"`
	DecisionDate      *time.Time                `json:"decision_date,omitempty"`
	RejectionReason   string                    `json:"rejection_reason,omitempty"`
	Version           int64                     `json:"version"`
}

func FromBudgetRequest(b entities.BudgetRequest) BudgetRequestResponse {
	var breakdown []BudgetBreakdownResponse
	for _, s := range b.Breakdown {
		breakdown = append(breakdown, BudgetBreakdownResponse{FinancialYear: s.FinancialYear, AmountCents: s.AmountCents})
	}
	var format []CustomFieldResponse
	for _, f := range b.ExpenseFormat {
		format = append(format, CustomFieldResponse{Name: f.Name, Type: f.Type, Required: f.Required})
	}
	return BudgetRequestResponse{
		ID:                b.ID,
		ProjectID:         b.ProjectID,
		NgoID:             b.NgoID,
		Title:             b.Title,
		Details:           b.Details,
		TotalBudgetCents:  b.TotalBudgetCents,
		Breakdown:         breakdown,
		ExpenseFormat:     format,
		Status:            string(b.Status),
		CreatedAt:         b.CreatedAt,
		PMApprovalDate:    b.PMApprovalDate,
		AdminApprovalDate: b.AdminApprovalDate,
		DecisionDate:      b.DecisionDate,
		RejectionReason:   b.RejectionReason,
		Version:           b.Version,
	}
}

func FromBudgetRequests(list []entities.BudgetRequest) []BudgetRequestResponse {
	out := make([]BudgetRequestResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBudgetRequest(b))
	}
	return out
}
