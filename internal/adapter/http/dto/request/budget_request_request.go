package request

import (
	"grantflow/internal/domain/entities"
	"grantflow/internal/usecase"
)

type BudgetBreakdownRequest struct {
	FinancialYear string `json:"financial_year" binding:"required"`
	AmountCents   int64  `json:"amount_cents" binding:"required"`
}

type CustomFieldRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// CreateBudgetRequestRequest is the NGO submission payload. When a
// breakdown is present the server derives the total from it.
type CreateBudgetRequestRequest struct {
	ProjectID        string                   `json:"project_id" binding:"required"`
	NgoID            string                   `json:"ngo_id" binding:"required"`
	Title            string                   `json:"title" binding:"required"`
	Details          string                   `json:"details"`
	TotalBudgetCents int64                    `json:"total_budget_cents"`
	Breakdown        []BudgetBreakdownRequest `json:"breakdown"`
}

func (r CreateBudgetRequestRequest) ToInput() usecase.CreateBudgetRequestInput {
	breakdown := make([]entities.BudgetBreakdown, 0, len(r.Breakdown))
	for _, s := range r.Breakdown {
		breakdown = append(breakdown, entities.BudgetBreakdown{FinancialYear: s.FinancialYear, AmountCents: s.AmountCents})
	}
	return usecase.CreateBudgetRequestInput{
		ProjectID:        r.ProjectID,
		NgoID:            r.NgoID,
		Title:            r.Title,
		Details:          r.Details,
		TotalBudgetCents: r.TotalBudgetCents,
		Breakdown:        breakdown,
	}
}

// ApproveBudgetRequestPMRequest optionally attaches the expense-field
// schema at PM approval time.
type ApproveBudgetRequestPMRequest struct {
	ExpenseFormat []CustomFieldRequest `json:"expense_format"`
}

func (r ApproveBudgetRequestPMRequest) ToSchema() entities.ExpenseSchema {
	schema := make(entities.ExpenseSchema, 0, len(r.ExpenseFormat))
	for _, f := range r.ExpenseFormat {
		schema = append(schema, entities.CustomField{Name: f.Name, Type: f.Type, Required: f.Required})
	}
	return schema
}

// RejectRequest carries the mandatory rejection reason.
type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}
