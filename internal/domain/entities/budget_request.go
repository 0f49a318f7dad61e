package entities

// BudgetBreakdown is one financial-year slice of a multi-year budget.
type BudgetBreakdown struct {
	FinancialYear string `json:"financial_year"`
	AmountCents   int64  `json:"amount_cents"`
}

// BudgetRequest (RFQ) is an NGO's total budget ask for one project and
// the root of the budget tree.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI ngo_id-index, project_id-index, status-index
//   - GSI project_ngo-index on the concatenated "projectId#ngoId" key,
//     the app-layer stand-in for a partial unique index: at most one
//     non-REJECTED record per (project, ngo) pair.
//
// Monetary representation: integer minor units (cents) throughout, so
// the inclusive-ceiling conservation check is exact.
type BudgetRequest struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	NgoID     string `json:"ngo_id"`

	Title   string `json:"title"`
	Details string `json:"details,omitempty"`

	TotalBudgetCents int64             `json:"total_budget_cents"`
	Breakdown        []BudgetBreakdown `json:"breakdown,omitempty"`

	// ExpenseFormat is the custom expense-field schema dependent
	// utilization records are validated against. Attached by the PM
	// at approval time.
	ExpenseFormat ExpenseSchema `json:"expense_format,omitempty"`

	Approval
}

// BreakdownTotalCents sums the multi-year slices. When a breakdown is
// supplied it is the source of truth for TotalBudgetCents.
func (b *BudgetRequest) BreakdownTotalCents() int64 {
	var total int64
	for _, s := range b.Breakdown {
		total += s.AmountCents
	}
	return total
}
