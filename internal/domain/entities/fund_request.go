package entities

// FundRequest (RFP) is an itemized withdrawal request against an
// approved BudgetRequest. It references its parent by id, never by
// embedded copy; parent status is re-read at every write.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI budget_request_id-index, ngo_id-index, status-index
type FundRequest struct {
	ID              string `json:"id"`
	BudgetRequestID string `json:"budget_request_id"`
	NgoID           string `json:"ngo_id"`

	Title       string `json:"title"`
	AmountCents int64  `json:"amount_cents"`

	// CustomData is free-form intake data shaped by the parent
	// BudgetRequest's expense schema.
	CustomData map[string]any `json:"custom_data,omitempty"`

	Approval
}
