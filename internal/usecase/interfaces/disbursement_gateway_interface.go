package interfaces

import "context"

// IDisbursementGateway moves released funds to the beneficiary NGO once
// a fund request clears final approval. Disbursement is advisory: a
// gateway failure is logged but never rolls back the approval.

type IDisbursementGateway interface {
	Disburse(ctx context.Context, fundRequestID string, amountCents int64, beneficiaryNgoID string) (providerID string, providerStatus string, err error)
}
