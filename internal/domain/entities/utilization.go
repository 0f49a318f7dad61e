package entities

import "time"

// UtilizationStatus is the single-step verification lifecycle of an
// expense report. REJECTED is terminal here; there is no resubmission
// path for utilization records.

type UtilizationStatus string

const (
	UtilizationStatusSubmitted UtilizationStatus = "SUBMITTED"
	UtilizationStatusVerified  UtilizationStatus = "VERIFIED"
	UtilizationStatusRejected  UtilizationStatus = "REJECTED"
)

// UtilizationRecord reports how funds released via an approved
// FundRequest were spent.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI fund_request_id-index, ngo_id-index, status-index
type UtilizationRecord struct {
	ID            string `json:"id"`
	FundRequestID string `json:"fund_request_id"`
	NgoID         string `json:"ngo_id"`

	Title          string `json:"title"`
	AmountCents    int64  `json:"amount_cents"`
	ProofReference string `json:"proof_reference,omitempty"`

	CustomData map[string]any `json:"custom_data,omitempty"`

	Status          UtilizationStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	VerifiedAt      *time.Time        `json:"verified_at,omitempty"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	Version         int64             `json:"version"`
}

func (u *UtilizationRecord) IsSubmitted() bool {
	return u.Status == UtilizationStatusSubmitted
}

// Verify advances SUBMITTED -> VERIFIED.
func (u *UtilizationRecord) Verify(now time.Time) error {
	if !u.IsSubmitted() {
		return ErrInvalidTransition
	}
	u.Status = UtilizationStatusVerified
	u.VerifiedAt = &now
	return nil
}

// Reject is terminal; a rejected expense stays rejected.
func (u *UtilizationRecord) Reject(reason string) error {
	if !u.IsSubmitted() {
		return ErrInvalidTransition
	}
	u.Status = UtilizationStatusRejected
	u.RejectionReason = reason
	return nil
}
