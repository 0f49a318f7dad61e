package entities

import (
	"errors"
	"time"
)

// ApprovalStatus represents the two-step approval lifecycle shared by
// BudgetRequest and FundRequest.
//
// Domain notes:
//   - A request moves PENDING_PM -> PENDING_ADMIN -> APPROVED.
//   - REJECTED is reachable from either pending state.
//   - "PENDING" is a legacy alias for PENDING_PM kept for input
//     compatibility with records written before the PM/Admin split.

type ApprovalStatus string

const (
	StatusPendingPM    ApprovalStatus = "PENDING_PM"
	StatusPendingAdmin ApprovalStatus = "PENDING_ADMIN"
	StatusApproved     ApprovalStatus = "APPROVED"
	StatusRejected     ApprovalStatus = "REJECTED"

	// StatusPendingLegacy predates the two-step split.
	StatusPendingLegacy ApprovalStatus = "PENDING"
)

var (
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// NormalizeApprovalStatus maps the legacy bare PENDING onto PENDING_PM.
func NormalizeApprovalStatus(s ApprovalStatus) ApprovalStatus {
	if s == StatusPendingLegacy {
		return StatusPendingPM
	}
	return s
}

// Approval carries the shared workflow state embedded in BudgetRequest
// and FundRequest. All transitions go through its methods; direct field
// writes bypassing them are not allowed.
type Approval struct {
	Status            ApprovalStatus `json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	PMApprovalDate    *time.Time     `json:"pm_approval_date,omitempty"`
	AdminApprovalDate *time.Time     `json:"admin_approval_date,omitempty"`
	DecisionDate      *time.Time     `json:"decision_date,omitempty"`
	RejectionReason   string         `json:"rejection_reason,omitempty"`
	Version           int64          `json:"version"`
}

// NewApproval returns the initial workflow state for a fresh submission.
func NewApproval(now time.Time) Approval {
	return Approval{Status: StatusPendingPM, CreatedAt: now}
}

func (a *Approval) IsPendingPM() bool {
	return NormalizeApprovalStatus(a.Status) == StatusPendingPM
}

func (a *Approval) IsPendingAdmin() bool {
	return a.Status == StatusPendingAdmin
}

func (a *Approval) IsPending() bool {
	return a.IsPendingPM() || a.IsPendingAdmin()
}

func (a *Approval) IsApproved() bool {
	return a.Status == StatusApproved
}

func (a *Approval) IsRejected() bool {
	return a.Status == StatusRejected
}

// ApproveByPM advances PENDING_PM -> PENDING_ADMIN.
func (a *Approval) ApproveByPM(now time.Time) error {
	if !a.IsPendingPM() {
		return ErrInvalidTransition
	}
	a.Status = StatusPendingAdmin
	a.PMApprovalDate = &now
	return nil
}

// ApproveByAdmin advances PENDING_ADMIN -> APPROVED and records the
// final decision date.
func (a *Approval) ApproveByAdmin(now time.Time) error {
	if !a.IsPendingAdmin() {
		return ErrInvalidTransition
	}
	a.Status = StatusApproved
	a.AdminApprovalDate = &now
	a.DecisionDate = &now
	return nil
}

// Reject is allowed from either pending state.
func (a *Approval) Reject(reason string, now time.Time) error {
	if !a.IsPending() {
		return ErrInvalidTransition
	}
	a.Status = StatusRejected
	a.RejectionReason = reason
	a.DecisionDate = &now
	return nil
}

// ResetForResubmission re-enters PENDING_PM from REJECTED, clearing the
// rejection reason and the prior approval trail. CreatedAt is refreshed
// so the resubmission sorts as a new entry.
func (a *Approval) ResetForResubmission(now time.Time) error {
	if !a.IsRejected() {
		return ErrInvalidTransition
	}
	a.Status = StatusPendingPM
	a.RejectionReason = ""
	a.PMApprovalDate = nil
	a.AdminApprovalDate = nil
	a.DecisionDate = nil
	a.CreatedAt = now
	return nil
}
