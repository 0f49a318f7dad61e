package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"grantflow/internal/domain/entities"
	"grantflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFundRequestNotFound        = errors.New("fund request not found")
	ErrParentBudgetNotApproved    = errors.New("parent budget request is not approved")
	ErrInvalidAmount              = errors.New("amount must be positive")
	ErrInvalidBudgetRequestID     = errors.New("invalid budget request id")
	ErrFundRequestNotResubmission = errors.New("only rejected fund requests can be resubmitted")
)

// CreateFundRequestInput is the NGO's withdrawal request payload.
type CreateFundRequestInput struct {
	BudgetRequestID string
	NgoID           string
	Title           string
	AmountCents     int64
	CustomData      map[string]any
}

// ResubmitFundRequestInput carries the mutable fields of a rejected
// fund request being resubmitted.
type ResubmitFundRequestInput struct {
	Title       string
	AmountCents int64
	CustomData  map[string]any
}

// IFundRequestUseCase exposes the RFP tier workflow.

type IFundRequestUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateFundRequestInput) (entities.FundRequest, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.FundRequest, error)
	ListByBudgetRequest(ctx context.Context, actor entities.Actor, budgetRequestID string) ([]entities.FundRequest, error)
	ListByNgo(ctx context.Context, actor entities.Actor, ngoID string) ([]entities.FundRequest, error)
	ListPendingForManager(ctx context.Context, actor entities.Actor) ([]entities.FundRequest, error)
	ListPendingForAdmin(ctx context.Context, actor entities.Actor) ([]entities.FundRequest, error)
	ApproveByPM(ctx context.Context, actor entities.Actor, id string) (entities.FundRequest, error)
	ApproveByAdmin(ctx context.Context, actor entities.Actor, id string) (entities.FundRequest, error)
	Reject(ctx context.Context, actor entities.Actor, id, reason string) (entities.FundRequest, error)
	Resubmit(ctx context.Context, actor entities.Actor, id string, in ResubmitFundRequestInput) (entities.FundRequest, error)
}

type FundRequestUseCase struct {
	repo        interfaces.IFundRequestRepository
	budgetRepo  interfaces.IBudgetRequestRepository
	projects    interfaces.IProjectDirectory
	disbursals  interfaces.IDisbursementGateway
	parentLocks *parentLock
}

var _ IFundRequestUseCase = (*FundRequestUseCase)(nil)

func NewFundRequestUseCase(
	repo interfaces.IFundRequestRepository,
	budgetRepo interfaces.IBudgetRequestRepository,
	projects interfaces.IProjectDirectory,
	disbursals interfaces.IDisbursementGateway,
) *FundRequestUseCase {
	return &FundRequestUseCase{
		repo:        repo,
		budgetRepo:  budgetRepo,
		projects:    projects,
		disbursals:  disbursals,
		parentLocks: newParentLock(),
	}
}

func (u *FundRequestUseCase) Create(ctx context.Context, actor entities.Actor, in CreateFundRequestInput) (entities.FundRequest, error) {
	if err := authorize(actor, entities.ActionSubmit); err != nil {
		return entities.FundRequest{}, err
	}
	in.BudgetRequestID = strings.TrimSpace(in.BudgetRequestID)
	in.NgoID = strings.TrimSpace(in.NgoID)
	in.Title = strings.TrimSpace(in.Title)
	if in.BudgetRequestID == "" {
		return entities.FundRequest{}, ErrInvalidBudgetRequestID
	}
	if in.NgoID == "" {
		return entities.FundRequest{}, ErrInvalidNgoID
	}
	if err := authorizeOwner(actor, in.NgoID); err != nil {
		return entities.FundRequest{}, err
	}
	if in.Title == "" {
		return entities.FundRequest{}, ErrInvalidTitle
	}
	if in.AmountCents <= 0 {
		return entities.FundRequest{}, ErrInvalidAmount
	}

	unlock := u.parentLocks.Lock(in.BudgetRequestID)
	defer unlock()

	parent, err := u.budgetRepo.GetByID(ctx, in.BudgetRequestID)
	if err != nil {
		return entities.FundRequest{}, err
	}
	if parent.ID == "" {
		return entities.FundRequest{}, ErrBudgetRequestNotFound
	}
	if !parent.IsApproved() {
		return entities.FundRequest{}, ErrParentBudgetNotApproved
	}

	used, err := u.usedBudgetCents(ctx, in.BudgetRequestID, "")
	if err != nil {
		return entities.FundRequest{}, err
	}
	if err := checkConservation(used, in.AmountCents, parent.TotalBudgetCents); err != nil {
		return entities.FundRequest{}, err
	}

	f := entities.FundRequest{
		ID:              uuid.NewString(),
		BudgetRequestID: in.BudgetRequestID,
		NgoID:           in.NgoID,
		Title:           in.Title,
		AmountCents:     in.AmountCents,
		CustomData:      in.CustomData,
		Approval:        entities.NewApproval(time.Now().UTC()),
	}
	return u.repo.Create(ctx, f)
}

// Resubmit re-enters a REJECTED fund request into the workflow with
// updated fields. The conservation check excludes the request's own
// prior amount.
func (u *FundRequestUseCase) Resubmit(ctx context.Context, actor entities.Actor, id string, in ResubmitFundRequestInput) (entities.FundRequest, error) {
	if err := authorize(actor, entities.ActionSubmit); err != nil {
		return entities.FundRequest{}, err
	}
	f, err := u.get(ctx, id)
	if err != nil {
		return entities.FundRequest{}, err
	}
	if err := authorizeOwner(actor, f.NgoID); err != nil {
		return entities.FundRequest{}, err
	}
	if !f.IsRejected() {
		return entities.FundRequest{}, ErrFundRequestNotResubmission
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return entities.FundRequest{}, ErrInvalidTitle
	}
	if in.AmountCents <= 0 {
		return entities.FundRequest{}, ErrInvalidAmount
	}

	unlock := u.parentLocks.Lock(f.BudgetRequestID)
	defer unlock()

	parent, err := u.budgetRepo.GetByID(ctx, f.BudgetRequestID)
	if err != nil {
		return entities.FundRequest{}, err
	}
	if parent.ID == "" {
		return entities.FundRequest{}, ErrBudgetRequestNotFound
	}
	if !parent.IsApproved() {
		return entities.FundRequest{}, ErrParentBudgetNotApproved
	}

	used, err := u.usedBudgetCents(ctx, f.BudgetRequestID, f.ID)
	if err != nil {
		return entities.FundRequest{}, err
	}
	if err := checkConservation(used, in.AmountCents, parent.TotalBudgetCents); err != nil {
		return entities.FundRequest{}, err
	}

	if err := f.Approval.ResetForResubmission(time.Now().UTC()); err != nil {
		return entities.FundRequest{}, err
	}
	f.Title = in.Title
	f.AmountCents = in.AmountCents
	f.CustomData = in.CustomData
	return u.update(ctx, f)
}

// usedBudgetCents sums the non-rejected siblings under one budget
// request, optionally excluding the request being resubmitted.
func (u *FundRequestUseCase) usedBudgetCents(ctx context.Context, budgetRequestID, excludeID string) (int64, error) {
	siblings, err := u.repo.ListByBudgetRequest(ctx, budgetRequestID)
	if err != nil {
		return 0, err
	}
	var used int64
	for _, s := range siblings {
		if s.ID == excludeID || s.IsRejected() {
			continue
		}
		used += s.AmountCents
	}
	return used, nil
}

func (u *FundRequestUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.FundRequest, error) {
	f, err := u.get(ctx, id)
	if err != nil {
		return entities.FundRequest{}, err
	}
	if err := authorizeOwner(actor, f.NgoID); err != nil {
		return entities.FundRequest{}, err
	}
	return f, nil
}

func (u *FundRequestUseCase) ListByBudgetRequest(ctx context.Context, actor entities.Actor, budgetRequestID string) ([]entities.FundRequest, error) {
	budgetRequestID = strings.TrimSpace(budgetRequestID)
	if budgetRequestID == "" {
		return nil, ErrInvalidBudgetRequestID
	}
	if actor.Role == entities.RoleNGO {
		parent, err := u.budgetRepo.GetByID(ctx, budgetRequestID)
		if err != nil {
			return nil, err
		}
		if parent.ID != "" {
			if err := authorizeOwner(actor, parent.NgoID); err != nil {
				return nil, err
			}
		}
	}
	return u.repo.ListByBudgetRequest(ctx, budgetRequestID)
}

func (u *FundRequestUseCase) ListByNgo(ctx context.Context, actor entities.Actor, ngoID string) ([]entities.FundRequest, error) {
	ngoID = strings.TrimSpace(ngoID)
	if ngoID == "" {
		return nil, ErrInvalidNgoID
	}
	if err := authorizeOwner(actor, ngoID); err != nil {
		return nil, err
	}
	return u.repo.ListByNgo(ctx, ngoID)
}

// ListPendingForManager walks manager projects -> approved budget
// requests -> pending fund requests. Only approved budget requests can
// have fund requests beneath them.
func (u *FundRequestUseCase) ListPendingForManager(ctx context.Context, actor entities.Actor) ([]entities.FundRequest, error) {
	if err := authorize(actor, entities.ActionApprovePM); err != nil {
		return nil, err
	}
	projectIDs, err := u.projects.ListProjectIDsForManager(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	pending := make([]entities.FundRequest, 0)
	for _, pid := range projectIDs {
		budgets, err := u.budgetRepo.ListByProject(ctx, pid)
		if err != nil {
			return nil, err
		}
		for _, b := range budgets {
			if !b.IsApproved() {
				continue
			}
			list, err := u.repo.ListByBudgetRequest(ctx, b.ID)
			if err != nil {
				return nil, err
			}
			for _, f := range list {
				if f.IsPendingPM() {
					pending = append(pending, f)
				}
			}
		}
	}
	return pending, nil
}

func (u *FundRequestUseCase) ListPendingForAdmin(ctx context.Context, actor entities.Actor) ([]entities.FundRequest, error) {
	if err := authorize(actor, entities.ActionApproveAdmin); err != nil {
		return nil, err
	}
	return u.repo.ListByStatus(ctx, entities.StatusPendingAdmin)
}

func (u *FundRequestUseCase) ApproveByPM(ctx context.Context, actor entities.Actor, id string) (entities.FundRequest, error) {
	if err := authorize(actor, entities.ActionApprovePM); err != nil {
		return entities.FundRequest{}, err
	}
	f, err := u.get(ctx, id)
	if err != nil {
		return entities.FundRequest{}, err
	}
	if err := f.Approval.ApproveByPM(time.Now().UTC()); err != nil {
		return entities.FundRequest{}, err
	}
	return u.update(ctx, f)
}

// ApproveByAdmin gives final approval and releases the funds. The
// disbursement call is advisory: a gateway failure is logged, the
// approval stands.
func (u *FundRequestUseCase) ApproveByAdmin(ctx context.Context, actor entities.Actor, id string) (entities.FundRequest, error) {
	if err := authorize(actor, entities.ActionApproveAdmin); err != nil {
		return entities.FundRequest{}, err
	}
	f, err := u.get(ctx, id)
	if err != nil {
		return entities.FundRequest{}, err
	}
	if err := f.Approval.ApproveByAdmin(time.Now().UTC()); err != nil {
		return entities.FundRequest{}, err
	}
	updated, err := u.update(ctx, f)
	if err != nil {
		return entities.FundRequest{}, err
	}

	if u.disbursals != nil {
		providerID, providerStatus, err := u.disbursals.Disburse(ctx, updated.ID, updated.AmountCents, updated.NgoID)
		if err != nil {
			log.Printf("[fundrequest][usecase] disbursement failed fund_request_id=%s err=%v", updated.ID, err)
		} else {
			log.Printf("[fundrequest][usecase] disbursement initiated fund_request_id=%s provider_id=%s provider_status=%s", updated.ID, providerID, providerStatus)
		}
	}
	return updated, nil
}

func (u *FundRequestUseCase) Reject(ctx context.Context, actor entities.Actor, id, reason string) (entities.FundRequest, error) {
	if err := authorize(actor, entities.ActionReject); err != nil {
		return entities.FundRequest{}, err
	}
	f, err := u.get(ctx, id)
	if err != nil {
		return entities.FundRequest{}, err
	}
	if err := f.Approval.Reject(strings.TrimSpace(reason), time.Now().UTC()); err != nil {
		return entities.FundRequest{}, err
	}
	return u.update(ctx, f)
}

func (u *FundRequestUseCase) get(ctx context.Context, id string) (entities.FundRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FundRequest{}, ErrInvalidRequestID
	}
	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FundRequest{}, err
	}
	if f.ID == "" {
		return entities.FundRequest{}, ErrFundRequestNotFound
	}
	return f, nil
}

func (u *FundRequestUseCase) update(ctx context.Context, f entities.FundRequest) (entities.FundRequest, error) {
	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		return entities.FundRequest{}, err
	}
	if updated.ID == "" {
		return entities.FundRequest{}, ErrFundRequestNotFound
	}
	return updated, nil
}
