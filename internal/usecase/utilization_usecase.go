package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"grantflow/internal/domain/entities"
	"grantflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUtilizationNotFound    = errors.New("utilization record not found")
	ErrParentFundNotApproved  = errors.New("parent fund request is not approved")
	ErrInvalidFundRequestID   = errors.New("invalid fund request id")
	ErrExpenseDetailsRequired = errors.New("this project requires additional expense details")
)

// CreateUtilizationInput is the NGO's expense-report payload.
type CreateUtilizationInput struct {
	FundRequestID  string
	NgoID          string
	Title          string
	AmountCents    int64
	ProofReference string
	CustomData     map[string]any
}

// IUtilizationUseCase exposes the utilization tier workflow.

type IUtilizationUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateUtilizationInput) (entities.UtilizationRecord, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.UtilizationRecord, error)
	ListByFundRequest(ctx context.Context, actor entities.Actor, fundRequestID string) ([]entities.UtilizationRecord, error)
	ListByNgo(ctx context.Context, actor entities.Actor, ngoID string) ([]entities.UtilizationRecord, error)
	ListPendingVerification(ctx context.Context, actor entities.Actor) ([]entities.UtilizationRecord, error)
	Verify(ctx context.Context, actor entities.Actor, id string) (entities.UtilizationRecord, error)
	Reject(ctx context.Context, actor entities.Actor, id, reason string) (entities.UtilizationRecord, error)
}

type UtilizationUseCase struct {
	repo        interfaces.IUtilizationRepository
	fundRepo    interfaces.IFundRequestRepository
	budgetRepo  interfaces.IBudgetRequestRepository
	parentLocks *parentLock
}

var _ IUtilizationUseCase = (*UtilizationUseCase)(nil)

func NewUtilizationUseCase(
	repo interfaces.IUtilizationRepository,
	fundRepo interfaces.IFundRequestRepository,
	budgetRepo interfaces.IBudgetRequestRepository,
) *UtilizationUseCase {
	return &UtilizationUseCase{
		repo:        repo,
		fundRepo:    fundRepo,
		budgetRepo:  budgetRepo,
		parentLocks: newParentLock(),
	}
}

func (u *UtilizationUseCase) Create(ctx context.Context, actor entities.Actor, in CreateUtilizationInput) (entities.UtilizationRecord, error) {
	if err := authorize(actor, entities.ActionSubmit); err != nil {
		return entities.UtilizationRecord{}, err
	}
	in.FundRequestID = strings.TrimSpace(in.FundRequestID)
	in.NgoID = strings.TrimSpace(in.NgoID)
	in.Title = strings.TrimSpace(in.Title)
	if in.FundRequestID == "" {
		return entities.UtilizationRecord{}, ErrInvalidFundRequestID
	}
	if in.NgoID == "" {
		return entities.UtilizationRecord{}, ErrInvalidNgoID
	}
	if err := authorizeOwner(actor, in.NgoID); err != nil {
		return entities.UtilizationRecord{}, err
	}
	if in.Title == "" {
		return entities.UtilizationRecord{}, ErrInvalidTitle
	}
	if in.AmountCents <= 0 {
		return entities.UtilizationRecord{}, ErrInvalidAmount
	}

	unlock := u.parentLocks.Lock(in.FundRequestID)
	defer unlock()

	parent, err := u.fundRepo.GetByID(ctx, in.FundRequestID)
	if err != nil {
		return entities.UtilizationRecord{}, err
	}
	if parent.ID == "" {
		return entities.UtilizationRecord{}, ErrFundRequestNotFound
	}
	if !parent.IsApproved() {
		return entities.UtilizationRecord{}, ErrParentFundNotApproved
	}

	// The expense schema lives on the grandparent budget request.
	grandparent, err := u.budgetRepo.GetByID(ctx, parent.BudgetRequestID)
	if err != nil {
		return entities.UtilizationRecord{}, err
	}
	if grandparent.ID == "" {
		return entities.UtilizationRecord{}, ErrBudgetRequestNotFound
	}
	if len(grandparent.ExpenseFormat) > 0 && in.CustomData == nil {
		return entities.UtilizationRecord{}, ErrExpenseDetailsRequired
	}
	if err := grandparent.ExpenseFormat.ValidateData(in.CustomData); err != nil {
		return entities.UtilizationRecord{}, err
	}

	used, err := u.utilizedCents(ctx, in.FundRequestID)
	if err != nil {
		return entities.UtilizationRecord{}, err
	}
	if err := checkConservation(used, in.AmountCents, parent.AmountCents); err != nil {
		return entities.UtilizationRecord{}, err
	}

	rec := entities.UtilizationRecord{
		ID:             uuid.NewString(),
		FundRequestID:  in.FundRequestID,
		NgoID:          in.NgoID,
		Title:          in.Title,
		AmountCents:    in.AmountCents,
		ProofReference: strings.TrimSpace(in.ProofReference),
		CustomData:     in.CustomData,
		Status:         entities.UtilizationStatusSubmitted,
		CreatedAt:      time.Now().UTC(),
	}
	return u.repo.Create(ctx, rec)
}

// utilizedCents sums non-rejected expense reports under one fund
// request.
func (u *UtilizationUseCase) utilizedCents(ctx context.Context, fundRequestID string) (int64, error) {
	siblings, err := u.repo.ListByFundRequest(ctx, fundRequestID)
	if err != nil {
		return 0, err
	}
	var used int64
	for _, s := range siblings {
		if s.Status == entities.UtilizationStatusRejected {
			continue
		}
		used += s.AmountCents
	}
	return used, nil
}

func (u *UtilizationUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.UtilizationRecord, error) {
	rec, err := u.get(ctx, id)
	if err != nil {
		return entities.UtilizationRecord{}, err
	}
	if err := authorizeOwner(actor, rec.NgoID); err != nil {
		return entities.UtilizationRecord{}, err
	}
	return rec, nil
}

func (u *UtilizationUseCase) ListByFundRequest(ctx context.Context, actor entities.Actor, fundRequestID string) ([]entities.UtilizationRecord, error) {
	fundRequestID = strings.TrimSpace(fundRequestID)
	if fundRequestID == "" {
		return nil, ErrInvalidFundRequestID
	}
	if actor.Role == entities.RoleNGO {
		parent, err := u.fundRepo.GetByID(ctx, fundRequestID)
		if err != nil {
			return nil, err
		}
		if parent.ID != "" {
			if err := authorizeOwner(actor, parent.NgoID); err != nil {
				return nil, err
			}
		}
	}
	return u.repo.ListByFundRequest(ctx, fundRequestID)
}

func (u *UtilizationUseCase) ListByNgo(ctx context.Context, actor entities.Actor, ngoID string) ([]entities.UtilizationRecord, error) {
	ngoID = strings.TrimSpace(ngoID)
	if ngoID == "" {
		return nil, ErrInvalidNgoID
	}
	if err := authorizeOwner(actor, ngoID); err != nil {
		return nil, err
	}
	return u.repo.ListByNgo(ctx, ngoID)
}

func (u *UtilizationUseCase) ListPendingVerification(ctx context.Context, actor entities.Actor) ([]entities.UtilizationRecord, error) {
	if err := authorize(actor, entities.ActionVerify); err != nil {
		return nil, err
	}
	return u.repo.ListByStatus(ctx, entities.UtilizationStatusSubmitted)
}

func (u *UtilizationUseCase) Verify(ctx context.Context, actor entities.Actor, id string) (entities.UtilizationRecord, error) {
	if err := authorize(actor, entities.ActionVerify); err != nil {
		return entities.UtilizationRecord{}, err
	}
	rec, err := u.get(ctx, id)
	if err != nil {
		return entities.UtilizationRecord{}, err
	}
	if err := rec.Verify(time.Now().UTC()); err != nil {
		return entities.UtilizationRecord{}, err
	}
	return u.update(ctx, rec)
}

func (u *UtilizationUseCase) Reject(ctx context.Context, actor entities.Actor, id, reason string) (entities.UtilizationRecord, error) {
	if err := authorize(actor, entities.ActionVerify); err != nil {
		return entities.UtilizationRecord{}, err
	}
	rec, err := u.get(ctx, id)
	if err != nil {
		return entities.UtilizationRecord{}, err
	}
	if err := rec.Reject(strings.TrimSpace(reason)); err != nil {
		return entities.UtilizationRecord{}, err
	}
	return u.update(ctx, rec)
}

func (u *UtilizationUseCase) get(ctx context.Context, id string) (entities.UtilizationRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.UtilizationRecord{}, ErrInvalidRequestID
	}
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.UtilizationRecord{}, err
	}
	if rec.ID == "" {
		return entities.UtilizationRecord{}, ErrUtilizationNotFound
	}
	return rec, nil
}

func (u *UtilizationUseCase) update(ctx context.Context, rec entities.UtilizationRecord) (entities.UtilizationRecord, error) {
	updated, err := u.repo.Update(ctx, rec)
	if err != nil {
		return entities.UtilizationRecord{}, err
	}
	if updated.ID == "" {
		return entities.UtilizationRecord{}, ErrUtilizationNotFound
	}
	return updated, nil
}
