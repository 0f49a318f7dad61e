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
	ErrBudgetRequestNotFound = errors.New("budget request not found")
	ErrBudgetRequestExists   = errors.New("a budget request already exists for this NGO in this project")
	ErrInvalidBudget         = errors.New("total budget or budget breakdown is required")
	ErrInvalidProjectID      = errors.New("invalid project id")
	ErrInvalidNgoID          = errors.New("invalid ngo id")
	ErrInvalidRequestID      = errors.New("invalid request id")
	ErrInvalidTitle          = errors.New("title is required")
	ErrInvalidSchema         = errors.New("invalid expense field schema")
)

// CreateBudgetRequestInput is the NGO's submission payload.
type CreateBudgetRequestInput struct {
	ProjectID        string
	NgoID            string
	Title            string
	Details          string
	TotalBudgetCents int64
	Breakdown        []entities.BudgetBreakdown
}

// IBudgetRequestUseCase exposes the RFQ tier workflow.

type IBudgetRequestUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateBudgetRequestInput) (entities.BudgetRequest, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.BudgetRequest, error)
	GetByProjectAndNgo(ctx context.Context, actor entities.Actor, projectID, ngoID string) (entities.BudgetRequest, error)
	ListByProject(ctx context.Context, actor entities.Actor, projectID string) ([]entities.BudgetRequest, error)
	ListByNgo(ctx context.Context, actor entities.Actor, ngoID string) ([]entities.BudgetRequest, error)
	ListPendingForManager(ctx context.Context, actor entities.Actor) ([]entities.BudgetRequest, error)
	ListPendingForAdmin(ctx context.Context, actor entities.Actor) ([]entities.BudgetRequest, error)
	ApproveByPM(ctx context.Context, actor entities.Actor, id string, format entities.ExpenseSchema) (entities.BudgetRequest, error)
	ApproveByAdmin(ctx context.Context, actor entities.Actor, id string) (entities.BudgetRequest, error)
	Reject(ctx context.Context, actor entities.Actor, id, reason string) (entities.BudgetRequest, error)
}

type BudgetRequestUseCase struct {
	repo      interfaces.IBudgetRequestRepository
	projects  interfaces.IProjectDirectory
	pairLocks *parentLock
}

var _ IBudgetRequestUseCase = (*BudgetRequestUseCase)(nil)

func NewBudgetRequestUseCase(repo interfaces.IBudgetRequestRepository, projects interfaces.IProjectDirectory) *BudgetRequestUseCase {
	return &BudgetRequestUseCase{
		repo:      repo,
		projects:  projects,
		pairLocks: newParentLock(),
	}
}

func (u *BudgetRequestUseCase) Create(ctx context.Context, actor entities.Actor, in CreateBudgetRequestInput) (entities.BudgetRequest, error) {
	if err := authorize(actor, entities.ActionSubmit); err != nil {
		return entities.BudgetRequest{}, err
	}
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.NgoID = strings.TrimSpace(in.NgoID)
	in.Title = strings.TrimSpace(in.Title)
	if in.ProjectID == "" {
		return entities.BudgetRequest{}, ErrInvalidProjectID
	}
	if in.NgoID == "" {
		return entities.BudgetRequest{}, ErrInvalidNgoID
	}
	if err := authorizeOwner(actor, in.NgoID); err != nil {
		return entities.BudgetRequest{}, err
	}
	if in.Title == "" {
		return entities.BudgetRequest{}, ErrInvalidTitle
	}

	// One non-rejected request per (project, ngo). A REJECTED one is
	// superseded: it is deleted and replaced by the new submission.
	// The lookup/delete/create sequence is serialized per pair so two
	// concurrent submissions cannot both pass the uniqueness check.
	unlock := u.pairLocks.Lock(in.ProjectID + "#" + in.NgoID)
	defer unlock()

	existing, err := u.repo.GetByProjectAndNgo(ctx, in.ProjectID, in.NgoID)
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if existing.ID != "" {
		if !existing.IsRejected() {
			return entities.BudgetRequest{}, ErrBudgetRequestExists
		}
		if err := u.repo.Delete(ctx, existing.ID); err != nil {
			return entities.BudgetRequest{}, err
		}
	}

	total := in.TotalBudgetCents
	if len(in.Breakdown) > 0 {
		// The breakdown is the source of truth for the total.
		var sum int64
		for _, s := range in.Breakdown {
			if s.AmountCents <= 0 {
				return entities.BudgetRequest{}, ErrInvalidBudget
			}
			sum += s.AmountCents
		}
		total = sum
	}
	if total <= 0 {
		return entities.BudgetRequest{}, ErrInvalidBudget
	}

	b := entities.BudgetRequest{
		ID:               uuid.NewString(),
		ProjectID:        in.ProjectID,
		NgoID:            in.NgoID,
		Title:            in.Title,
		Details:          in.Details,
		TotalBudgetCents: total,
		Breakdown:        in.Breakdown,
		Approval:         entities.NewApproval(time.Now().UTC()),
	}
	return u.repo.Create(ctx, b)
}

func (u *BudgetRequestUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.BudgetRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetRequest{}, ErrInvalidRequestID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if b.ID == "" {
		return entities.BudgetRequest{}, ErrBudgetRequestNotFound
	}
	if err := authorizeOwner(actor, b.NgoID); err != nil {
		return entities.BudgetRequest{}, err
	}
	return b, nil
}

func (u *BudgetRequestUseCase) GetByProjectAndNgo(ctx context.Context, actor entities.Actor, projectID, ngoID string) (entities.BudgetRequest, error) {
	projectID = strings.TrimSpace(projectID)
	ngoID = strings.TrimSpace(ngoID)
	if projectID == "" {
		return entities.BudgetRequest{}, ErrInvalidProjectID
	}
	if ngoID == "" {
		return entities.BudgetRequest{}, ErrInvalidNgoID
	}
	if err := authorizeOwner(actor, ngoID); err != nil {
		return entities.BudgetRequest{}, err
	}
	b, err := u.repo.GetByProjectAndNgo(ctx, projectID, ngoID)
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if b.ID == "" {
		return entities.BudgetRequest{}, ErrBudgetRequestNotFound
	}
	return b, nil
}

func (u *BudgetRequestUseCase) ListByProject(ctx context.Context, actor entities.Actor, projectID string) ([]entities.BudgetRequest, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	if actor.Role == entities.RoleNGO {
		return nil, ErrUnauthorized
	}
	return u.repo.ListByProject(ctx, projectID)
}

func (u *BudgetRequestUseCase) ListByNgo(ctx context.Context, actor entities.Actor, ngoID string) ([]entities.BudgetRequest, error) {
	ngoID = strings.TrimSpace(ngoID)
	if ngoID == "" {
		return nil, ErrInvalidNgoID
	}
	if err := authorizeOwner(actor, ngoID); err != nil {
		return nil, err
	}
	return u.repo.ListByNgo(ctx, ngoID)
}

// ListPendingForManager returns PENDING_PM requests in the projects the
// acting manager is assigned to.
func (u *BudgetRequestUseCase) ListPendingForManager(ctx context.Context, actor entities.Actor) ([]entities.BudgetRequest, error) {
	if err := authorize(actor, entities.ActionApprovePM); err != nil {
		return nil, err
	}
	projectIDs, err := u.projects.ListProjectIDsForManager(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	pending := make([]entities.BudgetRequest, 0)
	for _, pid := range projectIDs {
		list, err := u.repo.ListByProject(ctx, pid)
		if err != nil {
			return nil, err
		}
		for _, b := range list {
			if b.IsPendingPM() {
				pending = append(pending, b)
			}
		}
	}
	return pending, nil
}

func (u *BudgetRequestUseCase) ListPendingForAdmin(ctx context.Context, actor entities.Actor) ([]entities.BudgetRequest, error) {
	if err := authorize(actor, entities.ActionApproveAdmin); err != nil {
		return nil, err
	}
	return u.repo.ListByStatus(ctx, entities.StatusPendingAdmin)
}

// ApproveByPM advances the request and optionally attaches the expense
// schema dependent utilization records will be validated against.
func (u *BudgetRequestUseCase) ApproveByPM(ctx context.Context, actor entities.Actor, id string, format entities.ExpenseSchema) (entities.BudgetRequest, error) {
	if err := authorize(actor, entities.ActionApprovePM); err != nil {
		return entities.BudgetRequest{}, err
	}
	b, err := u.get(ctx, id)
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if err := b.Approval.ApproveByPM(time.Now().UTC()); err != nil {
		return entities.BudgetRequest{}, err
	}
	if len(format) > 0 {
		if err := format.Validate(); err != nil {
			return entities.BudgetRequest{}, ErrInvalidSchema
		}
		b.ExpenseFormat = format
	}
	return u.update(ctx, b)
}

func (u *BudgetRequestUseCase) ApproveByAdmin(ctx context.Context, actor entities.Actor, id string) (entities.BudgetRequest, error) {
	if err := authorize(actor, entities.ActionApproveAdmin); err != nil {
		return entities.BudgetRequest{}, err
	}
	b, err := u.get(ctx, id)
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if err := b.Approval.ApproveByAdmin(time.Now().UTC()); err != nil {
		return entities.BudgetRequest{}, err
	}
	return u.update(ctx, b)
}

func (u *BudgetRequestUseCase) Reject(ctx context.Context, actor entities.Actor, id, reason string) (entities.BudgetRequest, error) {
	if err := authorize(actor, entities.ActionReject); err != nil {
		return entities.BudgetRequest{}, err
	}
	b, err := u.get(ctx, id)
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if err := b.Approval.Reject(strings.TrimSpace(reason), time.Now().UTC()); err != nil {
		return entities.BudgetRequest{}, err
	}
	return u.update(ctx, b)
}

func (u *BudgetRequestUseCase) get(ctx context.Context, id string) (entities.BudgetRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetRequest{}, ErrInvalidRequestID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if b.ID == "" {
		return entities.BudgetRequest{}, ErrBudgetRequestNotFound
	}
	return b, nil
}

func (u *BudgetRequestUseCase) update(ctx context.Context, b entities.BudgetRequest) (entities.BudgetRequest, error) {
	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if updated.ID == "" {
		return entities.BudgetRequest{}, ErrBudgetRequestNotFound
	}
	return updated, nil
}
