package usecase

import (
	"context"
	"errors"
	"testing"

	"grantflow/internal/domain/entities"
	mock_interfaces "grantflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedBudget(id string, totalCents int64) entities.BudgetRequest {
	return entities.BudgetRequest{
		ID:               id,
		ProjectID:        "p-1",
		NgoID:            "ngo-1",
		TotalBudgetCents: totalCents,
		Approval:         entities.Approval{Status: entities.StatusApproved},
	}
}

func TestFundRequestUseCase_Create(t *testing.T) {
	t.Run("only ngo can submit", func(t *testing.T) {
		uc := NewFundRequestUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), adminActor, CreateFundRequestInput{BudgetRequestID: "b-1", NgoID: "ngo-1", Title: "Q1 funds", AmountCents: 100})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("amount must be positive", func(t *testing.T) {
		uc := NewFundRequestUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), ngoActor, CreateFundRequestInput{BudgetRequestID: "b-1", NgoID: "ngo-1", Title: "Q1 funds", AmountCents: 0})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("parent must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgetRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		uc := NewFundRequestUseCase(nil, budgetRepo, nil, nil)

		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.BudgetRequest{}, nil)

		_, err := uc.Create(context.Background(), ngoActor, CreateFundRequestInput{BudgetRequestID: "b-1", NgoID: "ngo-1", Title: "Q1 funds", AmountCents: 100})
		if !errors.Is(err, ErrBudgetRequestNotFound) {
			t.Fatalf("expected ErrBudgetRequestNotFound, got %v", err)
		}
	})

	t.Run("parent must be approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgetRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		uc := NewFundRequestUseCase(nil, budgetRepo, nil, nil)

		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.BudgetRequest{
			ID:       "b-1",
			Approval: entities.Approval{Status: entities.StatusPendingAdmin},
		}, nil)

		_, err := uc.Create(context.Background(), ngoActor, CreateFundRequestInput{BudgetRequestID: "b-1", NgoID: "ngo-1", Title: "Q1 funds", AmountCents: 100})
		if !errors.Is(err, ErrParentBudgetNotApproved) {
			t.Fatalf("expected ErrParentBudgetNotApproved, got %v", err)
		}
	})

	t.Run("rejects amount over remaining budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFundRequestRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		uc := NewFundRequestUseCase(repo, budgetRepo, nil, nil)

		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget("b-1", 10000), nil)
		repo.EXPECT().ListByBudgetRequest(gomock.Any(), "b-1").Return([]entities.FundRequest{
			{ID: "f-1", AmountCents: 6000, Approval: entities.Approval{Status: entities.StatusApproved}},
		}, nil)

		_, err := uc.Create(context.Background(), ngoActor, CreateFundRequestInput{BudgetRequestID: "b-1", NgoID: "ngo-1", Title: "Q2 funds", AmountCents: 5000})
		if !errors.Is(err, ErrBudgetExceeded) {
			t.Fatalf("expected ErrBudgetExceeded, got %v", err)
		}
		var exceeded *BudgetExceededError
		if !errors.As(err, &exceeded) {
			t.Fatalf("expected BudgetExceededError, got %T", err)
		}
		if exceeded.UsedCents != 6000 || exceeded.CandidateCents != 5000 || exceeded.CeilingCents != 10000 {
			t.Fatalf("unexpected diagnostics: %+v", exceeded)
		}
	})

	t.Run("rejected siblings do not count against the budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFundRequestRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		uc := NewFundRequestUseCase(repo, budgetRepo, nil, nil)

		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget("b-1", 10000), nil)
		repo.EXPECT().ListByBudgetRequest(gomock.Any(), "b-1").Return([]entities.FundRequest{
			{ID: "f-1", AmountCents: 6000, Approval: entities.Approval{Status: entities.StatusRejected}},
			{ID: "f-2", AmountCents: 4000, Approval: entities.Approval{Status: entities.StatusPendingPM}},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.FundRequest{})).DoAndReturn(
			func(_ context.Context, f entities.FundRequest) (entities.FundRequest, error) {
				return f, nil
			})

		// 4000 pending + 6000 candidate = 10000, exactly the ceiling.
		created, err := uc.Create(context.Background(), ngoActor, CreateFundRequestInput{BudgetRequestID: "b-1", NgoID: "ngo-1", Title: "Q2 funds", AmountCents: 6000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.StatusPendingPM {
			t.Fatalf("expected PENDING_PM, got %s", created.Status)
		}
	})
}

func TestFundRequestUseCase_Resubmit(t *testing.T) {
	t.Run("only rejected requests can be resubmitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFundRequestRepository(ctrl)
		uc := NewFundRequestUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "f-1").Return(entities.FundRequest{
			ID:       "f-1",
			NgoID:    "ngo-1",
			Approval: entities.Approval{Status: entities.StatusPendingPM},
		}, nil)

		_, err := uc.Resubmit(context.Background(), ngoActor, "f-1", ResubmitFundRequestInput{Title: "Fixed", AmountCents: 100})
		if !errors.Is(err, ErrFundRequestNotResubmission) {
			t.Fatalf("expected ErrFundRequestNotResubmission, got %v", err)
		}
	})

	t.Run("owner only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFundRequestRepository(ctrl)
		uc := NewFundRequestUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "f-1").Return(entities.FundRequest{
			ID:       "f-1",
			NgoID:    "ngo-2",
			Approval: entities.Approval{Status: entities.StatusRejected},
		}, nil)

		_, err := uc.Resubmit(context.Background(), ngoActor, "f-1", ResubmitFundRequestInput{Title: "Fixed", AmountCents: 100})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("conservation excludes own prior amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFundRequestRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		uc := NewFundRequestUseCase(repo, budgetRepo, nil, nil)

		rejected := entities.FundRequest{
			ID:              "f-2",
			BudgetRequestID: "b-1",
			NgoID:           "ngo-1",
			AmountCents:     5000,
			Approval:        entities.Approval{Status: entities.StatusRejected, RejectionReason: "too high"},
		}
		repo.EXPECT().GetByID(gomock.Any(), "f-2").Return(rejected, nil)
		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget("b-1", 10000), nil)
		repo.EXPECT().ListByBudgetRequest(gomock.Any(), "b-1").Return([]entities.FundRequest{
			{ID: "f-1", AmountCents: 6000, Approval: entities.Approval{Status: entities.StatusApproved}},
			rejected,
		}, nil)

		// 6000 used + 4500 candidate > 10000 even with f-2 excluded.
		_, err := uc.Resubmit(context.Background(), ngoActor, "f-2", ResubmitFundRequestInput{Title: "Fixed", AmountCents: 4500})
		if !errors.Is(err, ErrBudgetExceeded) {
			t.Fatalf("expected ErrBudgetExceeded, got %v", err)
		}
	})

	t.Run("successful resubmission clears the rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFundRequestRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		uc := NewFundRequestUseCase(repo, budgetRepo, nil, nil)

		rejected := entities.FundRequest{
			ID:              "f-2",
			BudgetRequestID: "b-1",
			NgoID:           "ngo-1",
			AmountCents:     5000,
			Approval:        entities.Approval{Status: entities.StatusRejected, RejectionReason: "too high"},
		}
		repo.EXPECT().GetByID(gomock.Any(), "f-2").Return(rejected, nil)
		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget("b-1", 10000), nil)
		repo.EXPECT().ListByBudgetRequest(gomock.Any(), "b-1").Return([]entities.FundRequest{
			{ID: "f-1", AmountCents: 6000, Approval: entities.Approval{Status: entities.StatusApproved}},
			rejected,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.FundRequest{})).DoAndReturn(
			func(_ context.Context, f entities.FundRequest) (entities.FundRequest, error) {
				return f, nil
			})

		updated, err := uc.Resubmit(context.Background(), ngoActor, "f-2", ResubmitFundRequestInput{Title: "Fixed", AmountCents: 4000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.StatusPendingPM {
			t.Fatalf("expected PENDING_PM, got %s", updated.Status)
		}
		if updated.RejectionReason != "" {
			t.Fatalf("expected rejection reason cleared, got %q", updated.RejectionReason)
		}
		if updated.AmountCents != 4000 || updated.Title != "Fixed" {
			t.Fatalf("unexpected fields: %d %q", updated.AmountCents, updated.Title)
		}
	})
}

func TestFundRequestUseCase_ApproveByAdmin(t *testing.T) {
	t.Run("disbursement failure does not block the approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFundRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIDisbursementGateway(ctrl)
		uc := NewFundRequestUseCase(repo, nil, nil, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "f-1").Return(entities.FundRequest{
			ID:          "f-1",
			NgoID:       "ngo-1",
			AmountCents: 4000,
			Approval:    entities.Approval{Status: entities.StatusPendingAdmin},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.FundRequest{})).DoAndReturn(
			func(_ context.Context, f entities.FundRequest) (entities.FundRequest, error) {
				return f, nil
			})
		gateway.EXPECT().Disburse(gomock.Any(), "f-1", int64(4000), "ngo-1").Return("", "", errors.New("gateway down"))

		updated, err := uc.ApproveByAdmin(context.Background(), adminActor, "f-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.IsApproved() {
			t.Fatalf("expected APPROVED, got %s", updated.Status)
		}
	})

	t.Run("no gateway configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFundRequestRepository(ctrl)
		uc := NewFundRequestUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "f-1").Return(entities.FundRequest{
			ID:       "f-1",
			Approval: entities.Approval{Status: entities.StatusPendingAdmin},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.FundRequest{})).DoAndReturn(
			func(_ context.Context, f entities.FundRequest) (entities.FundRequest, error) {
				return f, nil
			})

		if _, err := uc.ApproveByAdmin(context.Background(), adminActor, "f-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cannot skip the pm stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFundRequestRepository(ctrl)
		uc := NewFundRequestUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "f-1").Return(entities.FundRequest{
			ID:       "f-1",
			Approval: entities.Approval{Status: entities.StatusPendingPM},
		}, nil)

		_, err := uc.ApproveByAdmin(context.Background(), adminActor, "f-1")
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestFundRequestUseCase_ListPendingForManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIFundRequestRepository(ctrl)
	budgetRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
	projects := mock_interfaces.NewMockIProjectDirectory(ctrl)
	uc := NewFundRequestUseCase(repo, budgetRepo, projects, nil)

	projects.EXPECT().ListProjectIDsForManager(gomock.Any(), "pm-1").Return([]string{"p-1"}, nil)
	budgetRepo.EXPECT().ListByProject(gomock.Any(), "p-1").Return([]entities.BudgetRequest{
		approvedBudget("b-1", 10000),
		{ID: "b-2", Approval: entities.Approval{Status: entities.StatusPendingAdmin}},
	}, nil)
	repo.EXPECT().ListByBudgetRequest(gomock.Any(), "b-1").Return([]entities.FundRequest{
		{ID: "f-1", Approval: entities.Approval{Status: entities.StatusPendingPM}},
		{ID: "f-2", Approval: entities.Approval{Status: entities.StatusApproved}},
	}, nil)

	pending, err := uc.ListPendingForManager(context.Background(), pmActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "f-1" {
		t.Fatalf("unexpected pending set: %+v", pending)
	}
}
