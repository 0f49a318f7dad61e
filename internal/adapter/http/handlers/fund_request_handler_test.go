package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"grantflow/internal/adapter/http/handlers/mocks"
	"grantflow/internal/domain/entities"
	"grantflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestFundRequestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFundRequestUseCase(ctrl)
		h := NewFundRequestHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), usecase.CreateFundRequestInput{
			BudgetRequestID: "b-1",
			NgoID:           "ngo-1",
			Title:           "Q1 funds",
			AmountCents:     4000,
		}).Return(entities.FundRequest{
			ID:              "f-1",
			BudgetRequestID: "b-1",
			NgoID:           "ngo-1",
			Title:           "Q1 funds",
			AmountCents:     4000,
			Approval:        entities.Approval{Status: entities.StatusPendingPM},
		}, nil)

		r := gin.New()
		r.POST("/v1/fund-requests", h.CreateFundRequest)

		body := `{"budget_request_id":"b-1","ngo_id":"ngo-1","title":"Q1 funds","amount_cents":4000}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/fund-requests", bytes.NewBufferString(body)), "ngo-1", "NGO")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("budget exceeded carries diagnostics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFundRequestUseCase(ctrl)
		h := NewFundRequestHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.FundRequest{}, &usecase.BudgetExceededError{
			UsedCents:      6000,
			CandidateCents: 5000,
			CeilingCents:   10000,
		})

		r := gin.New()
		r.POST("/v1/fund-requests", h.CreateFundRequest)

		body := `{"budget_request_id":"b-1","ngo_id":"ngo-1","title":"Q2 funds","amount_cents":5000}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/fund-requests", bytes.NewBufferString(body)), "ngo-1", "NGO")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Code != "BUDGET_EXCEEDED" {
			t.Fatalf("expected BUDGET_EXCEEDED, got %s", resp.Code)
		}
		if resp.Details["used_cents"].(float64) != 6000 {
			t.Fatalf("unexpected details: %v", resp.Details)
		}
	})

	t.Run("unapproved parent conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFundRequestUseCase(ctrl)
		h := NewFundRequestHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.FundRequest{}, usecase.ErrParentBudgetNotApproved)

		r := gin.New()
		r.POST("/v1/fund-requests", h.CreateFundRequest)

		body := `{"budget_request_id":"b-1","ngo_id":"ngo-1","title":"Q1 funds","amount_cents":4000}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/fund-requests", bytes.NewBufferString(body)), "ngo-1", "NGO")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestFundRequestHandler_Resubmit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("resubmitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFundRequestUseCase(ctrl)
		h := NewFundRequestHandler(uc)

		uc.EXPECT().Resubmit(gomock.Any(), gomock.Any(), "f-1", usecase.ResubmitFundRequestInput{
			Title:       "Fixed",
			AmountCents: 3000,
		}).Return(entities.FundRequest{
			ID:       "f-1",
			Approval: entities.Approval{Status: entities.StatusPendingPM},
		}, nil)

		r := gin.New()
		r.PUT("/v1/fund-requests/:id/resubmit", h.ResubmitFundRequest)

		body := `{"title":"Fixed","amount_cents":3000}`
		req := withActor(httptest.NewRequest(http.MethodPut, "/v1/fund-requests/f-1/resubmit", bytes.NewBufferString(body)), "ngo-1", "NGO")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("not rejected conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFundRequestUseCase(ctrl)
		h := NewFundRequestHandler(uc)

		uc.EXPECT().Resubmit(gomock.Any(), gomock.Any(), "f-1", gomock.Any()).Return(entities.FundRequest{}, usecase.ErrFundRequestNotResubmission)

		r := gin.New()
		r.PUT("/v1/fund-requests/:id/resubmit", h.ResubmitFundRequest)

		body := `{"title":"Fixed","amount_cents":3000}`
		req := withActor(httptest.NewRequest(http.MethodPut, "/v1/fund-requests/f-1/resubmit", bytes.NewBufferString(body)), "ngo-1", "NGO")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestFundRequestHandler_ApproveByAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFundRequestUseCase(ctrl)
		h := NewFundRequestHandler(uc)

		uc.EXPECT().ApproveByAdmin(gomock.Any(), entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}, "f-1").Return(entities.FundRequest{
			ID:       "f-1",
			Approval: entities.Approval{Status: entities.StatusApproved},
		}, nil)

		r := gin.New()
		r.PATCH("/v1/fund-requests/:id/approve-admin", h.ApproveByAdmin)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/fund-requests/f-1/approve-admin", nil), "admin-1", "ADMIN")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("forbidden for pm", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFundRequestUseCase(ctrl)
		h := NewFundRequestHandler(uc)

		uc.EXPECT().ApproveByAdmin(gomock.Any(), gomock.Any(), "f-1").Return(entities.FundRequest{}, usecase.ErrUnauthorized)

		r := gin.New()
		r.PATCH("/v1/fund-requests/:id/approve-admin", h.ApproveByAdmin)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/fund-requests/f-1/approve-admin", nil), "pm-1", "PROJECT_MANAGER")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("concurrent modification conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFundRequestUseCase(ctrl)
		h := NewFundRequestHandler(uc)

		uc.EXPECT().ApproveByAdmin(gomock.Any(), gomock.Any(), "f-1").Return(entities.FundRequest{}, entities.ErrConcurrentModification)

		r := gin.New()
		r.PATCH("/v1/fund-requests/:id/approve-admin", h.ApproveByAdmin)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/fund-requests/f-1/approve-admin", nil), "admin-1", "ADMIN")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
