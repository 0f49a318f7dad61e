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

func withActor(req *http.Request, id, role string) *http.Request {
	req.Header.Set("X-Actor-Id", id)
	req.Header.Set("X-Actor-Role", role)
	return req
}

func TestBudgetRequestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		h := NewBudgetRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/budget-requests", h.CreateBudgetRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/budget-requests", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		h := NewBudgetRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/budget-requests", h.CreateBudgetRequest)

		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/budget-requests", bytes.NewBufferString("{")), "ngo-1", "NGO")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		h := NewBudgetRequestHandler(uc)

		uc.EXPECT().Create(gomock.Any(), entities.Actor{ID: "ngo-1", Role: entities.RoleNGO}, gomock.AssignableToTypeOf(usecase.CreateBudgetRequestInput{})).Return(entities.BudgetRequest{
			ID:               "b-1",
			ProjectID:        "p-1",
			NgoID:            "ngo-1",
			Title:            "Water wells",
			TotalBudgetCents: 10000,
			Approval:         entities.Approval{Status: entities.StatusPendingPM},
		}, nil)

		r := gin.New()
		r.POST("/v1/budget-requests", h.CreateBudgetRequest)

		body := `{"project_id":"p-1","ngo_id":"ngo-1","title":"Water wells","total_budget_cents":10000}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/budget-requests", bytes.NewBufferString(body)), "ngo-1", "NGO")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "b-1" || resp["status"] != "PENDING_PM" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("duplicate submission conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		h := NewBudgetRequestHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.BudgetRequest{}, usecase.ErrBudgetRequestExists)

		r := gin.New()
		r.POST("/v1/budget-requests", h.CreateBudgetRequest)

		body := `{"project_id":"p-1","ngo_id":"ngo-1","title":"Water wells","total_budget_cents":10000}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/budget-requests", bytes.NewBufferString(body)), "ngo-1", "NGO")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBudgetRequestHandler_ApproveByPM(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body approves without schema", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		h := NewBudgetRequestHandler(uc)

		uc.EXPECT().ApproveByPM(gomock.Any(), gomock.Any(), "b-1", gomock.Len(0)).Return(entities.BudgetRequest{
			ID:       "b-1",
			Approval: entities.Approval{Status: entities.StatusPendingAdmin},
		}, nil)

		r := gin.New()
		r.PATCH("/v1/budget-requests/:id/approve-pm", h.ApproveByPM)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/budget-requests/b-1/approve-pm", nil), "pm-1", "PROJECT_MANAGER")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid transition conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		h := NewBudgetRequestHandler(uc)

		uc.EXPECT().ApproveByPM(gomock.Any(), gomock.Any(), "b-1", gomock.Any()).Return(entities.BudgetRequest{}, entities.ErrInvalidTransition)

		r := gin.New()
		r.PATCH("/v1/budget-requests/:id/approve-pm", h.ApproveByPM)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/budget-requests/b-1/approve-pm", nil), "pm-1", "PROJECT_MANAGER")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBudgetRequestHandler_Reject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reason is mandatory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		h := NewBudgetRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budget-requests/:id/reject", h.RejectBudgetRequest)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/budget-requests/b-1/reject", bytes.NewBufferString(`{}`)), "admin-1", "ADMIN")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		h := NewBudgetRequestHandler(uc)

		uc.EXPECT().Reject(gomock.Any(), gomock.Any(), "b-1", "over budget").Return(entities.BudgetRequest{
			ID:       "b-1",
			Approval: entities.Approval{Status: entities.StatusRejected, RejectionReason: "over budget"},
		}, nil)

		r := gin.New()
		r.PATCH("/v1/budget-requests/:id/reject", h.RejectBudgetRequest)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/budget-requests/b-1/reject", bytes.NewBufferString(`{"reason":"over budget"}`)), "admin-1", "ADMIN")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBudgetRequestHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("requires a filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		h := NewBudgetRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/budget-requests", h.ListBudgetRequests)

		req := withActor(httptest.NewRequest(http.MethodGet, "/v1/budget-requests", nil), "admin-1", "ADMIN")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		h := NewBudgetRequestHandler(uc)

		uc.EXPECT().ListByProject(gomock.Any(), gomock.Any(), "p-1").Return([]entities.BudgetRequest{{ID: "b-1"}}, nil)

		r := gin.New()
		r.GET("/v1/budget-requests", h.ListBudgetRequests)

		req := withActor(httptest.NewRequest(http.MethodGet, "/v1/budget-requests?project_id=p-1", nil), "admin-1", "ADMIN")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 1 || resp[0]["id"] != "b-1" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}
