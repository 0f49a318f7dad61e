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

func TestUtilizationHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUtilizationUseCase(ctrl)
		h := NewUtilizationHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateUtilizationInput{})).Return(entities.UtilizationRecord{
			ID:            "u-1",
			FundRequestID: "f-1",
			NgoID:         "ngo-1",
			Title:         "Receipts",
			AmountCents:   2500,
			Status:        entities.UtilizationStatusSubmitted,
		}, nil)

		r := gin.New()
		r.POST("/v1/utilizations", h.CreateUtilization)

		body := `{"fund_request_id":"f-1","ngo_id":"ngo-1","title":"Receipts","amount_cents":2500,"custom_data":{"invoice_number":"INV-1"}}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/utilizations", bytes.NewBufferString(body)), "ngo-1", "NGO")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing required field names the field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUtilizationUseCase(ctrl)
		h := NewUtilizationHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.UtilizationRecord{}, &entities.MissingRequiredFieldError{Field: "invoice_number"})

		r := gin.New()
		r.POST("/v1/utilizations", h.CreateUtilization)

		body := `{"fund_request_id":"f-1","ngo_id":"ngo-1","title":"Receipts","amount_cents":2500,"custom_data":{}}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/utilizations", bytes.NewBufferString(body)), "ngo-1", "NGO")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Code != "MISSING_REQUIRED_FIELD" || resp.Details["field"] != "invoice_number" {
			t.Fatalf("unexpected body: %+v", resp)
		}
	})

	t.Run("unapproved parent conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUtilizationUseCase(ctrl)
		h := NewUtilizationHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.UtilizationRecord{}, usecase.ErrParentFundNotApproved)

		r := gin.New()
		r.POST("/v1/utilizations", h.CreateUtilization)

		body := `{"fund_request_id":"f-1","ngo_id":"ngo-1","title":"Receipts","amount_cents":2500}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/utilizations", bytes.NewBufferString(body)), "ngo-1", "NGO")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestUtilizationHandler_Verify(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUtilizationUseCase(ctrl)
		h := NewUtilizationHandler(uc)

		uc.EXPECT().Verify(gomock.Any(), gomock.Any(), "u-1").Return(entities.UtilizationRecord{
			ID:     "u-1",
			Status: entities.UtilizationStatusVerified,
		}, nil)

		r := gin.New()
		r.PATCH("/v1/utilizations/:id/verify", h.VerifyUtilization)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/utilizations/u-1/verify", nil), "pm-1", "PROJECT_MANAGER")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUtilizationUseCase(ctrl)
		h := NewUtilizationHandler(uc)

		uc.EXPECT().Verify(gomock.Any(), gomock.Any(), "missing").Return(entities.UtilizationRecord{}, usecase.ErrUtilizationNotFound)

		r := gin.New()
		r.PATCH("/v1/utilizations/:id/verify", h.VerifyUtilization)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/utilizations/missing/verify", nil), "pm-1", "PROJECT_MANAGER")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestUtilizationHandler_ListPendingVerification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUtilizationUseCase(ctrl)
	h := NewUtilizationHandler(uc)

	uc.EXPECT().ListPendingVerification(gomock.Any(), gomock.Any()).Return([]entities.UtilizationRecord{{ID: "u-1"}}, nil)

	r := gin.New()
	r.GET("/v1/utilizations/pending", h.ListPendingVerification)

	req := withActor(httptest.NewRequest(http.MethodGet, "/v1/utilizations/pending", nil), "pm-1", "PROJECT_MANAGER")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "u-1" {
		t.Fatalf("unexpected body: %v", resp)
	}
}
