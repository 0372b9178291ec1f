package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/andressagonsalvespereira/0504MINE/internal/adapter/http/handlers/mocks"
	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase"
)

func TestWebhookHandler_HandleAsaasEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("ASAAS_WEBHOOK_TOKEN", "")

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/asaas", h.HandleAsaasEvent)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/asaas", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("payment received updates order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/asaas", h.HandleAsaasEvent)

		uc.EXPECT().ProcessEvent(gomock.Any(), usecase.WebhookEvent{Event: "payment.received", PaymentID: "abc123", PaymentStatus: "RECEIVED"}).
			Return(entities.Order{ID: "ord-1", Status: entities.PaymentStatusConfirmed}, true, nil)

		body := `{"event":"payment.received","payment":{"id":"abc123","status":"RECEIVED"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/asaas", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unrecognized event acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/asaas", h.HandleAsaasEvent)

		uc.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).Return(entities.Order{}, false, nil)

		body := `{"event":"payment.updated","payment":{"id":"abc123","status":"RECEIVED"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/asaas", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for ignored event, got %d", w.Code)
		}
	})

	t.Run("storage failure answers 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/asaas", h.HandleAsaasEvent)

		uc.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).Return(entities.Order{}, false, errors.New("db"))

		body := `{"event":"payment.received","payment":{"id":"abc123","status":"RECEIVED"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/asaas", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("token mismatch rejected without side effects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)
		t.Setenv("ASAAS_WEBHOOK_TOKEN", "secret")

		r := gin.New()
		r.POST("/v1/webhooks/asaas", h.HandleAsaasEvent)

		body := `{"event":"payment.received","payment":{"id":"abc123","status":"RECEIVED"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/asaas", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("asaas-access-token", "wrong")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("matching token accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)
		t.Setenv("ASAAS_WEBHOOK_TOKEN", "secret")

		r := gin.New()
		r.POST("/v1/webhooks/asaas", h.HandleAsaasEvent)

		uc.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).Return(entities.Order{ID: "ord-1", Status: entities.PaymentStatusConfirmed}, true, nil)

		body := `{"event":"payment.received","payment":{"id":"abc123","status":"RECEIVED"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/asaas", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("asaas-access-token", "secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
