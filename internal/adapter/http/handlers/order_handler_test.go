package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/andressagonsalvespereira/0504MINE/internal/adapter/http/handlers/mocks"
	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"customer_name":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.Order{ID: "ord-1", Status: entities.PaymentStatusPending}, nil)

		body := `{"customer_name":"Cliente","customer_email":"c@t.com","product_name":"Assinatura","price":19.90,"payment_method":"PIX"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["order_id"] != "ord-1" || resp["status"] != "PENDING" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_GetOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id/status", h.GetOrderStatus)

		uc.EXPECT().GetStatus(gomock.Any(), "ghost").Return(entities.PaymentStatus(""), usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ghost/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns canonical status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id/status", h.GetOrderStatus)

		uc.EXPECT().GetStatus(gomock.Any(), "ord-1").Return(entities.PaymentStatusConfirmed, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "CONFIRMED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
