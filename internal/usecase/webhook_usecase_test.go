package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
	mock_interfaces "github.com/andressagonsalvespereira/0504MINE/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWebhookUseCase_ProcessEvent(t *testing.T) {
	t.Run("payment received confirms the linked order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewWebhookUseCase(orders)

		orders.EXPECT().GetByChargeID(gomock.Any(), "abc123").Return(entities.Order{ID: "ord-1", ChargeID: "abc123", Status: entities.PaymentStatusPending}, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.PaymentStatusConfirmed, "RECEIVED").
			Return(entities.Order{ID: "ord-1", ChargeID: "abc123", Status: entities.PaymentStatusConfirmed, RawStatus: "RECEIVED"}, nil)

		updated, processed, err := uc.ProcessEvent(context.Background(), WebhookEvent{Event: "payment.received", PaymentID: "abc123", PaymentStatus: "RECEIVED"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !processed {
			t.Fatalf("expected event to be processed")
		}
		if entities.NormalizeStatus(string(updated.Status)) != entities.PaymentStatusConfirmed {
			t.Fatalf("stored status must normalize to CONFIRMED, got %s", updated.Status)
		}
	})

	t.Run("uppercase event spelling is recognized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewWebhookUseCase(orders)

		orders.EXPECT().GetByChargeID(gomock.Any(), "abc123").Return(entities.Order{ID: "ord-1", Status: entities.PaymentStatusPending}, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.PaymentStatusConfirmed, "CONFIRMED").
			Return(entities.Order{ID: "ord-1", Status: entities.PaymentStatusConfirmed}, nil)

		_, processed, err := uc.ProcessEvent(context.Background(), WebhookEvent{Event: "PAYMENT_CONFIRMED", PaymentID: "abc123", PaymentStatus: "CONFIRMED"})
		if err != nil || !processed {
			t.Fatalf("expected processed event, got processed=%v err=%v", processed, err)
		}
	})

	t.Run("other events are acknowledged no-ops", func(t *testing.T) {
		uc := NewWebhookUseCase(nil)
		_, processed, err := uc.ProcessEvent(context.Background(), WebhookEvent{Event: "payment.updated", PaymentID: "abc123", PaymentStatus: "RECEIVED"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if processed {
			t.Fatalf("unrecognized event must not mutate state")
		}
	})

	t.Run("missing payment id", func(t *testing.T) {
		uc := NewWebhookUseCase(nil)
		_, _, err := uc.ProcessEvent(context.Background(), WebhookEvent{Event: "payment.received"})
		if !errors.Is(err, ErrInvalidWebhookPayload) {
			t.Fatalf("expected ErrInvalidWebhookPayload, got %v", err)
		}
	})

	t.Run("unknown charge id is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewWebhookUseCase(orders)

		orders.EXPECT().GetByChargeID(gomock.Any(), "nope").Return(entities.Order{}, nil)

		_, processed, err := uc.ProcessEvent(context.Background(), WebhookEvent{Event: "payment.received", PaymentID: "nope", PaymentStatus: "RECEIVED"})
		if err != nil || processed {
			t.Fatalf("expected acknowledged no-op, got processed=%v err=%v", processed, err)
		}
	})

	t.Run("storage failure propagates for gateway redelivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewWebhookUseCase(orders)

		orders.EXPECT().GetByChargeID(gomock.Any(), "abc123").Return(entities.Order{ID: "ord-1", Status: entities.PaymentStatusPending}, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.PaymentStatusConfirmed, "RECEIVED").Return(entities.Order{}, errors.New("db"))

		_, _, err := uc.ProcessEvent(context.Background(), WebhookEvent{Event: "payment.received", PaymentID: "abc123", PaymentStatus: "RECEIVED"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("terminal order never reverts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewWebhookUseCase(orders)

		orders.EXPECT().GetByChargeID(gomock.Any(), "abc123").Return(entities.Order{ID: "ord-1", Status: entities.PaymentStatusConfirmed}, nil)

		ord, processed, err := uc.ProcessEvent(context.Background(), WebhookEvent{Event: "payment.received", PaymentID: "abc123", PaymentStatus: "PENDING"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if processed {
			t.Fatalf("refused transition must not count as processed")
		}
		if ord.Status != entities.PaymentStatusConfirmed {
			t.Fatalf("terminal status must be preserved, got %s", ord.Status)
		}
	})
}
