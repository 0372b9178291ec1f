package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
	mock_interfaces "github.com/andressagonsalvespereira/0504MINE/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("missing customer data", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{CustomerName: " ", Price: 10})
		if !errors.Is(err, ErrInvalidOrderReq) {
			t.Fatalf("expected ErrInvalidOrderReq, got %v", err)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{CustomerName: "a", CustomerEmail: "a@b.c", Price: 0})
		if !errors.Is(err, ErrInvalidOrderReq) {
			t.Fatalf("expected ErrInvalidOrderReq, got %v", err)
		}
	})

	t.Run("success starts pending with generated id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders)

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			return o, nil
		})

		created, err := uc.CreateOrder(context.Background(), CreateOrderCommand{
			CustomerName:  "Cliente",
			CustomerEmail: "c@t.com",
			ProductName:   "Assinatura",
			Price:         19.90,
			PaymentMethod: entities.PaymentMethodPix,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated order id")
		}
		if created.Status != entities.PaymentStatusPending {
			t.Fatalf("expected PENDING, got %s", created.Status)
		}
	})
}

func TestOrderUseCase_GetStatus(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders)

		orders.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Order{}, nil)

		_, err := uc.GetStatus(context.Background(), "ghost")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("legacy raw value normalizes on read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: "RECEIVED"}, nil)

		status, err := uc.GetStatus(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.PaymentStatusConfirmed {
			t.Fatalf("expected CONFIRMED, got %s", status)
		}
	})
}
