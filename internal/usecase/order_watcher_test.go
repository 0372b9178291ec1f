package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
	mock_interfaces "github.com/andressagonsalvespereira/0504MINE/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderStatusWatcher_StopsOnTerminalStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	w := NewOrderStatusWatcher(orders, WithWatchInterval(time.Millisecond), WithWatchCeiling(time.Second))

	// Two pending reads, then a raw rejection token; no fetches afterwards.
	gomock.InOrder(
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: "PENDING"}, nil),
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: "PENDING"}, nil),
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: "RECUSADO"}, nil),
	)

	status, err := w.Watch(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != entities.PaymentStatusRejected {
		t.Fatalf("expected REJECTED, got %s", status)
	}
}

func TestOrderStatusWatcher_ConfirmedStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	w := NewOrderStatusWatcher(orders, WithWatchInterval(time.Millisecond), WithWatchCeiling(time.Second))

	orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: "paid"}, nil)

	status, err := w.Watch(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != entities.PaymentStatusConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", status)
	}
}

func TestOrderStatusWatcher_CeilingYieldsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	w := NewOrderStatusWatcher(orders, WithWatchInterval(time.Millisecond), WithWatchCeiling(10*time.Millisecond))

	orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: "PENDING"}, nil).AnyTimes()

	status, err := w.Watch(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != entities.PaymentStatusPending {
		t.Fatalf("expected PENDING after ceiling, got %s", status)
	}
}

func TestOrderStatusWatcher_ContextCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	w := NewOrderStatusWatcher(orders, WithWatchInterval(50*time.Millisecond), WithWatchCeiling(time.Minute))

	orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: "PENDING"}, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := w.Watch(ctx, "ord-1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOrderStatusWatcher_UnknownOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	w := NewOrderStatusWatcher(orders, WithWatchInterval(time.Millisecond))

	orders.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Order{}, nil)

	_, err := w.Watch(context.Background(), "ghost")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
