package usecase

import (
	"context"
	"log"
	"time"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase/interfaces"
)

const (
	defaultWatchInterval = 5 * time.Second
	defaultWatchCeiling  = 10 * time.Minute
)

// OrderStatusWatcher polls an order until its status reaches a terminal state.
//
// It is the server-side counterpart of the checkout page's poll loop: one fetch
// at a time (ticks are sequential, a slow fetch never overlaps the next one),
// cooperative cancellation through ctx, and a hard ceiling on total wait. When
// the ceiling expires the watcher reports PENDING so the caller can route to a
// "check back later" state instead of waiting forever.
type OrderStatusWatcher struct {
	orders   interfaces.IOrderRepository
	interval time.Duration
	ceiling  time.Duration
}

type WatcherOption func(*OrderStatusWatcher)

func WithWatchInterval(d time.Duration) WatcherOption {
	return func(w *OrderStatusWatcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

func WithWatchCeiling(d time.Duration) WatcherOption {
	return func(w *OrderStatusWatcher) {
		if d > 0 {
			w.ceiling = d
		}
	}
}

func NewOrderStatusWatcher(orders interfaces.IOrderRepository, opts ...WatcherOption) *OrderStatusWatcher {
	w := &OrderStatusWatcher{
		orders:   orders,
		interval: defaultWatchInterval,
		ceiling:  defaultWatchCeiling,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch checks immediately, then once per interval, normalizing the stored
// status on every read. It returns the terminal status as soon as one is
// observed and issues no further fetches afterwards.
func (w *OrderStatusWatcher) Watch(ctx context.Context, orderID string) (entities.PaymentStatus, error) {
	log.Printf("[watcher] start order_id=%s interval=%s ceiling=%s", orderID, w.interval, w.ceiling)

	deadline := time.Now().Add(w.ceiling)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		status, err := w.check(ctx, orderID)
		if err != nil {
			return "", err
		}
		if status.IsTerminal() {
			log.Printf("[watcher] terminal status observed order_id=%s status=%s", orderID, status)
			return status, nil
		}
		if time.Now().After(deadline) {
			log.Printf("[watcher] ceiling reached order_id=%s; still pending", orderID)
			return entities.PaymentStatusPending, nil
		}

		select {
		case <-ctx.Done():
			log.Printf("[watcher] cancelled order_id=%s err=%v", orderID, ctx.Err())
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *OrderStatusWatcher) check(ctx context.Context, orderID string) (entities.PaymentStatus, error) {
	o, err := w.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[watcher] fetch failed order_id=%s err=%v", orderID, err)
		return "", err
	}
	if o.ID == "" {
		return "", ErrOrderNotFound
	}
	return entities.NormalizeStatus(string(o.Status)), nil
}
