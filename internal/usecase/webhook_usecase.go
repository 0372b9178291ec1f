package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase/interfaces"
)

var (
	ErrInvalidWebhookPayload = errors.New("invalid webhook payload")
)

// WebhookEvent is the decoded gateway notification. Event names vary across
// Asaas API generations ("payment.received" vs "PAYMENT_RECEIVED"); both spellings
// are recognized.
type WebhookEvent struct {
	Event         string
	PaymentID     string
	PaymentStatus string
}

// IWebhookUseCase turns an external gateway event into at most one order mutation.

type IWebhookUseCase interface {
	ProcessEvent(ctx context.Context, evt WebhookEvent) (entities.Order, bool, error)
}

type WebhookUseCase struct {
	orders interfaces.IOrderRepository
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(orders interfaces.IOrderRepository) *WebhookUseCase {
	return &WebhookUseCase{orders: orders}
}

// ProcessEvent updates the order linked to the event's charge id. The stored
// status is always the canonical form of the gateway's raw status, written
// through the terminal-state transition guard; the raw text is kept in the
// order's audit field. The bool result reports whether an order was mutated:
// unrecognized events and unknown charge ids are acknowledged no-ops so the
// gateway does not redeliver them.
func (u *WebhookUseCase) ProcessEvent(ctx context.Context, evt WebhookEvent) (entities.Order, bool, error) {
	if !isPaymentEvent(evt.Event) {
		log.Printf("[webhook][usecase] event ignored event=%q", evt.Event)
		return entities.Order{}, false, nil
	}
	if strings.TrimSpace(evt.PaymentID) == "" {
		return entities.Order{}, false, ErrInvalidWebhookPayload
	}
	if u.orders == nil {
		return entities.Order{}, false, errors.New("order repository not configured")
	}

	ord, err := u.orders.GetByChargeID(ctx, evt.PaymentID)
	if err != nil {
		log.Printf("[webhook][usecase] order lookup failed charge_id=%s err=%v", evt.PaymentID, err)
		return entities.Order{}, false, err
	}
	if ord.ID == "" {
		log.Printf("[webhook][usecase] no order linked to charge charge_id=%s; acknowledged", evt.PaymentID)
		return entities.Order{}, false, nil
	}

	next := entities.NormalizeStatus(evt.PaymentStatus)
	applied, ok := ord.Status.Transition(next)
	if !ok {
		log.Printf("[webhook][usecase] transition refused order_id=%s current=%s next=%s raw=%q", ord.ID, ord.Status, next, evt.PaymentStatus)
		return ord, false, nil
	}
	if applied == ord.Status && ord.RawStatus == evt.PaymentStatus {
		log.Printf("[webhook][usecase] no-op update order_id=%s status=%s", ord.ID, ord.Status)
		return ord, false, nil
	}

	updated, err := u.orders.UpdateStatus(ctx, ord.ID, applied, evt.PaymentStatus)
	if err != nil {
		log.Printf("[webhook][usecase] status update failed order_id=%s err=%v", ord.ID, err)
		return entities.Order{}, false, err
	}
	log.Printf("[webhook][usecase] order updated order_id=%s charge_id=%s status=%s raw=%q", updated.ID, evt.PaymentID, updated.Status, evt.PaymentStatus)
	return updated, true, nil
}

func isPaymentEvent(event string) bool {
	switch strings.ToUpper(strings.TrimSpace(event)) {
	case "PAYMENT.RECEIVED", "PAYMENT_RECEIVED", "PAYMENT_CONFIRMED":
		return true
	}
	return false
}
