package interfaces

import (
	"context"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The checkout service must be able to:
//   - create an order during checkout
//   - attach the gateway charge id once the charge exists
//   - update status by order id when the webhook reports a payment event
//   - resolve the order a webhook event belongs to via its charge id

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByChargeID(ctx context.Context, chargeID string) (entities.Order, error)
	AttachCharge(ctx context.Context, orderID, chargeID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.PaymentStatus, rawStatus string) (entities.Order, error)
}
