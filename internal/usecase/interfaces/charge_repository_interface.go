package interfaces

import (
	"context"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
)

// IChargeRepository abstracts DynamoDB persistence for Charge.
//
// Lookups return a zero-value entity (empty ID) when nothing matches; errors are
// reserved for storage failures.

type IChargeRepository interface {
	Create(ctx context.Context, c entities.Charge) (entities.Charge, error)
	GetByID(ctx context.Context, id string) (entities.Charge, error)
	GetByIdempotencyKey(ctx context.Context, key string) (entities.Charge, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Charge, error)
}
