package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrInvalidOrderReq = errors.New("invalid order request")
)

// CreateOrderCommand carries checkout-time order data collected before the
// charge exists.
type CreateOrderCommand struct {
	CustomerName    string
	CustomerEmail   string
	CustomerCpfCnpj string
	CustomerPhone   string
	ProductName     string
	Price           float64
	PaymentMethod   entities.PaymentMethod
}

// IOrderUseCase exposes order creation and the status read the UI polls.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetStatus(ctx context.Context, id string) (entities.PaymentStatus, error)
}

type OrderUseCase struct {
	orders interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error) {
	if strings.TrimSpace(cmd.CustomerName) == "" || strings.TrimSpace(cmd.CustomerEmail) == "" {
		return entities.Order{}, ErrInvalidOrderReq
	}
	if cmd.Price <= 0 {
		return entities.Order{}, ErrInvalidOrderReq
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:              uuid.NewString(),
		CustomerName:    strings.TrimSpace(cmd.CustomerName),
		CustomerEmail:   strings.TrimSpace(cmd.CustomerEmail),
		CustomerCpfCnpj: strings.TrimSpace(cmd.CustomerCpfCnpj),
		CustomerPhone:   strings.TrimSpace(cmd.CustomerPhone),
		ProductName:     strings.TrimSpace(cmd.ProductName),
		Price:           cmd.Price,
		PaymentMethod:   cmd.PaymentMethod,
		Status:          entities.PaymentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := u.orders.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed err=%v", err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] order created order_id=%s", created.ID)
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// GetStatus reads the order and re-normalizes on the way out. Stored status is
// already canonical, but rows written before the normalizer was routed through
// every writer may still carry raw gateway text.
func (u *OrderUseCase) GetStatus(ctx context.Context, id string) (entities.PaymentStatus, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return entities.NormalizeStatus(string(o.Status)), nil
}
