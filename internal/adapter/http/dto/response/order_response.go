package response

import (
	"time"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
)

type OrderResponse struct {
	OrderID       string    `json:"order_id"`
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ProductName   string    `json:"product_name"`
	Price         float64   `json:"price"`
	PaymentMethod string    `json:"payment_method"`
	ChargeID      string    `json:"charge_id,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:       o.ID,
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		ProductName:   o.ProductName,
		Price:         o.Price,
		PaymentMethod: string(o.PaymentMethod),
		ChargeID:      o.ChargeID,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// OrderStatusResponse is the poll-loop payload: just the canonical status.
type OrderStatusResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
