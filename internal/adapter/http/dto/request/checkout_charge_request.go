package request

import (
	"strings"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase"
)

// CheckoutChargeRequest is the checkout form payload posted by the storefront.
//
// Field names follow the storefront's checkout form. Earlier client revisions
// sent `phone` instead of `customer_phone`; both are accepted.
type CheckoutChargeRequest struct {
	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerEmail   string  `json:"customer_email" binding:"required"`
	CustomerCpfCnpj string  `json:"customer_cpf" binding:"required"`
	CustomerPhone   string  `json:"customer_phone"`
	Phone           string  `json:"phone"`
	Price           float64 `json:"price" binding:"required"`
	PaymentMethod   string  `json:"payment_method" binding:"required"`
	ProductName     string  `json:"product_name"`
	OrderID         string  `json:"order_id"`
	RequestID       string  `json:"request_id"`
}

func (r CheckoutChargeRequest) ResolvePhone() string {
	if v := strings.TrimSpace(r.CustomerPhone); v != "" {
		return v
	}
	return strings.TrimSpace(r.Phone)
}

// ToCommand translates the wire payload into the use case command.
func (r CheckoutChargeRequest) ToCommand() usecase.CreateChargeCommand {
	return usecase.CreateChargeCommand{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerCpfCnpj: r.CustomerCpfCnpj,
		CustomerPhone:   r.ResolvePhone(),
		Amount:          r.Price,
		Method:          entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(r.PaymentMethod))),
		ProductName:     r.ProductName,
		OrderID:         r.OrderID,
		RequestID:       r.RequestID,
	}
}

// CreateOrderRequest is the checkout-time order payload.
type CreateOrderRequest struct {
	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerEmail   string  `json:"customer_email" binding:"required"`
	CustomerCpfCnpj string  `json:"customer_cpf"`
	CustomerPhone   string  `json:"customer_phone"`
	ProductName     string  `json:"product_name" binding:"required"`
	Price           float64 `json:"price" binding:"required"`
	PaymentMethod   string  `json:"payment_method" binding:"required"`
}

func (r CreateOrderRequest) ToCommand() usecase.CreateOrderCommand {
	return usecase.CreateOrderCommand{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerCpfCnpj: r.CustomerCpfCnpj,
		CustomerPhone:   r.CustomerPhone,
		ProductName:     r.ProductName,
		Price:           r.Price,
		PaymentMethod:   entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(r.PaymentMethod))),
	}
}
