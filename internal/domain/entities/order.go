package entities

import "time"

// Order is the checkout order the webhook mutates and the status watcher reads.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (charge_id-index): charge_id
//
// Status is canonical (see NormalizeStatus); RawStatus is the last raw gateway
// text, retained as an audit trail of what the webhook actually received.
type Order struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customer_name"`
	CustomerEmail   string        `json:"customer_email"`
	CustomerCpfCnpj string        `json:"customer_cpf_cnpj"`
	CustomerPhone   string        `json:"customer_phone,omitempty"`
	ProductName     string        `json:"product_name"`
	Price           float64       `json:"price"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	ChargeID        string        `json:"charge_id,omitempty"`
	Status          PaymentStatus `json:"status"`
	RawStatus       string        `json:"raw_status,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
