package interfaces

import (
	"context"
	"encoding/json"
	"fmt"
)

// IPaymentGateway abstracts the external payment provider (Asaas).
//
// The checkout service uses it to create a customer, create a charge, fetch the
// PIX presentation payload and cancel a charge. Provider-side rejections surface
// as *GatewayError so handlers can propagate the original status code and body.
type IPaymentGateway interface {
	CreateCustomer(ctx context.Context, req GatewayCustomerRequest) (GatewayCustomerResponse, error)
	CreateCharge(ctx context.Context, req GatewayChargeRequest) (GatewayChargeResponse, error)
	GetPixQRCode(ctx context.Context, chargeID string) (GatewayPixQRCodeResponse, error)
	CancelCharge(ctx context.Context, chargeID string) (json.RawMessage, error)
}

type GatewayCustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CpfCnpj     string `json:"cpfCnpj"`
	MobilePhone string `json:"mobilePhone,omitempty"`
}

type GatewayCustomerResponse struct {
	ID string `json:"id"`
}

type GatewayChargeRequest struct {
	Customer          string  `json:"customer"`
	BillingType       string  `json:"billingType"`
	Value             float64 `json:"value"`
	DueDate           string  `json:"dueDate,omitempty"`
	Description       string  `json:"description,omitempty"`
	ExternalReference string  `json:"externalReference,omitempty"`
}

// GatewayChargeResponse keeps Raw alongside the parsed fields so the handler can
// return the provider payload verbatim, merged with the presentation block.
type GatewayChargeResponse struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	Value       float64         `json:"value"`
	BillingType string          `json:"billingType"`
	InvoiceURL  string          `json:"invoiceUrl,omitempty"`
	Raw         json.RawMessage `json:"-"`
}

type GatewayPixQRCodeResponse struct {
	EncodedImage   string `json:"encodedImage"`
	Payload        string `json:"payload"`
	ExpirationDate string `json:"expirationDate"`
}

// GatewayError carries the provider's HTTP status code and error body verbatim.
// It is never transformed: the caller may need the provider's own diagnostics
// (e.g. Asaas field-level validation messages).
type GatewayError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error: status=%d body=%s", e.StatusCode, string(e.Body))
}
