package entities

import "time"

// PaymentMethod selects how a charge is collected. Only PIX flows through the
// reconciliation path today; the type exists so card support can be added without
// touching storage.

type PaymentMethod string

const (
	PaymentMethodPix PaymentMethod = "PIX"
)

// QRCodeNotAvailable is the presentation sentinel returned when the best-effort
// PIX QR fetch fails. A charge with this sentinel is still a successful charge.
const QRCodeNotAvailable = "QR_CODE_NOT_AVAILABLE"

// Charge is one payment attempt persisted by the checkout service.
//
// Storage model (DynamoDB):
//   - PK: id (the gateway's charge identifier)
//   - GSI1 (order_id-index): order_id
//   - GSI2 (idempotency_key-index): idempotency_key
//
// Status holds the canonical value; RawStatus keeps the gateway's original text
// for audit only and is never branched on.
type Charge struct {
	ID             string        `json:"id"`
	OrderID        string        `json:"order_id,omitempty"`
	IdempotencyKey string        `json:"idempotency_key,omitempty"`
	Amount         float64       `json:"amount"`
	Method         PaymentMethod `json:"method"`
	Status         PaymentStatus `json:"status"`
	RawStatus      string        `json:"raw_status,omitempty"`
	QRCode         string        `json:"qr_code,omitempty"`
	QRCodeImage    string        `json:"qr_code_image,omitempty"`
	ExpirationDate string        `json:"expiration_date,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}
