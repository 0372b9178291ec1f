package response

import (
	"time"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
)

// PixPresentation is the presentation block the storefront renders: QR payload,
// rendered image and expiration. QRCode carries the "not available" sentinel
// when the best-effort fetch failed.
type PixPresentation struct {
	QRCode         string `json:"qr_code"`
	QRCodeImage    string `json:"qr_code_image,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
}

type ChargeResponse struct {
	ChargeID  string    `json:"charge_id"`
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id,omitempty"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	Pix PixPresentation `json:"pix"`
}

func FromCharge(c entities.Charge) ChargeResponse {
	return ChargeResponse{
		ChargeID:  c.ID,
		ID:        c.ID,
		OrderID:   c.OrderID,
		Amount:    c.Amount,
		Method:    string(c.Method),
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		Pix: PixPresentation{
			QRCode:         c.QRCode,
			QRCodeImage:    c.QRCodeImage,
			ExpirationDate: c.ExpirationDate,
		},
	}
}
