package response

import (
	"testing"
	"time"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
)

func TestFromCharge(t *testing.T) {
	now := time.Now().UTC()
	c := entities.Charge{
		ID:          "pay-1",
		OrderID:     "ord-1",
		Amount:      19.90,
		Method:      entities.PaymentMethodPix,
		Status:      entities.PaymentStatusPending,
		QRCode:      "pix-payload",
		QRCodeImage: "img==",
		CreatedAt:   now,
	}

	res := FromCharge(c)
	if res.ID != "pay-1" || res.ChargeID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.OrderID != "ord-1" || res.Status != "PENDING" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Pix.QRCode != "pix-payload" || res.Pix.QRCodeImage != "img==" {
		t.Fatalf("unexpected presentation block: %+v", res.Pix)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %+v", res.CreatedAt)
	}
}

func TestFromCharge_SentinelQRCode(t *testing.T) {
	c := entities.Charge{ID: "pay-1", Status: entities.PaymentStatusPending, QRCode: entities.QRCodeNotAvailable}
	res := FromCharge(c)
	if res.Pix.QRCode != entities.QRCodeNotAvailable {
		t.Fatalf("expected sentinel, got %q", res.Pix.QRCode)
	}
}
