package request

import "github.com/andressagonsalvespereira/0504MINE/internal/usecase"

// WebhookRequest is the Asaas notification body: an event-type tag plus the
// gateway's own view of the payment. Extra fields in `payment` are ignored.
type WebhookRequest struct {
	Event   string `json:"event" binding:"required"`
	Payment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"payment"`
}

func (r WebhookRequest) ToEvent() usecase.WebhookEvent {
	return usecase.WebhookEvent{
		Event:         r.Event,
		PaymentID:     r.Payment.ID,
		PaymentStatus: r.Payment.Status,
	}
}
