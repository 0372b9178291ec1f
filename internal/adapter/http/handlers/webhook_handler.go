package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	request "github.com/andressagonsalvespereira/0504MINE/internal/adapter/http/dto/request"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase"
	"github.com/andressagonsalvespereira/0504MINE/pkg"
)

// Asaas sends the configured webhook token back in this header on every
// delivery; when ASAAS_WEBHOOK_TOKEN is set, deliveries without it are rejected
// before any parsing.
const webhookTokenHeader = "asaas-access-token"

// WebhookHandler receives asynchronous gateway payment events.
//
// Every structurally valid request must be answered quickly, otherwise the
// gateway's redelivery mechanism floods the endpoint.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleAsaasEvent validates authenticity, decodes the event and applies at
// most one order mutation.
func (h *WebhookHandler) HandleAsaasEvent(c *gin.Context) {
	if expected := strings.TrimSpace(os.Getenv("ASAAS_WEBHOOK_TOKEN")); expected != "" {
		if c.GetHeader(webhookTokenHeader) != expected {
			log.Printf("[webhook][handler] rejected delivery with missing/invalid token")
			appErr := pkg.NewDomainErrorSimple("WEBHOOK_UNAUTHORIZED", "Invalid webhook token", http.StatusUnauthorized)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	var payload request.WebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] delivery received event=%s payment_id=%s status=%s", payload.Event, payload.Payment.ID, payload.Payment.Status)

	updated, processed, err := h.usecase.ProcessEvent(c.Request.Context(), payload.ToEvent())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidWebhookPayload) {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		// Storage failures answer 500 so the gateway redelivers; no internal retry.
		log.Printf("[webhook][handler] processing failed event=%s err=%v", payload.Event, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !processed {
		c.JSON(http.StatusOK, gin.H{"message": "event ignored"})
		return
	}
	log.Printf("[webhook][handler] order updated order_id=%s status=%s", updated.ID, updated.Status)
	c.JSON(http.StatusOK, gin.H{"message": "webhook processed", "order_id": updated.ID, "status": string(updated.Status)})
}
