package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/andressagonsalvespereira/0504MINE/internal/adapter/http/dto/request"
	response "github.com/andressagonsalvespereira/0504MINE/internal/adapter/http/dto/response"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase/interfaces"
	"github.com/andressagonsalvespereira/0504MINE/pkg"
)

// ChargeHandler handles HTTP requests for checkout charges.

type ChargeHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewChargeHandler(uc usecase.ICheckoutUseCase) *ChargeHandler {
	return &ChargeHandler{usecase: uc}
}

// CreateCharge creates a customer and a PIX charge at the gateway, persists the
// charge record and returns it with the presentation block.
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	var payload request.CheckoutChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[charge][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cmd := payload.ToCommand()
	if cmd.RequestID == "" {
		cmd.RequestID = c.GetHeader("X-Request-ID")
	}

	created, err := h.usecase.CreateCharge(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[charge][handler] create failed order_id=%q err=%v", cmd.OrderID, err)
		// Gateway rejections carry their own status code and diagnostic body;
		// they are forwarded untouched instead of being remapped.
		var gwErr *interfaces.GatewayError
		if errors.As(err, &gwErr) {
			c.Data(gwErr.StatusCode, "application/json", gwErr.Body)
			return
		}
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[charge][handler] create success charge_id=%s status=%s", created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromCharge(created))
}

// GetChargeByID returns a persisted charge with its presentation block.
func (h *ChargeHandler) GetChargeByID(c *gin.Context) {
	chargeID := c.Param("charge_id")

	charge, err := h.usecase.GetChargeByID(c.Request.Context(), chargeID)
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCharge(charge))
}

// CancelCharge forwards a cancellation to the gateway.
func (h *ChargeHandler) CancelCharge(c *gin.Context) {
	chargeID := c.Param("charge_id")
	log.Printf("[charge][handler] cancel start charge_id=%s", chargeID)

	if err := h.usecase.CancelCharge(c.Request.Context(), chargeID); err != nil {
		var gwErr *interfaces.GatewayError
		if errors.As(err, &gwErr) {
			c.Data(gwErr.StatusCode, "application/json", gwErr.Body)
			return
		}
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "charge cancelled"})
}

func mapChargeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCustomerFields),
		errors.Is(err, usecase.ErrInvalidCpfCnpj),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrMissingPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
