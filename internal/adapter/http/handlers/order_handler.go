package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/andressagonsalvespereira/0504MINE/internal/adapter/http/dto/request"
	response "github.com/andressagonsalvespereira/0504MINE/internal/adapter/http/dto/response"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase"
	"github.com/andressagonsalvespereira/0504MINE/pkg"
)

// OrderHandler handles checkout order creation and the status read the
// storefront polls every few seconds.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] order created order_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromOrder(created))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	o, err := h.usecase.GetByID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

// GetOrderStatus returns only the canonical status; this is the poll-loop
// endpoint and stays cheap on purpose.
func (h *OrderHandler) GetOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	status, err := h.usecase.GetStatus(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OrderStatusResponse{OrderID: orderID, Status: string(status)})
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderReq):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
