package routes

import (
	"github.com/andressagonsalvespereira/0504MINE/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCharges  = "/charges"
	PathOrders   = "/orders"
	PathWebhooks = "/webhooks"
)

func addCheckoutRoutes(rg *gin.RouterGroup, chargeHandler *handlers.ChargeHandler, orderHandler *handlers.OrderHandler, webhookHandler *handlers.WebhookHandler) {
	charges := rg.Group(PathCharges)
	{
		charges.POST("", chargeHandler.CreateCharge)
		charges.GET("/:charge_id", chargeHandler.GetChargeByID)
		charges.DELETE("/:charge_id", chargeHandler.CancelCharge)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.GET("/:order_id/status", orderHandler.GetOrderStatus)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/asaas", webhookHandler.HandleAsaasEvent)
	}
}
