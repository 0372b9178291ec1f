package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/andressagonsalvespereira/0504MINE/docs" // This will be auto-generated
	"github.com/andressagonsalvespereira/0504MINE/internal/adapter/http/handlers"
	"github.com/andressagonsalvespereira/0504MINE/internal/adapter/http/middleware"
	repository2 "github.com/andressagonsalvespereira/0504MINE/internal/adapter/persistence/repository"
	"github.com/andressagonsalvespereira/0504MINE/internal/infrastructure/database"
	"github.com/andressagonsalvespereira/0504MINE/internal/infrastructure/payments"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	chargeRepo := repository2.NewChargeDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	asaasGateway, err := payments.NewAsaasGateway(os.Getenv("ASAAS_API_KEY"))
	if err != nil {
		log.Printf("Asaas gateway not configured: %v", err)
	} else {
		paymentGateway = asaasGateway
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(chargeRepo, orderRepo, paymentGateway)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	webhookUseCase := usecase.NewWebhookUseCase(orderRepo)

	chargeHandler := handlers.NewChargeHandler(checkoutUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, chargeHandler, orderHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	// Replay protection is optional: without Redis the usecase layer still
	// dedupes retried charges against the idempotency_key index.
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		router.Use(middleware.Idempotency(rdb))
		log.Printf("[startup][routes] idempotency replay cache enabled addr=%s", addr)
	}
}
