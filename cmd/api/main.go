package main

import (
	_ "github.com/andressagonsalvespereira/0504MINE/docs"
	"github.com/andressagonsalvespereira/0504MINE/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Checkout PIX API
// @version         1.0
// @description     PIX checkout service (orders + charges + Asaas webhooks) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey WebhookToken
// @in header
// @name asaas-access-token
// @description Shared token Asaas sends with every webhook delivery.

func main() {
	routes.Run()
}
