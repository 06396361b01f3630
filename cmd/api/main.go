package main

import (
	"log"

	_ "renovation_estimator/docs"
	"renovation_estimator/internal/adapter/http/routes"
	"renovation_estimator/internal/infrastructure/config"
	"renovation_estimator/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Renovation Estimator API
// @version         1.0
// @description     Renovation cost estimates (categories, work items, totals, payments) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLog.Sync()

	if err := routes.Run(cfg, appLog); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}
