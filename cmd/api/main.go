package main

import (
	"log"

	_ "construction_estimator/docs"
	"construction_estimator/internal/adapter/http/routes"
	"construction_estimator/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Construction Estimator API
// @version         1.0
// @description     Construction cost and duration estimates with a local fallback, per-user history and the standard unit-price catalog.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := routes.Run(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
