package main

import (
	"log"

	_ "rainbow_workshop/docs"
	"rainbow_workshop/internal/adapter/http/routes"
	"rainbow_workshop/internal/config"
	"rainbow_workshop/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Rainbow Workshop Work Order API
// @version         1.0
// @description     Work-order form service: parts, labor timer, billing, rating and attachments.
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
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting work order service",
		zap.Float64("labor_rate", cfg.Billing.LaborRate),
		zap.Duration("sample_interval", cfg.Timer.SampleInterval),
	)

	if err := routes.Run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run the application", zap.Error(err))
	}
}
