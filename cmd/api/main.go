package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	_ "buffet_festas/docs"
	"buffet_festas/internal/adapter/http/routes"
	"buffet_festas/internal/config"
	"buffet_festas/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Buffet Festas API
// @version         1.0
// @description     Events, freelancers, budgets, charges and reports of a party buffet, backed by DynamoDB.
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
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting buffet_festas",
		zap.String("env", cfg.App.Env),
		zap.String("addr", cfg.Server.HTTPAddr),
		zap.Bool("mock_payments", cfg.MockPayments()),
		zap.Bool("notifications", cfg.Notifications.Enabled),
	)
	if err := routes.Run(ctx, cfg); err != nil {
		log.Fatal("failed to startup the application", zap.Error(err))
	}
}
