package routes

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	_ "buffet_festas/docs" // swagger spec
	"buffet_festas/internal/adapter/http/handlers"
	"buffet_festas/internal/adapter/http/middleware"
	"buffet_festas/internal/adapter/persistence/repository"
	"buffet_festas/internal/config"
	"buffet_festas/internal/domain/schedule"
	"buffet_festas/internal/infrastructure/database"
	"buffet_festas/internal/infrastructure/messaging"
	"buffet_festas/internal/infrastructure/payments"
	"buffet_festas/internal/infrastructure/scheduler"
	"buffet_festas/internal/logger"
	"buffet_festas/internal/usecase"
	"buffet_festas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Events        *handlers.EventHandler
	Clients       *handlers.ClientHandler
	Assignments   *handlers.AssignmentHandler
	Budgets       *handlers.BudgetHandler
	Charges       *handlers.ChargeHandler
	Reports       *handlers.ReportHandler
	Notifications *handlers.NotificationHandler
}

// Run wires the application and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	log := logger.Component("http")

	h, notifier, err := buildHandlers(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.Notifications.Enabled {
		runner := scheduler.New(logger.Component("scheduler"), ctx)
		if _, err := runner.AddReminderJob(cfg.Notifications.Cron, notifier); err != nil {
			return err
		}
		runner.Start()
		defer runner.Stop()
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           NewRouter(cfg, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts the public and the protected routes.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	log := logger.Component("http")

	router := gin.New()
	router.Use(middleware.Recovery(log), middleware.RequestLogger(log))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	protected := v1.Group("", middleware.JWTAuth(cfg.Auth.JWTSecret))
	addEventRoutes(protected, h.Events, h.Assignments, h.Budgets)
	addRegistryRoutes(protected, h.Clients, h.Notifications)
	addAssignmentRoutes(protected, h.Assignments)
	addBillingRoutes(protected, h.Charges)
	addReportRoutes(protected, h.Reports)

	return router
}

func buildHandlers(ctx context.Context, cfg config.Config) (Handlers, scheduler.Notifier, error) {
	log := logger.Component("wiring")

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Handlers{}, nil, err
	}
	loc := cfg.Location()
	clock := schedule.SystemClock{}

	eventRepo := repository.NewEventDynamoRepository(ddb, cfg.DynamoDB.EventsTable, loc)
	clientRepo := repository.NewClientDynamoRepository(ddb, cfg.DynamoDB.ClientsTable)
	freelancerRepo := repository.NewFreelancerDynamoRepository(ddb, cfg.DynamoDB.FreelancersTable)
	assignmentRepo := repository.NewAssignmentDynamoRepository(ddb, cfg.DynamoDB.AssignmentsTable)
	budgetRepo := repository.NewBudgetDynamoRepository(ddb, cfg.DynamoDB.BudgetsTable)
	chargeRepo := repository.NewChargeDynamoRepository(ddb, cfg.DynamoDB.ChargesTable)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg)
	if err != nil {
		log.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	var messageGateway interfaces.IMessageGateway
	tgGateway, err := messaging.NewTelegramGateway(cfg.Telegram)
	if err != nil {
		log.Warn("Telegram gateway not configured", zap.Error(err))
	} else {
		messageGateway = tgGateway
	}

	eventUseCase := usecase.NewEventUseCase(eventRepo, clientRepo, clock, loc)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	freelancerUseCase := usecase.NewFreelancerUseCase(freelancerRepo)
	assignmentUseCase := usecase.NewAssignmentUseCase(assignmentRepo, eventRepo, freelancerRepo)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, eventRepo)
	chargeUseCase := usecase.NewChargeUseCase(chargeRepo, budgetRepo, paymentGateway, usecase.ChargeOptions{
		MockMode:        cfg.MockPayments(),
		Sandbox:         cfg.MercadoPago.Sandbox(),
		TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
		TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
	})
	reportUseCase := usecase.NewReportUseCase(eventRepo, clientRepo, freelancerRepo, assignmentRepo)
	notificationUseCase := usecase.NewNotificationUseCase(freelancerRepo, assignmentRepo, eventRepo, messageGateway, clock)

	return Handlers{
		Events:        handlers.NewEventHandler(eventUseCase),
		Clients:       handlers.NewClientHandler(clientUseCase, freelancerUseCase),
		Assignments:   handlers.NewAssignmentHandler(assignmentUseCase),
		Budgets:       handlers.NewBudgetHandler(budgetUseCase),
		Charges:       handlers.NewChargeHandler(chargeUseCase, cfg.MockPayments()),
		Reports:       handlers.NewReportHandler(reportUseCase, schedule.ClockFunc(func() time.Time { return time.Now().In(loc) })),
		Notifications: handlers.NewNotificationHandler(notificationUseCase),
	}, notificationUseCase, nil
}
