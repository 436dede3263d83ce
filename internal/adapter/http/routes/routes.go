package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "rainbow_workshop/docs"
	"rainbow_workshop/internal/adapter/http/handlers"
	"rainbow_workshop/internal/adapter/http/middleware"
	"rainbow_workshop/internal/adapter/http/views"
	"rainbow_workshop/internal/adapter/persistence/repository"
	"rainbow_workshop/internal/config"
	"rainbow_workshop/internal/infrastructure/events"
	"rainbow_workshop/internal/infrastructure/scheduler"
	"rainbow_workshop/internal/usecase"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// App is the wired service: router plus the components that need shutting down.
type App struct {
	Router     *gin.Engine
	WorkOrders *usecase.WorkOrderUseCase
	Hub        *events.Hub
	Scheduler  *scheduler.TickerScheduler
}

// NewApp builds every component from cfg and registers the routes.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	gin.SetMode(cfg.Server.Mode)

	clock := scheduler.SystemClock{}
	sched := scheduler.NewTickerScheduler(clock)
	hub := events.NewHub(cfg.Events.ClientBuffer, logger.Named("events"))
	repo := repository.NewWorkOrderMemoryRepository()

	timer := usecase.NewLaborTimerUseCase(
		repo, sched, clock, events.NewLaborPublisher(hub), logger.Named("labor_timer"),
		cfg.Billing.LaborRate, cfg.Timer.SampleInterval,
	)
	workOrders := usecase.NewWorkOrderUseCase(repo, timer, clock, logger.Named("work_orders"), cfg.Billing.LaborRate)

	tmpl, err := views.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	// compressed responses are buffered, which would hold back SSE events
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPathsRegexs([]string{`/events$`})))
	router.SetHTMLTemplate(tmpl)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1,
		handlers.NewWorkOrderHandler(workOrders, logger),
		handlers.NewEventsHandler(workOrders, hub, cfg.Events.Heartbeat),
	)
	addFormRoutes(router, handlers.NewFormPageHandler(workOrders, logger))

	return &App{Router: router, WorkOrders: workOrders, Hub: hub, Scheduler: sched}, nil
}

// Run serves the app until SIGINT or SIGTERM, then shuts down gracefully.
func Run(cfg *config.Config, logger *zap.Logger) error {
	app, err := NewApp(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	// event streams never go idle on their own
	srv.RegisterOnShutdown(app.Hub.CloseAll)

	reaper := app.Scheduler.Every(context.Background(), cfg.Session.ReapInterval, func(time.Time) {
		if _, err := app.WorkOrders.ReapIdle(context.Background(), cfg.Session.IdleTTL); err != nil {
			logger.Error("Failed to reap idle work orders", zap.Error(err))
		}
	})

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.Int("port", cfg.Server.Port), zap.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		reaper.Cancel()
		app.WorkOrders.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	logger.Info("Shutting down server...")
	reaper.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	app.WorkOrders.Close()

	logger.Info("Server exited")
	return nil
}
