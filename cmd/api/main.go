package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/inventory-service/internal/api/http"
	"github.com/spec-kit/inventory-service/internal/api/http/handlers"
	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/config"
	"github.com/spec-kit/inventory-service/internal/events"
	"github.com/spec-kit/inventory-service/internal/observability"
	"github.com/spec-kit/inventory-service/internal/persistence"
	"github.com/spec-kit/inventory-service/internal/repository"
	"github.com/spec-kit/inventory-service/internal/service"
	"github.com/spec-kit/inventory-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	featureRepo := repository.NewFeatureRepository(pool)
	itemRepo := repository.NewItemRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)

	denylist := auth.NewRedisDenylist(redis.Client)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:     userRepo,
		CustomerRepo: customerRepo,
		SessionRepo:  sessionRepo,
		Denylist:     denylist,
		Dispatcher:   dispatcher,
	})
	featureService := service.NewFeatureService(authService.TokenManager(), featureRepo, logger)
	inventoryService := service.NewInventoryService(itemRepo, categoryRepo, dispatcher)
	auditService := service.NewAuditService(dispatcher, logger)
	worker.StartAuditWorker(auditService)

	metrics := observability.NewMetrics()
	guard := auth.NewAccessGuard(
		auth.NewRouteClassifier(),
		authService.TokenManager(),
		userRepo,
		denylist,
		logger,
		metrics,
		cfg.Auth.CookieName,
		cfg.Auth.LoginPath,
	)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Staff:      handlers.NewStaffHandler(authService, cfg.Auth.CookieName),
		Customers:  handlers.NewCustomersHandler(authService, cfg.Auth.CookieName),
		Features:   handlers.NewFeaturesHandler(featureService, cfg.Auth.CookieName),
		Items:      handlers.NewItemsHandler(inventoryService),
		Categories: handlers.NewCategoriesHandler(inventoryService),
		Users:      handlers.NewUsersHandler(userRepo),
		Reports:    handlers.NewReportsHandler(inventoryService),
		Guard:      guard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
