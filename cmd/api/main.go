package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/coffeehouse-cms/internal/api/http"
	"github.com/spec-kit/coffeehouse-cms/internal/api/http/handlers"
	"github.com/spec-kit/coffeehouse-cms/internal/auth"
	"github.com/spec-kit/coffeehouse-cms/internal/cache"
	"github.com/spec-kit/coffeehouse-cms/internal/config"
	"github.com/spec-kit/coffeehouse-cms/internal/events"
	"github.com/spec-kit/coffeehouse-cms/internal/observability"
	"github.com/spec-kit/coffeehouse-cms/internal/persistence"
	"github.com/spec-kit/coffeehouse-cms/internal/repository"
	"github.com/spec-kit/coffeehouse-cms/internal/service"
	"github.com/spec-kit/coffeehouse-cms/internal/worker"
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

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret)
	if err != nil {
		logger.Fatal("failed to init token manager", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	menuRepo := repository.NewMenuItemRepository(pool)
	offerRepo := repository.NewOfferRepository(pool)
	staffRepo := repository.NewStaffProfileRepository(pool)

	pages := cache.NewPageCache(cfg.Cache, redis.Client, logger)
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartCacheInvalidator(dispatcher, pages)

	gate := auth.NewGate(tokens, userRepo)
	authService := service.NewAuthService(userRepo, tokens)
	directoryService := service.NewDirectoryService(userRepo, dispatcher, cfg.Auth.BcryptCost)
	contentService := service.NewContentService(menuRepo, offerRepo, staffRepo, dispatcher)
	seeder := service.NewSeeder(userRepo, cfg.Auth.BcryptCost)

	pagesHandler, err := handlers.NewPagesHandler()
	if err != nil {
		logger.Fatal("failed to parse templates", zap.Error(err))
	}

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:   handlers.NewAuthHandler(authService, cfg.App.IsProduction()),
		Seed:   handlers.NewSeedHandler(seeder),
		Users:  handlers.NewUsersHandler(directoryService),
		Menu:   handlers.NewMenuHandler(contentService, pages),
		Offers: handlers.NewOffersHandler(contentService, pages),
		Staff:  handlers.NewStaffHandler(contentService, pages),
		Pages:  pagesHandler,
		Gate:   gate,
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
