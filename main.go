package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-pos/config"
	"restaurant-pos/database"
	"restaurant-pos/database/seeders"
	"restaurant-pos/logger"
	"restaurant-pos/middleware"
	"restaurant-pos/repository/postgres"
	"restaurant-pos/routes"
	authService "restaurant-pos/services/auth"
	"restaurant-pos/services/backup"
	"restaurant-pos/services/catalog"
	"restaurant-pos/services/customer"
	"restaurant-pos/services/employee"
	"restaurant-pos/services/idempotency"
	"restaurant-pos/services/notify"
	"restaurant-pos/services/sales"
	"restaurant-pos/services/scheduler"
	"restaurant-pos/services/setting"
	"restaurant-pos/services/tracker"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.App.LogDir, log.LevelInfo)

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}
	policy, err := tracker.ParseRetirementPolicy(cfg.Tracker.RetirementPolicy)
	if err != nil {
		logger.Fatal(err.Error())
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return
	}
	if err := seeders.SeedAdmin(db, cfg.Admin); err != nil {
		logger.Error("Failed to seed admin account", err)
	}

	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()
	defer asyncLogger.Close()

	notifier, err := notify.New(cfg.Notify)
	if err != nil {
		logger.Fatal("Invalid notification settings: " + err.Error())
	}
	if closer, ok := notifier.(io.Closer); ok {
		defer closer.Close()
	}

	catalogService := catalog.NewService(db)
	employeeService := employee.NewService(db)
	orderTracker := tracker.New(tracker.Dependencies{
		Orders:      postgres.NewOrderRepository(db),
		Projection:  postgres.NewProjectionRepository(db),
		PickedUpLog: postgres.NewPickedUpLogRepository(db),
		TripReports: postgres.NewTripReportRepository(db),
		Counters:    postgres.NewCounterRepository(db),
		Catalog:     catalogService,
		Employees:   employeeService,
		Notifier:    notifier,
	}, policy)
	logger.Info(fmt.Sprintf("Item retirement policy: %s", orderTracker.Policy()))

	backupService := backup.NewService(
		backup.NewGormSource(db),
		cfg.Backup.Dir,
		cfg.Backup.MaxBackups,
		cfg.Backup.Recipient,
		notify.NewAdminSender(cfg.Notify),
	)

	var idemStore idempotency.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password})
		defer rdb.Close()
		idemStore = idempotency.NewRedisStore(rdb, cfg.Redis.IdempotencyTTL)
		logger.Success("Idempotency keys stored in redis at " + cfg.Redis.Addr)
	} else {
		idemStore = idempotency.NewMemoryStore(cfg.Redis.IdempotencyTTL)
	}

	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768, // 32KB read buffer
		WriteBufferSize: 32768, // 32KB write buffer
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		BodyLimit:       50 * 1024 * 1024, // 50MB body limit
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, " + middleware.IdempotencyHeader,
		AllowCredentials: cfg.App.FrontendURL != "*",
	}))
	app.Use(middleware.RequestLogger(asyncLogger))

	routes.SetupRoutes(app, routes.Dependencies{
		DB:          db,
		Auth:        middleware.NewAuth(cfg.Auth.JWTSecret),
		Tracker:     orderTracker,
		Catalog:     catalogService,
		Employees:   employeeService,
		Customers:   customer.NewService(db),
		Sales:       sales.NewService(db),
		Users:       authService.NewService(db, cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry),
		Backup:      backupService,
		Settings:    setting.NewService(db),
		Idempotency: idemStore,
	})

	jobs := scheduler.New(cfg.Jobs.Tick,
		scheduler.Job{
			Name:     "offer-sweep",
			Interval: cfg.Jobs.OfferSweepInterval,
			Run: func(ctx context.Context) error {
				n, err := catalogService.SweepOffers(ctx)
				if n > 0 {
					logger.Info(fmt.Sprintf("Cleared %d expired offers", n))
				}
				return err
			},
		},
		scheduler.Job{
			Name:     "backup",
			Interval: cfg.Jobs.BackupInterval,
			Run: func(ctx context.Context) error {
				_, err := backupService.Create(ctx)
				return err
			},
		},
		scheduler.Job{
			Name:     "projection-repair",
			Interval: cfg.Jobs.ProjectionRepairInterval,
			Run: func(ctx context.Context) error {
				_, err := orderTracker.ReconcileProjection(ctx)
				return err
			},
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := cfg.App.Host + ":" + cfg.App.Port
		logger.Success("Server is running on " + addr)
		return app.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("Shutting down HTTP server...")
		return app.ShutdownWithContext(shutdownCtx)
	})
	g.Go(func() error {
		return jobs.Run(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Server stopped with error", err)
	}
	logger.Success("Shutdown complete")
}
