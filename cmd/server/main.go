package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/adapter/cache"
	"github.com/seu-repo/smartparking/internal/adapter/external/facegate"
	"github.com/seu-repo/smartparking/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/smartparking/internal/adapter/queue"
	"github.com/seu-repo/smartparking/internal/adapter/storage/postgres"
	"github.com/seu-repo/smartparking/internal/ports"
	"github.com/seu-repo/smartparking/internal/scheduler"
	"github.com/seu-repo/smartparking/internal/service/auth"
	"github.com/seu-repo/smartparking/internal/service/billing"
	"github.com/seu-repo/smartparking/internal/service/email"
	"github.com/seu-repo/smartparking/internal/service/notification"
	"github.com/seu-repo/smartparking/internal/service/order"
	"github.com/seu-repo/smartparking/internal/service/payment"
	"github.com/seu-repo/smartparking/internal/service/registry"
	"github.com/seu-repo/smartparking/internal/service/report"
	"github.com/seu-repo/smartparking/internal/service/session"
	"github.com/seu-repo/smartparking/pkg/config"
)

const (
	serviceName    = "smartparking"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting SmartParking",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Initialize PostgreSQL Connection Pool
	db, err := postgres.NewConnection(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying SQL DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// 4. Initialize Cache (redis, or in-process when disabled)
	var appCache ports.Cache
	if cfg.Redis.Enabled {
		appCache, err = cache.NewRedisCache(cfg.Redis.URL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
	} else {
		appCache = cache.NewLocalCache(time.Minute, logger)
	}
	defer appCache.Close()

	// 5. Initialize Message Queue
	messageQueue, err := newMessageQueue(cfg.Queue, logger)
	if err != nil {
		logger.Fatal("Failed to connect to message queue", zap.Error(err))
	}
	defer messageQueue.Close()

	// 6. Initialize Repositories
	orderRepo := postgres.NewParkingOrderRepository(db, logger)
	sessionRepo := postgres.NewParkingSessionRepository(db, logger)
	typeRepo := postgres.NewParkingTypeRepository(db, logger)
	feeRepo := postgres.NewFeeRepository(db, logger)
	paymentRepo := postgres.NewPaymentRepository(db, logger)
	bikeRepo := postgres.NewBikeRepository(db, logger)
	cardRepo := postgres.NewCardRepository(db, logger)
	ownerRepo := postgres.NewOwnerRepository(db, logger)
	userRepo := postgres.NewUserRepository(db, logger)
	notificationRepo := postgres.NewNotificationRepository(db, logger)

	// 7. Initialize External Clients
	faceComparator := facegate.NewClient(cfg.Facegate.BaseURL, cfg.Facegate.Timeout, logger)

	emailService, err := email.NewService(emailConfig(cfg.Email), logger)
	if err != nil {
		logger.Fatal("Failed to initialize email provider", zap.Error(err))
	}

	// 8. Initialize Services (Business Logic Layer)
	jwtService := auth.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenDuration,
		cfg.JWT.RefreshTokenDuration,
		appCache,
		logger,
	)
	feeService := billing.NewFeeService(feeRepo, appCache, logger)
	orderService := order.NewService(orderRepo, typeRepo, bikeRepo, messageQueue, logger)
	sessionService := session.NewService(sessionRepo, typeRepo, cardRepo, ownerRepo, bikeRepo, feeService, faceComparator, logger)
	paymentService := payment.NewService(paymentRepo, orderRepo, messageQueue, logger)
	reportService := report.NewService(sessionRepo, logger)
	registryService := registry.NewService(bikeRepo, userRepo, ownerRepo, cardRepo, typeRepo, logger)
	notificationService := notification.NewService(
		orderRepo,
		bikeRepo,
		userRepo,
		notificationRepo,
		messageQueue,
		emailService,
		cfg.Jobs.NotificationLead,
		logger,
	)

	// 9. Start Daily Scheduler
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	if cfg.Jobs.Enabled {
		sched := scheduler.New(orderService, notificationService, scheduler.Config{
			RunAt:       cfg.Jobs.RunAt,
			SecondaryTZ: cfg.Jobs.SecondaryTZ,
		}, logger)
		go sched.Run(schedulerCtx)
	}

	// 10. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.CORS))
	app.Use(middleware.CircuitBreaker(logger))

	// Health Check Endpoints
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		if err := sqlDB.Ping(); err != nil {
			return c.Status(503).SendString("Database not ready")
		}
		if err := appCache.Ping(); err != nil {
			return c.Status(503).SendString("Cache not ready")
		}
		return c.SendString("Ready")
	})

	// Metrics endpoint for Prometheus
	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	registerRoutes(app, jwtService, logger, routeServices{
		orders:        orderService,
		sessions:      sessionService,
		fees:          feeService,
		payments:      paymentService,
		reports:       reportService,
		notifications: notificationService,
		registry:      registryService,
	})

	// 11. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 12. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

func newMessageQueue(cfg config.QueueConfig, logger *zap.Logger) (queue.MessageQueue, error) {
	switch cfg.Driver {
	case "rabbitmq":
		return queue.NewRabbitMQQueue(cfg.RabbitMQ.URL, logger)
	case "", "nats":
		return queue.NewNATSQueue(cfg.NATS.URL, logger)
	default:
		return nil, fmt.Errorf("unknown queue driver %q", cfg.Driver)
	}
}

func emailConfig(cfg config.EmailConfig) *email.Config {
	if cfg.Provider == "" {
		return email.DefaultConfig()
	}
	return &email.Config{
		Provider:       cfg.Provider,
		SendGridAPIKey: cfg.APIKey,
		FromEmail:      cfg.From,
		FromName:       cfg.FromName,
		SMTPHost:       cfg.Host,
		SMTPPort:       cfg.Port,
		SMTPUsername:   cfg.Username,
		SMTPPassword:   cfg.Password,
	}
}
