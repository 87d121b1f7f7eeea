package main

import (
	"os"
	"os/signal"
	"syscall"

	configs "github.com/Manzzzx/barasakti/config"
	"github.com/Manzzzx/barasakti/internal/handler"
	"github.com/Manzzzx/barasakti/internal/ratelimit"
	"github.com/Manzzzx/barasakti/internal/repository"
	"github.com/Manzzzx/barasakti/internal/router"
	"github.com/Manzzzx/barasakti/internal/service"
	"github.com/Manzzzx/barasakti/internal/validation"
	"github.com/Manzzzx/barasakti/pkg/database"
	"github.com/Manzzzx/barasakti/pkg/logger"
	"github.com/Manzzzx/barasakti/pkg/mailer"
	"github.com/Manzzzx/barasakti/pkg/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize Zap logger
	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
	)

	// The database is optional: without it submissions are logged and
	// acknowledged, which is all the public site needs.
	var db *gorm.DB
	if config.Database.Enabled {
		db, err = database.NewPostgresDB(database.Config{
			Host:            config.Database.Host,
			Port:            config.Database.Port,
			User:            config.Database.User,
			Password:        config.Database.Password,
			Database:        config.Database.Name,
			SSLMode:         config.Database.SSLMode,
			MaxIdleConns:    config.Database.MaxIdleConns,
			MaxOpenConns:    config.Database.MaxOpenConns,
			ConnMaxLifetime: config.Database.ConnMaxLifetime,
		})
		if err != nil {
			logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
		}
		defer database.CloseDB(db)

		if err := database.AutoMigrate(db); err != nil {
			logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
		}
		logger.GetLogger().Info("Database migrated successfully")
	}

	var redisClient *redis.Client
	if config.Redis.Enabled {
		redisClient, err = redis.NewClient(config)
		if err != nil {
			logger.GetLogger().Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		logger.GetLogger().Info("Redis client initialized",
			zap.String("addr", config.RedisAddress()),
		)
	}

	// Submission store
	var store repository.SubmissionStore
	if db != nil {
		store = repository.NewGormStore(db)
	} else {
		store = repository.NewLogStore()
	}

	// Rate limiters: redis-backed when available so quotas hold across
	// replicas, otherwise per-process fixed windows.
	var contactLimiter, orderLimiter ratelimit.Limiter
	if redisClient != nil {
		contactLimiter = ratelimit.NewRedisLimiter(redisClient, "contact", config.RateLimit.Contact.MaxRequest, config.RateLimit.Window)
		orderLimiter = ratelimit.NewRedisLimiter(redisClient, "order", config.RateLimit.Order.MaxRequest, config.RateLimit.Window)
	} else {
		contactLimiter = ratelimit.NewMemoryLimiter(config.RateLimit.Contact.MaxRequest, config.RateLimit.Window, config.RateLimit.Contact.MaxClients)
		orderLimiter = ratelimit.NewMemoryLimiter(config.RateLimit.Order.MaxRequest, config.RateLimit.Window, config.RateLimit.Order.MaxClients)
	}

	var statusCache service.OrderStatusCache
	if redisClient != nil {
		statusCache = service.NewRedisStatusCache(redisClient, config.Redis.StatusTTL)
	} else {
		statusCache = service.NewMemoryStatusCache(config.Redis.StatusTTL)
	}

	notifier, err := mailer.NewLogMailer(config.Mail)
	if err != nil {
		logger.GetLogger().Fatal("Failed to initialize mailer", zap.Error(err))
	}

	// Services
	contactService := service.NewContactService(store, notifier)
	orderService := service.NewOrderService(store, notifier, statusCache)

	// Handlers share one validator instance
	validate := validation.New()
	contactHandler := handler.NewContactHandler(contactService, validate)
	orderHandler := handler.NewOrderHandler(orderService, validate)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	r := router.NewRouter(
		contactHandler,
		orderHandler,
		healthHandler,
		contactLimiter,
		orderLimiter,
		config,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := r.Run(":" + config.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
