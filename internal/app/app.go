package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wantly_backend/database"
	"wantly_backend/internal/auth"
	"wantly_backend/internal/config"
	"wantly_backend/internal/currency"
	"wantly_backend/internal/email"
	"wantly_backend/internal/handlers"
	"wantly_backend/internal/logger"
	"wantly_backend/internal/middleware"
	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/routes"
	"wantly_backend/internal/services"
	"wantly_backend/internal/storage"
	"wantly_backend/internal/validator"
	"wantly_backend/internal/workers"
	"wantly_backend/ws"
)

// Run boots the whole application: config, database, redis, the rate
// worker, the websocket hub and the HTTP server. It blocks until the
// server exits.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	rdb := connectRedis(cfg.Redis.URL)

	rateCache := currency.NewRateCache(
		rdb,
		currency.NewECBClient(cfg.Rates.FeedURL),
		time.Duration(cfg.Rates.TTLMinutes)*time.Minute,
	)
	ratesWorker := workers.NewRatesWorker(rateCache)
	if err := ratesWorker.Start(); err != nil {
		logger.Fatal("Failed to start rates worker", "error", err)
	}
	defer ratesWorker.Stop()

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	emailSender := email.NewSender(cfg)

	wsManager := ws.NewManager()
	go wsManager.Run()
	wsHandler := ws.NewHandler(wsManager)

	container := services.NewServiceContainer(gormDB, cfg, rateCache, store, emailSender, wsManager)

	limiter := middleware.NewRateLimiter(rdb, repositories.NewLogRepository(gormDB))
	appHandlers := handlers.NewAppHandlers(container, validator.New(), limiter)

	ginRouter := newRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler, cfg)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func newRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.FrontendURL))
	router.Use(middleware.DBMiddleware(db))
	return router
}

// connectRedis parses the URL and pings the server. Redis is optional:
// the rate limiter fails open and the rate cache falls back to fetching
// the feed directly, so a missing server only logs a warning.
func connectRedis(url string) *redis.Client {
	if url == "" {
		logger.Warn("Redis URL not configured, rate limiting and rate caching degrade")
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Fatal("Invalid Redis URL", "error", err)
	}
	rdb := redis.NewClient(opts)
	logger.Info("Redis connected", "addr", opts.Addr)
	return rdb
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", cfg.FirstAdminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", cfg.FirstAdminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:        "admin",
		Name:            "Administrator",
		Email:           cfg.FirstAdminEmail,
		PasswordHash:    hash,
		IsEmailVerified: true,
		IsAdmin:         true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	logger.Info("First admin user created", "email", cfg.FirstAdminEmail)
	return nil
}
