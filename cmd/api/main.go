package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-lawfirm-backend/config"
	_ "go-lawfirm-backend/docs" // Important for Swagger
	"go-lawfirm-backend/internal/dedupe"
	v1 "go-lawfirm-backend/internal/delivery/http/v1"
	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/internal/repository/postgres"
	"go-lawfirm-backend/internal/usecase"
	"go-lawfirm-backend/pkg/database"
	"go-lawfirm-backend/pkg/logger"
	"go-lawfirm-backend/pkg/redis"
	"go-lawfirm-backend/pkg/telegram"
	"go-lawfirm-backend/pkg/validation"
)

// @title           Law Firm Contact Intake API
// @version         1.0
// @description     Backend relay for the marketing site's contact and careers forms.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact intake backend", "port", cfg.Port, "env", cfg.Environment)

	// 3. Setup Redis (optional; stores fall back to in-memory)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory stores", "error", err)
		}
	}
	defer redis.Close()

	// 4. Setup Database (optional; without it submissions are
	// notification-only)
	var messageRepo domain.MessageRepository
	var dbPinger usecase.Pinger
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		messageRepo = postgres.NewMessageRepository(dbPool)
		dbPinger = dbPool
	}

	// 5. Setup Notification Sink
	var sink domain.NotificationSink
	tgClient := telegram.NewClient(cfg.TelegramBotToken, cfg.TelegramChatID)
	if tgClient.IsConfigured() {
		sink = tgClient
	} else {
		logger.Log.Warn("Telegram not configured - chat notifications disabled")
	}

	// 6. Setup Duplicate Guard
	var dedupeStore dedupe.Store
	if client := redis.Client(); client != nil {
		dedupeStore = dedupe.NewRedisStore(client)
	} else {
		dedupeStore = dedupe.NewMemoryStore()
	}
	guard := dedupe.NewGuard(dedupeStore, cfg.DuplicateTTL, logger.Log)

	// 7. Setup Validator
	policy := validation.DefaultSubmissionPolicy()
	policy.SubjectRequired = cfg.SubjectRequired
	policy.BodyMaxLength = cfg.MaxMessageLength
	validator := validation.NewSubmissionValidator(policy)

	// 8. Setup UseCases
	intakeUC := usecase.NewIntakeUsecase(messageRepo, sink, guard, validator, !cfg.IsProduction())
	var adminUC domain.AdminUsecase
	if messageRepo != nil {
		adminUC = usecase.NewAdminUsecase(messageRepo)
	}
	var cacheCheck func(ctx context.Context) error
	if redis.Client() != nil {
		cacheCheck = redis.HealthCheck
	}
	healthUC := usecase.NewHealthUsecase(dbPinger, cacheCheck)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		IntakeUC: intakeUC,
		AdminUC:  adminUC,
		HealthUC: healthUC,
		Config:   cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
