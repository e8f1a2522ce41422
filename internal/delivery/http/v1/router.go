package v1

import (
	"net/http"
	"time"

	"go-lawfirm-backend/config"
	"go-lawfirm-backend/internal/delivery/http/middleware"
	"go-lawfirm-backend/internal/delivery/http/response"
	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	IntakeUC domain.IntakeUsecase
	AdminUC  domain.AdminUsecase // nil when persistence is disabled
	HealthUC usecase.HealthUsecase
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(cfg.IsProduction()))
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(
		cfg.RateLimitGlobalThreshold,
		time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
	)))
	r.Use(middleware.CSRFMiddleware())

	healthHandler := NewHealthHandler(deps.HealthUC)

	api := r.Group("/api")

	// Health Check (rate-limit and CSRF exempt; some deployments probe the
	// bare path)
	api.GET("/health", healthHandler.Check)
	r.GET("/health", healthHandler.Check)

	// CSRF token issuing for session-bound clients
	api.GET("/csrf-token", func(c *gin.Context) {
		token, err := middleware.EnsureCSRFToken(c)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
			return
		}
		response.Success(c, http.StatusOK, "CSRF token issued", gin.H{"csrfToken": token})
	})

	// Public routes
	contactLimiter := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(
		cfg.ContactRateLimitCount,
		cfg.ContactRateLimitWindow,
	))
	NewMessageHandler(api, deps.IntakeUC, contactLimiter) // Contact form (no auth required)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected triage routes (only when persistence is configured)
	if deps.AdminUC != nil {
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg.AdminJWTSecret))
		NewAdminHandler(protected, deps.AdminUC)
	}

	return r
}
