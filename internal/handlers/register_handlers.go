package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/remittance_app/cmd/docs"
	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/middleware"
	"github.com/SscSPs/remittance_app/internal/platform/config"
	"github.com/SscSPs/remittance_app/internal/platform/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	r.Use(corsMiddleware(cfg), middleware.HTTPMetrics())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	if lim, err := middleware.NewMemoryLimiter(cfg.APIRateLimit); err == nil {
		v1.Use(middleware.RateLimit(lim))
	} else {
		slog.Warn("Invalid API rate limit, API is not rate limited", slog.String("rate", cfg.APIRateLimit), slog.String("error", err.Error()))
	}

	registerMeRoutes(v1, services.User)
	registerRateRoutes(v1, services.Rates)
	registerPaymentMethodRoutes(v1, services.PaymentMethod)
	registerTransactionRoutes(v1, services.Transaction, cfg.ProofMaxUploadBytes)
	registerAdminRoutes(v1, services, cfg.ProofMaxUploadBytes)
}

// corsMiddleware allows the configured frontend origins. FrontendBaseURL may
// hold several comma separated origins; empty allows every origin.
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	var origins []string
	for _, o := range strings.Split(cfg.FrontendBaseURL, ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = origins
	}
	return cors.New(corsCfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
