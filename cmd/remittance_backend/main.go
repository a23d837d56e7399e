package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/SscSPs/remittance_app/internal/adapters/storage"
	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/core/services"
	"github.com/SscSPs/remittance_app/internal/handlers"
	"github.com/SscSPs/remittance_app/internal/middleware"
	"github.com/SscSPs/remittance_app/internal/platform/config"
	"github.com/SscSPs/remittance_app/internal/platform/metrics"
	"github.com/SscSPs/remittance_app/internal/repositories/cache"
	"github.com/SscSPs/remittance_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/remittance_app/pkg/database"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Remittance Backend API
// @version 1.0
// @description Exchange rates, quotes and the remittance transaction lifecycle.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	metrics.Init()

	repos := pgsql.NewRepositoryProvider(dbPool)
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			// Rates are still served from Postgres.
			logger.Warn("Redis unavailable, rate configuration cache disabled", slog.String("error", err.Error()))
		} else {
			defer redisClient.Close()
			repos.RateConfigRepo = cache.NewRateConfigCache(repos.RateConfigRepo, redisClient, cfg.RatesCacheTTL)
			logger.Info("Rate configuration cache enabled", slog.Duration("ttl", cfg.RatesCacheTTL))
		}
	}

	var proofStore portssvc.ProofStorage
	if cfg.ProofBucket != "" {
		var opts []option.ClientOption
		if cfg.ProofCredentialsFile != "" {
			credsOpt, err := storage.CredentialsFromFile(ctx, cfg.ProofCredentialsFile)
			if err != nil {
				logger.Error("Failed to load proof storage credentials", slog.String("error", err.Error()))
				os.Exit(1)
			}
			opts = append(opts, credsOpt)
		}
		gcsStore, err := storage.NewGCSProofStore(ctx, cfg.ProofBucket, opts...)
		if err != nil {
			logger.Error("Failed to initialize proof storage", slog.String("bucket", cfg.ProofBucket), slog.String("error", err.Error()))
			os.Exit(1)
		}
		proofStore = gcsStore
		logger.Info("Proof storage enabled", slog.String("bucket", cfg.ProofBucket))
	}

	serviceContainer := services.NewServiceContainer(repos, proofStore)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies every pending "up" migration through a short-lived
// database/sql connection on the pgx stdlib driver.
func runMigrations(logger *slog.Logger, cfg *config.Config) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	// Check for dirty migrations after running Up.
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
