package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string

	// Rate configuration cache. Empty RedisURL disables it.
	RedisURL      string
	RatesCacheTTL time.Duration

	// Proof artifacts
	ProofBucket          string
	ProofCredentialsFile string
	ProofMaxUploadBytes  int64

	// Rate limits in limiter format, e.g. "5-M"
	APIRateLimit   string
	LoginRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "remittance-backend")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("RATES_CACHE_TTL", "30s")
	viper.SetDefault("PROOF_BUCKET", "")
	viper.SetDefault("PROOF_CREDENTIALS_FILE", "")
	viper.SetDefault("PROOF_MAX_UPLOAD_BYTES", 10<<20)
	viper.SetDefault("API_RATE_LIMIT", "120-M")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          viper.GetString("PGSQL_URL"),
		Port:                 viper.GetString("PORT"),
		IsProduction:         viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:       viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:            viper.GetString("JWT_SECRET"),
		JWTIssuer:            viper.GetString("JWT_ISSUER"),
		FrontendBaseURL:      viper.GetString("FRONTEND_BASE_URL"),
		RedisURL:             viper.GetString("REDIS_URL"),
		ProofBucket:          viper.GetString("PROOF_BUCKET"),
		ProofCredentialsFile: viper.GetString("PROOF_CREDENTIALS_FILE"),
		ProofMaxUploadBytes:  viper.GetInt64("PROOF_MAX_UPLOAD_BYTES"),
		APIRateLimit:         viper.GetString("API_RATE_LIMIT"),
		LoginRateLimit:       viper.GetString("LOGIN_RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = parseDuration("JWT_EXPIRY_DURATION", 12*time.Hour)
	cfg.RatesCacheTTL = parseDuration("RATES_CACHE_TTL", 30*time.Second)

	if cfg.ProofBucket == "" {
		log.Println("Warning: PROOF_BUCKET not set. Proof uploads are disabled; only proof references can be attached.")
	}
	if cfg.ProofMaxUploadBytes <= 0 {
		cfg.ProofMaxUploadBytes = 10 << 20
	}

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}
