package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	AllowedOrigins []string
	RateLimit      string

	// Provider configuration. An empty API key disables the provider; it is
	// simply never registered in the chain.
	FrankfurterBaseURL      string
	ExchangeRateHostBaseURL string
	ExchangeRateHostAPIKey  string
	FixerBaseURL            string
	FixerAPIKey             string

	// Freshness model.
	RateTTL             time.Duration // refetch window for cached rates
	StaleThreshold      time.Duration // hard bound on the age of any served rate
	RetentionWindow     time.Duration // persistent rows older than this are swept
	SweepInterval       time.Duration
	AvailabilityTimeout time.Duration
	FetchTimeout        time.Duration

	DefaultFeePercentage string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("FRANKFURTER_BASE_URL", "https://api.frankfurter.dev/v1")
	viper.SetDefault("EXCHANGERATE_HOST_BASE_URL", "https://api.exchangerate.host")
	viper.SetDefault("EXCHANGERATE_HOST_API_KEY", "")
	viper.SetDefault("FIXER_BASE_URL", "https://data.fixer.io/api")
	viper.SetDefault("FIXER_API_KEY", "")
	viper.SetDefault("RATE_TTL", "1h")
	viper.SetDefault("STALE_THRESHOLD", "24h")
	viper.SetDefault("RETENTION_WINDOW", "168h")
	viper.SetDefault("SWEEP_INTERVAL", "1h")
	viper.SetDefault("AVAILABILITY_TIMEOUT", "5s")
	viper.SetDefault("FETCH_TIMEOUT", "15s")
	viper.SetDefault("DEFAULT_FEE_PERCENTAGE", "0.0025")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.FrankfurterBaseURL = viper.GetString("FRANKFURTER_BASE_URL")
	cfg.ExchangeRateHostBaseURL = viper.GetString("EXCHANGERATE_HOST_BASE_URL")
	cfg.ExchangeRateHostAPIKey = viper.GetString("EXCHANGERATE_HOST_API_KEY")
	cfg.FixerBaseURL = viper.GetString("FIXER_BASE_URL")
	cfg.FixerAPIKey = viper.GetString("FIXER_API_KEY")
	if cfg.ExchangeRateHostAPIKey == "" {
		log.Println("Warning: EXCHANGERATE_HOST_API_KEY not set. exchangerate.host provider will not be registered.")
	}
	if cfg.FixerAPIKey == "" {
		log.Println("Warning: FIXER_API_KEY not set. Fixer provider will not be registered.")
	}

	cfg.RateTTL = parseDurationOr("RATE_TTL", time.Hour)
	cfg.StaleThreshold = parseDurationOr("STALE_THRESHOLD", 24*time.Hour)
	cfg.RetentionWindow = parseDurationOr("RETENTION_WINDOW", 7*24*time.Hour)
	cfg.SweepInterval = parseDurationOr("SWEEP_INTERVAL", time.Hour)
	cfg.AvailabilityTimeout = parseDurationOr("AVAILABILITY_TIMEOUT", 5*time.Second)
	cfg.FetchTimeout = parseDurationOr("FETCH_TIMEOUT", 15*time.Second)

	cfg.DefaultFeePercentage = viper.GetString("DEFAULT_FEE_PERCENTAGE")

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
