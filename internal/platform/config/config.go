package config

import (
	"log"
	"strings"
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
	JWTSecret     string

	// Assignment rule snapshot lifetime per workplace.
	RuleCacheTTL time.Duration

	PaymentPrefixInvoice string
	PaymentPrefixBill    string
	PersistRetryAttempts int

	// RateLimit uses the limiter formatted rate syntax, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string
	MigrationsPath     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RULE_CACHE_TTL", "60s")
	viper.SetDefault("PAYMENT_PREFIX_INVOICE", "PAY-IN")
	viper.SetDefault("PAYMENT_PREFIX_BILL", "PAY-OUT")
	viper.SetDefault("PERSIST_RETRY_ATTEMPTS", 3)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	ttlStr := viper.GetString("RULE_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = 60 * time.Second
		log.Printf("Warning: Invalid value for RULE_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl.String())
	}
	cfg.RuleCacheTTL = ttl

	cfg.PaymentPrefixInvoice = strings.TrimSpace(viper.GetString("PAYMENT_PREFIX_INVOICE"))
	if cfg.PaymentPrefixInvoice == "" {
		cfg.PaymentPrefixInvoice = "PAY-IN"
	}
	cfg.PaymentPrefixBill = strings.TrimSpace(viper.GetString("PAYMENT_PREFIX_BILL"))
	if cfg.PaymentPrefixBill == "" {
		cfg.PaymentPrefixBill = "PAY-OUT"
	}

	cfg.PersistRetryAttempts = viper.GetInt("PERSIST_RETRY_ATTEMPTS")
	if cfg.PersistRetryAttempts < 1 {
		log.Printf("Warning: PERSIST_RETRY_ATTEMPTS must be at least 1 (got %d). Defaulting to 3.\n", cfg.PersistRetryAttempts)
		cfg.PersistRetryAttempts = 3
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
