package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	SessionSecret       string
	SessionCookieDomain string
	AuthCookieSecure    bool

	MarketLock string

	TokenLimitDefault int64

	LogLevel string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int
	DBConnMaxIdleTime int

	RateLimit RateLimitConfig
}

// RateLimitConfig controls the redis-backed advisor token bucket.
type RateLimitConfig struct {
	Enabled       bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	AdvisorRate   float64
	AdvisorBurst  int
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	cookieDomain := ""
	if environment == "production" {
		cookieDomain = getenv("SESSION_COOKIE_DOMAIN", "tradiehq.app")
	}

	cfg := Config{
		AppName:             getenv("APP_SERVICE", "tradiehq"),
		AppVersion:          getenv("APP_VERSION", "0.1.0"),
		Environment:         environment,
		SessionSecret:       strings.TrimSpace(getenv("SESSION_SECRET", "")),
		SessionCookieDomain: cookieDomain,
		AuthCookieSecure:    authCookieSecure,
		MarketLock:          strings.ToUpper(strings.TrimSpace(getenv("APP_MARKET_LOCK", ""))),

		TokenLimitDefault: getenvInt64("TOKEN_LIMIT_DEFAULT", 50000),

		LogLevel: getenv("LOG_LEVEL", "info"),

		DBType:     getenv("DATABASE_TYPE", "postgres"),
		DBHost:     getenv("DATABASE_HOST", "localhost"),
		DBPort:     getenv("DATABASE_PORT", "5432"),
		DBName:     getenv("DATABASE_NAME", "tradiehq"),
		DBUser:     getenv("DATABASE_USER", "postgres"),
		DBPassword: getenv("DATABASE_PASSWORD", "postgres"),
		DBSSLMode:  getenv("DATABASE_SSLMODE", "disable"),

		RateLimit: RateLimitConfig{
			Enabled:       getenvBool("RATE_LIMIT_ENABLED", false),
			RedisAddr:     strings.TrimSpace(getenv("RATE_LIMIT_REDIS_ADDR", "")),
			RedisPassword: getenv("RATE_LIMIT_REDIS_PASSWORD", ""),
			RedisDB:       int(getenvInt64("RATE_LIMIT_REDIS_DB", 0)),
			AdvisorRate:   getenvFloat("RATE_LIMIT_ADVISOR_RATE", 0.5),
			AdvisorBurst:  int(getenvInt64("RATE_LIMIT_ADVISOR_BURST", 10)),
		},
	}

	return cfg
}

// IsProduction reports whether the app runs with production hardening.
// Preview deployments (everything else) keep the demo funnel and debug
// surfaces enabled.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt64(key string, def int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}
