package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func init() {
	// Load .env file - ignore error if file doesn't exist
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Note: .env file not found or could not be loaded: %v\n", err)
	}
}

type Config struct {
	Primary       PrimaryConfig
	Server        ServerConfig
	Redis         RedisConfig
	RateLimit     RateLimitConfig
	Observability *ObservabilityConfig `validate:"required"`
	Stripe        StripeConfig
}

type PrimaryConfig struct {
	Env string
}

type ServerConfig struct {
	Port               string   `validate:"required,numeric"`
	ReadTimeout        int      `validate:"gt=0"`
	WriteTimeout       int      `validate:"gt=0"`
	IdleTimeout        int      `validate:"gt=0"`
	ShutdownTimeout    int      `validate:"gt=0"`
	CORSAllowedOrigins []string `validate:"min=1"`
}

// RedisConfig is optional. An empty Address means no Redis client is created.
type RedisConfig struct {
	Address      string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	KeyPrefix    string
}

type RateLimitConfig struct {
	Enabled  bool
	Requests int64         `validate:"gt=0"`
	Window   time.Duration `validate:"gt=0"`
}

type ObservabilityConfig struct {
	ServiceName  string `validate:"required"`
	Environment  string
	Logging      LoggingConfig
	NewRelic     NewRelicConfig
	HealthChecks HealthChecksConfig
}

type LoggingConfig struct {
	Level  string
	Format string
}

type NewRelicConfig struct {
	LicenseKey                string
	AppLogForwardingEnabled   bool
	DistributedTracingEnabled bool
	DebugLogging              bool
}

type HealthChecksConfig struct {
	Enabled bool
	Timeout time.Duration
}

// StripeConfig holds the provider credential. SecretKey is never validated
// here: a missing key shows up as a provider failure on the first checkout.
type StripeConfig struct {
	SecretKey   string
	BaseURL     string
	HTTPTimeout time.Duration
}

// Helper functions for parsing env vars
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return fallback
}

func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level == "" {
		switch c.Environment {
		case "production":
			return "info"
		case "development":
			return "debug"
		default:
			return "info"
		}
	}
	return c.Logging.Level
}

func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

// Addr is the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return ":" + c.Port
}

// RedisEnabled reports whether a Redis address was configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Address != ""
}

var validate = validator.New()

func LoadConfig() (*Config, error) {
	env := getEnv("CHECKOUT_ENV", "development")

	cfg := &Config{
		Primary: PrimaryConfig{
			Env: env,
		},
		Server: ServerConfig{
			Port:               getEnv("CHECKOUT_SERVER_PORT", "4242"),
			ReadTimeout:        getEnvInt("CHECKOUT_SERVER_READ_TIMEOUT", 30),
			WriteTimeout:       getEnvInt("CHECKOUT_SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:        getEnvInt("CHECKOUT_SERVER_IDLE_TIMEOUT", 60),
			ShutdownTimeout:    getEnvInt("CHECKOUT_SHUTDOWN_TIMEOUT", 10),
			CORSAllowedOrigins: getEnvSlice("CHECKOUT_SERVER_CORS_ORIGINS", []string{"*"}),
		},
		Redis: RedisConfig{
			Address:      getEnv("CHECKOUT_REDIS_ADDRESS", ""),
			Password:     getEnv("CHECKOUT_REDIS_PASSWORD", ""),
			DB:           getEnvInt("CHECKOUT_REDIS_DB", 0),
			PoolSize:     getEnvInt("CHECKOUT_REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvInt("CHECKOUT_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getEnvDuration("CHECKOUT_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvDuration("CHECKOUT_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvDuration("CHECKOUT_REDIS_WRITE_TIMEOUT", 3*time.Second),
			KeyPrefix:    getEnv("CHECKOUT_REDIS_KEY_PREFIX", "checkout:"),
		},
		RateLimit: RateLimitConfig{
			Enabled:  getEnvBool("CHECKOUT_RATE_LIMIT_ENABLED", false),
			Requests: getEnvInt64("CHECKOUT_RATE_LIMIT_REQUESTS", 20),
			Window:   getEnvDuration("CHECKOUT_RATE_LIMIT_WINDOW", time.Minute),
		},
		Observability: &ObservabilityConfig{
			ServiceName: "checkout",
			Environment: env,
			Logging: LoggingConfig{
				Level:  getEnv("CHECKOUT_LOG_LEVEL", ""),
				Format: getEnv("CHECKOUT_LOG_FORMAT", "console"),
			},
			NewRelic: NewRelicConfig{
				LicenseKey:                getEnv("CHECKOUT_NEWRELIC_LICENSE_KEY", ""),
				AppLogForwardingEnabled:   getEnvBool("CHECKOUT_NEWRELIC_LOG_FORWARDING", true),
				DistributedTracingEnabled: getEnvBool("CHECKOUT_NEWRELIC_DISTRIBUTED_TRACING", true),
				DebugLogging:              getEnvBool("CHECKOUT_NEWRELIC_DEBUG", false),
			},
			HealthChecks: HealthChecksConfig{
				Enabled: getEnvBool("CHECKOUT_HEALTHCHECK_ENABLED", true),
				Timeout: getEnvDuration("CHECKOUT_HEALTHCHECK_TIMEOUT", 2*time.Second),
			},
		},
		Stripe: StripeConfig{
			SecretKey:   getEnv("STRIPE_SECRET_KEY", ""),
			BaseURL:     getEnv("STRIPE_API_BASE_URL", ""),
			HTTPTimeout: getEnvDuration("STRIPE_HTTP_TIMEOUT", 80*time.Second),
		},
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
