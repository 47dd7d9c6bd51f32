package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

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
	Database      DatabaseConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Observability *ObservabilityConfig
	Paystack      PaystackConfig
}

type PrimaryConfig struct {
	Env string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	// Enabled gates the whole persistence layer: with it off, webhook
	// events are logged only and the outbox sink is never wired.
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MinIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

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

type KafkaConfig struct {
	Brokers []string
}

type ObservabilityConfig struct {
	ServiceName string
	Environment string
	Logging     LoggingConfig
	NewRelic    NewRelicConfig
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

// PaystackConfig holds the gateway credentials. SecretKey doubles as
// the bearer token for transaction initialization and the HMAC key for
// webhook verification; an empty value degrades both endpoints to
// error responses instead of crashing the process.
type PaystackConfig struct {
	SecretKey string
	BaseURL   string
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
		return strings.Split(value, ",")
	}
	return fallback
}

func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level == "" {
		if c.Environment == "production" {
			return "info"
		}
		return "debug"
	}
	return c.Logging.Level
}

func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Primary: PrimaryConfig{
			Env: getEnv("KERAUNOS_ENV", "development"),
		},
		Server: ServerConfig{
			Port:         getEnv("KERAUNOS_SERVER_PORT", "8080"),
			ReadTimeout:  getEnvInt("KERAUNOS_SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvInt("KERAUNOS_SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvInt("KERAUNOS_SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Enabled:         getEnvBool("KERAUNOS_DB_ENABLED", false),
			Host:            getEnv("KERAUNOS_DB_HOST", "localhost"),
			Port:            getEnvInt("KERAUNOS_DB_PORT", 5432),
			User:            getEnv("KERAUNOS_DB_USER", "keraunos"),
			Password:        getEnv("KERAUNOS_DB_PASSWORD", ""),
			Name:            getEnv("KERAUNOS_DB_NAME", "keraunos"),
			SSLMode:         getEnv("KERAUNOS_DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("KERAUNOS_DB_MAX_OPEN_CONNS", 25),
			MinIdleConns:    getEnvInt("KERAUNOS_DB_MIN_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("KERAUNOS_DB_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("KERAUNOS_DB_CONN_MAX_IDLE_TIME", 60),
		},
		Redis: RedisConfig{
			Address:      getEnv("KERAUNOS_REDIS_ADDRESS", "localhost:6379"),
			Password:     getEnv("KERAUNOS_REDIS_PASSWORD", ""),
			DB:           getEnvInt("KERAUNOS_REDIS_DB", 0),
			PoolSize:     getEnvInt("KERAUNOS_REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvInt("KERAUNOS_REDIS_MIN_IDLE_CONNS", 5),
			DialTimeout:  getEnvDuration("KERAUNOS_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvDuration("KERAUNOS_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvDuration("KERAUNOS_REDIS_WRITE_TIMEOUT", 3*time.Second),
			KeyPrefix:    getEnv("KERAUNOS_REDIS_KEY_PREFIX", "keraunos:"),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvSlice("KERAUNOS_KAFKA_BROKERS", []string{"localhost:9092"}),
		},
		Observability: &ObservabilityConfig{
			ServiceName: "keraunos-payments",
			Environment: getEnv("KERAUNOS_ENV", "development"),
			Logging: LoggingConfig{
				Level:  getEnv("KERAUNOS_LOG_LEVEL", ""),
				Format: getEnv("KERAUNOS_LOG_FORMAT", "console"),
			},
			NewRelic: NewRelicConfig{
				LicenseKey:                getEnv("KERAUNOS_NEWRELIC_LICENSE_KEY", ""),
				AppLogForwardingEnabled:   getEnvBool("KERAUNOS_NEWRELIC_LOG_FORWARDING", true),
				DistributedTracingEnabled: getEnvBool("KERAUNOS_NEWRELIC_DISTRIBUTED_TRACING", true),
				DebugLogging:              getEnvBool("KERAUNOS_NEWRELIC_DEBUG", false),
			},
		},
		Paystack: PaystackConfig{
			SecretKey: getEnv("KERAUNOS_PAYSTACK_SECRET_KEY", ""),
			BaseURL:   getEnv("KERAUNOS_PAYSTACK_BASE_URL", "https://api.paystack.co"),
		},
	}

	if cfg.Database.Enabled {
		if cfg.Database.Host == "" {
			return nil, fmt.Errorf("KERAUNOS_DB_HOST is required when the database is enabled")
		}
		if cfg.Database.Name == "" {
			return nil, fmt.Errorf("KERAUNOS_DB_NAME is required when the database is enabled")
		}
	}

	return cfg, nil
}
