package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	Port            string
	GinMode         string
	LogLevel        string
	LogFormat       string
	StoreDriver     string
	DatabaseURL     string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RedisPrefix     string
	JWTSecret       string
	JWTIssuer       string
	AlphaVantageKey string
	QuoteCacheTTL   time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the configuration from the environment, after loading a
// .env file when one is present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:            env("PORT", "8080"),
		GinMode:         env("GIN_MODE", "release"),
		LogLevel:        env("LOG_LEVEL", "info"),
		LogFormat:       env("LOG_FORMAT", "json"),
		StoreDriver:     strings.ToLower(env("STORE_DRIVER", DriverPostgres)),
		DatabaseURL:     env("DATABASE_URL", ""),
		RedisAddr:       env("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:   getenv("REDIS_PASSWORD"),
		RedisPrefix:     env("REDIS_PREFIX", "cashtrack"),
		JWTSecret:       getenv("JWT_SECRET"),
		JWTIssuer:       env("JWT_ISSUER", ""),
		AlphaVantageKey: env("ALPHA_VANTAGE_API_KEY", ""),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(env("REDIS_DB", "0")); err != nil {
		return Config{}, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.QuoteCacheTTL, err = time.ParseDuration(env("QUOTE_CACHE_TTL", "5m")); err != nil {
		return Config{}, fmt.Errorf("QUOTE_CACHE_TTL: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(env("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("GIN_MODE %q: want debug, release or test", cfg.GinMode)
	}
	switch cfg.StoreDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
				env("DB_HOST", "localhost"),
				env("DB_USER", "postgres"),
				getenv("DB_PASSWORD"),
				env("DB_NAME", "cashtrack"),
				env("DB_PORT", "5432"),
				env("DB_SSLMODE", "disable"),
				env("DB_TIMEZONE", "UTC"),
			)
		}
	case DriverRedis:
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER %q: want %s or %s", cfg.StoreDriver, DriverPostgres, DriverRedis)
	}
	return cfg, nil
}

// OpenDB connects to postgres. The caller owns the handle.
func OpenDB(cfg Config) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.LogLevel == "debug" {
		level = logger.Info
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// OpenRedis connects to redis and checks the connection.
func OpenRedis(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return rdb, nil
}
