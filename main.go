package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"cash-track/auth"
	"cash-track/config"
	"cash-track/dashboard"
	"cash-track/database"
	"cash-track/handlers"
	"cash-track/logger"
	"cash-track/market"
	"cash-track/middleware"
	"cash-track/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	store, rdb, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	records := repository.New(store, repository.WithLogger(log.With().Str("component", "repository").Logger()))
	verifier := auth.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	h := handlers.New(records, dashboard.New(records), newQuoter(cfg, rdb, log), verifier)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log))
	h.Register(router, middleware.Auth(verifier))

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	go func() {
		log.Info().Str("addr", srv.Addr).Str("store", cfg.StoreDriver).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openStore connects the configured store driver. rdb is non-nil
// whenever a redis connection was opened.
func openStore(ctx context.Context, cfg config.Config, log zerolog.Logger) (database.Store, *redis.Client, func()) {
	switch cfg.StoreDriver {
	case config.DriverRedis:
		rdb, err := config.OpenRedis(ctx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("redis unavailable")
		}
		return database.NewRedis(rdb, cfg.RedisPrefix), rdb, func() { rdb.Close() }
	default:
		db, err := config.OpenDB(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres unavailable")
		}
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate records")
		}
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to get database instance")
		}

		// Redis is optional here; it only backs the quote cache.
		rdb, err := config.OpenRedis(ctx, cfg)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, quotes cached in memory")
			return database.NewGorm(db), nil, func() { sqlDB.Close() }
		}
		return database.NewGorm(db), rdb, func() {
			rdb.Close()
			sqlDB.Close()
		}
	}
}

func newQuoter(cfg config.Config, rdb *redis.Client, log zerolog.Logger) market.Quoter {
	if cfg.AlphaVantageKey == "" {
		log.Info().Msg("ALPHA_VANTAGE_API_KEY not set, quoting from the reference table")
		return market.Reference{}
	}
	var cache market.Cache = market.NewMemoryCache()
	if rdb != nil {
		cache = market.NewRedisCache(rdb)
	}
	return market.NewCached(market.NewAlphaVantage(cfg.AlphaVantageKey), cache, cfg.QuoteCacheTTL,
		log.With().Str("component", "quotes").Logger())
}
