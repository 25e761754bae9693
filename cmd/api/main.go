package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq" // Postgres driver
	"github.com/redis/go-redis/v9"

	"steaminvest/config"
	_ "steaminvest/docs" // Swagger docs
	"steaminvest/internal/httpserver"
	"steaminvest/internal/inventory/repository/postgre"
	"steaminvest/internal/pricecache"
	"steaminvest/pkg/log"
	"steaminvest/pkg/steammarket"
)

// @title       SteamInvest API
// @description Steam marketplace inventory investment tracker: records, valuations and rate-limited market price refreshes.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SteamInvest...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to reach postgres: %v", err)
	}
	if err := postgre.EnsureSchema(ctx, db); err != nil {
		logger.Fatalf(ctx, "Failed to ensure schema: %v", err)
	}
	logger.Infof(ctx, "Postgres connected: %s/%s", cfg.Postgres.Host, cfg.Postgres.Database)

	// 4. Price source: market client wrapped in caches. Redis sits closest
	// to the market so multiple instances share lookups; the in-process LRU
	// keeps the hot path off the network entirely.
	var prices steammarket.PriceSource = steammarket.NewClient(cfg.Steam.BaseURL, cfg.Steam.AppID, cfg.Steam.Currency)

	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf(ctx, "Redis not available (optional), continuing without shared cache: %v", err)
		} else {
			prices = pricecache.NewRedis(prices, redisClient, cfg.Cache.TTL, logger)
			logger.Infof(ctx, "Redis price cache enabled: %s", cfg.Redis.Addr)
		}
	}
	prices = pricecache.NewMemory(prices, cfg.Cache.Size, cfg.Cache.TTL)

	// 5. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB:     db,
		Prices:         prices,
		LookupInterval: cfg.Refresh.LookupInterval,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
	logger.Info(ctx, "Shutdown complete")
}
