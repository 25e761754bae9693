package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig
	Redis    RedisConfig

	// Market integration
	Steam   SteamConfig
	Refresh RefreshConfig
	Cache   CacheConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN renders the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// RedisConfig enables the shared price cache when Addr is set. An empty Addr
// leaves the service on its in-process cache only.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

type SteamConfig struct {
	BaseURL  string
	AppID    int
	Currency int
}

type RefreshConfig struct {
	LookupInterval time.Duration
}

type CacheConfig struct {
	TTL  time.Duration
	Size int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	if pgPassword := viper.GetString("postgres_password"); pgPassword != "" {
		cfg.Postgres.Password = pgPassword
	}

	// Redis (optional)
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}

	// Steam market
	cfg.Steam.BaseURL = viper.GetString("steam.base_url")
	cfg.Steam.AppID = viper.GetInt("steam.app_id")
	cfg.Steam.Currency = viper.GetInt("steam.currency")

	// Refresh pacing & price cache
	cfg.Refresh.LookupInterval = viper.GetDuration("refresh.lookup_interval")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.Cache.Size = viper.GetInt("cache.size")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "steaminvest")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("steam.base_url", "https://steamcommunity.com")
	viper.SetDefault("steam.app_id", 730)
	viper.SetDefault("steam.currency", 1)

	viper.SetDefault("refresh.lookup_interval", "3.5s")
	viper.SetDefault("cache.ttl", "5m")
	viper.SetDefault("cache.size", 1000)
}
