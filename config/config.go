// Package config loads process configuration from the environment once at
// startup. Components receive it by injection; nothing reads env vars later.
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Sane defaults cover local development; only DATABASE_URL is required.
type Config struct {
	AppName string
	Env     string // development, test, production
	Port    string
	GinMode string

	// Database
	DatabaseURL     string
	DatabaseTestURL string
	RunMigrations   bool
	MigrationsDir   string
	DBMaxConns      int32
	DBMinConns      int32
	DBMaxConnLife   time.Duration
	DBPingTimeout   time.Duration

	// Redis (optional; cache and rate limiting degrade gracefully without it)
	RedisEnabled  bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Fixed UTC offset applied to every response timestamp, e.g. "-03:00"
	TimeOffset string

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load reads configuration from environment variables. A missing
// DATABASE_URL is an error; startup must not proceed without it.
func Load() (*Config, error) {
	cfg := &Config{
		AppName: getenv("APP_NAME", "users-api"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		DatabaseURL:     getenv("DATABASE_URL", ""),
		DatabaseTestURL: getenv("DATABASE_TEST_URL", ""),
		RunMigrations:   getbool("MIGRATIONS", false),
		MigrationsDir:   getenv("MIGRATIONS_DIR", "db/migrations"),
		DBMaxConns:      int32(getint("DB_MAX_CONNS", 10)),
		DBMinConns:      int32(getint("DB_MIN_CONNS", 2)),
		DBMaxConnLife:   getdur("DB_MAX_CONN_LIFETIME", time.Hour),
		DBPingTimeout:   getdur("DB_PING_TIMEOUT", 5*time.Second),

		RedisEnabled:  getbool("REDIS_ENABLED", false),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),
		CacheTTL:      getdur("CACHE_TTL", time.Minute),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		TimeOffset: getenv("TIME_OFFSET", "-03:00"),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}
	return cfg, nil
}

// DSN returns the connection string for the selected database: the test
// database when running under APP_ENV=test, the primary one otherwise.
func (c *Config) DSN() string {
	if c.Env == "test" && c.DatabaseTestURL != "" {
		return c.DatabaseTestURL
	}
	return c.DatabaseURL
}

// CORSOrigins returns the allowed origins as a slice.
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
