package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/phnam24/frontend-v1-sub001/utils"
)

// AppConfig is everything main needs to wire the service, read from env.
type AppConfig struct {
	Port            string
	Env             string
	DatabaseURL     string
	RedisURL        string
	JWTSecret       string
	JWTIssuer       string
	FilterStore     string
	SQLitePath      string
	SessionTTL      time.Duration
	CatalogCacheTTL time.Duration
	RateLimitMax    int
	RateLimitWindow time.Duration
	CORSOrigins     []string
	RankConfigPath  string
}

const (
	FilterStoreRedis  = "redis"
	FilterStoreSQLite = "sqlite"
	FilterStoreMemory = "memory"
)

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// Load reads AppConfig from the environment, falling back to local defaults.
func Load() *AppConfig {
	cfg := &AppConfig{
		Port:            getEnv("PORT", "8081"),
		Env:             getEnv("APP_ENV", "development"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTIssuer:       getEnv("JWT_ISSUER", utils.DefaultIssuer),
		FilterStore:     strings.ToLower(getEnv("FILTER_STORE", FilterStoreRedis)),
		SQLitePath:      getEnv("SQLITE_PATH", "./storefront_sessions.db"),
		SessionTTL:      getDuration("SESSION_TTL", 30*24*time.Hour),
		CatalogCacheTTL: getDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		RateLimitMax:    getInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", time.Minute),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		RankConfigPath:  os.Getenv("RANK_CONFIG"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "host=" + getEnv("DB_HOST", "localhost") +
			" user=" + getEnv("DB_USER", "postgres") +
			" password=" + getEnv("DB_PASSWORD", "") +
			" dbname=" + getEnv("DB_NAME", "storefront") +
			" port=" + getEnv("DB_PORT", "5432") +
			" sslmode=disable TimeZone=UTC"
		log.Println("⚠️ DATABASE_URL not set, using local default")
	}

	switch cfg.FilterStore {
	case FilterStoreRedis, FilterStoreSQLite, FilterStoreMemory:
	default:
		log.Printf("⚠️ unknown FILTER_STORE %q, using redis", cfg.FilterStore)
		cfg.FilterStore = FilterStoreRedis
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
