// @title Storefront Rules API
// @version 1.0
// @description Sorting, rank progress, voucher eligibility and shopper filter state for the storefront
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	catalog_cache "github.com/phnam24/frontend-v1-sub001/cache"
	"github.com/phnam24/frontend-v1-sub001/config"
	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/middleware"
	"github.com/phnam24/frontend-v1-sub001/persistence"
	"github.com/phnam24/frontend-v1-sub001/repository"
	"github.com/phnam24/frontend-v1-sub001/routes"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to DB
	db, err := config.OpenGorm(cfg.DatabaseURL, cfg.IsProduction())
	if err != nil {
		logger.Fatal("catalog database", zap.Error(err))
	}
	pool, err := config.OpenPool(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("loyalty database", zap.Error(err))
	}
	defer config.CloseDB(db, pool)

	// Redis connection
	redisClient, err := config.ConnectRedis(cfg.RedisURL)
	if err != nil {
		if cfg.FilterStore == config.FilterStoreRedis {
			logger.Fatal("redis", zap.Error(err))
		}
		logger.Warn("⚠️ Redis unavailable, rate limiting disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	store, closeStore, err := openFilterStore(cfg, redisClient)
	if err != nil {
		logger.Fatal("filter store", zap.Error(err))
	}
	defer closeStore()
	logger.Info("✅ Filter store ready", zap.String("backend", cfg.FilterStore))

	ladder, err := config.LoadLadder(cfg.RankConfigPath)
	if err != nil {
		logger.Fatal("rank ladder", zap.Error(err))
	}

	var limiter gin.HandlerFunc
	if redisClient != nil {
		limiter = middleware.RateLimiter(redisClient, logger, cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	products := repository.NewCachedProductRepository(
		repository.NewProductRepository(db),
		catalog_cache.New(cfg.CatalogCacheTTL),
	)

	router := routes.NewRouter(routes.Dependencies{
		Products:    products,
		Vouchers:    repository.NewVoucherRepository(db),
		Standings:   repository.NewLoyaltyRepository(pool),
		Sessions:    filters.NewSessions(store, logger),
		Ladder:      ladder,
		Log:         logger,
		JWTSecret:   cfg.JWTSecret,
		JWTIssuer:   cfg.JWTIssuer,
		CORSOrigins: cfg.CORSOrigins,
		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("🚀 Server is running", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := config.WithCustomTimeout(10 * time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// openFilterStore picks the session backend named by FILTER_STORE.
func openFilterStore(cfg *config.AppConfig, client *redis.Client) (persistence.BlobStore, func(), error) {
	switch cfg.FilterStore {
	case config.FilterStoreSQLite:
		s, err := persistence.OpenSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case config.FilterStoreMemory:
		return persistence.NewMemoryStore(), func() {}, nil
	default:
		return persistence.NewRedisStore(client, "storefront:", cfg.SessionTTL), func() {}, nil
	}
}
