// Package routes assembles the gin engine for the storefront API.
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	store_filter "github.com/phnam24/frontend-v1-sub001/controllers/ecommerce/filter_controller"
	store_product "github.com/phnam24/frontend-v1-sub001/controllers/ecommerce/product_controller"
	"github.com/phnam24/frontend-v1-sub001/controllers/ecommerce/user_controller/loyalty_controller"
	store_wishlist "github.com/phnam24/frontend-v1-sub001/controllers/ecommerce/wishlist_controller"
	_ "github.com/phnam24/frontend-v1-sub001/docs"
	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/loyalty"
	"github.com/phnam24/frontend-v1-sub001/middleware"
	"github.com/phnam24/frontend-v1-sub001/repository"
	"github.com/phnam24/frontend-v1-sub001/routes/ecommerce_routes"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies is everything the HTTP layer reads from or writes to.
type Dependencies struct {
	Products    repository.ProductRepository
	Vouchers    repository.VoucherRepository
	Standings   repository.LoyaltyRepository
	Sessions    *filters.Sessions
	Ladder      *loyalty.Ladder
	Log         *zap.Logger
	JWTSecret   string
	JWTIssuer   string
	CORSOrigins []string
	// RateLimiter guards the public store routes; nil disables it.
	RateLimiter gin.HandlerFunc
}

func NewRouter(deps Dependencies) *gin.Engine {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	corsCfg := cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.SessionHeader},
		ExposeHeaders:    []string{middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))
	if len(deps.CORSOrigins) > 0 {
		router.Use(cors.New(corsCfg))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	loyaltyHandler := loyalty_controller.New(deps.Standings, deps.Vouchers, deps.Ladder, log)

	api := router.Group("/api/v1")
	ecommerce_routes.SetupStorefrontRoutes(api, ecommerce_routes.StorefrontHandlers{
		Products: store_product.New(deps.Products, log),
		Filters:  store_filter.New(deps.Sessions, log),
		Wishlist: store_wishlist.New(deps.Sessions, deps.Products, log),
		Loyalty:  loyaltyHandler,
	}, deps.RateLimiter)
	ecommerce_routes.SetupUserRoutes(api, deps.JWTSecret, deps.JWTIssuer, loyaltyHandler)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
