package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
	store_filter "github.com/phnam24/frontend-v1-sub001/controllers/ecommerce/filter_controller"
	store_product "github.com/phnam24/frontend-v1-sub001/controllers/ecommerce/product_controller"
	"github.com/phnam24/frontend-v1-sub001/controllers/ecommerce/user_controller/loyalty_controller"
	store_wishlist "github.com/phnam24/frontend-v1-sub001/controllers/ecommerce/wishlist_controller"
	"github.com/phnam24/frontend-v1-sub001/middleware"
)

// StorefrontHandlers groups the public storefront controllers.
type StorefrontHandlers struct {
	Products *store_product.Handler
	Filters  *store_filter.Handler
	Wishlist *store_wishlist.Handler
	Loyalty  *loyalty_controller.Handler
}

func SetupStorefrontRoutes(router *gin.RouterGroup, h StorefrontHandlers, limiter gin.HandlerFunc) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")
	if limiter != nil {
		store.Use(limiter)
	}

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", h.Products.GetStorefrontProducts)            // List with filters
		products.GET("/filters", h.Products.GetProductFilters)        // Available filters
		products.GET("/:slug", h.Products.GetStorefrontProductBySlug) // Single product
	}
	store.GET("/sort-options", h.Products.GetSortOptions)
	store.GET("/ranks", h.Loyalty.GetRankLadder)

	// Filter selection, keyed by X-Session-ID
	filterGroup := store.Group("/filters", middleware.SessionID())
	{
		filterGroup.GET("", h.Filters.GetFilters)
		filterGroup.PUT("/price", h.Filters.SetPriceRange)
		filterGroup.PUT("/sort", h.Filters.SetSort)
		filterGroup.POST("/toggle", h.Filters.ToggleFilter)
		filterGroup.DELETE("/:facet", h.Filters.ClearFilter)
		filterGroup.DELETE("", h.Filters.ResetFilters)
	}

	wishlist := store.Group("/wishlist", middleware.SessionID())
	{
		wishlist.GET("", h.Wishlist.GetWishlist)
		wishlist.POST("/:id/toggle", h.Wishlist.ToggleWishlistItem)
		wishlist.DELETE("/:id", h.Wishlist.RemoveWishlistItem)
		wishlist.DELETE("", h.Wishlist.ClearWishlist)
	}
}
