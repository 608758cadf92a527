package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/controllers/ecommerce/user_controller/loyalty_controller"
	"github.com/phnam24/frontend-v1-sub001/middleware"
)

// SetupUserRoutes sets up the signed-in shopper's loyalty routes
func SetupUserRoutes(router *gin.RouterGroup, jwtSecret, jwtIssuer string, loyalty *loyalty_controller.Handler) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware(jwtSecret, jwtIssuer)) // All routes require auth
	{
		user.GET("/rank", loyalty.GetRank)

		// Vouchers
		user.GET("/vouchers", loyalty.GetVouchers)
		user.GET("/vouchers/:code/eligibility", loyalty.GetVoucherEligibility)
	}
}
