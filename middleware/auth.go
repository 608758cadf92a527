package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/phnam24/frontend-v1-sub001/utils"
)

const (
	authCookieName = "auth_token"

	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserName  = "userName"
)

// AuthMiddleware validates JWT token from cookie or Authorization header
func AuthMiddleware(secret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		cookieToken, err := c.Cookie(authCookieName)
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				return
			}

			token, err = utils.ExtractTokenFromHeader(authHeader)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				return
			}
		}

		claims, err := utils.ValidateJWT(secret, issuer, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserName, claims.Name)

		c.Next()
	}
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}
