package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader    = "X-Session-ID"
	ContextSessionID = "sessionID"
)

// SessionID reads the shopper's session id from X-Session-ID. A missing or
// malformed id is replaced by a fresh one, echoed back in the same header.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(SessionHeader))
		if err != nil || id == uuid.Nil {
			id = uuid.Must(uuid.NewV7())
		}

		c.Set(ContextSessionID, id.String())
		c.Header(SessionHeader, id.String())
		c.Next()
	}
}

func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextSessionID)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
