package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommuterIDHeader identifies the client profile that owns saved routes and analytics.
const CommuterIDHeader = "X-Commuter-ID"

const commuterIDKey = "commuter_id"

// CommuterMiddleware requires a valid commuter ID header and stores it in the context.
func CommuterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(CommuterIDHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing " + CommuterIDHeader + " header"})
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid " + CommuterIDHeader + " header"})
			return
		}
		c.Set(commuterIDKey, id)
		c.Next()
	}
}

// GetCommuterID returns the commuter ID set by CommuterMiddleware.
func GetCommuterID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(commuterIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
