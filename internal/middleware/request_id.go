package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request correlation ID in both directions
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the gin context key holding the request ID
	RequestIDKey = "request_id"
)

// RequestID reuses the caller's X-Request-ID or generates a UUID, and echoes it on the response
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request ID stored by RequestID, or an empty string
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
