package server

import (
	"fmt"
	"net/http"
	"time"

	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware propagates the caller's X-Request-ID when it is a UUID,
// otherwise assigns a new one
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if !utils.IsValidID(id) {
		id = utils.GenerateID()
	}
	c.Set("request_id", id)
	c.Header(requestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":     c.Request.Method,
		"path":       c.FullPath(),
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString("request_id"),
	}
	if fields["path"] == "" {
		fields["path"] = c.Request.URL.Path
	}

	switch status := c.Writer.Status(); {
	case status >= http.StatusInternalServerError:
		utils.Error("HTTP Request", fields)
	case status >= http.StatusBadRequest:
		utils.Warn("HTTP Request", fields)
	default:
		utils.Info("HTTP Request", fields)
	}
}

// RecoveryMiddleware turns a panic into a 500 with the usual error envelope
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		utils.Error("panic recovered", map[string]any{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
			"panic":      fmt.Sprint(recovered),
		})
		utils.JSONError(c, http.StatusInternalServerError, fmt.Errorf("panic: %v", recovered), "internal server error")
		c.Abort()
	})
}
