package middleware

import (
	"time"

	"publisher-gateway/infrastructure/logger"
	"publisher-gateway/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID reuses an inbound X-Request-ID or generates one, and echoes it on
// the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx.Set(RequestIDKey, requestID)
		ctx.Header(RequestIDHeader, requestID)
		ctx.Next()
	}
}

// AccessLog logs and records metrics for every request once it completes.
func AccessLog() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		duration := time.Since(start)

		endpoint := ctx.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := ctx.Writer.Status()
		metrics.RecordAPIRequest(ctx.Request.Method, endpoint, status, duration)

		logger.GetLogger().WithFields(map[string]interface{}{
			"requestId": ctx.GetString(RequestIDKey),
			"method":    ctx.Request.Method,
			"path":      ctx.Request.URL.Path,
			"status":    status,
			"latencyMs": duration.Milliseconds(),
		}).Info("Request handled")
	}
}
