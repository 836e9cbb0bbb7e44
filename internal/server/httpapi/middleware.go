package httpapi

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zayats-yacht/yachtclient/internal/common"
	"github.com/zayats-yacht/yachtclient/internal/logging"
)

const (
	TraceIDHeader     = "X-Trace-ID"
	TraceParentHeader = "traceparent"
	traceIDKey        = "trace_id"
)

// traceID takes the trace id from a W3C traceparent header, then from
// X-Trace-ID, and otherwise makes a new one.
func traceID(c *gin.Context) string {
	if tp := c.GetHeader(TraceParentHeader); tp != "" {
		// version-traceid-parentid-flags
		parts := strings.Split(tp, "-")
		if len(parts) >= 2 && parts[1] != "" {
			return parts[1]
		}
	}
	if id := c.GetHeader(TraceIDHeader); id != "" {
		return id
	}
	id, err := common.MakeRandHexString(16)
	if err != nil {
		return "unknown"
	}
	return id
}

// LoggingMiddleware logs one line per request with its trace id, which is
// also echoed in the X-Trace-ID response header.
func LoggingMiddleware(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		id := traceID(c)
		c.Set(traceIDKey, id)
		c.Header(TraceIDHeader, id)

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"trace_id", id,
			"method", method,
			"path", path,
			"status", status,
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			logger.Error(ctx, "HTTP request", args...)
		case status >= 400:
			logger.Warn(ctx, "HTTP request", args...)
		default:
			logger.Info(ctx, "HTTP request", args...)
		}
	}
}
