package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes one access log entry per request once the handler chain has
// finished. The level follows the response status: 5xx error, 4xx warn, else info.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// handlers may rewrite the URL, so capture it up front
		path, rawQuery := c.Request.URL.Path, c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", rawQuery),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if id := GetRequestID(c); id != "" {
			fields = append(fields, zap.String("request_id", id))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		level, msg := accessLevel(status)
		if ce := logger.Check(level, msg); ce != nil {
			ce.Write(fields...)
		}
	}
}

func accessLevel(status int) (zapcore.Level, string) {
	switch {
	case status >= 500:
		return zapcore.ErrorLevel, "Server error"
	case status >= 400:
		return zapcore.WarnLevel, "Client error"
	default:
		return zapcore.InfoLevel, "Request completed"
	}
}
