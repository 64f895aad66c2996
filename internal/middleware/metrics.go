package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"nc-news-api/internal/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records count and latency for every request except the
// operational endpoints. Requests are labelled by route template, so
// /api/articles/1 and /api/articles/2 share one series.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if metrics.ShouldSkipEndpoint(route) {
			return
		}
		if route == "" {
			route = unmatchedRoute
		}
		m.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
