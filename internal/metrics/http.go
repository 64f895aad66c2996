package metrics

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// Final segments of the operational routes. They are mounted both at the root
// and under the API base path.
var operationalRoutes = map[string]struct{}{
	"metrics": {},
	"health":  {},
	"ready":   {},
}

// RecordHTTPRequest counts one finished request and observes its latency.
// endpoint is the matched route template, e.g. /api/articles/:article_id.
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, categorizeStatus(statusCode)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

// categorizeStatus folds a status code into its class label
func categorizeStatus(code int) string {
	if code < 200 || code > 599 {
		return "unknown"
	}
	return fmt.Sprintf("%dxx", code/100)
}

// ShouldSkipEndpoint reports whether requests matched to the route template
// are left out of the HTTP metrics: health, readiness, metrics and the
// swagger UI, wherever they are mounted. Parameterised routes never match, so
// /api/users/health still counts as a user lookup.
func ShouldSkipEndpoint(route string) bool {
	if strings.Contains(route, "/swagger/") {
		return true
	}
	_, skip := operationalRoutes[path.Base(route)]
	return skip
}
