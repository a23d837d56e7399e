package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/remittance_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// HTTPMetrics records request latency per route pattern.
func HTTPMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestLatency.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
