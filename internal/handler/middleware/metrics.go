package middleware

import (
	"strconv"

	"storezee/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts requests by matched route template, never by raw path.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTP(route, strconv.Itoa(c.Writer.Status()))
	}
}
