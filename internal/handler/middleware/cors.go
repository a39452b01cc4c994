package middleware

import (
	"log/slog"
	"slices"

	"storezee/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposeHeaders(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

// browsers hide X-Request-ID from scripts unless it is exposed
func exposeHeaders(configured []string) []string {
	if slices.Contains(configured, RequestIDHeader) {
		return configured
	}
	return append(slices.Clone(configured), RequestIDHeader)
}
