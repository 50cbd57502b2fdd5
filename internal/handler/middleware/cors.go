package middleware

import (
	"log/slog"

	"dealstream/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the browser frontend call the API with its session
// cookie. A "*" origin switches to AllowAllOrigins without credentials, since
// browsers refuse a wildcard origin on credentialed requests.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		AllowWebSockets:  true,
		MaxAge:           cfg.MaxAge,
	}

	if allowsAnyOrigin(cfg.AllowOrigins) {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("cors configured",
		"allow_origins", cfg.AllowOrigins,
		"credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
