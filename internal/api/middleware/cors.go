package middleware

import (
	"strings"
	"time"

	"github.com/osa911/portfolio/internal/api/constants"
	"github.com/osa911/portfolio/internal/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DevelopmentOrigins are the dev server addresses of the client SPA
var DevelopmentOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// CORS allows the configured origins in production and the local dev
// server otherwise. Production without an allowlist serves same-origin only.
func CORS(production bool, allowedOrigins []string) gin.HandlerFunc {
	origins := allowedOrigins
	if !production {
		origins = append(append([]string{}, DevelopmentOrigins...), allowedOrigins...)
	}

	logger := logging.GetGlobalLogger()
	var filtered []string
	for _, origin := range origins {
		switch {
		case origin == "":
		case origin == "*" || strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://"):
			filtered = append(filtered, origin)
		default:
			logger.Warn("Ignoring allowed origin %q: scheme required", origin)
		}
	}

	if len(filtered) == 0 {
		logger.Warn("No ALLOWED_ORIGINS configured; cross-origin requests will be rejected by browsers")
		return func(c *gin.Context) { c.Next() }
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = filtered
	config.AllowCredentials = true
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", constants.HeaderRequestID, constants.HeaderAdminKey}
	config.ExposeHeaders = []string{constants.HeaderRequestID}
	config.MaxAge = 12 * time.Hour
	return cors.New(config)
}
