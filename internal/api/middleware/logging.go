package middleware

import (
	"time"

	"github.com/osa911/portfolio/internal/api/constants"
	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request.
// The logger itself drops the line unless LOG_REQUESTS=true.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.GetString(constants.ContextKeyRequestID),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
