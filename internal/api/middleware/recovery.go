package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/osa911/portfolio/internal/api/constants"
	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 and logs the stack
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logging.GetGlobalLogger().Error("[PANIC] %s %s | %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					utils.GetRealIP(c),
					c.GetString(constants.ContextKeyRequestID),
					err,
					debug.Stack(),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewMessageResponse(common.MessageServerError))
			}
		}()

		c.Next()
	}
}
