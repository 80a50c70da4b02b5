package utils

import (
	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// LogError logs an HTTP error with request details using the singleton logger
func LogError(c *gin.Context, err error, status int, message string) {
	logging.GetGlobalLogger().LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)
}

// HandleAPIError logs err and replies with a fixed message.
// Internal error detail is only written to the log.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	LogError(c, err, status, message)
	c.AbortWithStatusJSON(status, common.NewMessageResponse(message))
}

// HandleContactError logs err and replies in the contact form shape
func HandleContactError(c *gin.Context, err error, status int, message string) {
	LogError(c, err, status, message)
	c.AbortWithStatusJSON(status, common.NewContactResponse(false, message))
}
