package utils

import (
	"net/http"

	"github.com/osa911/portfolio/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleContactReply sends a contact form reply
func HandleContactReply(c *gin.Context, status int, success bool, message string) {
	c.JSON(status, common.NewContactResponse(success, message))
}

// HandleCreated sends a created response with data
func HandleCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// HandleSuccess sends data as the whole response body
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
