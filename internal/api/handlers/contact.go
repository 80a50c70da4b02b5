package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/api/dto/contact"
	"github.com/osa911/portfolio/internal/api/mapper"
	"github.com/osa911/portfolio/internal/models"
	"github.com/osa911/portfolio/internal/service"
	"github.com/osa911/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// MaxContactBodyBytes caps the size of a contact form request body
const MaxContactBodyBytes = 64 << 10

// ContactSubmitter runs the contact submission pipeline
type ContactSubmitter interface {
	Submit(ctx context.Context, input service.ContactInput) (*models.ContactMessage, error)
}

type ContactHandler struct {
	contactService ContactSubmitter
}

func NewContactHandler(contactService ContactSubmitter) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxContactBodyBytes)

	var req contact.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleContactError(c, err, http.StatusBadRequest, common.MessageContactInvalid)
		return
	}

	_, err := h.contactService.Submit(c.Request.Context(), mapper.ContactInputFromRequest(&req, utils.GetRealIP(c)))
	switch {
	case err == nil:
		utils.HandleContactReply(c, http.StatusOK, true, common.MessageContactSent)
	case errors.Is(err, service.ErrValidation):
		utils.HandleContactError(c, err, http.StatusBadRequest, common.MessageContactInvalid)
	case errors.Is(err, service.ErrCaptcha):
		utils.HandleContactError(c, err, http.StatusBadRequest, common.MessageContactCaptcha)
	default:
		utils.HandleContactError(c, err, http.StatusInternalServerError, common.MessageContactFailed)
	}
}
