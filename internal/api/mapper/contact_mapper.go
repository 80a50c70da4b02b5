package mapper

import (
	"github.com/osa911/portfolio/internal/api/dto/contact"
	"github.com/osa911/portfolio/internal/service"
)

// ContactInputFromRequest converts a contact form request to service input
func ContactInputFromRequest(req *contact.ContactRequest, clientIP string) service.ContactInput {
	if req == nil {
		return service.ContactInput{ClientIP: clientIP}
	}
	return service.ContactInput{
		Name:           req.Name,
		Email:          req.Email,
		Subject:        req.Subject,
		Message:        req.Message,
		RecaptchaToken: req.RecaptchaToken,
		ClientIP:       clientIP,
	}
}
