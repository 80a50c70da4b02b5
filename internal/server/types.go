package server

import (
	"github.com/osa911/portfolio/internal/api/handlers"
	"github.com/osa911/portfolio/internal/api/middleware"
	"github.com/osa911/portfolio/internal/config"
)

// Dependencies are the collaborators built once at startup and shared by all requests
type Dependencies struct {
	Config   *config.Config
	Store    handlers.StorePinger
	Contact  handlers.ContactSubmitter
	Projects handlers.ProjectCatalogue
	Throttle middleware.Throttle
	Admin    middleware.AdminConfig
}
