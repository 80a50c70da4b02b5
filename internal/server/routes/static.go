package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// SetupStaticRoutes serves the built client in production.
// Unknown non-API GET paths fall back to index.html for client-side routing.
func SetupStaticRoutes(router *gin.Engine, cfg *config.Config) {
	logger := logging.GetGlobalLogger()
	serveSPA := cfg.IsProduction()

	if serveSPA {
		if info, err := os.Stat(filepath.Join(cfg.StaticDir, "index.html")); err != nil || info.IsDir() {
			logger.Warn("Static assets not found in %s; serving API only", cfg.StaticDir)
			serveSPA = false
		} else {
			logger.Info("Serving client assets from %s", cfg.StaticDir)
		}
	}

	root := filepath.Clean(cfg.StaticDir)
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if !serveSPA || strings.HasPrefix(path, "/api/") || path == "/api" ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			c.JSON(http.StatusNotFound, common.NewMessageResponse(common.MessageNotFound))
			return
		}

		// Clean against "/" so the result cannot escape root
		file := filepath.Join(root, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(root, "index.html"))
	})
}
