package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// StorePinger reports store reachability
type StorePinger interface {
	Ping(ctx context.Context) error
	Backend() string
}

type HealthHandler struct {
	store StorePinger
}

func NewHealthHandler(store StorePinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		utils.LogError(c, err, http.StatusServiceUnavailable, "Database connection error")
		c.JSON(http.StatusServiceUnavailable, common.HealthResponse{Status: "unavailable", Store: h.store.Backend()})
		return
	}

	c.JSON(http.StatusOK, common.HealthResponse{Status: "ok", Store: h.store.Backend()})
}
