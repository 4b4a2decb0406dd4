package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/codeforher/backend/internal/pkg/middleware"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/services/sos/handler/http"
)

// Handler coordinates the HTTP handlers for the SOS service
type Handler struct {
	sosHandler *http.SOSHandler
	cfg        *models.Config
}

// NewHandler creates and initializes all SOS handlers
func NewHandler(sosHandler *http.SOSHandler, cfg *models.Config) *Handler {
	return &Handler{sosHandler: sosHandler, cfg: cfg}
}

// RegisterRoutes registers the SOS routes
func (h *Handler) RegisterRoutes(api *echo.Group) {
	sosGroup := api.Group("/sos", middleware.JWTAuthMiddleware(h.cfg.JWT))
	sosGroup.POST("/send-alert", h.sosHandler.SendAlert)
	sosGroup.GET("/alerts", h.sosHandler.GetAlerts)
}
