package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/codeforher/backend/internal/pkg/middleware"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/services/maps/handler/http"
)

// Handler coordinates the HTTP handlers for the maps service
type Handler struct {
	mapsHandler *http.MapsHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all maps handlers
func NewHandler(mapsHandler *http.MapsHandler, cfg *models.Config) *Handler {
	return &Handler{mapsHandler: mapsHandler, cfg: cfg}
}

// RegisterRoutes registers the maps routes
func (h *Handler) RegisterRoutes(api *echo.Group) {
	mapsGroup := api.Group("/maps", middleware.JWTAuthMiddleware(h.cfg.JWT))
	mapsGroup.POST("/get-route", h.mapsHandler.GetRoute)
	mapsGroup.POST("/get-time-distance", h.mapsHandler.GetTimeDistance)
	mapsGroup.POST("/nearby-safe-spots", h.mapsHandler.GetNearbySafeSpots)
	mapsGroup.POST("/get-latitude-longitude", h.mapsHandler.GetLatitudeLongitude)
	mapsGroup.POST("/route-safety", h.mapsHandler.GetRouteSafety)
}
