package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/codeforher/backend/internal/pkg/middleware"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/services/commute/handler/http"
)

// Handler coordinates the HTTP handlers for the commute service
type Handler struct {
	tripHandler *http.TripHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all commute handlers
func NewHandler(tripHandler *http.TripHandler, cfg *models.Config) *Handler {
	return &Handler{tripHandler: tripHandler, cfg: cfg}
}

// RegisterRoutes registers the commute routes
func (h *Handler) RegisterRoutes(api *echo.Group) {
	commuteGroup := api.Group("/commute", middleware.JWTAuthMiddleware(h.cfg.JWT))
	commuteGroup.POST("/start-trip", h.tripHandler.StartTrip)
	commuteGroup.GET("/end-trip/:id", h.tripHandler.EndTrip)
	commuteGroup.GET("/cancel-trip/:id", h.tripHandler.CancelTrip)
	commuteGroup.GET("/trips", h.tripHandler.GetTrips)
	commuteGroup.GET("/trips/:id", h.tripHandler.GetTrip)
	commuteGroup.PUT("/trips/:id", h.tripHandler.UpdateTrip)
	commuteGroup.DELETE("/trips/:id", h.tripHandler.DeleteTrip)
}
