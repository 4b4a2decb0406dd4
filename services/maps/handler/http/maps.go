package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/internal/utils"
	"github.com/codeforher/backend/services/maps"
)

// MapsHandler handles maps and route-safety HTTP requests
type MapsHandler struct {
	mapsUC maps.MapsUC
}

// NewMapsHandler creates a new maps handler
func NewMapsHandler(mapsUC maps.MapsUC) *MapsHandler {
	return &MapsHandler{mapsUC: mapsUC}
}

// GetRoute handles POST /maps/get-route
func (h *MapsHandler) GetRoute(c echo.Context) error {
	var req models.RouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	route, err := h.mapsUC.GetRoute(c.Request().Context(), &req)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route retrieved", route)
}

// GetTimeDistance handles POST /maps/get-time-distance
func (h *MapsHandler) GetTimeDistance(c echo.Context) error {
	var req models.RouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	timeDistance, err := h.mapsUC.GetTimeDistance(c.Request().Context(), &req)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Time and distance retrieved", timeDistance)
}

// GetNearbySafeSpots handles POST /maps/nearby-safe-spots
func (h *MapsHandler) GetNearbySafeSpots(c echo.Context) error {
	var req models.NearbySafeSpotsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	places, err := h.mapsUC.GetNearbySafeSpots(c.Request().Context(), &req)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Safe spots retrieved", places)
}

// GetLatitudeLongitude handles POST /maps/get-latitude-longitude
func (h *MapsHandler) GetLatitudeLongitude(c echo.Context) error {
	var req models.AddressRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	location, err := h.mapsUC.GetLatitudeLongitude(c.Request().Context(), &req)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Coordinates retrieved", location)
}

// GetRouteSafety handles POST /maps/route-safety
func (h *MapsHandler) GetRouteSafety(c echo.Context) error {
	var req models.RouteSafetyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	safety, err := h.mapsUC.GetRouteSafety(c.Request().Context(), &req)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route safety retrieved", safety)
}
