package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/internal/utils"
	"github.com/codeforher/backend/services/commute"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	commuteUC commute.CommuteUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(commuteUC commute.CommuteUC) *TripHandler {
	return &TripHandler{commuteUC: commuteUC}
}

// StartTrip creates a new trip
func (h *TripHandler) StartTrip(c echo.Context) error {
	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tripID, err := h.commuteUC.StartTrip(c.Request().Context(), &req)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip added successfully",
		map[string]string{"trip_id": tripID})
}

// EndTrip completes an ongoing trip
func (h *TripHandler) EndTrip(c echo.Context) error {
	trip, err := h.commuteUC.EndTrip(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip ended successfully", trip)
}

// CancelTrip cancels an ongoing trip
func (h *TripHandler) CancelTrip(c echo.Context) error {
	trip, err := h.commuteUC.CancelTrip(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled successfully", trip)
}

// GetTrips returns trips filtered by trip_id or user_id, or all trips
func (h *TripHandler) GetTrips(c echo.Context) error {
	ctx := c.Request().Context()

	if tripID := c.QueryParam("trip_id"); tripID != "" {
		trip, err := h.commuteUC.GetTripByID(ctx, tripID)
		if err != nil {
			return utils.RespondError(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", trip)
	}

	trips, err := h.commuteUC.GetTrips(ctx, c.QueryParam("user_id"))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", trips)
}

// GetTrip returns a single trip by path id
func (h *TripHandler) GetTrip(c echo.Context) error {
	trip, err := h.commuteUC.GetTripByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", trip)
}

// UpdateTrip applies a patch to a trip record
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	var patch models.TripPatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.commuteUC.UpdateTrip(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip updated successfully", trip)
}

// DeleteTrip removes a trip record
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	if err := h.commuteUC.DeleteTrip(c.Request().Context(), c.Param("id")); err != nil {
		return utils.RespondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip deleted successfully", nil)
}
