package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/internal/utils"
	"github.com/codeforher/backend/services/sos"
)

// SOSHandler handles SOS alert HTTP requests
type SOSHandler struct {
	sosUC sos.SOSUC
}

// NewSOSHandler creates a new SOS handler
func NewSOSHandler(sosUC sos.SOSUC) *SOSHandler {
	return &SOSHandler{sosUC: sosUC}
}

// SendAlert handles POST /sos/send-alert. An optional ?contact= query
// restricts the broadcast to a single named emergency contact.
func (h *SOSHandler) SendAlert(c echo.Context) error {
	var req models.SOSAlertRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	contactName := c.QueryParam("contact")

	resp, err := h.sosUC.SendAlert(c.Request().Context(), &req, contactName)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Alert sent", resp)
}

// GetAlerts handles GET /sos/alerts with alert_id, trip_id, and user_id
// query filters
func (h *SOSHandler) GetAlerts(c echo.Context) error {
	alertID := c.QueryParam("alert_id")
	tripID := c.QueryParam("trip_id")
	userID := c.QueryParam("user_id")

	alerts, err := h.sosUC.GetAlerts(c.Request().Context(), alertID, tripID, userID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alerts retrieved", alerts)
}
