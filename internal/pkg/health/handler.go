package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Status is the health endpoint payload
type Status struct {
	Service   string    `json:"service"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// RegisterHealthEndpoints wires liveness and readiness routes
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, Status{
			Service:   serviceName,
			Status:    "ok",
			Timestamp: time.Now().UTC(),
		})
	}
	e.GET("/health", handler)
	e.GET("/health/live", handler)
	e.GET("/health/ready", handler)
}
