package usecase

import (
	"fmt"

	"github.com/codeforher/backend/internal/pkg/models"
)

// ComposeAlertMessage builds the text sent to every contact: the original
// message followed by the location's latitude, longitude, and address, in
// that fixed order. Pure formatting, deterministic for identical inputs.
func ComposeAlertMessage(message string, location models.Location) string {
	return fmt.Sprintf(`%s

This is my location:

Latitude: %v
Longitude: %v
Address: %s
`, message, location.Latitude, location.Longitude, location.Address)
}
