package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeforher/backend/internal/pkg/models"
)

func TestComposeAlertMessage(t *testing.T) {
	location := models.Location{Latitude: 12.9, Longitude: 77.6, Address: "MG Road"}

	got := ComposeAlertMessage("Help", location)

	assert.True(t, strings.HasPrefix(got, "Help"))
	assert.Contains(t, got, "This is my location:")
	assert.Contains(t, got, "Latitude: 12.9")
	assert.Contains(t, got, "Longitude: 77.6")
	assert.Contains(t, got, "Address: MG Road")

	// Latitude before longitude before address
	latIdx := strings.Index(got, "Latitude:")
	lngIdx := strings.Index(got, "Longitude:")
	addrIdx := strings.Index(got, "Address:")
	assert.Less(t, latIdx, lngIdx)
	assert.Less(t, lngIdx, addrIdx)
}

func TestComposeAlertMessage_Deterministic(t *testing.T) {
	location := models.Location{Latitude: 28.61, Longitude: 77.21, Address: "Connaught Place"}

	first := ComposeAlertMessage("SOS", location)
	second := ComposeAlertMessage("SOS", location)

	assert.Equal(t, first, second)
}
