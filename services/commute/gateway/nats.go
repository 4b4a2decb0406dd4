package gateway

import (
	natspkg "github.com/codeforher/backend/internal/pkg/nats"
	"github.com/codeforher/backend/internal/pkg/models"
)

// CommuteGW publishes trip lifecycle events to NATS
type CommuteGW struct {
	natsClient *natspkg.Client
}

// NewCommuteGW creates a new commute gateway instance
func NewCommuteGW(natsClient *natspkg.Client) *CommuteGW {
	return &CommuteGW{natsClient: natsClient}
}

// PublishTripEvent publishes a trip lifecycle event
func (g *CommuteGW) PublishTripEvent(subject string, event *models.TripEvent) error {
	return g.natsClient.PublishJSON(subject, event)
}
