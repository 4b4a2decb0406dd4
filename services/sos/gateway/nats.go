package gateway

import (
	"github.com/codeforher/backend/internal/pkg/constants"
	natspkg "github.com/codeforher/backend/internal/pkg/nats"
	"github.com/codeforher/backend/internal/pkg/models"
)

// SOSGW publishes alert events to NATS
type SOSGW struct {
	natsClient *natspkg.Client
}

// NewSOSGW creates a new SOS gateway instance
func NewSOSGW(natsClient *natspkg.Client) *SOSGW {
	return &SOSGW{natsClient: natsClient}
}

// PublishAlertCreated publishes the alert-created event
func (g *SOSGW) PublishAlertCreated(event *models.SOSAlertEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectSOSAlertCreated, event)
}
