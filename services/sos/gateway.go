package sos

import (
	"context"

	"github.com/codeforher/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/codeforher/backend/services/sos SMSGateway,SOSGW

// SMSGateway sends a text message from the configured sender identity to a
// destination phone number. One call is exactly one delivery attempt.
type SMSGateway interface {
	SendSMS(ctx context.Context, to, body string) error
}

// SOSGW publishes alert events
type SOSGW interface {
	PublishAlertCreated(event *models.SOSAlertEvent) error
}
