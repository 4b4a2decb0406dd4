package sos

import (
	"context"

	"github.com/codeforher/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/codeforher/backend/services/sos SOSUC

// SOSUC represents the SOS alert usecase interface
type SOSUC interface {
	// SendAlert broadcasts an alert to the user's emergency contacts. When
	// contactName is non-empty only the exact-name match is notified.
	SendAlert(ctx context.Context, req *models.SOSAlertRequest, contactName string) (*models.SOSAlertResponse, error)

	// GetAlerts returns alerts filtered by alert id, trip id, and/or user id.
	GetAlerts(ctx context.Context, alertID, tripID, userID string) ([]*models.SOSAlert, error)
}
