package sos

import (
	"context"

	"github.com/codeforher/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/codeforher/backend/services/sos SOSRepo,UserSource

// AlertFilter narrows an alert listing. Empty fields are ignored.
type AlertFilter struct {
	AlertID string
	TripID  string
	UserID  string
}

// SOSRepo represents the alert repository interface
type SOSRepo interface {
	CreateAlert(ctx context.Context, alert *models.SOSAlert) error
	ListAlerts(ctx context.Context, filter AlertFilter) ([]*models.SOSAlert, error)
}

// UserSource resolves the user record that owns the emergency contacts.
// The account repository satisfies this interface.
type UserSource interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
