package commute

import (
	"context"

	"github.com/codeforher/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/codeforher/backend/services/commute CommuteUC

// CommuteUC represents the trip usecase interface
type CommuteUC interface {
	StartTrip(ctx context.Context, req *models.TripRequest) (string, error)
	EndTrip(ctx context.Context, tripID string) (*models.Trip, error)
	CancelTrip(ctx context.Context, tripID string) (*models.Trip, error)
	GetTripByID(ctx context.Context, tripID string) (*models.Trip, error)
	GetTrips(ctx context.Context, userID string) ([]*models.Trip, error)
	UpdateTrip(ctx context.Context, tripID string, patch *models.TripPatch) (*models.Trip, error)
	DeleteTrip(ctx context.Context, tripID string) error
}
