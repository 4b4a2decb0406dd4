package commute

import (
	"context"

	"github.com/codeforher/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/codeforher/backend/services/commute CommuteRepo

// CommuteRepo represents the trip repository interface
type CommuteRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTripByID(ctx context.Context, tripID string) (*models.Trip, error)
	ListTrips(ctx context.Context, userID string) ([]*models.Trip, error)
	UpdateTripStatus(ctx context.Context, tripID string, status models.TripStatus) error
	UpdateTrip(ctx context.Context, tripID string, patch *models.TripPatch) (*models.Trip, error)
	DeleteTrip(ctx context.Context, tripID string) error
}
