package maps

import (
	"context"
	"encoding/json"
	"time"

	"github.com/codeforher/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/codeforher/backend/services/maps MapsUC

// Cache is the subset of the Redis client used for nearby-spot caching
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// MapsUC represents the maps usecase interface
type MapsUC interface {
	// GetRoute proxies a directions request to the maps provider.
	GetRoute(ctx context.Context, req *models.RouteRequest) (json.RawMessage, error)

	// GetTimeDistance returns distance, duration, and polyline for the leg
	// between origin and destination.
	GetTimeDistance(ctx context.Context, req *models.RouteRequest) (*models.TimeDistance, error)

	// GetNearbySafeSpots returns safe places around the current location,
	// applying default place types, radius, and ranking when omitted.
	GetNearbySafeSpots(ctx context.Context, req *models.NearbySafeSpotsRequest) ([]models.Place, error)

	// GetLatitudeLongitude forward-geocodes a street address.
	GetLatitudeLongitude(ctx context.Context, req *models.AddressRequest) (*models.Location, error)

	// GetRouteSafety asks the language model for safety commentary over the
	// given route steps.
	GetRouteSafety(ctx context.Context, req *models.RouteSafetyRequest) (*models.RouteSafetyResponse, error)
}
