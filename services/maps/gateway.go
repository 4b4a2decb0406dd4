package maps

import (
	"context"
	"encoding/json"

	"github.com/codeforher/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/codeforher/backend/services/maps MapsGW,LLMGW

// MapsGW talks to the external maps provider
type MapsGW interface {
	// GetRoute returns the provider's directions response unmodified.
	GetRoute(ctx context.Context, req *models.RouteRequest) (json.RawMessage, error)

	// GetTimeDistance returns the distance matrix reduced to the single
	// origin-to-destination leg.
	GetTimeDistance(ctx context.Context, req *models.RouteRequest) (*models.TimeDistance, error)

	// NearbySearch returns places of the given types around a location.
	NearbySearch(ctx context.Context, location models.Location, placeTypes []string, radius int, rankBy models.RankBy) ([]models.Place, error)

	// Geocode resolves a street address to coordinates.
	Geocode(ctx context.Context, address string) (*models.Location, error)
}

// LLMGW produces route safety commentary from a language model
type LLMGW interface {
	RouteSafety(ctx context.Context, req *models.RouteSafetyRequest) (*models.RouteSafetyResponse, error)
}
