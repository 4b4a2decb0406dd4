package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mmcloughlin/geohash"

	"github.com/codeforher/backend/internal/pkg/apperr"
	"github.com/codeforher/backend/internal/pkg/logger"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/services/maps"
)

// defaultPlaceTypes are the place categories treated as safe spots when the
// caller does not narrow the search.
var defaultPlaceTypes = []string{
	"bank",
	"bus_station",
	"atm",
	"cafe",
	"hospital",
	"pharmacy",
	"shopping_mall",
	"train_station",
	"university",
	"place_of_worship",
}

// geohashPrecision of 6 buckets cached nearby lookups into cells roughly
// 1.2km across.
const geohashPrecision = 6

// MapsUC implements the maps usecase
type MapsUC struct {
	mapsGW maps.MapsGW
	llmGW  maps.LLMGW
	cache  maps.Cache
	cfg    *models.Config
}

// NewMapsUC creates a new maps usecase instance
func NewMapsUC(mapsGW maps.MapsGW, llmGW maps.LLMGW, cache maps.Cache, cfg *models.Config) *MapsUC {
	return &MapsUC{
		mapsGW: mapsGW,
		llmGW:  llmGW,
		cache:  cache,
		cfg:    cfg,
	}
}

// GetRoute proxies a directions request to the maps provider
func (u *MapsUC) GetRoute(ctx context.Context, req *models.RouteRequest) (json.RawMessage, error) {
	return u.mapsGW.GetRoute(ctx, req)
}

// GetTimeDistance returns the reduced distance matrix for one leg
func (u *MapsUC) GetTimeDistance(ctx context.Context, req *models.RouteRequest) (*models.TimeDistance, error) {
	return u.mapsGW.GetTimeDistance(ctx, req)
}

// GetNearbySafeSpots returns safe places around the current location. Results
// are cached in Redis keyed by the location's geohash cell and the effective
// search parameters, so nearby callers share provider responses.
func (u *MapsUC) GetNearbySafeSpots(ctx context.Context, req *models.NearbySafeSpotsRequest) ([]models.Place, error) {
	placeTypes := req.PlaceTypes
	if len(placeTypes) == 0 {
		placeTypes = defaultPlaceTypes
	}

	radius := req.Radius
	if radius == 0 {
		radius = u.cfg.Maps.DefaultRadius
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: radius must be positive", apperr.ErrValidation)
	}

	rankBy := req.RankBy
	if rankBy == "" {
		rankBy = models.RankByDistance
	}
	if rankBy != models.RankByDistance && rankBy != models.RankByPopular {
		return nil, fmt.Errorf("%w: invalid rank_by %q", apperr.ErrValidation, rankBy)
	}

	cacheKey := u.nearbyCacheKey(req.CurrentLocation, placeTypes, radius, rankBy)
	if cached, err := u.cache.Get(ctx, cacheKey); err == nil {
		places := []models.Place{}
		if err := json.Unmarshal([]byte(cached), &places); err == nil {
			return places, nil
		}
	}

	places, err := u.mapsGW.NearbySearch(ctx, req.CurrentLocation, placeTypes, radius, rankBy)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(places); err == nil {
		ttl := time.Duration(u.cfg.Maps.CacheTTLSecs) * time.Second
		if err := u.cache.Set(ctx, cacheKey, payload, ttl); err != nil {
			logger.Warn("failed to cache nearby safe spots",
				logger.String("key", cacheKey),
				logger.Err(err))
		}
	}

	return places, nil
}

func (u *MapsUC) nearbyCacheKey(location models.Location, placeTypes []string, radius int, rankBy models.RankBy) string {
	cell := geohash.EncodeWithPrecision(location.Latitude, location.Longitude, geohashPrecision)
	return fmt.Sprintf("safe_spots:%s:%s:%d:%s", cell, strings.Join(placeTypes, ","), radius, rankBy)
}

// GetLatitudeLongitude forward-geocodes a street address
func (u *MapsUC) GetLatitudeLongitude(ctx context.Context, req *models.AddressRequest) (*models.Location, error) {
	if strings.TrimSpace(req.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", apperr.ErrValidation)
	}
	return u.mapsGW.Geocode(ctx, req.Address)
}

// GetRouteSafety asks the language model for commentary over the route steps
func (u *MapsUC) GetRouteSafety(ctx context.Context, req *models.RouteSafetyRequest) (*models.RouteSafetyResponse, error) {
	if len(req.RouteSteps) == 0 {
		return nil, fmt.Errorf("%w: route steps are required", apperr.ErrValidation)
	}
	return u.llmGW.RouteSafety(ctx, req)
}
