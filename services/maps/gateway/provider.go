package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/codeforher/backend/internal/pkg/apperr"
	httpclient "github.com/codeforher/backend/internal/pkg/http"
	"github.com/codeforher/backend/internal/pkg/models"
)

// ProviderGW talks to the Ola Maps HTTP API
type ProviderGW struct {
	client *httpclient.Client
	config models.MapsConfig
}

// NewProviderGW creates a new maps provider gateway
func NewProviderGW(config models.MapsConfig) *ProviderGW {
	return &ProviderGW{
		client: httpclient.NewClient(config.BaseURL, 20*time.Second,
			httpclient.WithHeader("X-Request-Id", config.ClientID)),
		config: config,
	}
}

func (g *ProviderGW) query() url.Values {
	q := url.Values{}
	q.Set("api_key", g.config.APIKey)
	return q
}

func coords(l models.Location) string {
	return fmt.Sprintf("%v,%v", l.Latitude, l.Longitude)
}

// GetRoute fetches directions between origin and destination. The provider
// response is passed through untouched.
func (g *ProviderGW) GetRoute(ctx context.Context, req *models.RouteRequest) (json.RawMessage, error) {
	q := g.query()
	q.Set("origin", coords(req.Origin))
	q.Set("destination", coords(req.Destination))

	var out json.RawMessage
	// The directions endpoint takes its parameters in the query string but
	// only answers to POST.
	if err := g.client.PostJSON(ctx, "/routing/v1/directions/basic", q, nil, &out); err != nil {
		return nil, fmt.Errorf("%w: maps provider: %v", apperr.ErrUpstream, err)
	}
	return out, nil
}

type distanceMatrixResponse struct {
	Rows []struct {
		Elements []struct {
			Distance int    `json:"distance"`
			Duration int    `json:"duration"`
			Polyline string `json:"polyline"`
		} `json:"elements"`
	} `json:"rows"`
}

// GetTimeDistance fetches the distance matrix for a single origin and
// destination and reduces it to the one leg.
func (g *ProviderGW) GetTimeDistance(ctx context.Context, req *models.RouteRequest) (*models.TimeDistance, error) {
	q := g.query()
	q.Set("origins", coords(req.Origin))
	q.Set("destinations", coords(req.Destination))

	var resp distanceMatrixResponse
	if err := g.client.GetJSON(ctx, "/routing/v1/distanceMatrix/basic", q, &resp); err != nil {
		return nil, fmt.Errorf("%w: maps provider: %v", apperr.ErrUpstream, err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, fmt.Errorf("%w: maps provider: empty distance matrix", apperr.ErrUpstream)
	}

	element := resp.Rows[0].Elements[0]
	return &models.TimeDistance{
		Distance: element.Distance,
		Duration: element.Duration,
		Polyline: element.Polyline,
	}, nil
}

type nearbySearchResponse struct {
	Predictions []struct {
		Description    string   `json:"description"`
		Types          []string `json:"types"`
		DistanceMeters int      `json:"distance_meters"`
		Geometry       struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"predictions"`
}

// NearbySearch fetches places of the given types around a location
func (g *ProviderGW) NearbySearch(ctx context.Context, location models.Location, placeTypes []string, radius int, rankBy models.RankBy) ([]models.Place, error) {
	q := g.query()
	q.Set("location", coords(location))
	q.Set("types", strings.Join(placeTypes, ","))
	q.Set("radius", strconv.Itoa(radius))
	q.Set("rankBy", string(rankBy))

	var resp nearbySearchResponse
	if err := g.client.GetJSON(ctx, "/places/v1/nearbysearch", q, &resp); err != nil {
		return nil, fmt.Errorf("%w: maps provider: %v", apperr.ErrUpstream, err)
	}

	places := make([]models.Place, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		places = append(places, models.Place{
			Name:     p.Description,
			Types:    p.Types,
			Distance: p.DistanceMeters,
			Location: models.Location{
				Latitude:  p.Geometry.Location.Lat,
				Longitude: p.Geometry.Location.Lng,
				Address:   p.Description,
			},
		})
	}
	return places, nil
}

type geocodeResponse struct {
	GeocodingResults []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"geocodingResults"`
}

// Geocode resolves a street address to coordinates
func (g *ProviderGW) Geocode(ctx context.Context, address string) (*models.Location, error) {
	q := g.query()
	q.Set("address", address)

	var resp geocodeResponse
	if err := g.client.GetJSON(ctx, "/places/v1/geocode/forward", q, &resp); err != nil {
		return nil, fmt.Errorf("%w: maps provider: %v", apperr.ErrUpstream, err)
	}
	if len(resp.GeocodingResults) == 0 {
		return nil, fmt.Errorf("%w: Address not found", apperr.ErrNotFound)
	}

	result := resp.GeocodingResults[0]
	return &models.Location{
		Latitude:  result.Geometry.Location.Lat,
		Longitude: result.Geometry.Location.Lng,
		Address:   result.FormattedAddress,
	}, nil
}
