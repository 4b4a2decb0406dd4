package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Location represents a geographical position with a human-readable address
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Value implements driver.Valuer for JSONB storage
func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB retrieval
func (l *Location) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for location", src)
	}
	return json.Unmarshal(b, l)
}

// RankBy selects the ordering of nearby-places results
type RankBy string

const (
	RankByPopular  RankBy = "popular"
	RankByDistance RankBy = "distance"
)

// RouteRequest asks for directions between two coordinates
type RouteRequest struct {
	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`
}

// NearbySafeSpotsRequest asks for safe places around the current location
type NearbySafeSpotsRequest struct {
	CurrentLocation Location `json:"current_location"`
	PlaceTypes      []string `json:"place_types,omitempty"`
	Radius          int      `json:"radius,omitempty"`
	RankBy          RankBy   `json:"rank_by,omitempty"`
}

// AddressRequest asks for the coordinates of a street address
type AddressRequest struct {
	Address string `json:"address"`
}

// TimeDistance is the reduced distance-matrix result for a single leg
type TimeDistance struct {
	Distance int    `json:"distance"` // meters
	Duration int    `json:"duration"` // seconds
	Polyline string `json:"route,omitempty"`
}

// Place is a single nearby-search result
type Place struct {
	Name     string   `json:"name"`
	Types    []string `json:"types,omitempty"`
	Location Location `json:"location"`
	Distance int      `json:"distance,omitempty"` // meters from the query point
}

// RouteStep is one navigation instruction within a route
type RouteStep struct {
	Instructions string `json:"instructions"`
	Distance     string `json:"distance"`
	Duration     string `json:"duration"`
}

// RouteSafetyRequest asks for an LLM safety commentary over route steps
type RouteSafetyRequest struct {
	RouteSteps []RouteStep `json:"route_steps"`
}

// RouteSafetyResponse is the structured safety commentary for a route
type RouteSafetyResponse struct {
	GeneralInsights string `json:"general_insights"`
	SafetyTips      string `json:"safety_tips"`
	RoadConditions  string `json:"road_conditions"`
	AreasOfConcern  string `json:"areas_of_concern"`
}
