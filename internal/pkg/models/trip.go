package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TripStatus represents the current status of a trip. ONGOING is the only
// initial state; COMPLETED and CANCELLED are terminal.
type TripStatus string

const (
	TripStatusOngoing   TripStatus = "ONGOING"
	TripStatusCompleted TripStatus = "COMPLETED"
	TripStatusCancelled TripStatus = "CANCELLED"
)

// IsTerminal reports whether no further status transition is defined
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// RoutePoint is a single recorded position along a trip route
type RoutePoint struct {
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Timestamp time.Time `json:"timestamp"`
}

// RoutePoints is stored as a JSONB document column on the trips table.
type RoutePoints []RoutePoint

func (rp RoutePoints) Value() (driver.Value, error) {
	return json.Marshal(rp)
}

func (rp *RoutePoints) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for route points", src)
	}
	return json.Unmarshal(b, rp)
}

// DetourAlert records a deviation from the planned route
type DetourAlert struct {
	Timestamp    time.Time  `json:"timestamp"`
	DetourReason string     `json:"detour_reason"`
	Location     RoutePoint `json:"location"`
}

// DetourAlerts is stored as a JSONB document column on the trips table.
type DetourAlerts []DetourAlert

func (da DetourAlerts) Value() (driver.Value, error) {
	return json.Marshal(da)
}

func (da *DetourAlerts) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for detour alerts", src)
	}
	return json.Unmarshal(b, da)
}

// AnomalyAlert records unusual movement detected during a trip
type AnomalyAlert struct {
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason"`
}

// AnomalyAlerts is stored as a JSONB document column on the trips table.
type AnomalyAlerts []AnomalyAlert

func (aa AnomalyAlerts) Value() (driver.Value, error) {
	return json.Marshal(aa)
}

func (aa *AnomalyAlerts) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for anomaly alerts", src)
	}
	return json.Unmarshal(b, aa)
}

// Trip represents a tracked journey
type Trip struct {
	ID            string        `json:"id" db:"id"`
	UserID        string        `json:"user_id" db:"user_id"`
	StartLocation Location      `json:"start_location" db:"start_location"`
	EndLocation   Location      `json:"end_location" db:"end_location"`
	Route         RoutePoints   `json:"route" db:"route"`
	Distance      int           `json:"distance" db:"distance"` // meters
	Duration      int           `json:"duration" db:"duration"` // seconds
	Status        TripStatus    `json:"status" db:"status"`
	DetourAlerts  DetourAlerts  `json:"detour_alerts" db:"detour_alerts"`
	AnomalyAlerts AnomalyAlerts `json:"anomaly_alerts" db:"anomaly_alerts"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// TripRequest is the payload for starting a trip
type TripRequest struct {
	UserID        string       `json:"user_id"`
	StartLocation Location     `json:"start_location"`
	EndLocation   Location     `json:"end_location"`
	Route         []RoutePoint `json:"route,omitempty"`
	Distance      int          `json:"distance,omitempty"`
	Duration      int          `json:"duration,omitempty"`
}

// TripPatch enumerates the fields updatable through the generic trip update
// endpoint. Status is not patchable here; end/cancel own those transitions.
type TripPatch struct {
	Route         *RoutePoints   `json:"route,omitempty"`
	Distance      *int           `json:"distance,omitempty"`
	Duration      *int           `json:"duration,omitempty"`
	DetourAlerts  *DetourAlerts  `json:"detour_alerts,omitempty"`
	AnomalyAlerts *AnomalyAlerts `json:"anomaly_alerts,omitempty"`
}

// IsEmpty reports whether the patch carries no updatable fields
func (p TripPatch) IsEmpty() bool {
	return p.Route == nil && p.Distance == nil && p.Duration == nil &&
		p.DetourAlerts == nil && p.AnomalyAlerts == nil
}
