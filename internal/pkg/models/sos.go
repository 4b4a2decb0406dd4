package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AlertStatus tracks a single contact's delivery outcome. PENDING is the
// initial state before the send attempt; SENT and FAILED are terminal.
type AlertStatus string

const (
	AlertStatusPending AlertStatus = "PENDING"
	AlertStatusSent    AlertStatus = "SENT"
	AlertStatusFailed  AlertStatus = "FAILED"
)

// EmergencyContactAlert is the per-contact delivery record inside an SOS
// alert. The contact details are a snapshot taken at broadcast time.
type EmergencyContactAlert struct {
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	Relationship string      `json:"relationship"`
	AlertStatus  AlertStatus `json:"alert_status"`
	AlertTime    time.Time   `json:"alert_time"`
}

// ContactAlerts is stored as a JSONB document column on the sos_alerts table.
type ContactAlerts []EmergencyContactAlert

func (ca ContactAlerts) Value() (driver.Value, error) {
	return json.Marshal(ca)
}

func (ca *ContactAlerts) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for contact alerts", src)
	}
	return json.Unmarshal(b, ca)
}

// SOSAlert is a persisted broadcast record
type SOSAlert struct {
	ID            string        `json:"id" db:"id"`
	UserID        string        `json:"user_id" db:"user_id"`
	TripID        *string       `json:"trip_id,omitempty" db:"trip_id"`
	Location      Location      `json:"location" db:"location"`
	Message       string        `json:"message" db:"message"`
	ContactAlerts ContactAlerts `json:"emergency_contacts_alerted" db:"contact_alerts"`
	VoiceClipURL  string        `json:"voice_clip,omitempty" db:"voice_clip_url"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// SOSAlertRequest is the payload for broadcasting an alert
type SOSAlertRequest struct {
	UserID       string   `json:"user_id"`
	TripID       *string  `json:"trip_id,omitempty"`
	Location     Location `json:"location"`
	Message      string   `json:"message"`
	VoiceClipURL string   `json:"voice_clip,omitempty"`
}

// SOSAlertResponse acknowledges a broadcast with the generated alert id
type SOSAlertResponse struct {
	AlertID string `json:"alert_id"`
}

// SOSAlertEvent is published to NATS after an alert is persisted
type SOSAlertEvent struct {
	AlertID   string    `json:"alert_id"`
	UserID    string    `json:"user_id"`
	TripID    *string   `json:"trip_id,omitempty"`
	Location  Location  `json:"location"`
	Contacts  int       `json:"contacts"`
	Sent      int       `json:"sent"`
	Failed    int       `json:"failed"`
	CreatedAt time.Time `json:"created_at"`
}

// TripEvent is published to NATS on trip lifecycle transitions
type TripEvent struct {
	TripID    string     `json:"trip_id"`
	UserID    string     `json:"user_id"`
	Status    TripStatus `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
}
