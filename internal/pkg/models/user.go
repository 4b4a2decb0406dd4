package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// EmergencyContact is a person notified during an SOS broadcast. Contacts
// exist only embedded inside a user record and have no standalone identity.
type EmergencyContact struct {
	Name         string `json:"name" db:"name"`
	Phone        string `json:"phone" db:"phone"`
	Relationship string `json:"relationship" db:"relationship"`
}

// EmergencyContacts is stored as a JSONB document column on the users table.
type EmergencyContacts []EmergencyContact

// Value implements driver.Valuer for JSONB storage
func (ec EmergencyContacts) Value() (driver.Value, error) {
	return json.Marshal(ec)
}

// Scan implements sql.Scanner for JSONB retrieval
func (ec *EmergencyContacts) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for emergency contacts", src)
	}
	return json.Unmarshal(b, ec)
}

// Preferences holds the per-user feature toggles
type Preferences struct {
	LocationSharing bool `json:"location_sharing"`
	SOSActive       bool `json:"sos_active"`
	SafeRadius      int  `json:"safe_radius"` // meters, must be > 0
	VoiceAssist     bool `json:"voice_assist"`
}

// DefaultPreferences returns the preference set applied when signup omits one
func DefaultPreferences() Preferences {
	return Preferences{
		LocationSharing: true,
		SOSActive:       true,
		SafeRadius:      100,
		VoiceAssist:     true,
	}
}

// Value implements driver.Valuer for JSONB storage
func (p Preferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for JSONB retrieval
func (p *Preferences) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for preferences", src)
	}
	return json.Unmarshal(b, p)
}

// User represents an account in the system
type User struct {
	ID                string            `json:"id" db:"id"`
	Name              string            `json:"name" db:"name"`
	Email             string            `json:"email" db:"email"`
	Phone             string            `json:"phone" db:"phone"`
	HomeAddress       string            `json:"home_address" db:"home_address"`
	PasswordHash      string            `json:"-" db:"password_hash"`
	EmergencyContacts EmergencyContacts `json:"emergency_contacts" db:"emergency_contacts"`
	Preferences       Preferences       `json:"preferences" db:"preferences"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
}

// SignupRequest is the payload for account creation
type SignupRequest struct {
	Name              string             `json:"name"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	HomeAddress       string             `json:"home_address"`
	Password          string             `json:"password"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
	Preferences       *Preferences       `json:"preferences,omitempty"`
}

// LoginRequest is the payload for credential authentication
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest carries a refresh token to exchange for a new access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresAt    int64  `json:"expires_at"`
}

// UserPatch enumerates the fields updatable through the generic user update
// endpoint. Email and password are deliberately not patchable here.
type UserPatch struct {
	Name              *string            `json:"name,omitempty"`
	Phone             *string            `json:"phone,omitempty"`
	HomeAddress       *string            `json:"home_address,omitempty"`
	EmergencyContacts *EmergencyContacts `json:"emergency_contacts,omitempty"`
	Preferences       *Preferences       `json:"preferences,omitempty"`
}

// IsEmpty reports whether the patch carries no updatable fields
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.HomeAddress == nil &&
		p.EmergencyContacts == nil && p.Preferences == nil
}
