package models

import "time"

// Position is a single device location sample
type Position struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Permission is the location capability the device reported when sharing started
type Permission string

const (
	PermissionAlways    Permission = "always"
	PermissionWhenInUse Permission = "when_in_use"
	PermissionDenied    Permission = "denied"
)

// Valid reports whether p is a known permission. Empty counts as always.
func (p Permission) Valid() bool {
	switch p {
	case "", PermissionAlways, PermissionWhenInUse, PermissionDenied:
		return true
	}
	return false
}

// Warning returns the start-sharing warning for the permission, if any
func (p Permission) Warning() string {
	switch p {
	case PermissionWhenInUse:
		return WarningBackgroundUnavailable
	case PermissionDenied:
		return WarningPermissionDenied
	}
	return ""
}

// LocationSample is a raw device sample published on the location.sample subject
type LocationSample struct {
	UserID     string    `json:"user_id"`
	FestivalID string    `json:"festival_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Position converts the sample into a Position
func (s LocationSample) Position() Position {
	return Position{
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		Accuracy:   s.Accuracy,
		RecordedAt: s.RecordedAt,
	}
}

// PositionEvent is published when a quantized position lands on a session
type PositionEvent struct {
	SessionID  string    `json:"session_id"`
	UserID     string    `json:"user_id"`
	FestivalID string    `json:"festival_id"`
	Position   Position  `json:"position"`
	Cell       string    `json:"cell"`
	Timestamp  time.Time `json:"timestamp"`
}

// CheckinEvent is consumed from the check-in service
type CheckinEvent struct {
	UserID string `json:"user_id"`
	TentID string `json:"tent_id"`
}
