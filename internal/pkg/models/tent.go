package models

import "time"

// Tent is festival reference data owned by the catalogue service
type Tent struct {
	ID        string   `json:"id" db:"id"`
	Name      string   `json:"name" db:"name"`
	Category  string   `json:"category" db:"category"`
	Latitude  float64  `json:"latitude" db:"latitude"`
	Longitude float64  `json:"longitude" db:"longitude"`
	BeerPrice *float64 `json:"beer_price,omitempty" db:"beer_price"`
}

// Position returns the fixed position of the tent
func (t Tent) Position() Position {
	return Position{Latitude: t.Latitude, Longitude: t.Longitude}
}

// NearbyTent is a tent near the viewer, computed per query
type NearbyTent struct {
	TentID         string  `json:"tent_id"`
	TentName       string  `json:"tent_name"`
	Category       string  `json:"category"`
	DistanceMeters float64 `json:"distance_meters"`
}

// SuggestionState remembers a dismissed proximity banner for one viewer
type SuggestionState struct {
	DismissedTentID string    `json:"dismissed_tent_id,omitempty"`
	DismissedUntil  time.Time `json:"dismissed_until,omitempty"`
}

// Active reports whether the cooldown is still running at now
func (s SuggestionState) Active(now time.Time) bool {
	return s.DismissedTentID != "" && now.Before(s.DismissedUntil)
}

// Suppresses reports whether a suggestion for tentID is muted at now
func (s SuggestionState) Suppresses(tentID string, now time.Time) bool {
	return s.Active(now) && s.DismissedTentID == tentID
}

// Suggestion is the check-in banner decision. An empty TentID means no suggestion.
type Suggestion struct {
	TentID         string  `json:"tent_id,omitempty"`
	Message        string  `json:"message,omitempty"`
	DistanceMeters float64 `json:"distance_meters,omitempty"`
}

// Empty reports whether there is nothing to suggest
func (s Suggestion) Empty() bool {
	return s.TentID == ""
}
