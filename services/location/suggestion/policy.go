package suggestion

import (
	"fmt"
	"math"
	"time"

	"github.com/piresc/festshare/internal/pkg/models"
)

const (
	DefaultThresholdMeters    = 50.0
	DefaultCooldown           = 5 * time.Minute
	DefaultHereDistanceMeters = 10.0

	// HereMessage is shown when the viewer is standing at the tent
	HereMessage = "You're here!"
)

// Policy decides when to show the check-in banner
type Policy struct {
	Threshold    float64
	Cooldown     time.Duration
	HereDistance float64
}

// DefaultPolicy returns the policy with the default threshold, cooldown and here distance
func DefaultPolicy() Policy {
	return Policy{
		Threshold:    DefaultThresholdMeters,
		Cooldown:     DefaultCooldown,
		HereDistance: DefaultHereDistanceMeters,
	}
}

// Input is what ShouldSuggest needs to know about the viewer at Now
type Input struct {
	NearbyTents      []models.NearbyTent
	IsSharing        bool
	State            models.SuggestionState
	AlreadyCheckedIn func(tentID string) bool
	Now              time.Time
}

// ShouldSuggest returns the suggestion for the closest tent, or false when nothing should be shown
func (p Policy) ShouldSuggest(in Input) (models.Suggestion, bool) {
	if !in.IsSharing {
		return models.Suggestion{}, false
	}

	closest, ok := closestTent(in.NearbyTents)
	if !ok || closest.DistanceMeters > p.Threshold {
		return models.Suggestion{}, false
	}

	if in.AlreadyCheckedIn != nil && in.AlreadyCheckedIn(closest.TentID) {
		return models.Suggestion{}, false
	}

	if in.State.Suppresses(closest.TentID, in.Now) {
		return models.Suggestion{}, false
	}

	return models.Suggestion{
		TentID:         closest.TentID,
		Message:        p.message(closest.DistanceMeters),
		DistanceMeters: closest.DistanceMeters,
	}, true
}

func (p Policy) message(distance float64) string {
	if distance < p.HereDistance {
		return HereMessage
	}
	return fmt.Sprintf("%dm away", int(math.Round(distance)))
}

// Dismiss mutes suggestions for tentID until now+Cooldown. Other tents are unaffected.
func (p Policy) Dismiss(tentID string, now time.Time) models.SuggestionState {
	return models.SuggestionState{
		DismissedTentID: tentID,
		DismissedUntil:  now.Add(p.Cooldown),
	}
}

func closestTent(tents []models.NearbyTent) (models.NearbyTent, bool) {
	if len(tents) == 0 {
		return models.NearbyTent{}, false
	}
	best := tents[0]
	for _, t := range tents[1:] {
		if t.DistanceMeters < best.DistanceMeters ||
			(t.DistanceMeters == best.DistanceMeters && t.TentID < best.TentID) {
			best = t
		}
	}
	return best, true
}
