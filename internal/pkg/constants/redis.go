package constants

import "time"

// Redis key formats
const (
	// Location sessions
	KeySession     = "location:session:%s:%s" // Format: location:session:{festival_id}:{user_id}
	KeySessionScan = "location:session:*"

	// Suggestions
	KeySuggestionDismissal = "suggestion:dismissed:%s" // Format: suggestion:dismissed:{user_id}

	// Reference data cache
	KeyFestivalTents = "festival:tents:%s" // Format: festival:tents:{festival_id}
)

// SessionKeyTTLGrace keeps a persisted session around past its expiry so a restart can still see it ended
const SessionKeyTTLGrace = 10 * time.Minute
