package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisibilityScope_CanView(t *testing.T) {
	tests := []struct {
		name         string
		scope        VisibilityScope
		viewerGroups []string
		sharerGroups []string
		expected     bool
	}{
		{
			name:         "share with all covers every group of the sharer",
			scope:        VisibilityScope{ShareWithAll: true},
			viewerGroups: []string{"g3", "g2"},
			sharerGroups: []string{"g1", "g2"},
			expected:     true,
		},
		{
			name:         "share with all hides from strangers",
			scope:        VisibilityScope{ShareWithAll: true},
			viewerGroups: []string{"g9"},
			sharerGroups: []string{"g1"},
			expected:     false,
		},
		{
			name:         "share with all hides from viewers without groups",
			scope:        VisibilityScope{ShareWithAll: true},
			viewerGroups: nil,
			sharerGroups: []string{"g1"},
			expected:     false,
		},
		{
			name:         "share with all ignores group ids",
			scope:        VisibilityScope{ShareWithAll: true, GroupIDs: []string{"g9"}},
			viewerGroups: []string{"g9"},
			sharerGroups: []string{"g1"},
			expected:     false,
		},
		{
			name:         "shared group",
			scope:        VisibilityScope{GroupIDs: []string{"g1", "g2"}},
			viewerGroups: []string{"g3", "g2"},
			expected:     true,
		},
		{
			name:         "explicit scope ignores sharer groups",
			scope:        VisibilityScope{GroupIDs: []string{"g1"}},
			viewerGroups: []string{"g2"},
			sharerGroups: []string{"g2"},
			expected:     false,
		},
		{
			name:         "empty scope fails closed",
			scope:        VisibilityScope{},
			viewerGroups: []string{"g1"},
			sharerGroups: []string{"g1"},
			expected:     false,
		},
		{
			name:         "viewer without groups",
			scope:        VisibilityScope{GroupIDs: []string{"g1"}},
			viewerGroups: nil,
			expected:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.scope.CanView(tt.viewerGroups, tt.sharerGroups))
		})
	}
}

func TestVisibilityScope_Validate(t *testing.T) {
	assert.NoError(t, VisibilityScope{ShareWithAll: true}.Validate())
	assert.NoError(t, VisibilityScope{GroupIDs: []string{"g1"}}.Validate())
	assert.ErrorIs(t, VisibilityScope{}.Validate(), ErrInvalidVisibilityScope)
	assert.ErrorIs(t, VisibilityScope{GroupIDs: []string{" ", ""}}.Validate(), ErrInvalidVisibilityScope)
}

func TestVisibilityScope_Normalize(t *testing.T) {
	scope := VisibilityScope{GroupIDs: []string{"g2", " g1 ", "g2", ""}}.Normalize()
	assert.Equal(t, []string{"g1", "g2"}, scope.GroupIDs)

	all := VisibilityScope{ShareWithAll: true, GroupIDs: []string{"g1"}}.Normalize()
	assert.True(t, all.ShareWithAll)
	assert.Empty(t, all.GroupIDs)
}

func TestLocationSession_Liveness(t *testing.T) {
	start := time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC)
	session := LocationSession{
		StartedAt:       start,
		DurationMinutes: 60,
		ExpiresAt:       start.Add(60 * time.Minute),
		Status:          SessionStatusActive,
	}

	// Active without a position is not live
	assert.True(t, session.IsActive(start.Add(time.Minute)))
	assert.False(t, session.IsLive(start.Add(time.Minute)))

	session.LastPosition = &Position{Latitude: 48.1316, Longitude: 11.5494}
	assert.True(t, session.IsLive(start.Add(59*time.Minute+59*time.Second)))
	assert.False(t, session.IsLive(start.Add(60*time.Minute)))
	assert.False(t, session.IsLive(start.Add(61*time.Minute)))

	assert.Equal(t, SessionStatusActive, session.EffectiveStatus(start.Add(30*time.Minute)))
	assert.Equal(t, SessionStatusExpired, session.EffectiveStatus(start.Add(61*time.Minute)))
	assert.Equal(t, 30*time.Minute, session.Remaining(start.Add(30*time.Minute)))
	assert.Zero(t, session.Remaining(start.Add(61*time.Minute)))

	session.Status = SessionStatusStopped
	assert.False(t, session.IsLive(start.Add(time.Minute)))
	assert.Equal(t, SessionStatusStopped, session.EffectiveStatus(start.Add(61*time.Minute)))
}

func TestLocationSession_CloneIsDeep(t *testing.T) {
	original := LocationSession{
		Scope:        VisibilityScope{GroupIDs: []string{"g1"}},
		LastPosition: &Position{Latitude: 1, Longitude: 2},
	}
	clone := original.Clone()
	clone.LastPosition.Latitude = 9
	clone.Scope.GroupIDs[0] = "changed"

	assert.Equal(t, 1.0, original.LastPosition.Latitude)
	assert.Equal(t, "g1", original.Scope.GroupIDs[0])
}

func TestSuggestionState(t *testing.T) {
	now := time.Date(2026, 9, 20, 12, 0, 0, 0, time.UTC)
	state := SuggestionState{DismissedTentID: "t1", DismissedUntil: now.Add(5 * time.Minute)}

	assert.True(t, state.Suppresses("t1", now.Add(2*time.Minute)))
	assert.False(t, state.Suppresses("t2", now.Add(2*time.Minute)))
	assert.False(t, state.Suppresses("t1", now.Add(5*time.Minute)))
	assert.False(t, SuggestionState{}.Active(now))
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2026, 9, 20, 23, 59, 0, 0, time.UTC)
	start, end := DayBounds(at)

	assert.Equal(t, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC), end)
}
