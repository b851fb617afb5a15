package models

import (
	"sort"
	"strings"
	"time"
)

// SessionStatus represents the lifecycle state of a location session
type SessionStatus string

const (
	SessionStatusActive  SessionStatus = "active"
	SessionStatusStopped SessionStatus = "stopped"
	SessionStatusExpired SessionStatus = "expired"
)

// VisibilityScope decides which viewers may see a session.
// When ShareWithAll is set GroupIDs is ignored and every group of the sharer applies.
type VisibilityScope struct {
	ShareWithAll bool     `json:"share_with_all"`
	GroupIDs     []string `json:"group_ids,omitempty"`
}

// Normalize drops blank and duplicate group IDs and sorts the rest
func (v VisibilityScope) Normalize() VisibilityScope {
	if v.ShareWithAll {
		return VisibilityScope{ShareWithAll: true}
	}
	seen := make(map[string]struct{}, len(v.GroupIDs))
	ids := make([]string, 0, len(v.GroupIDs))
	for _, id := range v.GroupIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return VisibilityScope{GroupIDs: ids}
}

// Validate rejects a scope that no viewer could ever see
func (v VisibilityScope) Validate() error {
	if v.ShareWithAll || len(v.Normalize().GroupIDs) > 0 {
		return nil
	}
	return ErrInvalidVisibilityScope
}

// CanView reports whether a viewer belonging to viewerGroupIDs may see the session.
// sharerGroupIDs are the sharer's own groups; they only matter under ShareWithAll, which
// widens the scope to every group of the sharer, never to strangers.
// An empty group scope without ShareWithAll is visible to nobody.
func (v VisibilityScope) CanView(viewerGroupIDs, sharerGroupIDs []string) bool {
	scope := v.GroupIDs
	if v.ShareWithAll {
		scope = sharerGroupIDs
	}
	for _, g := range scope {
		for _, vg := range viewerGroupIDs {
			if g == vg {
				return true
			}
		}
	}
	return false
}

// Contains reports whether groupID is part of an explicit group scope
func (v VisibilityScope) Contains(groupID string) bool {
	for _, g := range v.GroupIDs {
		if g == groupID {
			return true
		}
	}
	return false
}

// LocationSession is one user's time-bounded decision to broadcast their position at a festival
type LocationSession struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	FestivalID      string          `json:"festival_id"`
	StartedAt       time.Time       `json:"started_at"`
	DurationMinutes int             `json:"duration_minutes"`
	ExpiresAt       time.Time       `json:"expires_at"`
	Scope           VisibilityScope `json:"visibility_scope"`
	LastPosition    *Position       `json:"last_position,omitempty"`
	Status          SessionStatus   `json:"status"`
	EndedAt         time.Time       `json:"ended_at,omitempty"`
}

// Expired reports whether the session's time window has run out at now
func (s LocationSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// IsActive reports whether the session is active and inside its time window
func (s LocationSession) IsActive(now time.Time) bool {
	return s.Status == SessionStatusActive && !s.Expired(now)
}

// IsLive reports whether the session can be located by viewers at now
func (s LocationSession) IsLive(now time.Time) bool {
	return s.IsActive(now) && s.LastPosition != nil
}

// EffectiveStatus is the status a reader should observe at now, expiring lazily
func (s LocationSession) EffectiveStatus(now time.Time) SessionStatus {
	if s.Status == SessionStatusActive && s.Expired(now) {
		return SessionStatusExpired
	}
	return s.Status
}

// Remaining returns how long the session has left at now
func (s LocationSession) Remaining(now time.Time) time.Duration {
	if !s.IsActive(now) {
		return 0
	}
	return s.ExpiresAt.Sub(now)
}

// Clone returns a deep copy safe to hand to readers
func (s LocationSession) Clone() LocationSession {
	c := s
	if s.LastPosition != nil {
		p := *s.LastPosition
		c.LastPosition = &p
	}
	if s.Scope.GroupIDs != nil {
		c.Scope.GroupIDs = append([]string(nil), s.Scope.GroupIDs...)
	}
	return c
}

// SessionStatusResponse is returned by the sharing status endpoint
type SessionStatusResponse struct {
	Session          LocationSession `json:"session"`
	Live             bool            `json:"live"`
	RemainingSeconds int64           `json:"remaining_seconds"`
}

// SessionEvent is published on session lifecycle transitions
type SessionEvent struct {
	SessionID  string        `json:"session_id"`
	UserID     string        `json:"user_id"`
	FestivalID string        `json:"festival_id"`
	Status     SessionStatus `json:"status"`
	ExpiresAt  time.Time     `json:"expires_at"`
	Timestamp  time.Time     `json:"timestamp"`
}

// NewSessionEvent builds the event for a session in its current state
func NewSessionEvent(s LocationSession, at time.Time) SessionEvent {
	return SessionEvent{
		SessionID:  s.ID,
		UserID:     s.UserID,
		FestivalID: s.FestivalID,
		Status:     s.Status,
		ExpiresAt:  s.ExpiresAt,
		Timestamp:  at,
	}
}
