package models

// StartSharingRequest starts a location session for one user at one festival.
// Leaving out both GroupIDs and ShareWithAll shares with everyone; an explicit empty
// GroupIDs without ShareWithAll is rejected.
type StartSharingRequest struct {
	UserID          string     `json:"-"`
	FestivalID      string     `json:"-"`
	DurationMinutes int        `json:"duration_minutes"`
	GroupIDs        []string   `json:"group_ids"`
	ShareWithAll    *bool      `json:"share_with_all,omitempty"`
	Permission      Permission `json:"permission,omitempty"`
}

// Scope resolves the visibility scope requested by the client
func (r StartSharingRequest) Scope() VisibilityScope {
	if r.ShareWithAll == nil {
		return VisibilityScope{ShareWithAll: r.GroupIDs == nil, GroupIDs: r.GroupIDs}
	}
	return VisibilityScope{ShareWithAll: *r.ShareWithAll, GroupIDs: r.GroupIDs}
}

// StartSharingResult is returned by a successful start. Warning is set when the device
// cannot fully honour the session.
type StartSharingResult struct {
	Success bool            `json:"success"`
	Warning string          `json:"warning,omitempty"`
	Session LocationSession `json:"session"`
}

// NearbyOptions bounds a proximity query. A non-positive MemberRadius uses the configured
// default; a non-positive TentRadius means unrestricted.
type NearbyOptions struct {
	MemberRadius float64 `json:"member_radius"`
	TentRadius   float64 `json:"tent_radius"`
}

// NearbyResult is the outcome of one proximity query
type NearbyResult struct {
	Members []NearbyMember `json:"members"`
	Tents   []NearbyTent   `json:"tents"`
}

// SampleDecision reports what happened to a device sample
type SampleDecision string

const (
	// SampleForwarded means the sample reached the session
	SampleForwarded SampleDecision = "forwarded"
	// SampleSkippedUnchanged means the quantized position did not move and the last forward is fresh
	SampleSkippedUnchanged SampleDecision = "skipped_unchanged"
	// SampleStale means the sample was older than the stored position
	SampleStale SampleDecision = "stale"
	// SampleNoSession means there is no active session for the key
	SampleNoSession SampleDecision = "no_session"
)
