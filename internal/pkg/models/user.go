package models

// UserProfile is the display identity of a festival goer
type UserProfile struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	FullName string `json:"full_name" db:"full_name"`
}

// Group is a friend group scoped to a festival
type Group struct {
	ID         string `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	FestivalID string `json:"festival_id" db:"festival_id"`
}

// GroupIDs extracts the IDs of groups
func GroupIDs(groups []Group) []string {
	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	return ids
}

// NearbyMember is a visible group member near the viewer, computed per query
type NearbyMember struct {
	UserID         string   `json:"user_id"`
	Username       string   `json:"username"`
	FullName       string   `json:"full_name"`
	GroupName      string   `json:"group_name"`
	LastPosition   Position `json:"last_position"`
	DistanceMeters float64  `json:"distance_meters"`
}
