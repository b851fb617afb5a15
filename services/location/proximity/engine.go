package proximity

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/piresc/festshare/internal/pkg/logger"
	"github.com/piresc/festshare/internal/pkg/models"
	"github.com/piresc/festshare/internal/utils"
)

// DefaultMemberRadiusMeters applies when a query does not bound the member radius
const DefaultMemberRadiusMeters = 1000.0

// SessionSource lists the sessions that can currently be located
type SessionSource interface {
	LiveSessions(festivalID string, now time.Time) []models.LocationSession
}

// References is the reference data the engine reads
type References interface {
	GetUserGroups(ctx context.Context, userID, festivalID string) ([]models.Group, error)
	GetGroupMemberships(ctx context.Context, groupIDs, userIDs []string) (map[string][]string, error)
	GetUserProfiles(ctx context.Context, userIDs []string) (map[string]models.UserProfile, error)
	GetFestivalTents(ctx context.Context, festivalID string) ([]models.Tent, error)
}

// QueryRequest is one viewer's nearby lookup
type QueryRequest struct {
	ViewerID     string
	FestivalID   string
	Position     models.Position
	MemberRadius float64
	TentRadius   float64
}

// Engine answers proximity queries over a snapshot of live sessions
type Engine struct {
	sessions            SessionSource
	refs                References
	defaultMemberRadius float64
	now                 models.Clock
}

// NewEngine creates a proximity engine. A non-positive defaultMemberRadius falls back to 1000 m.
func NewEngine(sessions SessionSource, refs References, defaultMemberRadius float64, now models.Clock) *Engine {
	if defaultMemberRadius <= 0 {
		defaultMemberRadius = DefaultMemberRadiusMeters
	}
	if now == nil {
		now = models.Now
	}
	return &Engine{
		sessions:            sessions,
		refs:                refs,
		defaultMemberRadius: defaultMemberRadius,
		now:                 now,
	}
}

// Query returns the visible members and the tents near the viewer.
// Visibility is resolved before distance; a failed group lookup fails the whole query.
func (e *Engine) Query(ctx context.Context, req QueryRequest) (models.NearbyResult, error) {
	groups, err := e.refs.GetUserGroups(ctx, req.ViewerID, req.FestivalID)
	if err != nil {
		return models.NearbyResult{}, fmt.Errorf("failed to resolve viewer groups: %w", err)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	viewerGroups := models.GroupIDs(groups)

	radius := req.MemberRadius
	if radius <= 0 {
		radius = e.defaultMemberRadius
	}

	var candidates []models.LocationSession
	for _, s := range e.sessions.LiveSessions(req.FestivalID, e.now()) {
		if s.UserID != req.ViewerID {
			candidates = append(candidates, s)
		}
	}
	memberships := e.sharedMemberships(ctx, candidates, viewerGroups)

	scopes := make(map[string]models.VisibilityScope, len(candidates))
	members := make([]models.NearbyMember, 0, len(candidates))
	for _, s := range candidates {
		if !s.Scope.CanView(viewerGroups, memberships[s.UserID]) {
			continue
		}
		d := utils.Distance(req.Position, *s.LastPosition)
		if d > radius {
			continue
		}
		scopes[s.UserID] = s.Scope
		members = append(members, models.NearbyMember{
			UserID:         s.UserID,
			LastPosition:   *s.LastPosition,
			DistanceMeters: d,
		})
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].DistanceMeters != members[j].DistanceMeters {
			return members[i].DistanceMeters < members[j].DistanceMeters
		}
		return members[i].UserID < members[j].UserID
	})

	if len(members) > 0 {
		e.enrich(ctx, members, scopes, memberships, groups)
	}

	tents, err := e.QueryTents(ctx, req.FestivalID, req.Position, req.TentRadius)
	if err != nil {
		return models.NearbyResult{}, err
	}

	return models.NearbyResult{Members: members, Tents: tents}, nil
}

// sharedMemberships resolves, for every share-with-all sharer, which of the viewer's groups they
// belong to. A failed lookup returns nothing, which hides those sharers.
func (e *Engine) sharedMemberships(ctx context.Context, sessions []models.LocationSession, viewerGroups []string) map[string][]string {
	if len(viewerGroups) == 0 {
		return nil
	}
	var sharers []string
	for _, s := range sessions {
		if s.Scope.ShareWithAll {
			sharers = append(sharers, s.UserID)
		}
	}
	if len(sharers) == 0 {
		return nil
	}

	memberships, err := e.refs.GetGroupMemberships(ctx, viewerGroups, sharers)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load group memberships, hiding share-with-all members",
			logger.Int("members", len(sharers)),
			logger.ErrorField(err))
		return nil
	}
	return memberships
}

// enrich fills display names and group names. Profile lookup failures leave names empty.
func (e *Engine) enrich(ctx context.Context, members []models.NearbyMember, scopes map[string]models.VisibilityScope, memberships map[string][]string, viewerGroups []models.Group) {
	userIDs := make([]string, 0, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}

	profiles, err := e.refs.GetUserProfiles(ctx, userIDs)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load member profiles",
			logger.Int("members", len(userIDs)),
			logger.ErrorField(err))
	}

	for i := range members {
		m := &members[i]
		if p, ok := profiles[m.UserID]; ok {
			m.Username = p.Username
			m.FullName = p.FullName
		}
		scope := scopes[m.UserID]
		for _, g := range viewerGroups {
			if (!scope.ShareWithAll && scope.Contains(g.ID)) ||
				(scope.ShareWithAll && contains(memberships[m.UserID], g.ID)) {
				m.GroupName = g.Name
				break
			}
		}
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// QueryTents returns the festival tents within radius of pos, closest first.
// A non-positive radius returns every tent.
func (e *Engine) QueryTents(ctx context.Context, festivalID string, pos models.Position, radius float64) ([]models.NearbyTent, error) {
	tents, err := e.refs.GetFestivalTents(ctx, festivalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load festival tents: %w", err)
	}

	nearby := make([]models.NearbyTent, 0, len(tents))
	for _, t := range tents {
		d := utils.Distance(pos, t.Position())
		if radius > 0 && d > radius {
			continue
		}
		nearby = append(nearby, models.NearbyTent{
			TentID:         t.ID,
			TentName:       t.Name,
			Category:       t.Category,
			DistanceMeters: d,
		})
	}
	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceMeters != nearby[j].DistanceMeters {
			return nearby[i].DistanceMeters < nearby[j].DistanceMeters
		}
		return nearby[i].TentID < nearby[j].TentID
	})
	return nearby, nil
}
