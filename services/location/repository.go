package location

import (
	"context"
	"time"

	"github.com/piresc/festshare/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/festshare/services/location LocationRepo,ReferenceRepo

// LocationRepo persists session snapshots and suggestion state in Redis
type LocationRepo interface {
	// session persistence
	SaveSession(ctx context.Context, session models.LocationSession) error
	DeleteSession(ctx context.Context, userID, festivalID string) error
	LoadSessions(ctx context.Context) ([]models.LocationSession, error)

	// suggestion dismissal state
	GetSuggestionState(ctx context.Context, userID string) (models.SuggestionState, error)
	SaveSuggestionState(ctx context.Context, userID string, state models.SuggestionState, ttl time.Duration) error
	ClearSuggestionState(ctx context.Context, userID string) error
}

// ReferenceRepo reads the reference data owned by other services
type ReferenceRepo interface {
	GetUserGroups(ctx context.Context, userID, festivalID string) ([]models.Group, error)
	GetGroupMemberships(ctx context.Context, groupIDs, userIDs []string) (map[string][]string, error)
	GetUserProfiles(ctx context.Context, userIDs []string) (map[string]models.UserProfile, error)
	GetFestivalTents(ctx context.Context, festivalID string) ([]models.Tent, error)
	HasCheckedInToday(ctx context.Context, userID, tentID string, day time.Time) (bool, error)
}
