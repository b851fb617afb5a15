package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/festshare/internal/pkg/circuitbreaker"
	"github.com/piresc/festshare/internal/pkg/constants"
	"github.com/piresc/festshare/internal/pkg/database"
	"github.com/piresc/festshare/internal/pkg/logger"
	"github.com/piresc/festshare/internal/pkg/models"
	"github.com/piresc/festshare/services/location"
)

// ReferenceRepo reads groups, users, tents and check-ins from Postgres.
// Festival tents are cached in Redis.
type ReferenceRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
	breaker     *circuitbreaker.CircuitBreaker
	tentTTL     time.Duration
	festivalTZ  *time.Location
}

var _ location.ReferenceRepo = (*ReferenceRepo)(nil)

// NewReferenceRepository creates the reference data repository. festivalTZ decides where a
// festival day starts for check-in lookups; nil means UTC.
func NewReferenceRepository(db *sqlx.DB, redisClient *database.RedisClient, tentTTL time.Duration, festivalTZ *time.Location) *ReferenceRepo {
	if festivalTZ == nil {
		festivalTZ = time.UTC
	}
	return &ReferenceRepo{
		db:          db,
		redisClient: redisClient,
		breaker:     circuitbreaker.New(circuitbreaker.DefaultConfig("postgres-reference"), nil),
		tentTTL:     tentTTL,
		festivalTZ:  festivalTZ,
	}
}

func (r *ReferenceRepo) guard(ctx context.Context, fn func(context.Context) error) error {
	return r.breaker.Execute(ctx, fn)
}

// GetUserGroups returns the user's groups at the festival ordered by ID
func (r *ReferenceRepo) GetUserGroups(ctx context.Context, userID, festivalID string) ([]models.Group, error) {
	query := `
		SELECT g.id, g.name, g.festival_id
		FROM groups g
		JOIN group_members m ON m.group_id = g.id
		WHERE m.user_id = $1 AND g.festival_id = $2
		ORDER BY g.id
	`
	var groups []models.Group
	err := r.guard(ctx, func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &groups, query, userID, festivalID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user groups: %w", err)
	}
	return groups, nil
}

type membershipRow struct {
	UserID  string `db:"user_id"`
	GroupID string `db:"group_id"`
}

// GetGroupMemberships returns, per user, which of groupIDs the user belongs to
func (r *ReferenceRepo) GetGroupMemberships(ctx context.Context, groupIDs, userIDs []string) (map[string][]string, error) {
	out := make(map[string][]string)
	if len(groupIDs) == 0 || len(userIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
		SELECT user_id, group_id
		FROM group_members
		WHERE group_id IN (?) AND user_id IN (?)
		ORDER BY user_id, group_id
	`, groupIDs, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build membership query: %w", err)
	}

	var rows []membershipRow
	err = r.guard(ctx, func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get group memberships: %w", err)
	}

	for _, row := range rows {
		out[row.UserID] = append(out[row.UserID], row.GroupID)
	}
	return out, nil
}

// GetUserProfiles returns display profiles keyed by user ID. Unknown IDs are absent.
func (r *ReferenceRepo) GetUserProfiles(ctx context.Context, userIDs []string) (map[string]models.UserProfile, error) {
	out := make(map[string]models.UserProfile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`SELECT id, username, full_name FROM users WHERE id IN (?)`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile query: %w", err)
	}

	var profiles []models.UserProfile
	err = r.guard(ctx, func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &profiles, r.db.Rebind(query), args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user profiles: %w", err)
	}

	for _, p := range profiles {
		out[p.ID] = p
	}
	return out, nil
}

// GetFestivalTents returns the festival's tents, from cache when possible.
// Cache failures fall through to Postgres.
func (r *ReferenceRepo) GetFestivalTents(ctx context.Context, festivalID string) ([]models.Tent, error) {
	key := fmt.Sprintf(constants.KeyFestivalTents, festivalID)

	if tents, ok := r.cachedTents(ctx, key); ok {
		return tents, nil
	}

	query := `
		SELECT id, name, category, latitude, longitude, beer_price
		FROM tents
		WHERE festival_id = $1
		ORDER BY id
	`
	var tents []models.Tent
	err := r.guard(ctx, func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &tents, query, festivalID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get festival tents: %w", err)
	}

	if data, err := json.Marshal(tents); err == nil {
		if err := r.redisClient.Set(ctx, key, data, r.tentTTL); err != nil {
			logger.Warn("Failed to cache festival tents",
				logger.String("festival_id", festivalID),
				logger.ErrorField(err))
		}
	}
	return tents, nil
}

func (r *ReferenceRepo) cachedTents(ctx context.Context, key string) ([]models.Tent, bool) {
	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Failed to read tent cache", logger.String("key", key), logger.ErrorField(err))
		}
		return nil, false
	}
	var tents []models.Tent
	if err := json.Unmarshal([]byte(data), &tents); err != nil {
		logger.Warn("Discarding corrupt tent cache", logger.String("key", key), logger.ErrorField(err))
		return nil, false
	}
	return tents, true
}

// HasCheckedInToday reports whether the user checked in at the tent on day's calendar date in
// the festival's timezone
func (r *ReferenceRepo) HasCheckedInToday(ctx context.Context, userID, tentID string, day time.Time) (bool, error) {
	from, to := models.DayBounds(day.In(r.festivalTZ))
	from, to = from.UTC(), to.UTC()
	query := `
		SELECT EXISTS (
			SELECT 1 FROM checkins
			WHERE user_id = $1 AND tent_id = $2
			AND checked_in_at >= $3 AND checked_in_at < $4
		)
	`
	var exists bool
	err := r.guard(ctx, func(ctx context.Context) error {
		return r.db.GetContext(ctx, &exists, query, userID, tentID, from, to)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check check-ins: %w", err)
	}
	return exists, nil
}
