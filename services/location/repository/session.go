package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/festshare/internal/pkg/constants"
	"github.com/piresc/festshare/internal/pkg/database"
	"github.com/piresc/festshare/internal/pkg/logger"
	"github.com/piresc/festshare/internal/pkg/models"
	"github.com/piresc/festshare/services/location"
)

const scanBatch = 200

type locationRepo struct {
	redisClient *database.RedisClient
	now         models.Clock
}

// NewLocationRepository creates the Redis backed session and suggestion repository
func NewLocationRepository(redisClient *database.RedisClient) location.LocationRepo {
	return &locationRepo{
		redisClient: redisClient,
		now:         models.Now,
	}
}

func sessionKey(userID, festivalID string) string {
	return fmt.Sprintf(constants.KeySession, festivalID, userID)
}

// sessionTTL keeps active sessions until their expiry plus grace and ended ones for grace only
func (r *locationRepo) sessionTTL(session models.LocationSession) time.Duration {
	ttl := constants.SessionKeyTTLGrace
	if session.Status == models.SessionStatusActive {
		if left := session.ExpiresAt.Sub(r.now()); left > 0 {
			ttl += left
		}
	}
	return ttl
}

// SaveSession stores the session snapshot as JSON
func (r *locationRepo) SaveSession(ctx context.Context, session models.LocationSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	key := sessionKey(session.UserID, session.FestivalID)
	if err := r.redisClient.Set(ctx, key, data, r.sessionTTL(session)); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// DeleteSession removes the stored session for the key
func (r *locationRepo) DeleteSession(ctx context.Context, userID, festivalID string) error {
	if err := r.redisClient.Delete(ctx, sessionKey(userID, festivalID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// LoadSessions returns every stored session. Undecodable entries are skipped.
func (r *locationRepo) LoadSessions(ctx context.Context) ([]models.LocationSession, error) {
	keys, err := r.redisClient.ScanKeys(ctx, constants.KeySessionScan, scanBatch)
	if err != nil {
		return nil, fmt.Errorf("failed to scan session keys: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	pipe := r.redisClient.GetClient().Pipeline()
	cmds := make([]*redis.StringCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.Get(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	sessions := make([]models.LocationSession, 0, len(keys))
	for i, cmd := range cmds {
		data, err := cmd.Bytes()
		if err != nil {
			// expired between scan and get
			continue
		}
		var session models.LocationSession
		if err := json.Unmarshal(data, &session); err != nil {
			logger.Warn("Skipping undecodable session",
				logger.String("key", keys[i]),
				logger.ErrorField(err))
			continue
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func dismissalKey(userID string) string {
	return fmt.Sprintf(constants.KeySuggestionDismissal, userID)
}

// GetSuggestionState returns the user's dismissal state; none stored is the zero state
func (r *locationRepo) GetSuggestionState(ctx context.Context, userID string) (models.SuggestionState, error) {
	data, err := r.redisClient.Get(ctx, dismissalKey(userID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.SuggestionState{}, nil
		}
		return models.SuggestionState{}, fmt.Errorf("failed to get suggestion state: %w", err)
	}

	var state models.SuggestionState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return models.SuggestionState{}, fmt.Errorf("failed to unmarshal suggestion state: %w", err)
	}
	return state, nil
}

// SaveSuggestionState stores the dismissal state for ttl
func (r *locationRepo) SaveSuggestionState(ctx context.Context, userID string, state models.SuggestionState, ttl time.Duration) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestion state: %w", err)
	}
	if err := r.redisClient.Set(ctx, dismissalKey(userID), data, ttl); err != nil {
		return fmt.Errorf("failed to store suggestion state: %w", err)
	}
	return nil
}

// ClearSuggestionState removes the user's dismissal state
func (r *locationRepo) ClearSuggestionState(ctx context.Context, userID string) error {
	if err := r.redisClient.Delete(ctx, dismissalKey(userID)); err != nil {
		return fmt.Errorf("failed to clear suggestion state: %w", err)
	}
	return nil
}
