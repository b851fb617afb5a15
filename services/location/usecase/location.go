package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/festshare/internal/pkg/logger"
	"github.com/piresc/festshare/internal/pkg/models"
	"github.com/piresc/festshare/internal/pkg/retry"
	"github.com/piresc/festshare/internal/utils"
	"github.com/piresc/festshare/services/location"
	"github.com/piresc/festshare/services/location/proximity"
	"github.com/piresc/festshare/services/location/sampler"
	"github.com/piresc/festshare/services/location/store"
	"github.com/piresc/festshare/services/location/suggestion"
)

// LocationUC implements location.LocationUC on top of the in-memory session engine
type LocationUC struct {
	cfg     models.LocationConfig
	repo    location.LocationRepo
	refs    location.ReferenceRepo
	gw      location.LocationGW
	store   *store.Store
	sampler *sampler.Sampler
	engine  *proximity.Engine
	policy  suggestion.Policy
	retrier *retry.Retrier
	now     models.Clock

	// positionless sessions already reported, so each one is warned about once
	mu                 sync.Mutex
	warnedPositionless map[string]struct{}
}

var _ location.LocationUC = (*LocationUC)(nil)

// Option customizes a LocationUC
type Option func(*options)

type options struct {
	now     models.Clock
	newID   func() string
	retrier *retry.Retrier
}

// WithClock pins the time source
func WithClock(now models.Clock) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides session id generation
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// WithRetrier overrides the retrier used for start-up restores
func WithRetrier(r *retry.Retrier) Option {
	return func(o *options) { o.retrier = r }
}

// NewLocationUC creates the location use case. Sessions are persisted through repo.
func NewLocationUC(cfg models.LocationConfig, repo location.LocationRepo, refs location.ReferenceRepo, gw location.LocationGW, opts ...Option) *LocationUC {
	o := options{now: models.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.retrier == nil {
		o.retrier = retry.NewWithDefaults(nil)
	}

	st := store.New(store.Config{
		Shards:             cfg.StoreShards,
		MaxDurationMinutes: cfg.MaxDurationMinutes,
		AllowedDurations:   cfg.AllowedDurations,
		Persister:          repo,
		Now:                o.now,
		NewID:              o.newID,
	})

	return &LocationUC{
		cfg:     cfg,
		repo:    repo,
		refs:    refs,
		gw:      gw,
		store:   st,
		sampler: sampler.New(st, cfg.SamplerMaxStaleness, cfg.StoreShards, o.now),
		engine:  proximity.NewEngine(st, refs, cfg.DefaultMemberRadiusM, o.now),
		policy: suggestion.Policy{
			Threshold:    cfg.SuggestionThresholdM,
			Cooldown:     cfg.SuggestionCooldown,
			HereDistance: cfg.HereDistanceM,
		},
		retrier:            o.retrier,
		now:                o.now,
		warnedPositionless: make(map[string]struct{}),
	}
}

// StartSharing starts or replaces the caller's session for the festival
func (uc *LocationUC) StartSharing(ctx context.Context, req models.StartSharingRequest) (*models.StartSharingResult, error) {
	if !req.Permission.Valid() {
		return nil, models.ErrInvalidPermission
	}

	res, err := uc.store.Start(ctx, req.UserID, req.FestivalID, req.DurationMinutes, req.Scope())
	if err != nil {
		return nil, err
	}
	uc.sampler.Reset(req.UserID, req.FestivalID)

	now := uc.now()
	if res.Replaced != nil {
		uc.publishSession(ctx, models.NewSessionEvent(*res.Replaced, now))
	}
	uc.publishSession(ctx, models.NewSessionEvent(res.Session, now))

	logger.InfoCtx(ctx, "Location sharing started",
		logger.String("user_id", req.UserID),
		logger.String("festival_id", req.FestivalID),
		logger.String("session_id", res.Session.ID),
		logger.Int("duration_minutes", req.DurationMinutes),
		logger.Bool("share_with_all", res.Session.Scope.ShareWithAll),
		logger.Bool("replaced", res.Replaced != nil))

	return &models.StartSharingResult{
		Success: true,
		Warning: req.Permission.Warning(),
		Session: res.Session,
	}, nil
}

// StopSharing ends the caller's session. It reports whether an active session was stopped.
// A session found past its window is announced as expired instead.
func (uc *LocationUC) StopSharing(ctx context.Context, userID, festivalID string) (bool, error) {
	res, err := uc.store.StopSession(ctx, userID, festivalID)
	if err != nil {
		return false, err
	}
	uc.sampler.Reset(userID, festivalID)
	if res.Ended == nil {
		return false, nil
	}

	uc.publishSession(ctx, models.NewSessionEvent(*res.Ended, uc.now()))
	logger.InfoCtx(ctx, "Location sharing ended",
		logger.String("user_id", userID),
		logger.String("festival_id", festivalID),
		logger.String("status", string(res.Ended.Status)))
	return res.Stopped, nil
}

// GetSharingStatus returns the caller's session as seen now
func (uc *LocationUC) GetSharingStatus(ctx context.Context, userID, festivalID string) (*models.SessionStatusResponse, error) {
	session, ok := uc.store.Get(userID, festivalID)
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	now := uc.now()
	return &models.SessionStatusResponse{
		Session:          session,
		Live:             session.IsLive(now),
		RemainingSeconds: int64(session.Remaining(now) / time.Second),
	}, nil
}

// IngestSample feeds one device sample through the sampler into the session
func (uc *LocationUC) IngestSample(ctx context.Context, userID, festivalID string, pos models.Position) (models.SampleDecision, error) {
	if err := utils.ValidateCoordinates(pos.Latitude, pos.Longitude); err != nil {
		return "", err
	}
	now := uc.now()
	if pos.RecordedAt.IsZero() {
		pos.RecordedAt = now
	}
	// a device clock running ahead would make every later sample look stale
	if pos.RecordedAt.After(now) {
		logger.DebugCtx(ctx, "Clamped future sample timestamp",
			logger.String("user_id", userID),
			logger.Time("recorded_at", pos.RecordedAt),
			logger.Duration("skew", pos.RecordedAt.Sub(now)))
		pos.RecordedAt = now
	}

	res, err := uc.sampler.Offer(ctx, userID, festivalID, pos)
	if err != nil {
		return "", fmt.Errorf("failed to ingest sample: %w", err)
	}

	switch res.Decision {
	case models.SampleStale:
		logger.DebugCtx(ctx, "Dropped stale location sample",
			logger.String("user_id", userID),
			logger.String("festival_id", festivalID),
			logger.Time("recorded_at", pos.RecordedAt))
	case models.SampleForwarded:
		if p := res.Session.LastPosition; p != nil {
			event := models.PositionEvent{
				SessionID:  res.Session.ID,
				UserID:     userID,
				FestivalID: festivalID,
				Position:   *p,
				Cell:       utils.CellKey(*p),
				Timestamp:  now,
			}
			if err := uc.gw.PublishPositionEvent(ctx, event); err != nil {
				logger.WarnCtx(ctx, "Failed to publish position event",
					logger.String("user_id", userID),
					logger.ErrorField(err))
			}
		}
	}
	return res.Decision, nil
}

// GetNearby returns the members visible to the viewer and the tents around pos
func (uc *LocationUC) GetNearby(ctx context.Context, viewerID, festivalID string, pos models.Position, opts models.NearbyOptions) (*models.NearbyResult, error) {
	if err := utils.ValidateCoordinates(pos.Latitude, pos.Longitude); err != nil {
		return nil, err
	}
	res, err := uc.engine.Query(ctx, proximity.QueryRequest{
		ViewerID:     viewerID,
		FestivalID:   festivalID,
		Position:     pos,
		MemberRadius: opts.MemberRadius,
		TentRadius:   opts.TentRadius,
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetSuggestion returns the check-in banner for the viewer, or an empty suggestion
func (uc *LocationUC) GetSuggestion(ctx context.Context, viewerID, festivalID string) (models.Suggestion, error) {
	now := uc.now()
	session, ok := uc.store.Get(viewerID, festivalID)
	if !ok || !session.IsLive(now) {
		return models.Suggestion{}, nil
	}

	tents, err := uc.engine.QueryTents(ctx, festivalID, *session.LastPosition, uc.policy.Threshold)
	if err != nil {
		return models.Suggestion{}, err
	}
	if len(tents) == 0 {
		return models.Suggestion{}, nil
	}

	state, err := uc.repo.GetSuggestionState(ctx, viewerID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load suggestion state",
			logger.String("user_id", viewerID),
			logger.ErrorField(err))
		state = models.SuggestionState{}
	}

	checkedIn := func(tentID string) bool {
		done, err := uc.refs.HasCheckedInToday(ctx, viewerID, tentID, now)
		if err != nil {
			// no banner we cannot vouch for
			logger.WarnCtx(ctx, "Failed to check today's check-ins",
				logger.String("user_id", viewerID),
				logger.String("tent_id", tentID),
				logger.ErrorField(err))
			return true
		}
		return done
	}

	s, _ := uc.policy.ShouldSuggest(suggestion.Input{
		NearbyTents:      tents,
		IsSharing:        true,
		State:            state,
		AlreadyCheckedIn: checkedIn,
		Now:              now,
	})
	return s, nil
}

// DismissSuggestion mutes the banner for tentID during the cooldown
func (uc *LocationUC) DismissSuggestion(ctx context.Context, viewerID, tentID string) (models.SuggestionState, error) {
	if tentID == "" {
		return models.SuggestionState{}, models.ErrInvalidTent
	}
	state := uc.policy.Dismiss(tentID, uc.now())
	if err := uc.repo.SaveSuggestionState(ctx, viewerID, state, uc.policy.Cooldown); err != nil {
		return models.SuggestionState{}, fmt.Errorf("failed to save suggestion state: %w", err)
	}
	return state, nil
}

// ClearSuggestion drops a dismissal once the user checked in at that tent.
// An empty tentID clears any dismissal.
func (uc *LocationUC) ClearSuggestion(ctx context.Context, userID, tentID string) error {
	if tentID != "" {
		state, err := uc.repo.GetSuggestionState(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load suggestion state: %w", err)
		}
		if state.DismissedTentID != tentID {
			return nil
		}
	}
	if err := uc.repo.ClearSuggestionState(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear suggestion state: %w", err)
	}
	return nil
}

// ExpireSessions runs one sweep: expire sessions past their window, report sessions still
// waiting for a first sample and collect ended sessions past retention.
func (uc *LocationUC) ExpireSessions(ctx context.Context) int {
	now := uc.now()

	expired := uc.store.Expire(ctx, now)
	for _, s := range expired {
		uc.sampler.Reset(s.UserID, s.FestivalID)
		uc.publishSession(ctx, models.NewSessionEvent(s, now))
	}

	uc.reportPositionless(now)

	collected := uc.store.Collect(ctx, now, uc.cfg.RetentionWindow)
	if len(expired) > 0 || collected > 0 {
		logger.Info("Session sweep finished",
			logger.Int("expired", len(expired)),
			logger.Int("collected", collected),
			logger.Int("remaining", uc.store.Len()))
	}
	return len(expired)
}

// reportPositionless warns once per session that is still waiting for its first sample after
// the grace period; later sweeps only log at debug level.
func (uc *LocationUC) reportPositionless(now time.Time) {
	waiting := uc.store.Positionless(now, uc.cfg.PositionGrace)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	current := make(map[string]struct{}, len(waiting))
	for _, s := range waiting {
		current[s.ID] = struct{}{}
		fields := []logger.Field{
			logger.String("user_id", s.UserID),
			logger.String("festival_id", s.FestivalID),
			logger.String("session_id", s.ID),
			logger.Duration("since_start", now.Sub(s.StartedAt)),
		}
		if _, ok := uc.warnedPositionless[s.ID]; ok {
			logger.Debug("Session still has no position", fields...)
			continue
		}
		logger.Warn("Session has no position yet", fields...)
	}
	uc.warnedPositionless = current
}

// RunSweeper calls ExpireSessions every SweepInterval until ctx is done
func (uc *LocationUC) RunSweeper(ctx context.Context) {
	interval := uc.cfg.SweepInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Session sweeper started", logger.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Session sweeper stopped")
			return
		case <-ticker.C:
			uc.ExpireSessions(ctx)
		}
	}
}

// RestoreSessions reloads persisted sessions into the store, retrying transient failures
func (uc *LocationUC) RestoreSessions(ctx context.Context) (int, error) {
	var restored int
	err := uc.retrier.Execute(ctx, "restore sessions", func(ctx context.Context) error {
		n, err := uc.store.Restore(ctx)
		restored += n
		return err
	})
	if err != nil {
		return restored, err
	}
	logger.Info("Sessions restored", logger.Int("count", restored))
	return restored, nil
}

func (uc *LocationUC) publishSession(ctx context.Context, event models.SessionEvent) {
	if err := uc.gw.PublishSessionEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish session event",
			logger.String("session_id", event.SessionID),
			logger.String("status", string(event.Status)),
			logger.ErrorField(err))
	}
}
