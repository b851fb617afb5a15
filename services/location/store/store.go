package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/piresc/festshare/internal/pkg/logger"
	"github.com/piresc/festshare/internal/pkg/models"
	"github.com/piresc/festshare/internal/utils"
)

// Persister durably records session snapshots. The Redis location repository implements it.
type Persister interface {
	SaveSession(ctx context.Context, session models.LocationSession) error
	DeleteSession(ctx context.Context, userID, festivalID string) error
	LoadSessions(ctx context.Context) ([]models.LocationSession, error)
}

// IngestOutcome reports what IngestPosition did with a sample
type IngestOutcome int

const (
	// IngestApplied means the sample became the session's last position
	IngestApplied IngestOutcome = iota
	// IngestStale means the sample was older than the stored position and was dropped
	IngestStale
	// IngestNoSession means no active session exists for the key
	IngestNoSession
)

// IngestResult is returned by IngestPosition. Session is set when the sample was applied.
type IngestResult struct {
	Outcome IngestOutcome
	Session models.LocationSession
}

// StartResult is returned by Start. Replaced is the session that was active for the key before,
// in its terminal state: stopped, or expired when its window had already closed unswept.
type StartResult struct {
	Session  models.LocationSession
	Replaced *models.LocationSession
}

// StopResult is returned by StopSession. Ended is the terminal snapshot of the session when
// this call ended it; Stopped is true only for an active to stopped transition.
type StopResult struct {
	Stopped bool
	Ended   *models.LocationSession
}

// Config configures a Store
type Config struct {
	Shards             int
	MaxDurationMinutes int
	AllowedDurations   []int
	Persister          Persister // nil keeps sessions in memory only
	Now                models.Clock
	NewID              func() string
}

type sessionKey struct {
	festivalID string
	userID     string
}

// entry is the unit of per-key state. mu serializes writers for the key; snap is the
// published immutable snapshot that readers load without locking.
type entry struct {
	mu   sync.Mutex
	snap atomic.Pointer[models.LocationSession]
	dead bool // guarded by mu, set once the entry is unlinked from its shard
}

type shard struct {
	mu      sync.RWMutex
	entries map[sessionKey]*entry
}

// Store owns every location session. Writes for one (user, festival) key are serialized;
// reads never take a writer lock and there is no lock spanning all sessions.
type Store struct {
	shards    []*shard
	persister Persister
	now       models.Clock
	newID     func() string
	maxDur    int
	allowed   map[int]struct{}
}

// New creates a session store
func New(cfg Config) *Store {
	n := cfg.Shards
	if n <= 0 {
		n = 32
	}
	s := &Store{
		shards:    make([]*shard, n),
		persister: cfg.Persister,
		now:       cfg.Now,
		newID:     cfg.NewID,
		maxDur:    cfg.MaxDurationMinutes,
	}
	for i := range s.shards {
		s.shards[i] = &shard{entries: make(map[sessionKey]*entry)}
	}
	if s.now == nil {
		s.now = models.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}
	if len(cfg.AllowedDurations) > 0 {
		s.allowed = make(map[int]struct{}, len(cfg.AllowedDurations))
		for _, d := range cfg.AllowedDurations {
			s.allowed[d] = struct{}{}
		}
	}
	return s
}

func (s *Store) shardFor(k sessionKey) *shard {
	h := xxhash.New()
	_, _ = h.WriteString(k.festivalID)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(k.userID)
	return s.shards[h.Sum64()%uint64(len(s.shards))]
}

func (s *Store) lookup(k sessionKey, create bool) *entry {
	sh := s.shardFor(k)

	sh.mu.RLock()
	e := sh.entries[k]
	sh.mu.RUnlock()
	if e != nil || !create {
		return e
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if e = sh.entries[k]; e == nil {
		e = &entry{}
		sh.entries[k] = e
	}
	return e
}

// write runs fn as the single writer for k. It returns false without calling fn when
// the key has no entry and create is false.
func (s *Store) write(k sessionKey, create bool, fn func(e *entry)) bool {
	for {
		e := s.lookup(k, create)
		if e == nil {
			return false
		}
		e.mu.Lock()
		if e.dead {
			// collected between lookup and lock, look again
			e.mu.Unlock()
			continue
		}
		fn(e)
		e.mu.Unlock()
		return true
	}
}

func (s *Store) persist(ctx context.Context, session models.LocationSession) error {
	if s.persister == nil {
		return nil
	}
	return s.persister.SaveSession(ctx, session)
}

// ValidateDuration rejects non-positive, too long or unlisted durations
func (s *Store) ValidateDuration(minutes int) error {
	if minutes <= 0 {
		return models.ErrInvalidDuration
	}
	if s.maxDur > 0 && minutes > s.maxDur {
		return models.ErrInvalidDuration
	}
	if s.allowed != nil {
		if _, ok := s.allowed[minutes]; !ok {
			return models.ErrInvalidDuration
		}
	}
	return nil
}

// Start creates a new active session for the key, stopping any session already there.
// Invalid input is rejected before any state is touched.
func (s *Store) Start(ctx context.Context, userID, festivalID string, durationMinutes int, scope models.VisibilityScope) (StartResult, error) {
	if err := s.ValidateDuration(durationMinutes); err != nil {
		return StartResult{}, err
	}
	scope = scope.Normalize()
	if err := scope.Validate(); err != nil {
		return StartResult{}, err
	}

	var (
		result StartResult
		err    error
	)
	s.write(sessionKey{festivalID, userID}, true, func(e *entry) {
		now := s.now()
		session := models.LocationSession{
			ID:              s.newID(),
			UserID:          userID,
			FestivalID:      festivalID,
			StartedAt:       now,
			DurationMinutes: durationMinutes,
			ExpiresAt:       now.Add(time.Duration(durationMinutes) * time.Minute),
			Scope:           scope,
			Status:          models.SessionStatusActive,
		}

		// one key in persistence, so saving the new session also retires the old one
		if err = s.persist(ctx, session); err != nil {
			err = fmt.Errorf("failed to persist session: %w", err)
			return
		}

		if prev := e.snap.Load(); prev != nil && prev.Status == models.SessionStatusActive {
			replaced := terminate(*prev, now)
			result.Replaced = &replaced
		}
		e.snap.Store(&session)
		result.Session = session.Clone()
	})
	if err != nil {
		return StartResult{}, err
	}
	return result, nil
}

// Stop ends the active session for the key. It reports true only for an active to stopped
// transition; repeated calls, unknown keys and already-expired sessions report false.
func (s *Store) Stop(ctx context.Context, userID, festivalID string) (bool, error) {
	res, err := s.StopSession(ctx, userID, festivalID)
	return res.Stopped, err
}

// StopSession is Stop that also returns the ended session, so callers can announce an
// expiry that no sweep has seen yet.
func (s *Store) StopSession(ctx context.Context, userID, festivalID string) (StopResult, error) {
	var (
		result StopResult
		err    error
	)
	s.write(sessionKey{festivalID, userID}, false, func(e *entry) {
		cur := e.snap.Load()
		if cur == nil || cur.Status != models.SessionStatusActive {
			return
		}

		next := terminate(*cur, s.now())
		if err = s.persist(ctx, next); err != nil {
			err = fmt.Errorf("failed to persist session: %w", err)
			return
		}
		e.snap.Store(&next)
		ended := next.Clone()
		result = StopResult{
			Stopped: next.Status == models.SessionStatusStopped,
			Ended:   &ended,
		}
	})
	return result, err
}

// terminate returns the ended copy of an active session: expired at ExpiresAt when its window
// has closed, stopped at now otherwise.
func terminate(cur models.LocationSession, now time.Time) models.LocationSession {
	next := cur.Clone()
	if cur.Expired(now) {
		next.Status = models.SessionStatusExpired
		next.EndedAt = cur.ExpiresAt
	} else {
		next.Status = models.SessionStatusStopped
		next.EndedAt = now
	}
	return next
}

// IngestPosition quantizes raw and stores it as the session's last position. Samples older
// than the stored one are dropped so readers never observe time going backwards.
func (s *Store) IngestPosition(ctx context.Context, userID, festivalID string, raw models.Position) (IngestResult, error) {
	result := IngestResult{Outcome: IngestNoSession}
	var err error

	s.write(sessionKey{festivalID, userID}, false, func(e *entry) {
		cur := e.snap.Load()
		now := s.now()
		if cur == nil || !cur.IsActive(now) {
			return
		}

		pos := utils.Quantize(raw)
		if pos.RecordedAt.IsZero() {
			pos.RecordedAt = now
		}
		if cur.LastPosition != nil && pos.RecordedAt.Before(cur.LastPosition.RecordedAt) {
			result.Outcome = IngestStale
			return
		}

		next := cur.Clone()
		next.LastPosition = &pos
		if err = s.persist(ctx, next); err != nil {
			err = fmt.Errorf("failed to persist position: %w", err)
			return
		}
		e.snap.Store(&next)
		result = IngestResult{Outcome: IngestApplied, Session: next.Clone()}
	})
	return result, err
}

// scan calls fn with every published snapshot. fn must not retain the pointer.
func (s *Store) scan(fn func(k sessionKey, snap *models.LocationSession)) {
	for _, sh := range s.shards {
		sh.mu.RLock()
		for k, e := range sh.entries {
			fn(k, e.snap.Load())
		}
		sh.mu.RUnlock()
	}
}

// Expire transitions every active session whose window has closed at now to expired and
// returns them.
func (s *Store) Expire(ctx context.Context, now time.Time) []models.LocationSession {
	var candidates []sessionKey
	s.scan(func(k sessionKey, snap *models.LocationSession) {
		if snap != nil && snap.Status == models.SessionStatusActive && snap.Expired(now) {
			candidates = append(candidates, k)
		}
	})

	var expired []models.LocationSession
	for _, k := range candidates {
		s.write(k, false, func(e *entry) {
			cur := e.snap.Load()
			if cur == nil || cur.Status != models.SessionStatusActive || !cur.Expired(now) {
				return
			}
			next := cur.Clone()
			next.Status = models.SessionStatusExpired
			next.EndedAt = cur.ExpiresAt
			if err := s.persist(ctx, next); err != nil {
				logger.Warn("Failed to persist expired session",
					logger.String("session_id", cur.ID),
					logger.Err(err))
				return
			}
			e.snap.Store(&next)
			expired = append(expired, next.Clone())
		})
	}
	return expired
}

func collectable(snap *models.LocationSession, now time.Time, retention time.Duration) bool {
	if snap == nil {
		// left behind by a Start whose persistence failed
		return true
	}
	switch snap.Status {
	case models.SessionStatusStopped, models.SessionStatusExpired:
		return now.Sub(snap.EndedAt) >= retention
	default:
		return snap.Expired(now) && now.Sub(snap.ExpiresAt) >= retention
	}
}

// Collect removes sessions that ended more than retention ago and returns how many went
func (s *Store) Collect(ctx context.Context, now time.Time, retention time.Duration) int {
	var candidates []sessionKey
	s.scan(func(k sessionKey, snap *models.LocationSession) {
		if collectable(snap, now, retention) {
			candidates = append(candidates, k)
		}
	})

	removed := 0
	for _, k := range candidates {
		s.write(k, false, func(e *entry) {
			snap := e.snap.Load()
			if !collectable(snap, now, retention) {
				return
			}
			if snap != nil && s.persister != nil {
				if err := s.persister.DeleteSession(ctx, k.userID, k.festivalID); err != nil {
					logger.Warn("Failed to delete collected session",
						logger.String("session_id", snap.ID),
						logger.Err(err))
					return
				}
			}

			sh := s.shardFor(k)
			sh.mu.Lock()
			delete(sh.entries, k)
			sh.mu.Unlock()
			e.dead = true
			removed++
		})
	}
	return removed
}

// Get returns the session for the key as a reader at now would see it: a session past its
// window is reported expired even if no sweep has run yet.
func (s *Store) Get(userID, festivalID string) (models.LocationSession, bool) {
	e := s.lookup(sessionKey{festivalID, userID}, false)
	if e == nil {
		return models.LocationSession{}, false
	}
	snap := e.snap.Load()
	if snap == nil {
		return models.LocationSession{}, false
	}
	session := snap.Clone()
	session.Status = snap.EffectiveStatus(s.now())
	return session, true
}

// LiveSessions returns a snapshot of the festival's live sessions ordered by user ID
func (s *Store) LiveSessions(festivalID string, now time.Time) []models.LocationSession {
	var live []models.LocationSession
	s.scan(func(k sessionKey, snap *models.LocationSession) {
		if k.festivalID == festivalID && snap != nil && snap.IsLive(now) {
			live = append(live, snap.Clone())
		}
	})
	sort.Slice(live, func(i, j int) bool { return live[i].UserID < live[j].UserID })
	return live
}

// Positionless returns active sessions that have not received a first sample within grace
func (s *Store) Positionless(now time.Time, grace time.Duration) []models.LocationSession {
	var out []models.LocationSession
	s.scan(func(_ sessionKey, snap *models.LocationSession) {
		if snap != nil && snap.IsActive(now) && snap.LastPosition == nil && now.Sub(snap.StartedAt) >= grace {
			out = append(out, snap.Clone())
		}
	})
	return out
}

// Len returns the number of sessions held, in any status
func (s *Store) Len() int {
	n := 0
	s.scan(func(_ sessionKey, snap *models.LocationSession) {
		if snap != nil {
			n++
		}
	})
	return n
}

// Restore loads persisted sessions into an empty key space. Keys already holding a session
// keep it. It returns how many sessions were loaded.
func (s *Store) Restore(ctx context.Context) (int, error) {
	if s.persister == nil {
		return 0, nil
	}
	sessions, err := s.persister.LoadSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load sessions: %w", err)
	}

	restored := 0
	for i := range sessions {
		session := sessions[i].Clone()
		s.write(sessionKey{session.FestivalID, session.UserID}, true, func(e *entry) {
			if e.snap.Load() != nil {
				return
			}
			e.snap.Store(&session)
			restored++
		})
	}
	return restored, nil
}
