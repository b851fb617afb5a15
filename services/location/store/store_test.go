package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/piresc/festshare/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type memPersister struct {
	mu       sync.Mutex
	sessions map[string]models.LocationSession
	fail     error
}

func newMemPersister() *memPersister {
	return &memPersister{sessions: make(map[string]models.LocationSession)}
}

func (p *memPersister) SaveSession(_ context.Context, s models.LocationSession) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	p.sessions[s.FestivalID+"/"+s.UserID] = s
	return nil
}

func (p *memPersister) DeleteSession(_ context.Context, userID, festivalID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	delete(p.sessions, festivalID+"/"+userID)
	return nil
}

func (p *memPersister) LoadSessions(context.Context) ([]models.LocationSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return nil, p.fail
	}
	out := make([]models.LocationSession, 0, len(p.sessions))
	for _, s := range p.sessions {
		out = append(out, s)
	}
	return out, nil
}

func (p *memPersister) get(userID, festivalID string) (models.LocationSession, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.sessions[festivalID+"/"+userID]
	return s, ok
}

var t0 = time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, cfg Config) (*Store, *fakeClock, *memPersister) {
	t.Helper()
	clock := &fakeClock{t: t0}
	p := newMemPersister()
	cfg.Now = clock.Now
	if cfg.Persister == nil {
		cfg.Persister = p
	}
	if cfg.MaxDurationMinutes == 0 {
		cfg.MaxDurationMinutes = 24 * 60
	}
	ids := 0
	cfg.NewID = func() string {
		ids++
		return fmt.Sprintf("session-%d", ids)
	}
	return New(cfg), clock, p
}

var groupG1 = models.VisibilityScope{GroupIDs: []string{"G1"}}

func at(lat, lng float64, ts time.Time) models.Position {
	return models.Position{Latitude: lat, Longitude: lng, Accuracy: 5, RecordedAt: ts}
}

func TestStart_RejectsInvalidInputWithoutState(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		scope    models.VisibilityScope
		allowed  []int
		err      error
	}{
		{name: "zero duration", duration: 0, scope: models.VisibilityScope{ShareWithAll: true}, err: models.ErrInvalidDuration},
		{name: "negative duration", duration: -30, scope: groupG1, err: models.ErrInvalidDuration},
		{name: "above maximum", duration: 24*60 + 1, scope: groupG1, err: models.ErrInvalidDuration},
		{name: "not in allowed set", duration: 45, scope: groupG1, allowed: []int{30, 60, 120}, err: models.ErrInvalidDuration},
		{name: "empty scope", duration: 60, scope: models.VisibilityScope{}, err: models.ErrInvalidVisibilityScope},
		{name: "blank groups only", duration: 60, scope: models.VisibilityScope{GroupIDs: []string{" "}}, err: models.ErrInvalidVisibilityScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, p := newTestStore(t, Config{AllowedDurations: tt.allowed})

			_, err := s.Start(context.Background(), "A", "fest", tt.duration, tt.scope)

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, 0, s.Len())
			_, ok := s.Get("A", "fest")
			assert.False(t, ok)
			_, persisted := p.get("A", "fest")
			assert.False(t, persisted)
		})
	}
}

func TestStart_CreatesActiveSession(t *testing.T) {
	s, _, p := newTestStore(t, Config{})

	res, err := s.Start(context.Background(), "A", "fest", 120, models.VisibilityScope{GroupIDs: []string{"G2", "G1", "G1"}})
	require.NoError(t, err)

	assert.Nil(t, res.Replaced)
	assert.Equal(t, "session-1", res.Session.ID)
	assert.Equal(t, models.SessionStatusActive, res.Session.Status)
	assert.Equal(t, t0.Add(120*time.Minute), res.Session.ExpiresAt)
	assert.Equal(t, []string{"G1", "G2"}, res.Session.Scope.GroupIDs)

	persisted, ok := p.get("A", "fest")
	require.True(t, ok)
	assert.Equal(t, res.Session.ID, persisted.ID)
}

func TestStart_ReplacesExistingSession(t *testing.T) {
	s, clock, _ := newTestStore(t, Config{})
	ctx := context.Background()

	first, err := s.Start(ctx, "A", "fest", 60, groupG1)
	require.NoError(t, err)
	clock.Advance(5 * time.Minute)

	second, err := s.Start(ctx, "A", "fest", 30, models.VisibilityScope{ShareWithAll: true})
	require.NoError(t, err)

	require.NotNil(t, second.Replaced)
	assert.Equal(t, first.Session.ID, second.Replaced.ID)
	assert.Equal(t, models.SessionStatusStopped, second.Replaced.Status)
	assert.Equal(t, t0.Add(5*time.Minute), second.Replaced.EndedAt)

	got, ok := s.Get("A", "fest")
	require.True(t, ok)
	assert.Equal(t, second.Session.ID, got.ID)
	assert.Equal(t, 1, s.Len())
}

func TestStart_PersistenceFailureLeavesNoSession(t *testing.T) {
	p := newMemPersister()
	p.fail = errors.New("redis down")
	s, _, _ := newTestStore(t, Config{Persister: p})

	_, err := s.Start(context.Background(), "A", "fest", 60, groupG1)

	assert.Error(t, err)
	_, ok := s.Get("A", "fest")
	assert.False(t, ok)

	// the empty entry is garbage collected
	assert.Equal(t, 1, s.Collect(context.Background(), t0, time.Minute))
}

func TestStop_Idempotent(t *testing.T) {
	s, _, p := newTestStore(t, Config{})
	ctx := context.Background()

	_, err := s.Start(ctx, "A", "fest", 60, groupG1)
	require.NoError(t, err)

	first, err := s.Stop(ctx, "A", "fest")
	require.NoError(t, err)
	second, err := s.Stop(ctx, "A", "fest")
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)

	got, ok := s.Get("A", "fest")
	require.True(t, ok)
	assert.Equal(t, models.SessionStatusStopped, got.Status)
	persisted, _ := p.get("A", "fest")
	assert.Equal(t, models.SessionStatusStopped, persisted.Status)

	unknown, err := s.Stop(ctx, "nobody", "fest")
	assert.NoError(t, err)
	assert.False(t, unknown)
}

func TestStop_ExpiredButUnsweptSession(t *testing.T) {
	s, clock, _ := newTestStore(t, Config{})
	ctx := context.Background()

	_, err := s.Start(ctx, "A", "fest", 60, groupG1)
	require.NoError(t, err)
	clock.Advance(61 * time.Minute)

	stopped, err := s.Stop(ctx, "A", "fest")
	require.NoError(t, err)
	assert.False(t, stopped)

	got, _ := s.Get("A", "fest")
	assert.Equal(t, models.SessionStatusExpired, got.Status)
	assert.Equal(t, t0.Add(60*time.Minute), got.EndedAt)
}

func TestStopSession_ReportsEndedSession(t *testing.T) {
	s, clock, _ := newTestStore(t, Config{})
	ctx := context.Background()

	_, err := s.Start(ctx, "A", "fest", 60, groupG1)
	require.NoError(t, err)
	_, err = s.Start(ctx, "B", "fest", 60, groupG1)
	require.NoError(t, err)

	clock.Advance(10 * time.Minute)
	res, err := s.StopSession(ctx, "A", "fest")
	require.NoError(t, err)
	assert.True(t, res.Stopped)
	require.NotNil(t, res.Ended)
	assert.Equal(t, models.SessionStatusStopped, res.Ended.Status)

	// expired without a sweep: the caller still learns about the transition
	clock.Advance(51 * time.Minute)
	res, err = s.StopSession(ctx, "B", "fest")
	require.NoError(t, err)
	assert.False(t, res.Stopped)
	require.NotNil(t, res.Ended)
	assert.Equal(t, models.SessionStatusExpired, res.Ended.Status)
	assert.Equal(t, t0.Add(60*time.Minute), res.Ended.EndedAt)

	res, err = s.StopSession(ctx, "B", "fest")
	require.NoError(t, err)
	assert.Equal(t, StopResult{}, res)
	assert.Empty(t, s.Expire(ctx, clock.Now()))
}

func TestStart_ReplacesExpiredUnsweptSession(t *testing.T) {
	s, clock, _ := newTestStore(t, Config{})
	ctx := context.Background()

	first, err := s.Start(ctx, "A", "fest", 60, groupG1)
	require.NoError(t, err)
	clock.Advance(61 * time.Minute)

	second, err := s.Start(ctx, "A", "fest", 30, groupG1)
	require.NoError(t, err)
	require.NotNil(t, second.Replaced)
	assert.Equal(t, first.Session.ID, second.Replaced.ID)
	assert.Equal(t, models.SessionStatusExpired, second.Replaced.Status)
	assert.Equal(t, t0.Add(60*time.Minute), second.Replaced.EndedAt)
}

func TestStop_PersistenceFailureKeepsSessionActive(t *testing.T) {
	s, _, p := newTestStore(t, Config{})
	ctx := context.Background()

	_, err := s.Start(ctx, "A", "fest", 60, groupG1)
	require.NoError(t, err)

	p.fail = errors.New("redis down")
	stopped, err := s.Stop(ctx, "A", "fest")
	assert.Error(t, err)
	assert.False(t, stopped)

	got, _ := s.Get("A", "fest")
	assert.Equal(t, models.SessionStatusActive, got.Status)
}

func TestExpiryWithoutSweep(t *testing.T) {
	s, clock, _ := newTestStore(t, Config{})
	ctx := context.Background()

	_, err := s.Start(ctx, "A", "fest", 60, groupG1)
	require.NoError(t, err)
	_, err = s.IngestPosition(ctx, "A", "fest", at(48.1316, 11.5494, t0))
	require.NoError(t, err)

	clock.Advance(59*time.Minute + 59*time.Second)
	assert.Len(t, s.LiveSessions("fest", clock.Now()), 1)

	clock.Advance(time.Second)
	assert.Empty(t, s.LiveSessions("fest", clock.Now()))

	clock.Advance(time.Minute)
	got, ok := s.Get("A", "fest")
	require.True(t, ok)
	assert.Equal(t, models.SessionStatusExpired, got.Status)

	// reading did not mutate the stored state
	expired := s.Expire(ctx, clock.Now())
	require.Len(t, expired, 1)
	assert.Equal(t, models.SessionStatusExpired, expired[0].Status)
}

func TestIngestPosition(t *testing.T) {
	s, clock, _ := newTestStore(t, Config{})
	ctx := context.Background()

	res, err := s.IngestPosition(ctx, "A", "fest", at(48.1316, 11.5494, t0))
	require.NoError(t, err)
	assert.Equal(t, IngestNoSession, res.Outcome)

	_, err = s.Start(ctx, "A", "fest", 60, groupG1)
	require.NoError(t, err)

	res, err = s.IngestPosition(ctx, "A", "fest", at(48.13161, 11.54938, t0.Add(10*time.Second)))
	require.NoError(t, err)
	require.Equal(t, IngestApplied, res.Outcome)
	assert.Equal(t, 48.1316, res.Session.LastPosition.Latitude)
	assert.Equal(t, 11.5494, res.Session.LastPosition.Longitude)

	// older sample is dropped
	res, err = s.IngestPosition(ctx, "A", "fest", at(48.2, 11.6, t0.Add(5*time.Second)))
	require.NoError(t, err)
	assert.Equal(t, IngestStale, res.Outcome)
	got, _ := s.Get("A", "fest")
	assert.Equal(t, 48.1316, got.LastPosition.Latitude)

	// missing timestamp takes the store clock
	clock.Advance(time.Minute)
	res, err = s.IngestPosition(ctx, "A", "fest", models.Position{Latitude: 48.14, Longitude: 11.55})
	require.NoError(t, err)
	assert.Equal(t, IngestApplied, res.Outcome)
	assert.Equal(t, clock.Now(), res.Session.LastPosition.RecordedAt)

	// stopped sessions ignore samples
	_, err = s.Stop(ctx, "A", "fest")
	require.NoError(t, err)
	res, err = s.IngestPosition(ctx, "A", "fest", at(48.15, 11.56, clock.Now()))
	require.NoError(t, err)
	assert.Equal(t, IngestNoSession, res.Outcome)
}

func TestExpireAndCollect(t *testing.T) {
	s, clock, p := newTestStore(t, Config{})
	ctx := context.Background()

	_, err := s.Start(ctx, "A", "fest", 30, groupG1)
	require.NoError(t, err)
	_, err = s.Start(ctx, "B", "fest", 120, groupG1)
	require.NoError(t, err)
	_, err = s.Start(ctx, "C", "fest", 120, groupG1)
	require.NoError(t, err)
	_, err = s.Stop(ctx, "C", "fest")
	require.NoError(t, err)

	clock.Advance(31 * time.Minute)
	expired := s.Expire(ctx, clock.Now())
	require.Len(t, expired, 1)
	assert.Equal(t, "A", expired[0].UserID)
	assert.Empty(t, s.Expire(ctx, clock.Now()))

	persisted, _ := p.get("A", "fest")
	assert.Equal(t, models.SessionStatusExpired, persisted.Status)

	// C stopped at t0, A expired at t0+30m
	assert.Equal(t, 1, s.Collect(ctx, clock.Now(), 10*time.Minute))
	_, ok := s.Get("C", "fest")
	assert.False(t, ok)
	_, ok = p.get("C", "fest")
	assert.False(t, ok)

	clock.Advance(10 * time.Minute)
	assert.Equal(t, 1, s.Collect(ctx, clock.Now(), 10*time.Minute))
	_, ok = s.Get("A", "fest")
	assert.False(t, ok)

	// the active session survives and its key can be reused after collection
	_, ok = s.Get("B", "fest")
	assert.True(t, ok)
	_, err = s.Start(ctx, "A", "fest", 30, groupG1)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestLiveSessionsAndPositionless(t *testing.T) {
	s, clock, _ := newTestStore(t, Config{})
	ctx := context.Background()

	for _, user := range []string{"C", "A", "B"} {
		_, err := s.Start(ctx, user, "fest", 120, groupG1)
		require.NoError(t, err)
	}
	_, err := s.Start(ctx, "D", "other-fest", 120, groupG1)
	require.NoError(t, err)

	for _, user := range []string{"C", "A"} {
		_, err := s.IngestPosition(ctx, user, "fest", at(48.1316, 11.5494, t0))
		require.NoError(t, err)
	}
	_, err = s.IngestPosition(ctx, "D", "other-fest", at(48.1316, 11.5494, t0))
	require.NoError(t, err)

	live := s.LiveSessions("fest", clock.Now())
	require.Len(t, live, 2)
	assert.Equal(t, "A", live[0].UserID)
	assert.Equal(t, "C", live[1].UserID)

	assert.Empty(t, s.Positionless(clock.Now().Add(30*time.Second), time.Minute))
	clock.Advance(time.Minute)
	positionless := s.Positionless(clock.Now(), time.Minute)
	require.Len(t, positionless, 1)
	assert.Equal(t, "B", positionless[0].UserID)
}

func TestGetReturnsIndependentCopy(t *testing.T) {
	s, _, _ := newTestStore(t, Config{})
	ctx := context.Background()

	_, err := s.Start(ctx, "A", "fest", 60, groupG1)
	require.NoError(t, err)
	_, err = s.IngestPosition(ctx, "A", "fest", at(48.1316, 11.5494, t0))
	require.NoError(t, err)

	got, _ := s.Get("A", "fest")
	got.LastPosition.Latitude = 0
	got.Scope.GroupIDs[0] = "hacked"

	again, _ := s.Get("A", "fest")
	assert.Equal(t, 48.1316, again.LastPosition.Latitude)
	assert.Equal(t, "G1", again.Scope.GroupIDs[0])
}

func TestRestore(t *testing.T) {
	p := newMemPersister()
	ctx := context.Background()
	require.NoError(t, p.SaveSession(ctx, models.LocationSession{
		ID: "s-1", UserID: "A", FestivalID: "fest", StartedAt: t0, DurationMinutes: 60,
		ExpiresAt: t0.Add(time.Hour), Scope: groupG1, Status: models.SessionStatusActive,
		LastPosition: &models.Position{Latitude: 48.1316, Longitude: 11.5494, RecordedAt: t0},
	}))
	require.NoError(t, p.SaveSession(ctx, models.LocationSession{
		ID: "s-2", UserID: "B", FestivalID: "fest", StartedAt: t0, DurationMinutes: 60,
		ExpiresAt: t0.Add(time.Hour), Scope: groupG1, Status: models.SessionStatusActive,
	}))

	s, clock, _ := newTestStore(t, Config{Persister: p})
	_, err := s.Start(ctx, "B", "fest", 30, models.VisibilityScope{ShareWithAll: true})
	require.NoError(t, err)

	n, err := s.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	live := s.LiveSessions("fest", clock.Now())
	require.Len(t, live, 1)
	assert.Equal(t, "s-1", live[0].ID)

	b, _ := s.Get("B", "fest")
	assert.True(t, b.Scope.ShareWithAll)
}

func TestRestore_LoadError(t *testing.T) {
	p := newMemPersister()
	p.fail = errors.New("redis down")
	s, _, _ := newTestStore(t, Config{Persister: p})

	_, err := s.Restore(context.Background())
	assert.Error(t, err)
}

func TestConcurrentWritersAndReaders(t *testing.T) {
	s, clock, _ := newTestStore(t, Config{Shards: 8})
	ctx := context.Background()

	const users = 40
	for i := 0; i < users; i++ {
		_, err := s.Start(ctx, fmt.Sprintf("user-%02d", i), "fest", 120, groupG1)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("user-%02d", i)
			for j := 0; j < 50; j++ {
				ts := t0.Add(time.Duration(j) * time.Second)
				_, err := s.IngestPosition(ctx, user, "fest", at(48.13+float64(j)*0.0001, 11.55, ts))
				assert.NoError(t, err)
			}
			if i%4 == 0 {
				_, err := s.Stop(ctx, user, "fest")
				assert.NoError(t, err)
			}
		}(i)
	}

	// readers observe monotonic timestamps per user
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			last := make(map[string]time.Time)
			for k := 0; k < 200; k++ {
				for _, session := range s.LiveSessions("fest", clock.Now()) {
					ts := session.LastPosition.RecordedAt
					assert.False(t, ts.Before(last[session.UserID]), "time went backwards for %s", session.UserID)
					last[session.UserID] = ts
				}
			}
		}()
	}
	wg.Wait()

	live := s.LiveSessions("fest", clock.Now())
	assert.Len(t, live, users-users/4)
	for _, session := range live {
		assert.Equal(t, t0.Add(49*time.Second), session.LastPosition.RecordedAt)
	}
}
