package sampler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/festshare/internal/pkg/models"
	"github.com/piresc/festshare/services/location/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingIngester struct {
	calls   []models.Position
	outcome store.IngestOutcome
	err     error
}

func (r *recordingIngester) IngestPosition(_ context.Context, userID, festivalID string, raw models.Position) (store.IngestResult, error) {
	r.calls = append(r.calls, raw)
	if r.err != nil {
		return store.IngestResult{}, r.err
	}
	return store.IngestResult{
		Outcome: r.outcome,
		Session: models.LocationSession{UserID: userID, FestivalID: festivalID, LastPosition: &raw},
	}, nil
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

var t0 = time.Date(2026, 9, 20, 12, 0, 0, 0, time.UTC)

func newSampler() (*Sampler, *recordingIngester, *clock) {
	ing := &recordingIngester{outcome: store.IngestApplied}
	c := &clock{t: t0}
	return New(ing, 30*time.Second, 4, c.now), ing, c
}

func pos(lat, lng float64) models.Position {
	return models.Position{Latitude: lat, Longitude: lng, RecordedAt: t0}
}

func TestOffer_SkipsUnchangedQuantizedPosition(t *testing.T) {
	s, ing, c := newSampler()
	ctx := context.Background()

	res, err := s.Offer(ctx, "A", "fest", pos(48.13161, 11.54938))
	require.NoError(t, err)
	assert.Equal(t, models.SampleForwarded, res.Decision)
	assert.Equal(t, "A", res.Session.UserID)

	// same bucket after quantization
	c.t = c.t.Add(10 * time.Second)
	res, err = s.Offer(ctx, "A", "fest", pos(48.13158, 11.54944))
	require.NoError(t, err)
	assert.Equal(t, models.SampleSkippedUnchanged, res.Decision)

	// moved to another bucket
	res, err = s.Offer(ctx, "A", "fest", pos(48.1320, 11.5494))
	require.NoError(t, err)
	assert.Equal(t, models.SampleForwarded, res.Decision)

	assert.Len(t, ing.calls, 2)
}

func TestOffer_ForwardsWhenStale(t *testing.T) {
	s, ing, c := newSampler()
	ctx := context.Background()

	_, err := s.Offer(ctx, "A", "fest", pos(48.1316, 11.5494))
	require.NoError(t, err)

	c.t = c.t.Add(29 * time.Second)
	res, err := s.Offer(ctx, "A", "fest", pos(48.1316, 11.5494))
	require.NoError(t, err)
	assert.Equal(t, models.SampleSkippedUnchanged, res.Decision)

	c.t = c.t.Add(time.Second)
	res, err = s.Offer(ctx, "A", "fest", pos(48.1316, 11.5494))
	require.NoError(t, err)
	assert.Equal(t, models.SampleForwarded, res.Decision)
	assert.Len(t, ing.calls, 2)
}

func TestOffer_KeysAreIndependent(t *testing.T) {
	s, ing, _ := newSampler()
	ctx := context.Background()

	for _, user := range []string{"A", "B"} {
		res, err := s.Offer(ctx, user, "fest", pos(48.1316, 11.5494))
		require.NoError(t, err)
		assert.Equal(t, models.SampleForwarded, res.Decision)
	}
	res, err := s.Offer(ctx, "A", "other-fest", pos(48.1316, 11.5494))
	require.NoError(t, err)
	assert.Equal(t, models.SampleForwarded, res.Decision)
	assert.Len(t, ing.calls, 3)
}

func TestOffer_UnappliedSamplesAreNotRemembered(t *testing.T) {
	s, ing, _ := newSampler()
	ctx := context.Background()

	ing.outcome = store.IngestNoSession
	res, err := s.Offer(ctx, "A", "fest", pos(48.1316, 11.5494))
	require.NoError(t, err)
	assert.Equal(t, models.SampleNoSession, res.Decision)

	ing.outcome = store.IngestStale
	res, err = s.Offer(ctx, "A", "fest", pos(48.1316, 11.5494))
	require.NoError(t, err)
	assert.Equal(t, models.SampleStale, res.Decision)

	// the session starts, the same position goes straight through
	ing.outcome = store.IngestApplied
	res, err = s.Offer(ctx, "A", "fest", pos(48.1316, 11.5494))
	require.NoError(t, err)
	assert.Equal(t, models.SampleForwarded, res.Decision)
	assert.Len(t, ing.calls, 3)
}

func TestOffer_IngestError(t *testing.T) {
	s, ing, _ := newSampler()
	ing.err = errors.New("redis down")

	_, err := s.Offer(context.Background(), "A", "fest", pos(48.1316, 11.5494))
	assert.Error(t, err)

	// a failed forward is retried on the next sample
	ing.err = nil
	res, err := s.Offer(context.Background(), "A", "fest", pos(48.1316, 11.5494))
	require.NoError(t, err)
	assert.Equal(t, models.SampleForwarded, res.Decision)
}

func TestReset(t *testing.T) {
	s, ing, _ := newSampler()
	ctx := context.Background()

	_, err := s.Offer(ctx, "A", "fest", pos(48.1316, 11.5494))
	require.NoError(t, err)
	s.Reset("A", "fest")

	res, err := s.Offer(ctx, "A", "fest", pos(48.1316, 11.5494))
	require.NoError(t, err)
	assert.Equal(t, models.SampleForwarded, res.Decision)
	assert.Len(t, ing.calls, 2)
}
