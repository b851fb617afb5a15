package sampler

import (
	"context"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/piresc/festshare/internal/pkg/models"
	"github.com/piresc/festshare/internal/utils"
	"github.com/piresc/festshare/services/location/store"
)

// Ingester receives the samples the sampler lets through
type Ingester interface {
	IngestPosition(ctx context.Context, userID, festivalID string, raw models.Position) (store.IngestResult, error)
}

// Result describes one offered sample. Session is set when the decision is SampleForwarded.
type Result struct {
	Decision models.SampleDecision
	Session  models.LocationSession
}

type forward struct {
	position models.Position // quantized
	at       time.Time
}

type shard struct {
	mu   sync.Mutex
	last map[string]forward
}

// Sampler throttles device samples: a sample is forwarded only when its quantized position
// moved or the previous forward is older than MaxStaleness.
type Sampler struct {
	ingester     Ingester
	maxStaleness time.Duration
	now          models.Clock
	shards       []*shard
}

// New creates a sampler in front of ingester
func New(ingester Ingester, maxStaleness time.Duration, shards int, now models.Clock) *Sampler {
	if shards <= 0 {
		shards = 32
	}
	if now == nil {
		now = models.Now
	}
	s := &Sampler{
		ingester:     ingester,
		maxStaleness: maxStaleness,
		now:          now,
		shards:       make([]*shard, shards),
	}
	for i := range s.shards {
		s.shards[i] = &shard{last: make(map[string]forward)}
	}
	return s
}

func key(userID, festivalID string) string {
	return festivalID + "\x00" + userID
}

func (s *Sampler) shardFor(k string) *shard {
	return s.shards[xxhash.Sum64String(k)%uint64(len(s.shards))]
}

// Offer applies the throttling rule to raw and forwards it when it passes
func (s *Sampler) Offer(ctx context.Context, userID, festivalID string, raw models.Position) (Result, error) {
	k := key(userID, festivalID)
	sh := s.shardFor(k)
	q := utils.Quantize(raw)
	now := s.now()

	sh.mu.Lock()
	prev, seen := sh.last[k]
	sh.mu.Unlock()

	if seen && utils.SamePosition(prev.position, q) && now.Sub(prev.at) < s.maxStaleness {
		return Result{Decision: models.SampleSkippedUnchanged}, nil
	}

	res, err := s.ingester.IngestPosition(ctx, userID, festivalID, raw)
	if err != nil {
		return Result{}, err
	}

	switch res.Outcome {
	case store.IngestStale:
		return Result{Decision: models.SampleStale}, nil
	case store.IngestNoSession:
		return Result{Decision: models.SampleNoSession}, nil
	}

	sh.mu.Lock()
	if cur, ok := sh.last[k]; !ok || !cur.at.After(now) {
		sh.last[k] = forward{position: q, at: now}
	}
	sh.mu.Unlock()

	return Result{Decision: models.SampleForwarded, Session: res.Session}, nil
}

// Reset forgets the last forward for the key so the next sample always goes through
func (s *Sampler) Reset(userID, festivalID string) {
	k := key(userID, festivalID)
	sh := s.shardFor(k)
	sh.mu.Lock()
	delete(sh.last, k)
	sh.mu.Unlock()
}
