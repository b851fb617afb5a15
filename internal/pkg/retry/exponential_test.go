package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/festshare/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRetrier(cfg Config) (*Retrier, *[]time.Duration) {
	core, _ := observer.New(zapcore.DebugLevel)
	r := New(cfg, logger.NewFromCore(core, "test"))
	var slept []time.Duration
	r.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return ctx.Err()
	}
	return r, &slept
}

func TestExecute_SucceedsAfterRetries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Jitter = false
	r, slept := newTestRetrier(cfg)

	calls := 0
	err := r.Execute(context.Background(), "load sessions", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *slept)
}

func TestExecute_GivesUp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRetries = 2
	r, _ := newTestRetrier(cfg)

	boom := errors.New("boom")
	calls := 0
	err := r.Execute(context.Background(), "ping", func(context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "ping failed after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestExecute_NonRetryable(t *testing.T) {
	cfg := DefaultConfig()
	fatal := errors.New("bad credentials")
	cfg.IsRetryable = func(err error) bool { return !errors.Is(err, fatal) }
	r, slept := newTestRetrier(cfg)

	calls := 0
	err := r.Execute(context.Background(), "connect", func(context.Context) error {
		calls++
		return fatal
	})

	assert.Equal(t, fatal, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, *slept)
}

func TestExecute_ContextCancelled(t *testing.T) {
	r, _ := newTestRetrier(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, "connect", func(context.Context) error {
		t.Fatal("must not be called")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDelay_Capped(t *testing.T) {
	r := New(Config{BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2}, nil)

	assert.Equal(t, time.Second, r.delay(0))
	assert.Equal(t, 2*time.Second, r.delay(1))
	assert.Equal(t, 3*time.Second, r.delay(5))
}
