package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/festshare/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testLogger() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewFromCore(core, "location-service"), logs
}

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	zl, _ := testLogger()
	gs := NewGracefulServer(echo.New(), zl, 8080, 0)

	assert.Equal(t, 30*time.Second, gs.shutdownTimeout)
}

func TestGracefulServer_RunStopsOnCancel(t *testing.T) {
	zl, logs := testLogger()
	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, zl, 0, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.NotZero(t, logs.FilterMessage("Server shutdown completed").Len())
}

func TestShutdownManager(t *testing.T) {
	zl, logs := testLogger()
	sm := NewShutdownManager(zl)

	var order []string
	sm.Register("postgres", func(context.Context) error {
		order = append(order, "postgres")
		return nil
	})
	sm.Register("nats", func(context.Context) error {
		order = append(order, "nats")
		return errors.New("drain timeout")
	})
	sm.Register("sweeper", func(context.Context) error {
		order = append(order, "sweeper")
		return nil
	})

	err := sm.Shutdown(context.Background())

	require.EqualError(t, err, "drain timeout")
	assert.Equal(t, []string{"sweeper", "nats", "postgres"}, order)
	assert.Equal(t, 1, logs.FilterMessage("Error during component shutdown").Len())
}
