package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/festshare/internal/pkg/constants"
	"github.com/piresc/festshare/internal/pkg/logger"
	"github.com/piresc/festshare/internal/pkg/models"
	natspkg "github.com/piresc/festshare/internal/pkg/nats"
	"github.com/piresc/festshare/services/location"
)

type locationGW struct {
	publisher natspkg.Publisher
}

// NewLocationGW creates a new location gateway
func NewLocationGW(publisher natspkg.Publisher) location.LocationGW {
	return &locationGW{
		publisher: publisher,
	}
}

func sessionSubject(status models.SessionStatus) (string, error) {
	switch status {
	case models.SessionStatusActive:
		return constants.SubjectSessionStarted, nil
	case models.SessionStatusStopped:
		return constants.SubjectSessionStopped, nil
	case models.SessionStatusExpired:
		return constants.SubjectSessionExpired, nil
	}
	return "", fmt.Errorf("no subject for session status %q", status)
}

// PublishSessionEvent publishes a session lifecycle event on the subject matching its status
func (g *locationGW) PublishSessionEvent(ctx context.Context, event models.SessionEvent) error {
	subject, err := sessionSubject(event.Status)
	if err != nil {
		return err
	}
	if err := g.publisher.PublishJSON(subject, event); err != nil {
		return fmt.Errorf("failed to publish session event: %w", err)
	}

	logger.DebugCtx(ctx, "Published session event",
		logger.String("subject", subject),
		logger.String("session_id", event.SessionID))
	return nil
}

// PublishPositionEvent publishes a quantized position update
func (g *locationGW) PublishPositionEvent(ctx context.Context, event models.PositionEvent) error {
	if err := g.publisher.PublishJSON(constants.SubjectPositionUpdated, event); err != nil {
		return fmt.Errorf("failed to publish position event: %w", err)
	}
	return nil
}
