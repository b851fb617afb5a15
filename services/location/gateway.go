package location

import (
	"context"

	"github.com/piresc/festshare/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/festshare/services/location LocationGW

// LocationGW defines the outbound event operations
type LocationGW interface {
	// PublishSessionEvent publishes a session lifecycle event; the subject follows the status
	PublishSessionEvent(ctx context.Context, event models.SessionEvent) error
	// PublishPositionEvent publishes a quantized position update
	PublishPositionEvent(ctx context.Context, event models.PositionEvent) error
}
