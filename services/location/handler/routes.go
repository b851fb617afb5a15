package handler

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/festshare/internal/pkg/middleware"
	"github.com/piresc/festshare/internal/pkg/models"
	natspkg "github.com/piresc/festshare/internal/pkg/nats"
	"github.com/piresc/festshare/services/location"
	httpHandler "github.com/piresc/festshare/services/location/handler/http"
)

// Devices report at most a couple of samples per second while moving
const (
	positionRateLimit  = 120
	positionRatePeriod = time.Minute
)

// HTTPHandler combines all handlers for the location service
type HTTPHandler struct {
	locationHTTP *httpHandler.LocationHandler
	locationNATS *LocationHandler
	redisClient  *redis.Client
	cfg          *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(
	locationUC location.LocationUC,
	natsClient *natspkg.Client,
	redisClient *redis.Client,
	cfg *models.Config,
) *HTTPHandler {
	return &HTTPHandler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
		locationNATS: NewLocationHandler(locationUC, natsClient),
		redisClient:  redisClient,
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	festival := v1.Group("/festivals/:festival_id")
	festival.POST("/sharing", h.locationHTTP.StartSharing)
	festival.GET("/sharing", h.locationHTTP.GetSharingStatus)
	festival.DELETE("/sharing", h.locationHTTP.StopSharing)
	festival.POST("/positions", h.locationHTTP.RecordPosition,
		middleware.UserRateLimiter(positionRateLimit, positionRatePeriod, h.redisClient))
	festival.GET("/nearby", h.locationHTTP.GetNearby)
	festival.GET("/suggestion", h.locationHTTP.GetSuggestion)
	festival.POST("/suggestion/dismiss", h.locationHTTP.DismissSuggestion)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.APIKeys, "checkin-service"))
	internal.POST("/users/:id/checkins", h.locationHTTP.RecordCheckin)
}

// InitNATSConsumers initializes all NATS consumers
func (h *HTTPHandler) InitNATSConsumers(ctx context.Context) error {
	return h.locationNATS.InitNATSConsumers(ctx)
}

// StopNATSConsumers unsubscribes all NATS consumers
func (h *HTTPHandler) StopNATSConsumers() {
	h.locationNATS.Stop()
}
