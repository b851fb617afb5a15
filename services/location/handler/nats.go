package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/festshare/internal/pkg/constants"
	"github.com/piresc/festshare/internal/pkg/logger"
	"github.com/piresc/festshare/internal/pkg/models"
	natspkg "github.com/piresc/festshare/internal/pkg/nats"
	"github.com/piresc/festshare/internal/pkg/retry"
	"github.com/piresc/festshare/services/location"
)

// LocationHandler consumes device samples and check-in events from NATS
type LocationHandler struct {
	locationUC location.LocationUC
	natsClient *natspkg.Client
	retrier    *retry.Retrier
	consumers  []*natspkg.Consumer
}

// NewLocationHandler creates a new location NATS handler
func NewLocationHandler(locationUC location.LocationUC, client *natspkg.Client) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		natsClient: client,
		retrier:    retry.NewWithDefaults(nil),
	}
}

// InitNATSConsumers subscribes the location service's queue group to its inbound subjects
func (h *LocationHandler) InitNATSConsumers(ctx context.Context) error {
	subjects := map[string]natspkg.MessageHandler{
		constants.SubjectLocationSample: h.handleLocationSample,
		constants.SubjectCheckinCreated: h.handleCheckinCreated,
	}

	for subject, handler := range subjects {
		subject, handler := subject, handler
		err := h.retrier.Execute(ctx, "subscribe "+subject, func(context.Context) error {
			consumer, err := natspkg.NewConsumer(h.natsClient, subject, constants.QueueLocationService, handler)
			if err != nil {
				return err
			}
			h.consumers = append(h.consumers, consumer)
			return nil
		})
		if err != nil {
			h.Stop()
			return fmt.Errorf("failed to start %s consumer: %w", subject, err)
		}
	}
	return nil
}

// Stop unsubscribes every consumer
func (h *LocationHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
	h.consumers = nil
}

// handleLocationSample feeds a device sample into the sampler
func (h *LocationHandler) handleLocationSample(msg []byte) error {
	var sample models.LocationSample
	if err := json.Unmarshal(msg, &sample); err != nil {
		return fmt.Errorf("failed to unmarshal location sample: %w", err)
	}
	if sample.UserID == "" || sample.FestivalID == "" {
		return fmt.Errorf("location sample without user or festival")
	}

	ctx := context.Background()
	decision, err := h.locationUC.IngestSample(ctx, sample.UserID, sample.FestivalID, sample.Position())
	if err != nil {
		return fmt.Errorf("failed to ingest sample for %s: %w", sample.UserID, err)
	}

	logger.Debug("Location sample processed",
		logger.String("user_id", sample.UserID),
		logger.String("festival_id", sample.FestivalID),
		logger.String("decision", string(decision)))
	return nil
}

// handleCheckinCreated clears a dismissed suggestion once the user checked in at that tent
func (h *LocationHandler) handleCheckinCreated(msg []byte) error {
	var event models.CheckinEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal check-in event: %w", err)
	}
	if event.UserID == "" {
		return fmt.Errorf("check-in event without user")
	}

	if err := h.locationUC.ClearSuggestion(context.Background(), event.UserID, event.TentID); err != nil {
		return fmt.Errorf("failed to clear suggestion for %s: %w", event.UserID, err)
	}
	return nil
}
