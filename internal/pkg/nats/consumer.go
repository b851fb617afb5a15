package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/festshare/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from one NATS subject
type Consumer struct {
	subject      string
	queueGroup   string
	subscription *nats.Subscription
}

// NewConsumer subscribes handler to subject on the client's connection, joining queueGroup when set
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	msgHandler := Dispatch(subject, handler)

	var (
		sub *nats.Subscription
		err error
	)
	if queueGroup != "" {
		sub, err = client.QueueSubscribe(subject, queueGroup, msgHandler)
	} else {
		sub, err = client.Subscribe(subject, msgHandler)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	logger.Info("NATS consumer started",
		logger.String("subject", subject),
		logger.String("queue_group", queueGroup))

	return &Consumer{subject: subject, queueGroup: queueGroup, subscription: sub}, nil
}

// Dispatch adapts a MessageHandler to a nats.MsgHandler that logs handler failures
func Dispatch(subject string, handler MessageHandler) nats.MsgHandler {
	return func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.Err(err))
		}
	}
}

// Subject returns the subject this consumer listens on
func (c *Consumer) Subject() string {
	return c.subject
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() {
	if c.subscription != nil {
		if err := c.subscription.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.String("subject", c.subject), logger.Err(err))
		}
		c.subscription = nil
	}
}

// IsActive returns true if the consumer is actively consuming messages
func (c *Consumer) IsActive() bool {
	return c.subscription != nil && c.subscription.IsValid()
}
