package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/fieldops/towtrack/internal/pkg/logger"
)

// Client represents a NATS client for publishing and subscribing to messages
type Client struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

// NewClient creates a new NATS client with JetStream enabled
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Client{conn: conn, js: js}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// Publish sends a message to the specified subject
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishJSON marshals the message and sends it to the specified subject
func (c *Client) PublishJSON(subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return c.Publish(subject, data)
}

// Subscribe subscribes to a subject and returns a subscription
func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// StreamConfig describes a JetStream stream
type StreamConfig struct {
	Name     string
	Subjects []string
	MaxAge   time.Duration
}

// EnsureStream creates the stream if it does not exist yet
func (c *Client) EnsureStream(ctx context.Context, config StreamConfig) error {
	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      config.Name,
		Subjects:  config.Subjects,
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.FileStorage,
		MaxAge:    config.MaxAge,
		Discard:   jetstream.DiscardOld,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", config.Name, err)
	}
	return nil
}

// JetStreamMessageHandler processes JetStream messages. A non-nil return
// NAKs the message for redelivery; nil ACKs it.
type JetStreamMessageHandler func(msg jetstream.Msg) error

// ConsumeMessages creates a durable consumer on the stream and starts
// consuming with the provided handler. The returned stop function halts
// consumption.
func (c *Client) ConsumeMessages(ctx context.Context, streamName, consumerName, filterSubject string, handler JetStreamMessageHandler) (func(), error) {
	consumer, err := c.js.CreateOrUpdateConsumer(ctx, streamName, jetstream.ConsumerConfig{
		Durable:       consumerName,
		FilterSubject: filterSubject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       30 * time.Second,
		MaxDeliver:    3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer %s: %w", consumerName, err)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			logger.Error("Error processing JetStream message",
				logger.String("subject", msg.Subject()),
				logger.Err(err))

			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}

		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	return consumeCtx.Stop, nil
}

// Close closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
