package handler

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/fieldops/towtrack/internal/pkg/constants"
	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	natspkg "github.com/fieldops/towtrack/internal/pkg/nats"
)

// NATSHandler reacts to lifecycle events so open views update ahead of
// their next poll. Everything here is an optimization: the poll loop
// self-heals within one interval if an event is missed.
type NATSHandler struct {
	natsClient *natspkg.Client
	ws         *WebSocketHandler
	subs       []*nats.Subscription
}

// NewNATSHandler creates a new dispatch NATS handler
func NewNATSHandler(natsClient *natspkg.Client, ws *WebSocketHandler) *NATSHandler {
	return &NATSHandler{
		natsClient: natsClient,
		ws:         ws,
	}
}

// InitNATSConsumers subscribes to job.accepted
func (h *NATSHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectJobAccepted, h.handleJobAccepted)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)
	return nil
}

func (h *NATSHandler) handleJobAccepted(msg *nats.Msg) {
	var event models.JobEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Warn("Failed to unmarshal job accepted event", logger.Err(err))
		return
	}

	logger.Debug("Job accepted, kicking open views",
		logger.String("protocol", event.Protocol))
	h.ws.KickAll()
}

// Stop unsubscribes all NATS subscriptions
func (h *NATSHandler) Stop() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
}
