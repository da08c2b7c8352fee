package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	TopicListings      = "foodshare.listings"
	TopicNotifications = "foodshare.notifications"

	ListingCreated   = "listing.created"
	ListingUpdated   = "listing.updated"
	ListingReserved  = "listing.reserved"
	ListingCollected = "listing.collected"
	ListingRated     = "listing.rated"
	ListingExpired   = "listing.expired"
	ListingDeleted   = "listing.deleted"
)

type Event struct {
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id"`
	ActorID    string    `json:"actor_id,omitempty"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher serializes events and hands them to a Producer. Publish errors
// are logged and returned; callers treat them as non-fatal.
type Publisher struct {
	producer Producer
	logger   *zap.Logger
}

func NewPublisher(producer Producer, logger *zap.Logger) *Publisher {
	return &Publisher{producer: producer, logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, topic string, ev Event) error {
	if p == nil || p.producer == nil {
		return nil
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", ev.Type, err)
	}
	if err := p.producer.SendMessage(ctx, topic, []byte(ev.EntityID), value); err != nil {
		p.logger.Warn("failed to publish event",
			zap.String("type", ev.Type),
			zap.String("entity_id", ev.EntityID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
