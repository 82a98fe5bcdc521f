package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Skotchmaster/storefront/internal/logging"
)

const (
	TopicUsers    = "user_events"
	TopicProducts = "product_events"
	TopicCarts    = "cart_events"
	TopicOrders   = "order_events"
	TopicReviews  = "review_events"
)

// Topics lists every topic a service may publish to.
func Topics() []string {
	return []string{TopicUsers, TopicProducts, TopicCarts, TopicOrders, TopicReviews}
}

type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event interface{}) error
}

type NopPublisher struct{}

func (NopPublisher) PublishEvent(context.Context, string, string, interface{}) error { return nil }

type Event struct {
	Type       string    `json:"type"`
	Entity     string    `json:"entity"`
	ID         uint      `json:"id"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// emitter publishes lifecycle events for one entity. Failures are logged and
// never reach the caller.
type emitter struct {
	events Publisher
	topic  string
	entity string
}

func (e emitter) emit(ctx context.Context, action string, id uint, data any) {
	if e.events == nil {
		return
	}
	ev := Event{
		Type:       e.entity + "_" + action,
		Entity:     e.entity,
		ID:         id,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
	if err := e.events.PublishEvent(ctx, e.topic, strconv.FormatUint(uint64(id), 10), ev); err != nil {
		logging.FromContext(ctx).Warn("publish_error", "topic", e.topic, "event", ev.Type, "id", id, "error", err)
	}
}
