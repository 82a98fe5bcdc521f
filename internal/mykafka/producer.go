package mykafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	deliveryTimeout = 5 * time.Second
	flushInterval   = 10 * time.Millisecond
	queueDepth      = 1024
	headerEventID   = "event_id"
)

var (
	ErrUnknownTopic = errors.New("kafka: unknown topic")
	ErrQueueFull    = errors.New("kafka: outbound queue full")
	ErrClosed       = errors.New("kafka: producer closed")
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type outbound struct {
	topic string
	msg   kafka.Message
}

// Producer hands events to a background sender. PublishEvent never waits
// on the broker; delivery errors are logged by the sender.
type Producer struct {
	writers map[string]messageWriter
	queue   chan outbound
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewProducer opens one writer per topic. Writers connect lazily, so an
// unreachable broker only shows up in the delivery log.
func NewProducer(address []string, topics []string) (*Producer, error) {
	if len(address) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	writers := make(map[string]messageWriter, len(topics))
	for _, topic := range topics {
		writers[topic] = &kafka.Writer{
			Addr:                   kafka.TCP(address...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			WriteTimeout:           deliveryTimeout,
			BatchSize:              1,
			BatchTimeout:           flushInterval,
			AllowAutoTopicCreation: true,
		}
	}
	return newProducer(writers, queueDepth), nil
}

func newProducer(writers map[string]messageWriter, depth int) *Producer {
	p := &Producer{writers: writers, queue: make(chan outbound, depth)}
	p.wg.Add(1)
	go p.send()
	return p
}

func (p *Producer) send() {
	defer p.wg.Done()
	for out := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		err := p.writers[out.topic].WriteMessages(ctx, out.msg)
		cancel()
		if err != nil {
			slog.Default().Warn("kafka_delivery_failed", "topic", out.topic, "key", string(out.msg.Key), "error", err)
		}
	}
}

// PublishEvent validates and enqueues event. It fails only for an unknown
// topic, an unencodable event or a full queue.
func (p *Producer) PublishEvent(_ context.Context, topic, key string, event interface{}) error {
	if _, ok := p.writers[topic]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafka.Header{
			{Key: headerEventID, Value: []byte(uuid.NewString())},
		},
		Time: time.Now().UTC(),
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	select {
	case p.queue <- outbound{topic: topic, msg: msg}:
		return nil
	default:
		return fmt.Errorf("%w: dropped %s event %s", ErrQueueFull, topic, key)
	}
}

// Close drains queued events and then closes every writer.
func (p *Producer) Close() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()
	p.wg.Wait()

	var errs []error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("kafka: close %s: %w", topic, err))
		}
	}
	return errors.Join(errs...)
}
