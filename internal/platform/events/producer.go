package events

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/avkrasnov/delivery-store/internal/platform/logger"
)

// Producer publishes order events asynchronously. Messages are queued on an
// inbox channel and written by a single goroutine; the HTTP path never blocks
// on the broker. A nil *Producer drops everything, so event publishing stays
// optional.
type Producer struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	closeCh chan struct{}
}

// NewProducer returns nil when no brokers are configured.
func NewProducer(brokers []string, topic string, buf int) *Producer {
	if len(brokers) == 0 {
		return nil
	}
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
	}
}

// Start runs the writer loop until ctx is cancelled, then drains whatever is
// still queued. The inbox is never closed: a Publish racing shutdown has its
// message dropped, not a panic.
func (p *Producer) Start(ctx context.Context) {
	if p == nil {
		return
	}
	go func() {
		defer close(p.closeCh)
		for {
			select {
			case <-ctx.Done():
				for {
					select {
					case m := <-p.inbox:
						p.write(m)
					default:
						_ = p.w.Close()
						return
					}
				}
			case m := <-p.inbox:
				p.write(m)
			}
		}
	}()
}

func (p *Producer) write(m kafka.Message) {
	if err := p.w.WriteMessages(context.Background(), m); err != nil {
		logger.Error("events: failed to publish message", err)
	}
}

// Publish enqueues a message. Drops it when the producer has shut down or the
// inbox is full rather than stalling a request.
func (p *Producer) Publish(key, value []byte) {
	if p == nil {
		return
	}
	select {
	case <-p.closeCh:
		logger.Warn("events: producer closed, dropping message")
		return
	default:
	}
	select {
	case p.inbox <- kafka.Message{Key: key, Value: value, Time: time.Now()}:
	default:
		logger.Warn("events: inbox full, dropping message")
	}
}

// WaitClosed blocks until the writer loop has flushed and exited.
func (p *Producer) WaitClosed() {
	if p == nil {
		return
	}
	<-p.closeCh
}
