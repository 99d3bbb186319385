package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublishAfterShutdownDropsMessage(t *testing.T) {
	p := NewProducer([]string{"127.0.0.1:1"}, "order.placed", 4)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	cancel()
	p.WaitClosed()

	assert.NotPanics(t, func() {
		p.Publish([]byte("1"), []byte(`{"order_id":1}`))
	})
	assert.Empty(t, p.inbox)
}

func TestPublishFullInboxDropsMessage(t *testing.T) {
	// Never started, so nothing consumes the inbox.
	p := NewProducer([]string{"127.0.0.1:1"}, "order.placed", 1)

	assert.NotPanics(t, func() {
		p.Publish([]byte("1"), []byte(`{"order_id":1}`))
		p.Publish([]byte("2"), []byte(`{"order_id":2}`))
	})
	assert.Len(t, p.inbox, 1)
}

func TestNilProducerIsSafe(t *testing.T) {
	var p *Producer

	assert.NotPanics(t, func() {
		p.Start(context.Background())
		p.Publish([]byte("1"), nil)
		p.WaitClosed()
	})
}

func TestEmptyBrokersDisableProducer(t *testing.T) {
	assert.Nil(t, NewProducer(nil, "order.placed", 4))
}

func TestShutdownUnblocksWaitClosed(t *testing.T) {
	p := NewProducer([]string{"127.0.0.1:1"}, "order.placed", 4)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		p.WaitClosed()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("producer did not shut down")
	}
}
