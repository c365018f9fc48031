package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcknowledger struct {
	mu      sync.Mutex
	acked   []uint64
	nacked  []uint64
	requeue []bool
}

func (f *fakeAcknowledger) Ack(tag uint64, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, tag)
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nacked = append(f.nacked, tag)
	f.requeue = append(f.requeue, requeue)
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConsume_AckNack(t *testing.T) {
	ack := &fakeAcknowledger{}
	deliveries := make(chan amqp.Delivery, 3)
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte("ok")}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: []byte("retry")}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 3, Body: []byte("drop")}
	close(deliveries)

	handler := func(_ context.Context, body []byte) error {
		switch string(body) {
		case "retry":
			return errors.New("smtp unavailable")
		case "drop":
			return fmt.Errorf("decode: %w", ErrDrop)
		}
		return nil
	}

	consume(context.Background(), deliveries, handler, discardLogger())

	ack.mu.Lock()
	defer ack.mu.Unlock()
	assert.Equal(t, []uint64{1}, ack.acked)
	require.Len(t, ack.nacked, 2)

	got := map[uint64]bool{}
	for i, tag := range ack.nacked {
		got[tag] = ack.requeue[i]
	}
	assert.True(t, got[2], "transient error must be requeued")
	assert.False(t, got[3], "dropped message must not be requeued")
}

func TestConsume_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	deliveries := make(chan amqp.Delivery)

	done := make(chan struct{})
	go func() {
		consume(ctx, deliveries, func(context.Context, []byte) error { return nil }, discardLogger())
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consume did not return after context cancel")
	}
}
