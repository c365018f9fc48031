//go:build integration

package rabbitmq

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRabbitMQ(ctx context.Context, t *testing.T) string {
	t.Helper()
	if url := os.Getenv("TEST_RABBITMQ_URL"); url != "" {
		t.Logf("Using external RabbitMQ service: %s", url)
		return url
	}

	req := testcontainers.ContainerRequest{
		Image:        "rabbitmq:3-management",
		ExposedPorts: []string{"5672/tcp"},
		Env: map[string]string{
			"RABBITMQ_DEFAULT_USER": "guest",
			"RABBITMQ_DEFAULT_PASS": "guest",
		},
		WaitingFor: wait.ForListeningPort("5672/tcp").WithStartupTimeout(2 * time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate rabbitmq container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5672/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
}

func TestPublishConsume_Passcode(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := Connect(setupRabbitMQ(ctx, t), 5, time.Second)
	require.NoError(t, err)
	defer conn.Close()

	ch, err := SetupChannel(conn, NotificationsExchange, GetNotificationQueues())
	require.NoError(t, err)
	defer ch.Close()

	var (
		mu       sync.Mutex
		received []string
	)
	done := make(chan struct{})
	handler := func(_ context.Context, body []byte) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, string(body))
		if len(received) == 1 {
			close(done)
		}
		return nil
	}
	require.NoError(t, ConsumerMessage(ctx, ch, PasscodeQueue, handler, discardLogger()))

	pub := NewPublisher(ch, NotificationsExchange)
	require.NoError(t, pub.Publish(ctx, PasscodeRoutingKey, map[string]string{"code": "123456"}))

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("timeout waiting for passcode message")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{`{"code":"123456"}`}, received)
}
