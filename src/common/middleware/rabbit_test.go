package middleware

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
)

var (
	rabbitContainer testcontainers.Container
	containerOnce   sync.Once
	containerHost   string
	containerPort   int
	containerErr    error
)

func setupRabbitContainer(t *testing.T) RabbitConfig {
	testcontainers.SkipIfProviderIsNotHealthy(t)

	containerOnce.Do(func() {
		ctx := context.Background()

		rabbitContainer, containerErr = rabbitmq.Run(ctx,
			"rabbitmq:4.1.4-management",
			rabbitmq.WithAdminUsername("user"),
			rabbitmq.WithAdminPassword("password"),
		)
		if containerErr != nil {
			return
		}

		containerHost, containerErr = rabbitContainer.Host(ctx)
		if containerErr != nil {
			return
		}

		mappedPort, err := rabbitContainer.MappedPort(ctx, "5672")
		if err != nil {
			containerErr = err
			return
		}
		containerPort = mappedPort.Int()
	})

	if containerErr != nil {
		t.Fatal(containerErr)
	}

	return NewRabbitConfig("user", "password", containerHost, containerPort)
}

func TestMain(m *testing.M) {
	// Setup is done in setupRabbitContainer via sync.Once
	code := m.Run()
	if rabbitContainer != nil {
		rabbitContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func TestRabbitConnection(t *testing.T) {
	conf := setupRabbitContainer(t)

	conn, err := NewRabbitConnection(&conf)
	require.NoError(t, err)
	defer conn.Close()

	handler, err := NewMiddlewareHandler(conn)
	require.NoError(t, err)

	queue, err := handler.DeclareQueue("test_queue")
	require.NoError(t, err)
	require.Equal(t, "test_queue", queue.Name)
}

func TestDirectExchangeDeliversToRouteKeyQueue(t *testing.T) {
	conf := setupRabbitContainer(t)

	conn, err := NewRabbitConnection(&conf)
	require.NoError(t, err)

	handler, err := NewMiddlewareHandler(conn)
	require.NoError(t, err)
	defer handler.Close()

	exchange, err := handler.CreateDirectExchange("reports.test")
	require.NoError(t, err)

	msg := NewMessage("total_sales", "sales-data.txt", []string{"26"}, false)
	msgBytes, err := msg.ToBytes()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.Equal(t, MessageMiddlewareSuccess, exchange.Send(ctx, msgBytes))

	deliveries, err := handler.ConsumeQueue("reports.test")
	require.NoError(t, err)

	select {
	case delivery := <-deliveries:
		require.Equal(t, CONTENT_TYPE_JSON, delivery.ContentType)
		received, err := NewMessageFromBytes(delivery.Body)
		require.NoError(t, err)
		require.Equal(t, msg, received)
	case <-ctx.Done():
		t.Fatal("timed out waiting for published message")
	}

	require.Equal(t, MessageMiddlewareSuccess, exchange.Close())
	require.Equal(t, MessageMiddlewareDisconnectedError, exchange.Send(ctx, msgBytes))
}

func TestConnectionRefused(t *testing.T) {
	conf := NewRabbitConfig("user", "password", "127.0.0.1", 1)
	_, err := NewRabbitConnection(&conf)
	require.Error(t, err)
}
