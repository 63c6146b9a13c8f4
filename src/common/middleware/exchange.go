package middleware

import (
	"context"

	"sales-report/src/common/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const CONTENT_TYPE_JSON = "application/json"

var middleware_logger = logger.GetLoggerWithPrefix("[EXCHANGE]")

func NewMessageMiddlewareExchange(exchangeName string, routeKey string, channel MiddlewareChannel) *MessageMiddlewareExchange {
	return &MessageMiddlewareExchange{
		exchangeName: exchangeName,
		routeKey:     routeKey,
		channel:      channel,
	}
}

func (m *MessageMiddlewareExchange) Send(ctx context.Context, message []byte) MessageMiddlewareError {
	if m.channel == nil || m.channel.IsClosed() {
		return MessageMiddlewareDisconnectedError
	}

	err := m.channel.PublishWithContext(ctx,
		m.exchangeName, // exchange
		m.routeKey,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType: CONTENT_TYPE_JSON,
			Body:        message,
		},
	)

	if err != nil {
		middleware_logger.Errorf("error in sending to %s/%s: %v", m.exchangeName, m.routeKey, err)
		return MessageMiddlewareMessageError
	}
	return MessageMiddlewareSuccess
}

func (m *MessageMiddlewareExchange) Close() MessageMiddlewareError {
	if m.channel == nil || m.channel.IsClosed() {
		return MessageMiddlewareSuccess
	}
	if err := m.channel.Close(); err != nil {
		return MessageMiddlewareCloseError
	}

	return MessageMiddlewareSuccess
}
