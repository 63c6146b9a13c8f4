package middleware

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

type MiddlewareChannel = *amqp.Channel

type MessageMiddlewareError int

const (
	MessageMiddlewareSuccess MessageMiddlewareError = iota
	MessageMiddlewareMessageError
	MessageMiddlewareDisconnectedError
	MessageMiddlewareCloseError
)

func (e MessageMiddlewareError) String() string {
	switch e {
	case MessageMiddlewareSuccess:
		return "success"
	case MessageMiddlewareMessageError:
		return "message error"
	case MessageMiddlewareDisconnectedError:
		return "disconnected"
	case MessageMiddlewareCloseError:
		return "close error"
	}
	return "unknown"
}

type MessageMiddlewareExchange struct {
	exchangeName string
	routeKey     string
	channel      MiddlewareChannel
}

// MessageMiddleware is the publishing side of a queue or exchange.
type MessageMiddleware interface {
	/*
	   Sends a message to the exchange/route key the middleware was created with.
	   Returns MessageMiddlewareDisconnectedError when the channel is gone and
	   MessageMiddlewareMessageError when the broker rejects the publish.
	*/
	Send(ctx context.Context, message []byte) MessageMiddlewareError

	/*
	   Disconnects from the exchange. Returns MessageMiddlewareCloseError when
	   the channel cannot be closed.
	*/
	Close() MessageMiddlewareError
}
