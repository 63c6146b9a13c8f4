package middleware

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EXCHANGE_TYPE_DIRECT      = "direct"
	EXCHANGE_NAME_DIRECT_TYPE = "sales-report-direct"

	EXCHANGE_DURABILITY = false
	QUEUE_DURABILITY    = false
)

type MiddlewareHandler struct {
	RabbitConn *RabbitConnection
	Channel    MiddlewareChannel
}

func NewMiddlewareHandler(rabbitConn *RabbitConnection) (*MiddlewareHandler, error) {
	ch, err := rabbitConn.CreateNewChannel()
	if err != nil {
		return nil, err
	}

	return &MiddlewareHandler{
		RabbitConn: rabbitConn,
		Channel:    ch,
	}, nil
}

func (mh *MiddlewareHandler) Close() error {
	if !mh.Channel.IsClosed() {
		if err := mh.Channel.Close(); err != nil {
			return err
		}
	}
	return mh.RabbitConn.Close()
}

func (mh *MiddlewareHandler) DeclareQueue(queueName string) (*amqp.Queue, error) {
	q, err := mh.Channel.QueueDeclare(
		queueName,        // name
		QUEUE_DURABILITY, // durable
		false,            // delete when unused
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)

	return &q, err
}

func (mh *MiddlewareHandler) DeclareExchange(exchangeName, exchangeType string) error {
	return mh.Channel.ExchangeDeclare(
		exchangeName,        // name
		exchangeType,        // type
		EXCHANGE_DURABILITY, // durable
		false,               // auto-deleted
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	)
}

func (mh *MiddlewareHandler) BindQueue(queueName, exchangeName, routingKey string) error {
	return mh.Channel.QueueBind(
		queueName,    // queue name
		routingKey,   // routing key
		exchangeName, // exchange
		false,
		nil,
	)
}

func (mh *MiddlewareHandler) ConsumeQueue(queueName string) (<-chan amqp.Delivery, error) {
	return mh.Channel.Consume(
		queueName, // queue
		"",        // consumer
		true,      // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
}

// CreateDirectExchange declares the direct exchange plus a queue named after
// the route key, so published messages are kept until someone consumes them.
func (mh *MiddlewareHandler) CreateDirectExchange(routeKey string) (*MessageMiddlewareExchange, error) {
	return mh.createExchange(EXCHANGE_NAME_DIRECT_TYPE, EXCHANGE_TYPE_DIRECT, routeKey)
}

func (mh *MiddlewareHandler) createExchange(exchangeName, exchangeType, routeKey string) (*MessageMiddlewareExchange, error) {
	err := mh.DeclareExchange(exchangeName, exchangeType)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = mh.DeclareQueue(routeKey)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = mh.BindQueue(routeKey, exchangeName, routeKey)
	if err != nil {
		return nil, fmt.Errorf("failed to bind queue to exchange: %w", err)
	}

	return NewMessageMiddlewareExchange(exchangeName, routeKey, mh.Channel), nil
}
