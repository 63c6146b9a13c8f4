package middleware

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	AMQP_PROTOCOL = "amqp"
)

type RabbitConnection struct {
	conn *amqp.Connection
}

func NewRabbitConnection(conf *RabbitConfig) (*RabbitConnection, error) {
	conn, err := amqp.Dial(conf.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s:%d: %w", conf.Host, conf.Port, err)
	}

	return &RabbitConnection{
		conn: conn,
	}, nil
}

func (rc *RabbitConnection) CreateNewChannel() (MiddlewareChannel, error) {
	ch, err := rc.conn.Channel()
	if err != nil {
		return nil, err
	}

	return ch, nil
}

func (rc *RabbitConnection) Close() error {
	if rc.conn.IsClosed() {
		return nil
	}
	return rc.conn.Close()
}
