package middleware

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitConfig struct {
	User     string
	Password string
	Host     string
	Port     int
}

func NewRabbitConfig(user, password, host string, port int) RabbitConfig {
	return RabbitConfig{
		User:     user,
		Password: password,
		Host:     host,
		Port:     port,
	}
}

// URL builds the AMQP connection string, escaping credentials.
func (c RabbitConfig) URL() string {
	uri := amqp.URI{
		Scheme:   AMQP_PROTOCOL,
		Host:     c.Host,
		Port:     c.Port,
		Username: c.User,
		Password: c.Password,
		Vhost:    "/",
	}
	return uri.String()
}
