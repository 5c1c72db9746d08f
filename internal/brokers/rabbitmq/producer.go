package rabbitmq

import (
	"context"
	"log"
	"time"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/configs"
	"github.com/streadway/amqp"
)

// publishChannel is the part of *amqp.Channel the producer relies on.
type publishChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

const (
	publishAttempts   = 3
	publishRetryDelay = time.Second
)

type RabbitProducer struct {
	conn        *amqp.Connection
	channel     publishChannel
	config      configs.RabbitMQConfig
	logProducer LogProducer
	retryDelay  time.Duration
	context     context.Context
	cancel      context.CancelFunc
}

func NewRabbitProducer(config configs.RabbitMQConfig, logproducer LogProducer) (*RabbitProducer, error) {
	conn, err := amqp.Dial(connectionString(config))
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Failed to connect to Rabbit-Producer: %v", err)
		return nil, err
	}
	channel, err := conn.Channel()
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Failed to open a channel to Rabbit-Producer: %v", err)
		conn.Close()
		return nil, err
	}
	err = channel.ExchangeDeclare(
		config.Exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Failed to declare an exchange to Rabbit-Producer: %v", err)
		channel.Close()
		conn.Close()
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	log.Println("[DEBUG] [PhotoLike-Service] Successful connect to Rabbit-Producer")
	return &RabbitProducer{conn: conn, channel: channel, config: config, logProducer: logproducer, retryDelay: publishRetryDelay, context: ctx, cancel: cancel}, nil
}
func (rp *RabbitProducer) Close() {
	rp.cancel()
	rp.channel.Close()
	if rp.conn != nil {
		rp.conn.Close()
	}
	log.Println("[DEBUG] [PhotoLike-Service] Successful close Rabbit-Producer")
}
