package notify

import (
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer drains the notification queue and fans every message out to
// the registry. Messages published while no consumer runs sit in the
// queue; messages fanned out while no client is connected are lost
// (at-most-once, by contract).
type Consumer struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	queue    string
	registry *Registry
}

func NewConsumer(url, queue string, registry *Registry) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create a channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, false, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &Consumer{
		conn:     conn,
		channel:  ch,
		queue:    queue,
		registry: registry,
	}, nil
}

// Run blocks until the channel closes.
func (c *Consumer) Run() error {
	msgs, err := c.channel.Consume(c.queue, "", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume notifications: %w", err)
	}

	for msg := range msgs {
		c.registry.Broadcast(msg.Body)
	}

	log.Println("Notification consumer channel closed")
	return nil
}

func (c *Consumer) Close() {
	c.channel.Close()
	c.conn.Close()
}
