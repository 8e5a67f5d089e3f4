package notify

import (
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher pushes free-text progress events onto the notification
// queue. Delivery to observers is best-effort; publishers never block
// on whether anyone is listening.
type Publisher interface {
	Publish(message string) error
}

type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
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

	return &AMQPPublisher{
		conn:    conn,
		channel: ch,
		queue:   queue,
	}, nil
}

func (p *AMQPPublisher) Publish(message string) error {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return err
	}

	err = p.channel.Publish("", p.queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) Close() {
	p.channel.Close()
	p.conn.Close()
}
