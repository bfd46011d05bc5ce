package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// message is the wire shape consumed by the mailer worker.
type message struct {
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
}

// AMQPDispatcher publishes notifications to a durable RabbitMQ queue.
// Delivery is best-effort: every failure is logged and swallowed so a lost
// message never fails the booking operation that produced it.
type AMQPDispatcher struct {
	conn  *amqp.Connection
	queue string
}

func NewAMQPDispatcher(conn *amqp.Connection, queue string) (*AMQPDispatcher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &AMQPDispatcher{conn: conn, queue: queue}, nil
}

func (d *AMQPDispatcher) Send(ctx context.Context, recipient, subject, body string) {
	ch, err := d.conn.Channel()
	if err != nil {
		slog.Warn("notification channel open failed", "error", err)
		return
	}
	defer func() { _ = ch.Close() }()

	payload, err := json.Marshal(message{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		SentAt:    time.Now().UTC(),
	})
	if err != nil {
		slog.Warn("notification marshal failed", "error", err)
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         payload,
	}
	if err := ch.PublishWithContext(ctx, "", d.queue, false, false, pub); err != nil {
		slog.Warn("notification publish failed", "recipient", recipient, "subject", subject, "error", err)
		return
	}
	slog.Debug("notification queued", "recipient", recipient, "subject", subject)
}
