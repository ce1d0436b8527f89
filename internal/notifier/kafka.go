// Package notifier provides notification.Notifier implementations: a Kafka
// publisher feeding the mail delivery service and a log-only fallback for
// local development.
package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
	"github.com/segmentio/kafka-go"

	"github.com/lojadev/checkout-service/internal/domain/notification"
)

var _ notification.Notifier = (*KafkaNotifier)(nil)

// EmailMessage is the payload published for each confirmation email. The mail
// delivery service consumes these from the topic and performs the actual send.
type EmailMessage struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sent_at"`
}

// KafkaNotifier publishes email payloads to a Kafka topic, keyed by recipient
// so messages for one address stay ordered within a partition.
type KafkaNotifier struct {
	writer *kafka.Writer
}

// NewKafkaNotifier creates a notifier producing to topic on the given brokers.
func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Send publishes the email payload. Delivery to the customer's inbox is the
// mail service's problem; a nil return only means the broker accepted it.
func (n *KafkaNotifier) Send(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(EmailMessage{
		To:      to,
		Subject: subject,
		Body:    body,
		SentAt:  time.Now().UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "marshal email payload")
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(to),
		Value: payload,
	})
	if err != nil {
		return errors.Wrap(err, "publish email")
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
