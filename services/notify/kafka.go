package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// Message is the payload published for downstream gateways.
type Message struct {
	Recipient string    `json:"recipient"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
}

type KafkaSender struct {
	writer *kafka.Writer
}

func NewKafkaSender(brokers []string, topic string) *KafkaSender {
	return &KafkaSender{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (k *KafkaSender) Send(ctx context.Context, recipient, body string) error {
	msg, err := buildKafkaMessage(recipient, body, time.Now())
	if err != nil {
		return err
	}
	return k.writer.WriteMessages(ctx, msg)
}

func (k *KafkaSender) Close() error {
	return k.writer.Close()
}

// Messages for one recipient share a key so they stay ordered.
func buildKafkaMessage(recipient, body string, at time.Time) (kafka.Message, error) {
	value, err := json.Marshal(Message{Recipient: recipient, Body: body, SentAt: at})
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(recipient),
		Value: value,
		Time:  at,
	}, nil
}
