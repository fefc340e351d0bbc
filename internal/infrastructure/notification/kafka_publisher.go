package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes notifications to one topic keyed by estimation id, so every event of
// an estimation lands on the same partition.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

var _ interfaces.INotificationPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka publisher requires at least one broker")
	}
	if topic == "" {
		return nil, errors.New("kafka publisher requires a topic")
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
		topic: topic,
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, n entities.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(n.EstimationID),
		Value: body,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "recipient_role", Value: []byte(n.RecipientRole)},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
