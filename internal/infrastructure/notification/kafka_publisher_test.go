package notification

import (
	"context"
	"encoding/json"
	"testing"

	"estimaciones_obra/internal/domain/entities"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	msgs []kafka.Message
}

func (c *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	c.msgs = append(c.msgs, msgs...)
	return nil
}

func (c *captureWriter) Close() error { return nil }

func TestNewKafkaPublisher_Validates(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "topic")
	assert.Error(t, err)
	_, err = NewKafkaPublisher([]string{"localhost:9092"}, "")
	assert.Error(t, err)

	p, err := NewKafkaPublisher([]string{"localhost:9092"}, "estimation.notifications")
	require.NoError(t, err)
	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, kafka.RequireAll, w.RequiredAcks)
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &captureWriter{}
	p := &KafkaPublisher{writer: w, topic: "estimation.notifications"}

	n := entities.Notification{EstimationID: "est-1", Folio: "EST-1", Status: entities.StatusAuthLeader, RecipientRole: entities.RoleCompras}
	require.NoError(t, p.Publish(context.Background(), n))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "estimation.notifications", msg.Topic)
	assert.Equal(t, "est-1", string(msg.Key))

	var decoded entities.Notification
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, entities.RoleCompras, decoded.RecipientRole)
	assert.Equal(t, "compras", string(msg.Headers[0].Value))
}
