package events

import (
	"context"
	"encoding/json"

	"github.com/dhp131/beaute-project-BE/models"
	"github.com/segmentio/kafka-go"
)

// OrderEventProducer publishes order status change events to Kafka.
type OrderEventProducer struct {
	writer *kafka.Writer
}

// NewOrderEventProducer builds a producer for the given brokers and topic.
func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &OrderEventProducer{writer: writer}
}

// PublishStatusChange emits one event keyed by order id so events for the
// same order stay ordered within a partition.
func (p *OrderEventProducer) PublishStatusChange(ctx context.Context, event models.OrderStatusEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	})
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
