package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewDefaultKafkaPublisher(brokers []string, topic string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		topic: topic,
	}
}

func (k *DefaultKafkaPublisher) publish(event OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderNo),
		Value: value,
		Time:  time.Now(),
		Topic: k.topic,
	})
}

func (k *DefaultKafkaPublisher) PublishOrderFinalized(order *domain.Order) error {
	return k.publish(OrderEvent{
		EventType:  EventOrderFinalized,
		OrderNo:    order.OrderNo,
		UserID:     order.UserID,
		Amount:     order.FinalAmount,
		PaidAt:     order.PaidAt,
		OccurredAt: time.Now(),
	})
}

func (k *DefaultKafkaPublisher) PublishReservationExpired(orderNo string) error {
	return k.publish(OrderEvent{
		EventType:  EventReservationExpired,
		OrderNo:    orderNo,
		OccurredAt: time.Now(),
	})
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
