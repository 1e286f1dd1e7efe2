package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

const Topic = "order-confirmed"

type OrderItem struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// OrderConfirmed is published after a checkout persists its order snapshot.
type OrderConfirmed struct {
	OrderID       string      `json:"order_id"`
	UserID        string      `json:"user_id"`
	CustomerEmail string      `json:"customer_email"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Discount      float64     `json:"discount"`
	TotalAmount   float64     `json:"total_amount"`
	Coupon        string      `json:"coupon,omitempty"`
	Currency      string      `json:"currency"`
}

type Publisher interface {
	PublishOrderConfirmed(ctx context.Context, event *OrderConfirmed) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) PublishOrderConfirmed(ctx context.Context, event *OrderConfirmed) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID), // order_id for ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order_confirmed")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher backs tests and broker-less deployments.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderConfirmed(context.Context, *OrderConfirmed) error { return nil }
func (NoopPublisher) Close() error                                                 { return nil }
