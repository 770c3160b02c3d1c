package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/example/stabiliq/internal/models"
)

const (
	EventPaymentInitiated       = "payment.initiated"
	EventPaymentUpdated         = "payment.updated"
	EventReconciliationRequired = "payment.reconciliation_required"
)

// PaymentEvent is the message published for every payment state change.
type PaymentEvent struct {
	Type                  string               `json:"type"`
	TransactionID         string               `json:"transactionId,omitempty"`
	MerchantTransactionID string               `json:"merchantTransactionId"`
	UserID                string               `json:"userId,omitempty"`
	Amount                float64              `json:"amount,omitempty"`
	Status                models.PaymentStatus `json:"status,omitempty"`
	Reason                string               `json:"reason,omitempty"`
	CheckoutURL           string               `json:"checkoutUrl,omitempty"`
	OccurredAt            time.Time            `json:"occurredAt"`
}

// KafkaEventPublisher writes events keyed by merchant transaction id so all
// events for one payment land on the same partition.
type KafkaEventPublisher struct {
	writer *kafka.Writer
	log    *zap.Logger
}

func NewKafkaEventPublisher(brokers []string, topic string, log *zap.Logger) *KafkaEventPublisher {
	log = log.Named("events")
	return &KafkaEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					log.Error("failed to deliver payment events", zap.Int("count", len(messages)), zap.Error(err))
				}
			},
		},
		log: log,
	}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, ev PaymentEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.MerchantTransactionID),
		Value: value,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(ev.Type)},
		},
	})
}

// Close flushes pending messages.
func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}

// NopEventPublisher drops events; used when no brokers are configured.
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, PaymentEvent) error { return nil }
