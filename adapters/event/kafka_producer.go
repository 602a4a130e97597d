package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/khanhngo/campus-hub/internal/config"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

const TopicNotificationEvents = "notification.events"

// NotificationEventPayload is what the fan-out worker consumes: the
// notification id plus the already-resolved recipient list.
type NotificationEventPayload struct {
	NotificationID uuid.UUID   `json:"notification_id"`
	RecipientIDs   []uuid.UUID `json:"recipient_ids"`
}

type KafkaProducerClient struct {
	NotificationWriter *kafka.Writer
	logger             logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicNotificationEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka Producer successfully.")
	return &KafkaProducerClient{NotificationWriter: writer, logger: log}, nil
}

func (c *KafkaProducerClient) PublishNotification(ctx context.Context, payload NotificationEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(payload.NotificationID.String()),
		Value: value,
	}
	if err := c.NotificationWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish notification event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.NotificationWriter != nil {
		c.NotificationWriter.Close()
	}
	c.logger.Info("Closed Kafka Producer")
}
