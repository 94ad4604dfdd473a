package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/webshop-oms/order-service/internal/config"
	"github.com/webshop-oms/order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// Producer publishes status-change events for downstream consumers
// (notifications, analytics). Keyed by order id so per-order ordering holds.
type Producer struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewProducer(logger *slog.Logger, cfg config.Kafka) *Producer {
	return &Producer{
		logger: logger.With(slog.String("producer", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.EventsTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Producer) PublishStatusChanged(ctx context.Context, e entities.StatusChangedEvent) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish status change: %w", err)
	}

	p.logger.Debug("status change published",
		slog.String("order_id", e.OrderID),
		slog.String("from", string(e.From)),
		slog.String("to", string(e.To)),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
