package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consumer reads ticket events off the notifications topic and hands decoded
// events to a handler. A payload that does not decode would never decode on a
// redelivery either, so it is logged and skipped rather than retried.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			MinBytes:          1,
			MaxBytes:          1e6,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume blocks until ctx is cancelled or the handler fails. Handler errors
// stop the loop; decode failures do not.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, TicketEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		if err := dispatchTicketMessage(ctx, msg, handler); err != nil {
			return err
		}
	}
}

func dispatchTicketMessage(ctx context.Context, msg kafka.Message, handler func(context.Context, TicketEvent) error) error {
	var event TicketEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Printf("WARNING: dropping undecodable ticket event at offset %d: %v", msg.Offset, err)
		return nil
	}
	return handler(ctx, event)
}
