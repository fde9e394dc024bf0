package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/vizierair/booking/internal/domain"
)

// TicketEvent carries everything the mailer worker needs to format an
// e-ticket without re-reading the database.
type TicketEvent struct {
	PNR           string             `json:"pnr"`
	Email         string             `json:"email"`
	From          string             `json:"from"`
	FromAirport   string             `json:"from_airport"`
	To            string             `json:"to"`
	ToAirport     string             `json:"to_airport"`
	OperatedBy    string             `json:"operated_by"`
	FlightNumber  string             `json:"flight_number"`
	DepartureTime time.Time          `json:"departure_time"`
	ArrivalTime   time.Time          `json:"arrival_time"`
	CabinClass    string             `json:"cabin_class"`
	Passengers    []domain.Passenger `json:"passengers"`
	TotalPrice    int64              `json:"total_price"`
	Currency      string             `json:"currency"`
	PaymentRef    string             `json:"payment_ref"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
			Async:        false,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
