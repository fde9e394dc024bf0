package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vizierair/booking/config"
	"github.com/vizierair/booking/internal/email"
	"github.com/vizierair/booking/internal/kafka"
)

// The mailer worker: consumes ticket notifications and delivers e-ticket
// emails. It never feeds anything back into the booking flow, so a failed
// delivery is logged and the message is moved past.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender()

	err = consumer.Consume(ctx, func(ctx context.Context, event kafka.TicketEvent) error {
		if err := sender.Send(ctx, event); err != nil {
			log.Printf("send ticket email for PNR %s: %v", event.PNR, err)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("consumer stopped: %v", err)
	}
}
