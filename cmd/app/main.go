package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vizierair/booking/config"
	"github.com/vizierair/booking/internal/bootstrap"
	"github.com/vizierair/booking/internal/cache"
	"github.com/vizierair/booking/internal/kafka"
	"github.com/vizierair/booking/internal/repository"
	"github.com/vizierair/booking/internal/service/booking"
	"github.com/vizierair/booking/internal/service/flights"
	"github.com/vizierair/booking/internal/service/payment"
)

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

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	flightService := flights.NewFlightService(flightRepo, redisCache)
	bookingService := booking.NewBookingService(bookingRepo, flightRepo, userRepo, cfg.Booking.Currency)
	paymentService := payment.NewPaymentService(bookingRepo, paymentRepo, flightRepo, producer, cfg.Kafka.NotificationsTopic)

	handlers := bootstrap.NewHandlers(bookingService, paymentService, flightService, userRepo)

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
