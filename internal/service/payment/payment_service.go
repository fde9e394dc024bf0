package payment

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/vizierair/booking/internal/card"
	"github.com/vizierair/booking/internal/domain"
	"github.com/vizierair/booking/internal/kafka"
	"github.com/vizierair/booking/internal/repository"
)

type PaymentUseCase interface {
	Pay(ctx context.Context, userID int64, input PayInput) (*domain.Receipt, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type PaymentService struct {
	bookings           repository.BookingRepository
	payments           repository.PaymentRepository
	flights            repository.FlightRepository
	producer           Producer
	notificationsTopic string
}

type PayInput struct {
	BookingID  int64  `json:"bookingId"`
	CardNumber string `json:"cardNumber"`
	ExpMonth   int    `json:"expMonth"`
	ExpYear    int    `json:"expYear"`
	CVV        string `json:"cvv"`
}

const publishTimeout = 5 * time.Second

func NewPaymentService(
	bookings repository.BookingRepository,
	payments repository.PaymentRepository,
	flights repository.FlightRepository,
	producer Producer,
	notificationsTopic string,
) *PaymentService {
	return &PaymentService{
		bookings:           bookings,
		payments:           payments,
		flights:            flights,
		producer:           producer,
		notificationsTopic: notificationsTopic,
	}
}

// Pay settles a pending booking: card checks, ownership check, then one
// transactional payment-insert + confirm. Everything before the settlement
// call has no persisted side effects on failure.
func (s *PaymentService) Pay(ctx context.Context, userID int64, input PayInput) (*domain.Receipt, error) {
	if !card.ValidNumber(input.CardNumber) {
		return nil, domain.ErrInvalidCard
	}
	if !card.ValidExpiry(input.ExpMonth, input.ExpYear) {
		return nil, domain.ErrCardExpired
	}
	if !card.ValidCVV(input.CVV) {
		return nil, domain.ErrInvalidCard
	}

	booking, err := s.bookings.GetByOwnerAndID(ctx, userID, input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingStatusConfirmed {
		return nil, domain.ErrAlreadyConfirmed
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPayable
	}

	payment := &domain.Payment{
		BookingID: booking.ID,
		UserID:    userID,
		Amount:    booking.TotalPrice,
		Currency:  booking.Currency,
		CardLast4: card.Last4(input.CardNumber),
		ExpMonth:  input.ExpMonth,
		ExpYear:   input.ExpYear,
		Success:   true,
		Reference: uuid.NewString(),
	}

	confirmed, err := s.payments.Settle(ctx, payment)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, confirmed, payment)

	return &domain.Receipt{
		BookingID: confirmed.ID,
		PaymentID: payment.ID,
		PNR:       confirmed.PNR,
		Success:   true,
		Message:   "Payment successful. Ticket is being sent to your email.",
	}, nil
}

// notify hands the e-ticket to the notification pipeline. The payment is
// already durable here, so any failure is logged and swallowed.
func (s *PaymentService) notify(ctx context.Context, booking *domain.Booking, payment *domain.Payment) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}
	if booking.FlightID == nil || booking.Email == "" {
		return
	}

	// Detach from the request context so a client disconnect cannot cancel
	// the publish mid-flight.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	flight, err := s.flights.GetByID(pubCtx, *booking.FlightID)
	if err != nil {
		log.Printf("WARNING: ticket notification for booking %d skipped, flight lookup failed: %v", booking.ID, err)
		return
	}

	event := kafka.TicketEvent{
		PNR:           booking.PNR,
		Email:         booking.Email,
		From:          flight.From,
		FromAirport:   flight.FromAirportCode,
		To:            flight.To,
		ToAirport:     flight.ToAirportCode,
		OperatedBy:    flight.OperatedBy,
		FlightNumber:  flight.FlightNumber,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		CabinClass:    string(booking.CabinClass),
		Passengers:    booking.Passengers,
		TotalPrice:    booking.TotalPrice,
		Currency:      booking.Currency,
		PaymentRef:    payment.Reference,
	}
	if err := s.producer.Publish(pubCtx, s.notificationsTopic, booking.PNR, event); err != nil {
		log.Printf("WARNING: failed to publish ticket notification for booking %d: %v", booking.ID, err)
	}
}

var _ PaymentUseCase = (*PaymentService)(nil)
