package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vizierair/booking/internal/domain"
	"github.com/vizierair/booking/internal/pnr"
	"github.com/vizierair/booking/internal/repository"
)

type BookingUseCase interface {
	Create(ctx context.Context, userID int64, input CreateInput) (*domain.Booking, error)
	GetByID(ctx context.Context, userID, bookingID int64) (*domain.Booking, error)
	ListMine(ctx context.Context, userID int64) ([]domain.Booking, error)
	Cancel(ctx context.Context, userID, bookingID int64) (*domain.Booking, error)
}

type BookingService struct {
	bookings repository.BookingRepository
	flights  repository.FlightRepository
	users    repository.UserRepository
	currency string
}

type CreateInput struct {
	FlightID   int64              `json:"flightId"`
	CabinClass domain.CabinClass  `json:"cabinClass"`
	Passengers []domain.Passenger `json:"passengers"`
}

// pnrAttempts bounds the insert-retry loop on PNR collision. With a 24^6
// code space, hitting it twice in a row already means something is wrong.
const pnrAttempts = 3

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	users repository.UserRepository,
	currency string,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		flights:  flights,
		users:    users,
		currency: currency,
	}
}

// Create reserves a pending booking: snapshots the per-class price from the
// catalog and the caller's current email. No payment, no notification.
func (s *BookingService) Create(ctx context.Context, userID int64, input CreateInput) (*domain.Booking, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pricePerPassenger := flight.PriceFor(input.CabinClass)
	booking := &domain.Booking{
		UserID:            &userID,
		FlightID:          &flight.ID,
		CabinClass:        input.CabinClass,
		Passengers:        input.Passengers,
		PricePerPassenger: pricePerPassenger,
		TotalPrice:        pricePerPassenger * int64(len(input.Passengers)),
		Email:             user.Email,
		Currency:          s.currency,
	}

	for attempt := 0; attempt < pnrAttempts; attempt++ {
		code, err := pnr.New()
		if err != nil {
			return nil, err
		}
		booking.PNR = code

		err = s.bookings.Create(ctx, booking)
		if errors.Is(err, repository.ErrPNRTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return booking, nil
	}
	return nil, fmt.Errorf("could not allocate a unique pnr after %d attempts", pnrAttempts)
}

// GetByID is owner scoped: a booking that exists but belongs to someone else
// is reported as not found, so ids cannot be probed.
func (s *BookingService) GetByID(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	return s.bookings.GetByOwnerAndID(ctx, userID, bookingID)
}

func (s *BookingService) ListMine(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByOwner(ctx, userID)
}

// Cancel moves a pending or confirmed booking to cancelled. An existing
// payment record stays untouched; refund reconciliation is a separate
// concern this service does not attempt.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	current, err := s.bookings.GetByOwnerAndID(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}
	return s.bookings.UpdateStatus(ctx, current.ID, domain.BookingStatusCancelled)
}

func validateCreateInput(input CreateInput) error {
	if input.CabinClass != domain.CabinClassEconomy && input.CabinClass != domain.CabinClassBusiness {
		return domain.NewValidationError("cabin class must be 'economy' or 'business'")
	}
	if len(input.Passengers) == 0 {
		return domain.NewValidationError("at least one passenger is required")
	}
	for _, p := range input.Passengers {
		if strings.TrimSpace(p.FirstName) == "" {
			return domain.NewValidationError("passenger first name is required")
		}
		if strings.TrimSpace(p.LastName) == "" {
			return domain.NewValidationError("passenger last name is required")
		}
		if p.Gender != domain.GenderMale && p.Gender != domain.GenderFemale {
			return domain.NewValidationError("passenger gender must be 'male' or 'female'")
		}
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
