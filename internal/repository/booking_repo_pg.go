package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vizierair/booking/internal/domain"
)

// ErrPNRTaken signals a PNR collision on insert; callers regenerate and retry.
var ErrPNRTaken = errors.New("pnr already taken")

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByOwnerAndID(ctx context.Context, userID, id int64) (*domain.Booking, error)
	ListByOwner(ctx context.Context, userID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, user_id, flight_id, cabin_class, passengers, price_per_passenger, total_price, status, payment_id, pnr, email, currency, created_at, updated_at`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	passengers, err := json.Marshal(booking.Passengers)
	if err != nil {
		return fmt.Errorf("marshal passengers: %w", err)
	}

	booking.Status = domain.BookingStatusPending
	err = r.db.QueryRow(ctx, `INSERT INTO bookings (user_id, flight_id, cabin_class, passengers, price_per_passenger, total_price, status, pnr, email, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		booking.UserID, booking.FlightID, booking.CabinClass, passengers, booking.PricePerPassenger, booking.TotalPrice, booking.Status, booking.PNR, booking.Email, booking.Currency).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if uniqueViolation(err, "bookings_pnr_key") {
			return ErrPNRTaken
		}
		return err
	}
	return nil
}

func (r *PGBookingRepository) GetByOwnerAndID(ctx context.Context, userID, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1 AND user_id=$2`, id, userID)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) ListByOwner(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id=$1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+bookingColumns, status, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	var passengers []byte
	if err := row.Scan(&b.ID, &b.UserID, &b.FlightID, &b.CabinClass, &passengers, &b.PricePerPassenger, &b.TotalPrice, &b.Status, &b.PaymentID, &b.PNR, &b.Email, &b.Currency, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(passengers, &b.Passengers); err != nil {
		return nil, fmt.Errorf("unmarshal passengers: %w", err)
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
