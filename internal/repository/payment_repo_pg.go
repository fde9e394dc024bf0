package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vizierair/booking/internal/domain"
)

type PaymentRepository interface {
	// Settle inserts the payment and confirms its booking in one
	// transaction, so a crash cannot leave a payment row behind a still
	// pending booking. The unique index on payments.booking_id rejects a
	// concurrent duplicate as domain.ErrDuplicatePayment; the status guard
	// on the booking update rejects pay-after-cancel and pay-after-confirm.
	Settle(ctx context.Context, payment *domain.Payment) (*domain.Booking, error)
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error)
}

type PGPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &PGPaymentRepository{db: db}
}

const paymentColumns = `id, booking_id, user_id, amount, currency, card_last4, exp_month, exp_year, success, reference, created_at, updated_at`

func (r *PGPaymentRepository) Settle(ctx context.Context, payment *domain.Payment) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `INSERT INTO payments (booking_id, user_id, amount, currency, card_last4, exp_month, exp_year, success, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		payment.BookingID, payment.UserID, payment.Amount, payment.Currency, payment.CardLast4, payment.ExpMonth, payment.ExpYear, payment.Success, payment.Reference).
		Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		if uniqueViolation(err, "payments_booking_id_key") {
			return nil, domain.ErrDuplicatePayment
		}
		return nil, err
	}

	row := tx.QueryRow(ctx, `UPDATE bookings SET status=$1, payment_id=$2, updated_at=now()
		WHERE id=$3 AND status=$4
		RETURNING `+bookingColumns,
		domain.BookingStatusConfirmed, payment.ID, payment.BookingID, domain.BookingStatusPending)
	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Raced with a concurrent status change; classify by the
			// current row before rolling the payment back.
			return nil, r.classifyGuardFailure(ctx, tx, payment.BookingID)
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *PGPaymentRepository) classifyGuardFailure(ctx context.Context, tx pgx.Tx, bookingID int64) error {
	var status domain.BookingStatus
	err := tx.QueryRow(ctx, `SELECT status FROM bookings WHERE id=$1`, bookingID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return err
	}
	if status == domain.BookingStatusConfirmed {
		return domain.ErrAlreadyConfirmed
	}
	return domain.ErrBookingNotPayable
}

func (r *PGPaymentRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE booking_id=$1`, bookingID)
	var p domain.Payment
	if err := row.Scan(&p.ID, &p.BookingID, &p.UserID, &p.Amount, &p.Currency, &p.CardLast4, &p.ExpMonth, &p.ExpYear, &p.Success, &p.Reference, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &p, nil
}

var _ PaymentRepository = (*PGPaymentRepository)(nil)
