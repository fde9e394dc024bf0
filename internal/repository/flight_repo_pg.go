package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vizierair/booking/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, from, to string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	CreateBulk(ctx context.Context, flights []domain.Flight) (int, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, from_city, from_airport, from_airport_code, to_city, to_airport, to_airport_code, operated_by, flight_number, airplane_type, departure_time, arrival_time, flight_duration, number_of_transfers, economy_price, business_price, created_at, updated_at`

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFlights(rows)
}

func (r *PGFlightRepository) Search(ctx context.Context, from, to string) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights WHERE lower(from_city)=lower($1) AND lower(to_city)=lower($2) ORDER BY departure_time`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFlights(rows)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	f, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (from_city, from_airport, from_airport_code, to_city, to_airport, to_airport_code, operated_by, flight_number, airplane_type, departure_time, arrival_time, flight_duration, number_of_transfers, economy_price, business_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at`,
		flight.From, flight.FromAirport, flight.FromAirportCode, flight.To, flight.ToAirport, flight.ToAirportCode, flight.OperatedBy, flight.FlightNumber, flight.AirplaneType, flight.DepartureTime, flight.ArrivalTime, flight.FlightDuration, flight.NumberOfTransfers, flight.EconomyPrice, flight.BusinessPrice).
		Scan(&flight.ID, &flight.CreatedAt, &flight.UpdatedAt)
}

func (r *PGFlightRepository) CreateBulk(ctx context.Context, flights []domain.Flight) (int, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	inserted := 0
	for i := range flights {
		f := &flights[i]
		err := tx.QueryRow(ctx, `INSERT INTO flights (from_city, from_airport, from_airport_code, to_city, to_airport, to_airport_code, operated_by, flight_number, airplane_type, departure_time, arrival_time, flight_duration, number_of_transfers, economy_price, business_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING id, created_at, updated_at`,
			f.From, f.FromAirport, f.FromAirportCode, f.To, f.ToAirport, f.ToAirportCode, f.OperatedBy, f.FlightNumber, f.AirplaneType, f.DepartureTime, f.ArrivalTime, f.FlightDuration, f.NumberOfTransfers, f.EconomyPrice, f.BusinessPrice).
			Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

func collectFlights(rows pgx.Rows) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.From, &f.FromAirport, &f.FromAirportCode, &f.To, &f.ToAirport, &f.ToAirportCode, &f.OperatedBy, &f.FlightNumber, &f.AirplaneType, &f.DepartureTime, &f.ArrivalTime, &f.FlightDuration, &f.NumberOfTransfers, &f.EconomyPrice, &f.BusinessPrice, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
