package flights

import (
	"context"
	"strings"
	"time"

	"github.com/vizierair/booking/internal/domain"
	"github.com/vizierair/booking/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, from, to string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
	CreateBulk(ctx context.Context, inputs []CreateFlightInput) (int, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

type CreateFlightInput struct {
	From              string    `json:"from"`
	FromAirport       string    `json:"fromAirport"`
	FromAirportCode   string    `json:"fromAirportAbbreviation"`
	To                string    `json:"to"`
	ToAirport         string    `json:"toAirport"`
	ToAirportCode     string    `json:"toAirportAbbreviation"`
	OperatedBy        string    `json:"operatedBy"`
	FlightNumber      string    `json:"flightNumber"`
	AirplaneType      string    `json:"airplaneType"`
	DepartureTime     time.Time `json:"departureTime"`
	ArrivalTime       time.Time `json:"arrivalTime"`
	FlightDuration    string    `json:"flightDuration"`
	NumberOfTransfers int       `json:"numberOfTransfers"`
	EconomyPrice      int64     `json:"economyPrice"`
	BusinessPrice     int64     `json:"businessPrice"`
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) Search(ctx context.Context, from, to string) ([]domain.Flight, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" || to == "" {
		return nil, domain.NewValidationError("both from and to are required")
	}
	return s.repo.Search(ctx, from, to)
}

// GetByID always reads through to the catalog so that prices reflect its
// state at call time.
func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	if err := validateFlightInput(input); err != nil {
		return nil, err
	}

	flight := flightFromInput(input)
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return flight, nil
}

func (s *FlightService) CreateBulk(ctx context.Context, inputs []CreateFlightInput) (int, error) {
	if len(inputs) == 0 {
		return 0, domain.NewValidationError("flights array is empty")
	}
	flights := make([]domain.Flight, 0, len(inputs))
	for _, input := range inputs {
		if err := validateFlightInput(input); err != nil {
			return 0, err
		}
		flights = append(flights, *flightFromInput(input))
	}

	inserted, err := s.repo.CreateBulk(ctx, flights)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return inserted, nil
}

func validateFlightInput(input CreateFlightInput) error {
	switch {
	case input.From == "" || input.To == "":
		return domain.NewValidationError("from and to cities are required")
	case input.FlightNumber == "":
		return domain.NewValidationError("flight number is required")
	case len(input.FromAirportCode) != 3 || len(input.ToAirportCode) != 3:
		return domain.NewValidationError("airport codes must be 3 letters")
	case input.DepartureTime.IsZero() || input.ArrivalTime.IsZero():
		return domain.NewValidationError("departure and arrival times are required")
	case input.EconomyPrice <= 0 || input.BusinessPrice <= 0:
		return domain.NewValidationError("prices must be positive")
	case input.NumberOfTransfers < 0:
		return domain.NewValidationError("number of transfers cannot be negative")
	}
	return nil
}

func flightFromInput(input CreateFlightInput) *domain.Flight {
	return &domain.Flight{
		From:              input.From,
		FromAirport:       input.FromAirport,
		FromAirportCode:   strings.ToUpper(input.FromAirportCode),
		To:                input.To,
		ToAirport:         input.ToAirport,
		ToAirportCode:     strings.ToUpper(input.ToAirportCode),
		OperatedBy:        input.OperatedBy,
		FlightNumber:      input.FlightNumber,
		AirplaneType:      input.AirplaneType,
		DepartureTime:     input.DepartureTime,
		ArrivalTime:       input.ArrivalTime,
		FlightDuration:    input.FlightDuration,
		NumberOfTransfers: input.NumberOfTransfers,
		EconomyPrice:      input.EconomyPrice,
		BusinessPrice:     input.BusinessPrice,
	}
}

var _ FlightUseCase = (*FlightService)(nil)
