package domain

import "time"

// Flight is a catalog record. The booking core treats it as read-only and
// snapshots the per-class price at booking creation time.
type Flight struct {
	ID                int64
	From              string
	FromAirport       string
	FromAirportCode   string
	To                string
	ToAirport         string
	ToAirportCode     string
	OperatedBy        string
	FlightNumber      string
	AirplaneType      string
	DepartureTime     time.Time
	ArrivalTime       time.Time
	FlightDuration    string
	NumberOfTransfers int
	EconomyPrice      int64
	BusinessPrice     int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PriceFor returns the per-passenger price for the given cabin class.
func (f *Flight) PriceFor(class CabinClass) int64 {
	if class == CabinClassBusiness {
		return f.BusinessPrice
	}
	return f.EconomyPrice
}
