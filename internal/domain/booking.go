package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type CabinClass string

const (
	CabinClassEconomy  CabinClass = "economy"
	CabinClassBusiness CabinClass = "business"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Passenger is a value embedded in a booking; it has no identity of its own.
type Passenger struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    Gender `json:"gender"`
}

// Booking is the aggregate root of the booking lifecycle. UserID and
// FlightID go nil when the referenced record is deleted; the booking itself
// survives. PaymentID is set exactly when the booking is confirmed.
type Booking struct {
	ID                int64
	UserID            *int64
	FlightID          *int64
	CabinClass        CabinClass
	Passengers        []Passenger
	PricePerPassenger int64
	TotalPrice        int64
	Status            BookingStatus
	PaymentID         *int64
	PNR               string
	Email             string
	Currency          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
