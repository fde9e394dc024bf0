package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vizierair/booking/internal/domain"
	"github.com/vizierair/booking/internal/kafka"
)

func TestBuildTicketText(t *testing.T) {
	event := kafka.TicketEvent{
		PNR:           "X7K2P9",
		Email:         "rider@example.com",
		From:          "Almaty",
		FromAirport:   "ALA",
		To:            "Astana",
		ToAirport:     "NQZ",
		OperatedBy:    "Vizier Airways",
		FlightNumber:  "VZ-104",
		DepartureTime: time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 9, 1, 10, 15, 0, 0, time.UTC),
		CabinClass:    "business",
		Passengers: []domain.Passenger{
			{FirstName: "Aigerim", LastName: "Bekova", Gender: domain.GenderFemale},
			{FirstName: "Daniyar", LastName: "Bekov", Gender: domain.GenderMale},
		},
		TotalPrice: 18000,
		Currency:   "KZT",
	}

	text := BuildTicketText(event)

	assert.Contains(t, text, "PNR: X7K2P9")
	assert.Contains(t, text, "Route: Almaty (ALA) - Astana (NQZ)")
	assert.Contains(t, text, "Flight: Vizier Airways VZ-104")
	assert.Contains(t, text, "Cabin: business")
	assert.Contains(t, text, "Passengers: Aigerim Bekova, Daniyar Bekov")
	assert.Contains(t, text, "Total paid: 18000 KZT")
}
