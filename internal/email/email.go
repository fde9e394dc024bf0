package email

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/vizierair/booking/internal/kafka"
)

// Sender delivers e-ticket confirmations. Delivery is best effort; the
// booking flow never waits on it.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	log.Printf("send ticket email to %s, subject: Your E-Ticket (PNR: %s)", event.Email, event.PNR)
	log.Print(BuildTicketText(event))
	return nil
}

// BuildTicketText formats the confirmation body sent to the passenger.
func BuildTicketText(event kafka.TicketEvent) string {
	names := make([]string, 0, len(event.Passengers))
	for _, p := range event.Passengers {
		names = append(names, p.FirstName+" "+p.LastName)
	}

	var b strings.Builder
	b.WriteString("E-Ticket / Booking Confirmed\n\n")
	fmt.Fprintf(&b, "PNR: %s\n\n", event.PNR)
	b.WriteString("Flight details:\n")
	fmt.Fprintf(&b, "Route: %s (%s) - %s (%s)\n", event.From, event.FromAirport, event.To, event.ToAirport)
	fmt.Fprintf(&b, "Flight: %s %s\n", event.OperatedBy, event.FlightNumber)
	fmt.Fprintf(&b, "Departure: %s\n", event.DepartureTime.Format(time.RFC1123))
	fmt.Fprintf(&b, "Arrival: %s\n\n", event.ArrivalTime.Format(time.RFC1123))
	fmt.Fprintf(&b, "Cabin: %s\n", event.CabinClass)
	fmt.Fprintf(&b, "Passengers: %s\n\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "Total paid: %d %s\n\n", event.TotalPrice, event.Currency)
	b.WriteString("Thank you for choosing Vizier Airways!")
	return b.String()
}
