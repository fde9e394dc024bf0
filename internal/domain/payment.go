package domain

import "time"

// Payment records a settled card charge. At most one payment exists per
// booking; the storage layer enforces this with a unique index on BookingID.
type Payment struct {
	ID        int64
	BookingID int64
	UserID    int64
	Amount    int64
	Currency  string
	CardLast4 string
	ExpMonth  int
	ExpYear   int
	Success   bool
	Reference string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Receipt is returned to the client after a successful settlement.
type Receipt struct {
	BookingID int64  `json:"bookingId"`
	PaymentID int64  `json:"paymentId"`
	PNR       string `json:"pnr"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
}
