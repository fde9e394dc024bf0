package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vizierair/booking/internal/domain"
	"github.com/vizierair/booking/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookingResponse struct {
	ID                int64              `json:"id"`
	FlightID          *int64             `json:"flightId"`
	CabinClass        string             `json:"cabinClass"`
	Passengers        []domain.Passenger `json:"passengers"`
	PricePerPassenger int64              `json:"pricePerPassenger"`
	TotalPrice        int64              `json:"totalPrice"`
	Status            string             `json:"status"`
	PaymentID         *int64             `json:"paymentId,omitempty"`
	PNR               string             `json:"pnr"`
	Email             string             `json:"email"`
	Currency          string             `json:"currency"`
	CreatedAt         string             `json:"createdAt"`
	UpdatedAt         string             `json:"updatedAt"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/me", h.listMine)
	router.GET("/:id", h.get)
	router.PATCH("/:id/cancel", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	identity, _ := identityFrom(c)

	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), identity.UserID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": toBookingResponse(created)})
}

func (h *BookingHandler) listMine(c *gin.Context) {
	identity, _ := identityFrom(c)

	bookings, err := h.service.ListMine(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": out})
}

func (h *BookingHandler) get(c *gin.Context) {
	identity, _ := identityFrom(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid booking id"})
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), identity.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": toBookingResponse(found)})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	identity, _ := identityFrom(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid booking id"})
		return
	}

	cancelled, err := h.service.Cancel(c.Request.Context(), identity.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": toBookingResponse(cancelled)})
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:                b.ID,
		FlightID:          b.FlightID,
		CabinClass:        string(b.CabinClass),
		Passengers:        b.Passengers,
		PricePerPassenger: b.PricePerPassenger,
		TotalPrice:        b.TotalPrice,
		Status:            string(b.Status),
		PaymentID:         b.PaymentID,
		PNR:               b.PNR,
		Email:             b.Email,
		Currency:          b.Currency,
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         b.UpdatedAt.Format(time.RFC3339),
	}
}
