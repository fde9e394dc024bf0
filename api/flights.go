package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vizierair/booking/internal/domain"
	"github.com/vizierair/booking/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightResponse struct {
	ID                int64  `json:"id"`
	From              string `json:"from"`
	FromAirport       string `json:"fromAirport"`
	FromAirportCode   string `json:"fromAirportAbbreviation"`
	To                string `json:"to"`
	ToAirport         string `json:"toAirport"`
	ToAirportCode     string `json:"toAirportAbbreviation"`
	OperatedBy        string `json:"operatedBy"`
	FlightNumber      string `json:"flightNumber"`
	AirplaneType      string `json:"airplaneType"`
	DepartureTime     string `json:"departureTime"`
	ArrivalTime       string `json:"arrivalTime"`
	FlightDuration    string `json:"flightDuration"`
	NumberOfTransfers int    `json:"numberOfTransfers"`
	EconomyPrice      int64  `json:"economyPrice"`
	BusinessPrice     int64  `json:"businessPrice"`
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		ID:                f.ID,
		From:              f.From,
		FromAirport:       f.FromAirport,
		FromAirportCode:   f.FromAirportCode,
		To:                f.To,
		ToAirport:         f.ToAirport,
		ToAirportCode:     f.ToAirportCode,
		OperatedBy:        f.OperatedBy,
		FlightNumber:      f.FlightNumber,
		AirplaneType:      f.AirplaneType,
		DepartureTime:     f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:       f.ArrivalTime.Format(time.RFC3339),
		FlightDuration:    f.FlightDuration,
		NumberOfTransfers: f.NumberOfTransfers,
		EconomyPrice:      f.EconomyPrice,
		BusinessPrice:     f.BusinessPrice,
	}
}

func toFlightResponses(found []domain.Flight) []flightResponse {
	out := make([]flightResponse, 0, len(found))
	for i := range found {
		out = append(out, toFlightResponse(&found[i]))
	}
	return out
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	found, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": toFlightResponses(found), "count": len(found)})
}

func (h *FlightHandler) search(c *gin.Context) {
	found, err := h.service.Search(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": toFlightResponses(found), "count": len(found)})
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid flight id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": toFlightResponse(flight)})
}
