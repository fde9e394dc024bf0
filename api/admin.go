package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vizierair/booking/internal/domain"
	"github.com/vizierair/booking/internal/service/flights"
)

// UserLister is the slice of the user store the admin console needs.
type UserLister interface {
	List(ctx context.Context) ([]domain.User, error)
}

type AdminHandler struct {
	flights flights.FlightUseCase
	users   UserLister
}

func NewAdminHandler(flightSvc flights.FlightUseCase, users UserLister) *AdminHandler {
	return &AdminHandler{flights: flightSvc, users: users}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.POST("/flights", h.createFlight)
	router.POST("/flights/bulk", h.createFlightsBulk)
	router.GET("/users", h.listUsers)
}

func (h *AdminHandler) createFlight(c *gin.Context) {
	var input flights.CreateFlightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	created, err := h.flights.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Flight Route Created", "data": toFlightResponse(created)})
}

func (h *AdminHandler) createFlightsBulk(c *gin.Context) {
	var inputs []flights.CreateFlightInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "request body must be an array of flights"})
		return
	}

	inserted, err := h.flights.CreateBulk(c.Request.Context(), inputs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Flights created successfully", "insertedCount": inserted})
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (h *AdminHandler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out, "count": len(out)})
}
