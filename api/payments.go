package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vizierair/booking/internal/service/payment"
)

type PaymentHandler struct {
	service payment.PaymentUseCase
}

func NewPaymentHandler(service payment.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.POST("/pay", h.pay)
}

func (h *PaymentHandler) pay(c *gin.Context) {
	identity, _ := identityFrom(c)

	var input payment.PayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	receipt, err := h.service.Pay(c.Request.Context(), identity.UserID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   receipt.Message,
		"bookingId": receipt.BookingID,
		"paymentId": receipt.PaymentID,
		"pnr":       receipt.PNR,
	})
}
