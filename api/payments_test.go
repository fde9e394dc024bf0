package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vizierair/booking/internal/domain"
	"github.com/vizierair/booking/internal/service/payment"
)

// MockPaymentUseCase is a mock implementation of payment.PaymentUseCase
type MockPaymentUseCase struct {
	mock.Mock
}

func (m *MockPaymentUseCase) Pay(ctx context.Context, userID int64, input payment.PayInput) (*domain.Receipt, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func payRequest(t *testing.T, c *gin.Context, input payment.PayInput) {
	t.Helper()
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/api/v1/payments/pay", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
}

func TestPaymentHandler_pay(t *testing.T) {
	mockService := &MockPaymentUseCase{}
	handler := NewPaymentHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(identityKey, Identity{UserID: 7})

	input := payment.PayInput{
		BookingID:  12,
		CardNumber: "4111111111111111",
		ExpMonth:   12,
		ExpYear:    30,
		CVV:        "123",
	}
	payRequest(t, c, input)

	receipt := &domain.Receipt{
		BookingID: 12,
		PaymentID: 55,
		PNR:       "X7K2P9",
		Success:   true,
		Message:   "Payment successful. Ticket is being sent to your email.",
	}
	mockService.On("Pay", c.Request.Context(), int64(7), input).Return(receipt, nil)

	handler.pay(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success   bool   `json:"success"`
		BookingID int64  `json:"bookingId"`
		PaymentID int64  `json:"paymentId"`
		PNR       string `json:"pnr"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, int64(12), response.BookingID)
	assert.Equal(t, int64(55), response.PaymentID)
	assert.Equal(t, "X7K2P9", response.PNR)

	mockService.AssertExpectations(t)
}

func TestPaymentHandler_pay_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"Invalid card", domain.ErrInvalidCard, http.StatusBadRequest},
		{"Expired card", domain.ErrCardExpired, http.StatusBadRequest},
		{"Not found", domain.ErrBookingNotFound, http.StatusNotFound},
		{"Already confirmed", domain.ErrAlreadyConfirmed, http.StatusBadRequest},
		{"Cancelled booking", domain.ErrBookingNotPayable, http.StatusBadRequest},
		{"Duplicate payment", domain.ErrDuplicatePayment, http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockPaymentUseCase{}
			handler := NewPaymentHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set(identityKey, Identity{UserID: 7})
			payRequest(t, c, payment.PayInput{BookingID: 12, CardNumber: "4111111111111111", ExpMonth: 12, ExpYear: 30, CVV: "123"})

			mockService.On("Pay", c.Request.Context(), int64(7), mock.Anything).Return(nil, tc.err)

			handler.pay(c)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
			assert.Contains(t, w.Body.String(), tc.err.Error())
		})
	}
}
