package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vizierair/booking/internal/domain"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByOwnerAndID(ctx context.Context, userID, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByOwner(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Settle(ctx context.Context, payment *domain.Payment) (*domain.Booking, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockPaymentRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Search(ctx context.Context, from, to string) ([]domain.Flight, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) CreateBulk(ctx context.Context, flights []domain.Flight) (int, error) {
	args := m.Called(ctx, flights)
	return args.Int(0), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func newTestService(bookings *MockBookingRepository, payments *MockPaymentRepository, flights *MockFlightRepository, producer *MockProducer) *PaymentService {
	return NewPaymentService(bookings, payments, flights, producer, "ticket_notifications")
}

func validPayInput() PayInput {
	return PayInput{
		BookingID:  12,
		CardNumber: "4111111111111111",
		ExpMonth:   12,
		ExpYear:    99,
		CVV:        "123",
	}
}

func pendingBooking() *domain.Booking {
	userID := int64(7)
	flightID := int64(4)
	return &domain.Booking{
		ID:         12,
		UserID:     &userID,
		FlightID:   &flightID,
		CabinClass: domain.CabinClassBusiness,
		Passengers: []domain.Passenger{
			{FirstName: "Aigerim", LastName: "Bekova", Gender: domain.GenderFemale},
			{FirstName: "Daniyar", LastName: "Bekov", Gender: domain.GenderMale},
		},
		PricePerPassenger: 9000,
		TotalPrice:        18000,
		Status:            domain.BookingStatusPending,
		PNR:               "X7K2P9",
		Email:             "rider@example.com",
		Currency:          "KZT",
	}
}

func confirmedFrom(b *domain.Booking, paymentID int64) *domain.Booking {
	confirmed := *b
	confirmed.Status = domain.BookingStatusConfirmed
	confirmed.PaymentID = &paymentID
	return &confirmed
}

func TestPaymentService_Pay_Success(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockPayments := &MockPaymentRepository{}
	mockFlights := &MockFlightRepository{}
	mockProducer := &MockProducer{}

	service := newTestService(mockBookings, mockPayments, mockFlights, mockProducer)

	ctx := context.Background()
	booking := pendingBooking()

	mockBookings.On("GetByOwnerAndID", ctx, int64(7), int64(12)).Return(booking, nil).Once()
	mockPayments.On("Settle", ctx, mock.AnythingOfType("*domain.Payment")).Run(func(args mock.Arguments) {
		p := args.Get(1).(*domain.Payment)
		assert.Equal(t, int64(12), p.BookingID)
		assert.Equal(t, int64(18000), p.Amount)
		assert.Equal(t, "KZT", p.Currency)
		assert.Equal(t, "1111", p.CardLast4)
		assert.True(t, p.Success)
		assert.NotEmpty(t, p.Reference)
		p.ID = 55
	}).Return(confirmedFrom(booking, 55), nil).Once()
	mockFlights.On("GetByID", mock.Anything, int64(4)).Return(&domain.Flight{ID: 4, From: "Almaty", To: "Astana", FlightNumber: "VZ-104"}, nil).Once()
	mockProducer.On("Publish", mock.Anything, "ticket_notifications", "X7K2P9", mock.Anything).Return(nil).Once()

	receipt, err := service.Pay(ctx, 7, validPayInput())

	assert.NoError(t, err)
	assert.NotNil(t, receipt)
	assert.True(t, receipt.Success)
	assert.Equal(t, int64(12), receipt.BookingID)
	assert.Equal(t, int64(55), receipt.PaymentID)
	assert.Equal(t, "X7K2P9", receipt.PNR)

	mockBookings.AssertExpectations(t)
	mockPayments.AssertExpectations(t)
	mockFlights.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestPaymentService_Pay_CardChecks(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(*PayInput)
		expectedErr error
	}{
		{"Luhn failure", func(in *PayInput) { in.CardNumber = "4111111111111112" }, domain.ErrInvalidCard},
		{"Too short number", func(in *PayInput) { in.CardNumber = "411111111111" }, domain.ErrInvalidCard},
		{"Expired card", func(in *PayInput) { in.ExpMonth = 1; in.ExpYear = 20 }, domain.ErrCardExpired},
		{"Month out of range", func(in *PayInput) { in.ExpMonth = 13 }, domain.ErrCardExpired},
		{"Malformed CVV", func(in *PayInput) { in.CVV = "12" }, domain.ErrInvalidCard},
		{"Missing CVV", func(in *PayInput) { in.CVV = "" }, domain.ErrInvalidCard},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockBookings := &MockBookingRepository{}
			mockPayments := &MockPaymentRepository{}
			service := newTestService(mockBookings, mockPayments, &MockFlightRepository{}, &MockProducer{})

			input := validPayInput()
			tc.mutate(&input)

			receipt, err := service.Pay(context.Background(), 7, input)

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Nil(t, receipt)
			// Precondition failures must not touch storage.
			mockBookings.AssertNotCalled(t, "GetByOwnerAndID")
			mockPayments.AssertNotCalled(t, "Settle")
		})
	}
}

func TestPaymentService_Pay_BookingNotFound(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockPayments := &MockPaymentRepository{}
	service := newTestService(mockBookings, mockPayments, &MockFlightRepository{}, &MockProducer{})

	ctx := context.Background()
	mockBookings.On("GetByOwnerAndID", ctx, int64(7), int64(12)).Return(nil, domain.ErrBookingNotFound).Once()

	receipt, err := service.Pay(ctx, 7, validPayInput())

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.Nil(t, receipt)
	mockPayments.AssertNotCalled(t, "Settle")
}

func TestPaymentService_Pay_AlreadyConfirmed(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockPayments := &MockPaymentRepository{}
	service := newTestService(mockBookings, mockPayments, &MockFlightRepository{}, &MockProducer{})

	ctx := context.Background()
	booking := pendingBooking()
	booking.Status = domain.BookingStatusConfirmed
	mockBookings.On("GetByOwnerAndID", ctx, int64(7), int64(12)).Return(booking, nil).Once()

	receipt, err := service.Pay(ctx, 7, validPayInput())

	assert.ErrorIs(t, err, domain.ErrAlreadyConfirmed)
	assert.Nil(t, receipt)
	mockPayments.AssertNotCalled(t, "Settle")
}

func TestPaymentService_Pay_CancelledBooking(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockPayments := &MockPaymentRepository{}
	service := newTestService(mockBookings, mockPayments, &MockFlightRepository{}, &MockProducer{})

	ctx := context.Background()
	booking := pendingBooking()
	booking.Status = domain.BookingStatusCancelled
	mockBookings.On("GetByOwnerAndID", ctx, int64(7), int64(12)).Return(booking, nil).Once()

	receipt, err := service.Pay(ctx, 7, validPayInput())

	assert.ErrorIs(t, err, domain.ErrBookingNotPayable)
	assert.Nil(t, receipt)
	mockPayments.AssertNotCalled(t, "Settle")
}

func TestPaymentService_Pay_DuplicatePayment(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockPayments := &MockPaymentRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockBookings, mockPayments, &MockFlightRepository{}, mockProducer)

	ctx := context.Background()
	mockBookings.On("GetByOwnerAndID", ctx, int64(7), int64(12)).Return(pendingBooking(), nil).Once()
	mockPayments.On("Settle", ctx, mock.Anything).Return(nil, domain.ErrDuplicatePayment).Once()

	receipt, err := service.Pay(ctx, 7, validPayInput())

	assert.ErrorIs(t, err, domain.ErrDuplicatePayment)
	assert.Nil(t, receipt)
	mockProducer.AssertNotCalled(t, "Publish")
}

func TestPaymentService_Pay_PublishFailureDoesNotFailPayment(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockPayments := &MockPaymentRepository{}
	mockFlights := &MockFlightRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockBookings, mockPayments, mockFlights, mockProducer)

	ctx := context.Background()
	booking := pendingBooking()
	mockBookings.On("GetByOwnerAndID", ctx, int64(7), int64(12)).Return(booking, nil).Once()
	mockPayments.On("Settle", ctx, mock.Anything).Return(confirmedFrom(booking, 55), nil).Once()
	mockFlights.On("GetByID", mock.Anything, int64(4)).Return(&domain.Flight{ID: 4}, nil).Once()
	mockProducer.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()

	receipt, err := service.Pay(ctx, 7, validPayInput())

	assert.NoError(t, err)
	assert.NotNil(t, receipt)
	assert.True(t, receipt.Success)
}

func TestPaymentService_Pay_FlightLookupFailureSkipsNotification(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockPayments := &MockPaymentRepository{}
	mockFlights := &MockFlightRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockBookings, mockPayments, mockFlights, mockProducer)

	ctx := context.Background()
	booking := pendingBooking()
	mockBookings.On("GetByOwnerAndID", ctx, int64(7), int64(12)).Return(booking, nil).Once()
	mockPayments.On("Settle", ctx, mock.Anything).Return(confirmedFrom(booking, 55), nil).Once()
	mockFlights.On("GetByID", mock.Anything, int64(4)).Return(nil, domain.ErrFlightNotFound).Once()

	receipt, err := service.Pay(ctx, 7, validPayInput())

	assert.NoError(t, err)
	assert.NotNil(t, receipt)
	mockProducer.AssertNotCalled(t, "Publish")
}

func TestPaymentService_Pay_NilProducer(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockPayments := &MockPaymentRepository{}
	service := NewPaymentService(mockBookings, mockPayments, &MockFlightRepository{}, nil, "")

	ctx := context.Background()
	booking := pendingBooking()
	mockBookings.On("GetByOwnerAndID", ctx, int64(7), int64(12)).Return(booking, nil).Once()
	mockPayments.On("Settle", ctx, mock.Anything).Return(confirmedFrom(booking, 55), nil).Once()

	receipt, err := service.Pay(ctx, 7, validPayInput())

	assert.NoError(t, err)
	assert.NotNil(t, receipt)
}
