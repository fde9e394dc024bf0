package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/vizierair/booking/api"
	"github.com/vizierair/booking/config"
	"github.com/vizierair/booking/internal/service/booking"
	"github.com/vizierair/booking/internal/service/flights"
	"github.com/vizierair/booking/internal/service/payment"
)

type Handlers struct {
	Bookings *api.BookingHandler
	Payments *api.PaymentHandler
	Flights  *api.FlightHandler
	Admin    *api.AdminHandler
}

func NewHandlers(
	bookingSvc booking.BookingUseCase,
	paymentSvc payment.PaymentUseCase,
	flightSvc flights.FlightUseCase,
	users api.UserLister,
) *Handlers {
	return &Handlers{
		Bookings: api.NewBookingHandler(bookingSvc),
		Payments: api.NewPaymentHandler(paymentSvc),
		Flights:  api.NewFlightHandler(flightSvc),
		Admin:    api.NewAdminHandler(flightSvc, users),
	}
}

// Run starts the HTTP server and blocks until context cancellation or a
// server failure.
func Run(ctx context.Context, cfg *config.Config, handlers *Handlers) error {
	router := NewRouter(handlers)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(handlers *Handlers) *gin.Engine {
	router := gin.Default()

	v1 := router.Group("/api/v1")

	flightRoutes := v1.Group("/flights")
	handlers.Flights.Register(flightRoutes)

	bookingRoutes := v1.Group("/bookings", api.RequireSession())
	handlers.Bookings.Register(bookingRoutes)

	paymentRoutes := v1.Group("/payments", api.RequireSession())
	handlers.Payments.Register(paymentRoutes)

	adminRoutes := v1.Group("/admin", api.RequireSession(), api.RequireAdmin())
	handlers.Admin.Register(adminRoutes)

	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	)))

	return router
}
