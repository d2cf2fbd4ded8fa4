package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/drivekit/drivekit/internal/adapter/transport"
)

// NewHTTPHandler wires the transport handlers into a chi router ready for serving.
func NewHTTPHandler(
	schedule *transport.ScheduleHandler,
	booking *transport.BookingHandler,
	instructor *transport.InstructorHandler,
	webhook *transport.WebhookHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		schedule.Routes(r)
		booking.Routes(r)
		instructor.Routes(r)
		webhook.Routes(r)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
