//go:build wireinject

package server

import (
	"github.com/google/wire"

	"github.com/drivekit/drivekit/internal/adapter/db"
	"github.com/drivekit/drivekit/internal/adapter/notify"
	"github.com/drivekit/drivekit/internal/adapter/payments/fake"
	adaptertransport "github.com/drivekit/drivekit/internal/adapter/transport"
	"github.com/drivekit/drivekit/internal/core"
	"github.com/drivekit/drivekit/internal/usecase"
)

// InitializeServer sets up the full HTTP server with all dependencies wired.
func InitializeServer() (*Server, error) {
	wire.Build(
		NewConfig,
		NewLogger,
		NewEntClient,
		wire.Bind(new(core.ScheduleRepository), new(*db.ScheduleRepository)),
		db.NewScheduleRepository,
		wire.Bind(new(core.BookingRepository), new(*db.BookingRepository)),
		db.NewBookingRepository,
		wire.Bind(new(core.LessonRepository), new(*db.LessonRepository)),
		db.NewLessonRepository,
		wire.Bind(new(core.InstructorRepository), new(*db.InstructorRepository)),
		db.NewInstructorRepository,
		wire.Bind(new(core.EventLedger), new(*db.EventLedger)),
		db.NewEventLedger,
		wire.Bind(new(core.PaymentProcessor), new(*fake.Processor)),
		NewFakePaymentProcessor,
		wire.Bind(new(core.Notifier), new(*notify.LogNotifier)),
		NewNotifier,
		NewCheckoutURLs,
		wire.Bind(new(core.ScheduleService), new(*usecase.ScheduleService)),
		usecase.NewScheduleService,
		wire.Bind(new(core.BookingService), new(*usecase.BookingService)),
		usecase.NewBookingService,
		wire.Bind(new(core.SignOffService), new(*usecase.SignOffService)),
		usecase.NewSignOffService,
		wire.Bind(new(core.InstructorService), new(*usecase.InstructorService)),
		usecase.NewInstructorService,
		wire.Bind(new(core.WebhookService), new(*usecase.WebhookService)),
		usecase.NewWebhookService,
		adaptertransport.NewScheduleHandler,
		adaptertransport.NewBookingHandler,
		adaptertransport.NewInstructorHandler,
		adaptertransport.NewWebhookHandler,
		NewHTTPHandler,
		NewServer,
	)
	return nil, nil
}
