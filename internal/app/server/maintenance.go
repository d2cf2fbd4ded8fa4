package server

import (
	"github.com/drivekit/drivekit/internal/adapter/db"
	entgenerated "github.com/drivekit/drivekit/internal/adapter/db/ent/generated"
	"github.com/drivekit/drivekit/internal/core"
	"github.com/drivekit/drivekit/internal/usecase"
)

// Maintenance bundles the services the periodic CLI commands run against.
type Maintenance struct {
	Schedule core.ScheduleService
	Bookings core.BookingService

	entClient *entgenerated.Client
}

// InitializeMaintenance wires the maintenance services by hand. The CLI
// commands need no HTTP surface, so the full injector is not used.
func InitializeMaintenance() (*Maintenance, error) {
	cfg, err := NewConfig()
	if err != nil {
		return nil, err
	}
	entClient, err := NewEntClient(cfg)
	if err != nil {
		return nil, err
	}

	bookings := usecase.NewBookingService(
		db.NewBookingRepository(entClient),
		NewFakePaymentProcessor(cfg),
		NewCheckoutURLs(cfg),
	)
	return &Maintenance{
		Schedule:  usecase.NewScheduleService(db.NewScheduleRepository(entClient)),
		Bookings:  bookings,
		entClient: entClient,
	}, nil
}

// Close releases the database client.
func (m *Maintenance) Close() error {
	return m.entClient.Close()
}
