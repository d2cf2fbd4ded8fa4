package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SlotStatus is the booking lifecycle state of a time slot.
type SlotStatus string

const (
	SlotStatusOpen      SlotStatus = "open"
	SlotStatusDraft     SlotStatus = "draft"
	SlotStatusReserved  SlotStatus = "reserved"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusCompleted SlotStatus = "completed"
)

// Valid reports whether the status is a known lifecycle state.
func (s SlotStatus) Valid() bool {
	switch s {
	case SlotStatusOpen, SlotStatusDraft, SlotStatusReserved, SlotStatusBooked, SlotStatusCompleted:
		return true
	}
	return false
}

// CalendarDay groups an instructor's slots for one calendar date. Days are
// created implicitly when the first slot lands on a date and removed when the
// last slot is deleted.
type CalendarDay struct {
	ID           uuid.UUID
	InstructorID uuid.UUID
	Date         time.Time
}

// TimeSlot is a single bookable interval on an instructor's calendar.
// Start and end times are zero-padded "HH:MM" strings, which order correctly
// under lexicographic comparison.
type TimeSlot struct {
	ID           uuid.UUID
	DayID        uuid.UUID
	InstructorID uuid.UUID
	Date         time.Time
	StartTime    string
	EndTime      string
	Available    bool
	Status       SlotStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BookingSeries is the candidate weekly schedule for one purchase: N slots,
// one per week, all sharing instructor, weekday and times. It exists only
// between slot selection and order finalization and is never persisted as its
// own entity.
type BookingSeries struct {
	InstructorID uuid.UUID
	AnchorDate   time.Time
	StartTime    string
	EndTime      string
	SlotIDs      []uuid.UUID
}

// DayAvailability lists the open slots for one date.
type DayAvailability struct {
	Date  time.Time
	Slots []TimeSlot
}

// Availability is the bounded-horizon projection served to booking funnels.
// DefaultSelected is the suggested day index for initial selection, or -1
// when no day has an open slot.
type Availability struct {
	Days            []DayAvailability
	DefaultSelected int
}

// CreateSlotParams holds the input required to publish a slot.
type CreateSlotParams struct {
	InstructorID uuid.UUID
	Date         time.Time
	StartTime    string
	EndTime      string
}

// MoveSlotParams holds the input required to reschedule a slot. Available is
// left unchanged when nil.
type MoveSlotParams struct {
	SlotID    uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
	Available *bool
}

// HoldSeriesParams identifies the slot a funnel participant picked and how
// many weekly lessons the chosen package contains.
type HoldSeriesParams struct {
	SlotID uuid.UUID
	Weeks  int
}

// ScheduleRepository defines the persistence operations for days and slots.
// Overlap checking and series holds run inside storage transactions so that
// concurrent attempts on the same interval serialize.
type ScheduleRepository interface {
	CreateSlot(ctx context.Context, params CreateSlotParams) (*TimeSlot, error)
	GetSlot(ctx context.Context, id uuid.UUID) (*TimeSlot, error)
	DeleteSlot(ctx context.Context, id uuid.UUID) error
	MoveSlot(ctx context.Context, params MoveSlotParams) (*TimeSlot, error)
	ListOpenSlots(ctx context.Context, instructorID uuid.UUID, from, to time.Time) ([]DayAvailability, error)
	HoldSeries(ctx context.Context, params HoldSeriesParams) (*BookingSeries, error)
	SweepDrafts(ctx context.Context, cutoff time.Time) (int, error)
}

// ScheduleService exposes the slot-store and availability use cases.
type ScheduleService interface {
	PublishSlot(ctx context.Context, params CreateSlotParams) (*TimeSlot, error)
	RemoveSlot(ctx context.Context, id uuid.UUID) error
	MoveSlot(ctx context.Context, params MoveSlotParams) (*TimeSlot, error)
	Availability(ctx context.Context, instructorID uuid.UUID, from, to time.Time) (*Availability, error)
	HoldSeries(ctx context.Context, params HoldSeriesParams) (*BookingSeries, error)
	SweepAbandonedDrafts(ctx context.Context) (int, error)
}
