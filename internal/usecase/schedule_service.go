package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

// maxSeriesWeeks bounds how many weekly slots one hold may synthesize.
const maxSeriesWeeks = 52

// ScheduleService coordinates slot publication, availability queries and
// series holds.
type ScheduleService struct {
	repo core.ScheduleRepository
	now  func() time.Time
}

// NewScheduleService constructs a ScheduleService backed by the provided
// repository.
func NewScheduleService(repo core.ScheduleRepository) *ScheduleService {
	return &ScheduleService{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *ScheduleService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.ScheduleService = (*ScheduleService)(nil)

// PublishSlot validates and creates a new open slot on an instructor's
// calendar.
func (s *ScheduleService) PublishSlot(ctx context.Context, params core.CreateSlotParams) (*core.TimeSlot, error) {
	if params.InstructorID == uuid.Nil {
		return nil, fmt.Errorf("%w: instructor id required", core.ErrValidation)
	}
	if params.Date.IsZero() {
		return nil, fmt.Errorf("%w: date required", core.ErrValidation)
	}
	if err := validateInterval(params.StartTime, params.EndTime); err != nil {
		return nil, err
	}
	return s.repo.CreateSlot(ctx, params)
}

// RemoveSlot deletes a slot unless a lesson references it.
func (s *ScheduleService) RemoveSlot(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: slot id required", core.ErrValidation)
	}
	return s.repo.DeleteSlot(ctx, id)
}

// MoveSlot reschedules a slot to a new date or interval.
func (s *ScheduleService) MoveSlot(ctx context.Context, params core.MoveSlotParams) (*core.TimeSlot, error) {
	if params.SlotID == uuid.Nil {
		return nil, fmt.Errorf("%w: slot id required", core.ErrValidation)
	}
	if params.Date.IsZero() {
		return nil, fmt.Errorf("%w: date required", core.ErrValidation)
	}
	if err := validateInterval(params.StartTime, params.EndTime); err != nil {
		return nil, err
	}
	return s.repo.MoveSlot(ctx, params)
}

// Availability returns the open slots between from and to, grouped by day.
// The lower bound is clamped to two days out so students cannot book on short
// notice, and the default-selected index points at the third available day
// when the window has that many.
func (s *ScheduleService) Availability(ctx context.Context, instructorID uuid.UUID, from, to time.Time) (*core.Availability, error) {
	if instructorID == uuid.Nil {
		return nil, fmt.Errorf("%w: instructor id required", core.ErrValidation)
	}

	minNotice := startOfDay(s.now().UTC()).AddDate(0, 0, 2)
	if from.Before(minNotice) {
		from = minNotice
	}
	if !to.After(from) {
		return &core.Availability{Days: nil, DefaultSelected: -1}, nil
	}

	days, err := s.repo.ListOpenSlots(ctx, instructorID, from, to)
	if err != nil {
		return nil, err
	}

	var availableIdx []int
	for i, day := range days {
		if len(day.Slots) > 0 {
			availableIdx = append(availableIdx, i)
		}
	}
	selected := -1
	if n := len(availableIdx); n > 0 {
		pick := 2
		if pick > n-1 {
			pick = n - 1
		}
		selected = availableIdx[pick]
	}

	return &core.Availability{Days: days, DefaultSelected: selected}, nil
}

// HoldSeries claims the chosen slot and synthesizes the remaining weekly
// slots as drafts. Exactly one of two racing funnels wins the claim.
func (s *ScheduleService) HoldSeries(ctx context.Context, params core.HoldSeriesParams) (*core.BookingSeries, error) {
	if params.SlotID == uuid.Nil {
		return nil, fmt.Errorf("%w: slot id required", core.ErrValidation)
	}
	if params.Weeks < 1 || params.Weeks > maxSeriesWeeks {
		return nil, fmt.Errorf("%w: weeks must be between 1 and %d", core.ErrValidation, maxSeriesWeeks)
	}
	return s.repo.HoldSeries(ctx, params)
}

// SweepAbandonedDrafts deletes draft slots left over from funnels that never
// finalized. Anything created before the start of today is fair game.
func (s *ScheduleService) SweepAbandonedDrafts(ctx context.Context) (int, error) {
	return s.repo.SweepDrafts(ctx, startOfDay(s.now().UTC()))
}

// validateInterval checks both times parse as zero-padded HH:MM and the end
// comes after the start.
func validateInterval(start, end string) error {
	startAt, err := time.Parse("15:04", start)
	if err != nil {
		return fmt.Errorf("%w: start time must be HH:MM", core.ErrValidation)
	}
	endAt, err := time.Parse("15:04", end)
	if err != nil {
		return fmt.Errorf("%w: end time must be HH:MM", core.ErrValidation)
	}
	if !endAt.After(startAt) {
		return fmt.Errorf("%w: end time must be after start time", core.ErrValidation)
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
