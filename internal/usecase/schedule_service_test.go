package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

func TestScheduleService_PublishSlotValidation(t *testing.T) {
	repo := &stubScheduleRepo{
		createSlotFn: func(ctx context.Context, params core.CreateSlotParams) (*core.TimeSlot, error) {
			return nil, errors.New("should not be called")
		},
	}
	service := NewScheduleService(repo)

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"end before start", "10:00", "09:00"},
		{"zero length", "10:00", "10:00"},
		{"malformed start", "9am", "10:00"},
		{"malformed end", "09:00", "25:61"},
	}
	for _, tc := range cases {
		_, err := service.PublishSlot(context.Background(), core.CreateSlotParams{
			InstructorID: uuid.New(),
			Date:         time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			StartTime:    tc.start,
			EndTime:      tc.end,
		})
		if !errors.Is(err, core.ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}

	_, err := service.PublishSlot(context.Background(), core.CreateSlotParams{
		Date:      time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation without instructor, got %v", err)
	}
}

func TestScheduleService_AvailabilityClampsMinimumNotice(t *testing.T) {
	fixedNow := time.Date(2026, 6, 8, 15, 30, 0, 0, time.UTC)
	var capturedFrom time.Time

	repo := &stubScheduleRepo{
		listOpenSlotsFn: func(ctx context.Context, instructorID uuid.UUID, from, to time.Time) ([]core.DayAvailability, error) {
			capturedFrom = from
			return nil, nil
		},
	}
	service := NewScheduleService(repo)
	service.WithClock(func() time.Time { return fixedNow })

	_, err := service.Availability(context.Background(), uuid.New(),
		time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 18, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("Availability() error = %v", err)
	}

	wantFrom := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	if !capturedFrom.Equal(wantFrom) {
		t.Fatalf("from clamped to %v, want %v", capturedFrom, wantFrom)
	}
}

func TestScheduleService_AvailabilityDefaultSelected(t *testing.T) {
	day := func(date time.Time, open int) core.DayAvailability {
		slots := make([]core.TimeSlot, open)
		for i := range slots {
			slots[i] = core.TimeSlot{ID: uuid.New(), Status: core.SlotStatusOpen, Available: true}
		}
		return core.DayAvailability{Date: date, Slots: slots}
	}
	base := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		days []core.DayAvailability
		want int
	}{
		{
			"third available day",
			[]core.DayAvailability{
				day(base, 1),
				day(base.AddDate(0, 0, 1), 0),
				day(base.AddDate(0, 0, 2), 2),
				day(base.AddDate(0, 0, 3), 1),
				day(base.AddDate(0, 0, 4), 1),
			},
			3,
		},
		{
			"clamped to last available",
			[]core.DayAvailability{
				day(base, 1),
				day(base.AddDate(0, 0, 1), 1),
			},
			1,
		},
		{
			"no open slots",
			[]core.DayAvailability{day(base, 0)},
			-1,
		},
	}

	for _, tc := range cases {
		repo := &stubScheduleRepo{
			listOpenSlotsFn: func(ctx context.Context, instructorID uuid.UUID, from, to time.Time) ([]core.DayAvailability, error) {
				return tc.days, nil
			},
		}
		service := NewScheduleService(repo)
		service.WithClock(func() time.Time { return time.Date(2026, 6, 8, 9, 0, 0, 0, time.UTC) })

		got, err := service.Availability(context.Background(), uuid.New(), base, base.AddDate(0, 0, 10))
		if err != nil {
			t.Fatalf("%s: Availability() error = %v", tc.name, err)
		}
		if got.DefaultSelected != tc.want {
			t.Fatalf("%s: default selected = %d, want %d", tc.name, got.DefaultSelected, tc.want)
		}
	}
}

func TestScheduleService_HoldSeriesValidation(t *testing.T) {
	repo := &stubScheduleRepo{}
	service := NewScheduleService(repo)

	if _, err := service.HoldSeries(context.Background(), core.HoldSeriesParams{SlotID: uuid.New(), Weeks: 0}); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation for zero weeks, got %v", err)
	}
	if _, err := service.HoldSeries(context.Background(), core.HoldSeriesParams{SlotID: uuid.Nil, Weeks: 5}); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation for nil slot, got %v", err)
	}
}

func TestScheduleService_SweepAbandonedDrafts(t *testing.T) {
	fixedNow := time.Date(2026, 6, 10, 17, 45, 0, 0, time.UTC)
	var capturedCutoff time.Time

	repo := &stubScheduleRepo{
		sweepDraftsFn: func(ctx context.Context, cutoff time.Time) (int, error) {
			capturedCutoff = cutoff
			return 4, nil
		},
	}
	service := NewScheduleService(repo)
	service.WithClock(func() time.Time { return fixedNow })

	swept, err := service.SweepAbandonedDrafts(context.Background())
	if err != nil {
		t.Fatalf("SweepAbandonedDrafts() error = %v", err)
	}
	if swept != 4 {
		t.Fatalf("swept = %d, want 4", swept)
	}

	wantCutoff := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	if !capturedCutoff.Equal(wantCutoff) {
		t.Fatalf("cutoff = %v, want start of today %v", capturedCutoff, wantCutoff)
	}
}

type stubScheduleRepo struct {
	createSlotFn    func(ctx context.Context, params core.CreateSlotParams) (*core.TimeSlot, error)
	getSlotFn       func(ctx context.Context, id uuid.UUID) (*core.TimeSlot, error)
	deleteSlotFn    func(ctx context.Context, id uuid.UUID) error
	moveSlotFn      func(ctx context.Context, params core.MoveSlotParams) (*core.TimeSlot, error)
	listOpenSlotsFn func(ctx context.Context, instructorID uuid.UUID, from, to time.Time) ([]core.DayAvailability, error)
	holdSeriesFn    func(ctx context.Context, params core.HoldSeriesParams) (*core.BookingSeries, error)
	sweepDraftsFn   func(ctx context.Context, cutoff time.Time) (int, error)
}

func (s *stubScheduleRepo) CreateSlot(ctx context.Context, params core.CreateSlotParams) (*core.TimeSlot, error) {
	if s.createSlotFn != nil {
		return s.createSlotFn(ctx, params)
	}
	return nil, nil
}

func (s *stubScheduleRepo) GetSlot(ctx context.Context, id uuid.UUID) (*core.TimeSlot, error) {
	if s.getSlotFn != nil {
		return s.getSlotFn(ctx, id)
	}
	return nil, nil
}

func (s *stubScheduleRepo) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	if s.deleteSlotFn != nil {
		return s.deleteSlotFn(ctx, id)
	}
	return nil
}

func (s *stubScheduleRepo) MoveSlot(ctx context.Context, params core.MoveSlotParams) (*core.TimeSlot, error) {
	if s.moveSlotFn != nil {
		return s.moveSlotFn(ctx, params)
	}
	return nil, nil
}

func (s *stubScheduleRepo) ListOpenSlots(ctx context.Context, instructorID uuid.UUID, from, to time.Time) ([]core.DayAvailability, error) {
	if s.listOpenSlotsFn != nil {
		return s.listOpenSlotsFn(ctx, instructorID, from, to)
	}
	return nil, nil
}

func (s *stubScheduleRepo) HoldSeries(ctx context.Context, params core.HoldSeriesParams) (*core.BookingSeries, error) {
	if s.holdSeriesFn != nil {
		return s.holdSeriesFn(ctx, params)
	}
	return nil, nil
}

func (s *stubScheduleRepo) SweepDrafts(ctx context.Context, cutoff time.Time) (int, error) {
	if s.sweepDraftsFn != nil {
		return s.sweepDraftsFn(ctx, cutoff)
	}
	return 0, nil
}
