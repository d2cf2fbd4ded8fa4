package db

import (
	"context"
	stdsql "database/sql"
	"errors"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	entgenerated "github.com/drivekit/drivekit/internal/adapter/db/ent/generated"
	entday "github.com/drivekit/drivekit/internal/adapter/db/ent/generated/calendarday"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/enttest"
	"github.com/drivekit/drivekit/internal/core"
)

func TestScheduleRepository_CreateSlotRejectsOverlap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupScheduleRepo(t, ctx, "schedule_overlap")
	defer client.Close()

	instructorID := uuid.New()
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	first, err := repo.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         date,
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	if first.Status != core.SlotStatusOpen || !first.Available {
		t.Fatalf("new slot should be open and available, got %s/%v", first.Status, first.Available)
	}

	overlaps := []struct {
		name  string
		start string
		end   string
	}{
		{"identical", "09:00", "10:00"},
		{"straddles start", "08:30", "09:30"},
		{"straddles end", "09:30", "10:30"},
		{"contained", "09:15", "09:45"},
		{"covering", "08:00", "11:00"},
	}
	for _, tc := range overlaps {
		_, err := repo.CreateSlot(ctx, core.CreateSlotParams{
			InstructorID: instructorID,
			Date:         date,
			StartTime:    tc.start,
			EndTime:      tc.end,
		})
		if !errors.Is(err, core.ErrSlotOverlap) {
			t.Fatalf("%s: expected ErrSlotOverlap, got %v", tc.name, err)
		}
	}

	// Touching boundaries do not overlap.
	if _, err := repo.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         date,
		StartTime:    "10:00",
		EndTime:      "11:00",
	}); err != nil {
		t.Fatalf("adjacent slot should be accepted, got %v", err)
	}
}

func TestScheduleRepository_OverlapIgnoresStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupScheduleRepo(t, ctx, "schedule_overlap_status")
	defer client.Close()

	instructorID := uuid.New()
	date := time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC)

	slot, err := repo.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         date,
		StartTime:    "14:00",
		EndTime:      "15:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	if _, err := repo.HoldSeries(ctx, core.HoldSeriesParams{SlotID: slot.ID, Weeks: 1}); err != nil {
		t.Fatalf("HoldSeries() error = %v", err)
	}

	// The slot is now draft and unavailable but still blocks its interval.
	_, err = repo.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         date,
		StartTime:    "14:30",
		EndTime:      "15:30",
	})
	if !errors.Is(err, core.ErrSlotOverlap) {
		t.Fatalf("expected ErrSlotOverlap against draft slot, got %v", err)
	}
}

func TestScheduleRepository_DeleteSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupScheduleRepo(t, ctx, "schedule_delete")
	defer client.Close()

	instructorID := uuid.New()
	date := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)

	slot, err := repo.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         date,
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}

	if err := repo.DeleteSlot(ctx, slot.ID); err != nil {
		t.Fatalf("DeleteSlot() error = %v", err)
	}
	if _, err := repo.GetSlot(ctx, slot.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// The day had a single slot, so it should be gone too.
	days, err := client.CalendarDay.Query().Where(entday.InstructorIDEQ(instructorID)).Count(ctx)
	if err != nil {
		t.Fatalf("counting days: %v", err)
	}
	if days != 0 {
		t.Fatalf("expected empty day to be collected, found %d days", days)
	}

	if err := repo.DeleteSlot(ctx, slot.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing slot, got %v", err)
	}
}

func TestScheduleRepository_DeleteSlotWithLesson(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupScheduleRepo(t, ctx, "schedule_delete_guard")
	defer client.Close()

	instructorID := uuid.New()
	date := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	slot, err := repo.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         date,
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}

	order := client.Order.Create().
		SetStudentID(uuid.New()).
		SetInstructorID(instructorID).
		SetPackageName("Single lesson").
		SetPackageTotalPricePence(3500).
		SetPackageLessonPricePence(3500).
		SetPackageLessonCount(1).
		SetPaymentMode("upfront").
		SaveX(ctx)
	client.Lesson.Create().
		SetOrderID(order.ID).
		SetInstructorID(instructorID).
		SetSlotID(slot.ID).
		SetDate(date).
		SetStartTime("09:00").
		SetEndTime("10:00").
		SetAmountPence(3500).
		SaveX(ctx)

	if err := repo.DeleteSlot(ctx, slot.ID); !errors.Is(err, core.ErrSlotHasLessons) {
		t.Fatalf("expected ErrSlotHasLessons, got %v", err)
	}
}

func TestScheduleRepository_MoveSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupScheduleRepo(t, ctx, "schedule_move")
	defer client.Close()

	instructorID := uuid.New()
	origin := time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC)
	dest := time.Date(2026, 6, 18, 0, 0, 0, 0, time.UTC)

	slot, err := repo.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         origin,
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	if _, err := repo.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         dest,
		StartTime:    "11:00",
		EndTime:      "12:00",
	}); err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}

	// Destination interval collides with the existing 11:00 slot.
	if _, err := repo.MoveSlot(ctx, core.MoveSlotParams{
		SlotID:    slot.ID,
		Date:      dest,
		StartTime: "11:30",
		EndTime:   "12:30",
	}); !errors.Is(err, core.ErrSlotOverlap) {
		t.Fatalf("expected ErrSlotOverlap, got %v", err)
	}

	unavailable := false
	moved, err := repo.MoveSlot(ctx, core.MoveSlotParams{
		SlotID:    slot.ID,
		Date:      dest,
		StartTime: "14:00",
		EndTime:   "15:00",
		Available: &unavailable,
	})
	if err != nil {
		t.Fatalf("MoveSlot() error = %v", err)
	}
	if !moved.Date.Equal(dest) || moved.StartTime != "14:00" || moved.Available {
		t.Fatalf("unexpected slot after move: %+v", moved)
	}

	// Origin day is empty and should be collected.
	remaining, err := client.CalendarDay.Query().
		Where(entday.InstructorIDEQ(instructorID)).
		Count(ctx)
	if err != nil {
		t.Fatalf("counting days: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("expected 1 day after origin GC, got %d", remaining)
	}
}

func TestScheduleRepository_HoldSeries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupScheduleRepo(t, ctx, "schedule_hold")
	defer client.Close()

	instructorID := uuid.New()
	anchor := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	slot, err := repo.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         anchor,
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}

	series, err := repo.HoldSeries(ctx, core.HoldSeriesParams{SlotID: slot.ID, Weeks: 3})
	if err != nil {
		t.Fatalf("HoldSeries() error = %v", err)
	}
	if len(series.SlotIDs) != 3 {
		t.Fatalf("expected 3 slots in series, got %d", len(series.SlotIDs))
	}
	if !series.AnchorDate.Equal(anchor) {
		t.Fatalf("anchor date = %v, want %v", series.AnchorDate, anchor)
	}

	for i, id := range series.SlotIDs {
		got, err := repo.GetSlot(ctx, id)
		if err != nil {
			t.Fatalf("GetSlot(%d) error = %v", i, err)
		}
		if got.Status != core.SlotStatusDraft || got.Available {
			t.Fatalf("slot %d should be draft/unavailable, got %s/%v", i, got.Status, got.Available)
		}
		wantDate := anchor.AddDate(0, 0, 7*i)
		if !got.Date.Equal(wantDate) {
			t.Fatalf("slot %d date = %v, want %v", i, got.Date, wantDate)
		}
	}

	// A second hold on the claimed slot loses.
	if _, err := repo.HoldSeries(ctx, core.HoldSeriesParams{SlotID: slot.ID, Weeks: 3}); !errors.Is(err, core.ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable on re-hold, got %v", err)
	}

	if _, err := repo.HoldSeries(ctx, core.HoldSeriesParams{SlotID: uuid.New(), Weeks: 2}); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown slot, got %v", err)
	}
}

func TestScheduleRepository_SweepDrafts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupScheduleRepo(t, ctx, "schedule_sweep")
	defer client.Close()

	instructorID := uuid.New()
	anchor := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	slot, err := repo.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         anchor,
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	if _, err := repo.HoldSeries(ctx, core.HoldSeriesParams{SlotID: slot.ID, Weeks: 2}); err != nil {
		t.Fatalf("HoldSeries() error = %v", err)
	}

	// Nothing was created before a cutoff in the past.
	swept, err := repo.SweepDrafts(ctx, time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("SweepDrafts() error = %v", err)
	}
	if swept != 0 {
		t.Fatalf("expected 0 swept before cutoff, got %d", swept)
	}

	swept, err = repo.SweepDrafts(ctx, time.Now().UTC().Add(time.Hour))
	if err != nil {
		t.Fatalf("SweepDrafts() error = %v", err)
	}
	if swept != 2 {
		t.Fatalf("expected 2 swept drafts, got %d", swept)
	}

	days, err := client.CalendarDay.Query().Count(ctx)
	if err != nil {
		t.Fatalf("counting days: %v", err)
	}
	if days != 0 {
		t.Fatalf("expected all empty days collected, got %d", days)
	}
}

func TestScheduleRepository_ListOpenSlots(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupScheduleRepo(t, ctx, "schedule_list")
	defer client.Close()

	instructorID := uuid.New()
	day1 := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC)

	for _, interval := range [][2]string{{"13:00", "14:00"}, {"09:00", "10:00"}} {
		if _, err := repo.CreateSlot(ctx, core.CreateSlotParams{
			InstructorID: instructorID,
			Date:         day1,
			StartTime:    interval[0],
			EndTime:      interval[1],
		}); err != nil {
			t.Fatalf("CreateSlot() error = %v", err)
		}
	}
	held, err := repo.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         day2,
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	if _, err := repo.HoldSeries(ctx, core.HoldSeriesParams{SlotID: held.ID, Weeks: 1}); err != nil {
		t.Fatalf("HoldSeries() error = %v", err)
	}

	days, err := repo.ListOpenSlots(ctx, instructorID, day1, day2)
	if err != nil {
		t.Fatalf("ListOpenSlots() error = %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if len(days[0].Slots) != 2 {
		t.Fatalf("expected 2 open slots on day 1, got %d", len(days[0].Slots))
	}
	if days[0].Slots[0].StartTime != "09:00" {
		t.Fatalf("slots should be ordered by start time, first is %s", days[0].Slots[0].StartTime)
	}
	if len(days[1].Slots) != 0 {
		t.Fatalf("held slot should not be listed, got %d slots", len(days[1].Slots))
	}
}

func setupScheduleRepo(t *testing.T, ctx context.Context, name string) (*ScheduleRepository, *entgenerated.Client) {
	t.Helper()
	client := newTestClient(t, ctx, name)
	return NewScheduleRepository(client), client
}

func newTestClient(t *testing.T, ctx context.Context, name string) *entgenerated.Client {
	t.Helper()
	drv, err := stdsql.Open("sqlite", "file:"+name+"?mode=memory&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("failed opening sqlite driver: %v", err)
	}
	driver := entsql.OpenDB(dialect.SQLite, drv)
	client := enttest.NewClient(t, enttest.WithOptions(entgenerated.Driver(driver)))
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("failed creating schema: %v", err)
	}
	return client
}
