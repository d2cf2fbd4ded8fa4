package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	entgenerated "github.com/drivekit/drivekit/internal/adapter/db/ent/generated"
	"github.com/drivekit/drivekit/internal/core"
)

func TestLessonRepository_CompleteLesson(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t, ctx, "lesson_complete")
	defer client.Close()
	repo := NewLessonRepository(client)
	schedule := NewScheduleRepository(client)

	instructorID := uuid.New()
	lesson := seedBookedLesson(t, ctx, client, instructorID, 2)

	now := time.Date(2026, 6, 10, 11, 0, 0, 0, time.UTC)
	result, err := repo.CompleteLesson(ctx, lesson.ID, instructorID, now)
	if err != nil {
		t.Fatalf("CompleteLesson() error = %v", err)
	}
	if result.Lesson.Status != core.LessonStatusCompleted {
		t.Fatalf("lesson status = %s, want completed", result.Lesson.Status)
	}
	if result.Lesson.CompletedAt == nil || !result.Lesson.CompletedAt.Equal(now) {
		t.Fatalf("completed_at = %v, want %v", result.Lesson.CompletedAt, now)
	}
	if result.Payout.Status != core.PayoutStatusPending {
		t.Fatalf("payout status = %s, want pending", result.Payout.Status)
	}
	if result.Payout.AmountPence != result.Lesson.AmountPence {
		t.Fatalf("payout amount = %d, want %d", result.Payout.AmountPence, result.Lesson.AmountPence)
	}
	if result.OrderCompleted {
		t.Fatal("order should not complete with a pending lesson left")
	}

	slot, err := schedule.GetSlot(ctx, *result.Lesson.SlotID)
	if err != nil {
		t.Fatalf("GetSlot() error = %v", err)
	}
	if slot.Status != core.SlotStatusCompleted {
		t.Fatalf("slot status = %s, want completed", slot.Status)
	}

	// A second sign-off on the same lesson is rejected.
	if _, err := repo.CompleteLesson(ctx, lesson.ID, instructorID, now); !errors.Is(err, core.ErrLessonAlreadyCompleted) {
		t.Fatalf("expected ErrLessonAlreadyCompleted, got %v", err)
	}

	// Another instructor cannot sign the lesson off at all.
	if _, err := repo.CompleteLesson(ctx, lesson.ID, uuid.New(), now); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign instructor, got %v", err)
	}
}

func TestLessonRepository_CompleteLastLessonCompletesOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t, ctx, "lesson_order_complete")
	defer client.Close()
	repo := NewLessonRepository(client)

	instructorID := uuid.New()
	lesson := seedBookedLesson(t, ctx, client, instructorID, 1)

	result, err := repo.CompleteLesson(ctx, lesson.ID, instructorID, time.Now().UTC())
	if err != nil {
		t.Fatalf("CompleteLesson() error = %v", err)
	}
	if !result.OrderCompleted {
		t.Fatal("completing the only lesson should complete the order")
	}
}

func TestLessonRepository_PayoutSettlement(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t, ctx, "lesson_payout")
	defer client.Close()
	repo := NewLessonRepository(client)

	instructorID := uuid.New()
	lesson := seedBookedLesson(t, ctx, client, instructorID, 1)

	result, err := repo.CompleteLesson(ctx, lesson.ID, instructorID, time.Now().UTC())
	if err != nil {
		t.Fatalf("CompleteLesson() error = %v", err)
	}

	paidAt := time.Date(2026, 6, 10, 11, 5, 0, 0, time.UTC)
	settled, err := repo.SettlePayout(ctx, result.Payout.ID, "tr_123", paidAt)
	if err != nil {
		t.Fatalf("SettlePayout() error = %v", err)
	}
	if settled.Status != core.PayoutStatusPaid || settled.TransferRef != "tr_123" {
		t.Fatalf("unexpected payout after settle: %+v", settled)
	}

	detail, err := repo.GetLessonDetail(ctx, lesson.ID)
	if err != nil {
		t.Fatalf("GetLessonDetail() error = %v", err)
	}
	if !detail.HasPayout {
		t.Fatal("detail should report an existing payout")
	}
}

func TestLessonRepository_FailPayout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t, ctx, "lesson_payout_fail")
	defer client.Close()
	repo := NewLessonRepository(client)

	instructorID := uuid.New()
	lesson := seedBookedLesson(t, ctx, client, instructorID, 1)

	result, err := repo.CompleteLesson(ctx, lesson.ID, instructorID, time.Now().UTC())
	if err != nil {
		t.Fatalf("CompleteLesson() error = %v", err)
	}

	failed, err := repo.FailPayout(ctx, result.Payout.ID)
	if err != nil {
		t.Fatalf("FailPayout() error = %v", err)
	}
	if failed.Status != core.PayoutStatusFailed {
		t.Fatalf("payout status = %s, want failed", failed.Status)
	}

	// The lesson stays completed; the failed payout is the record of what happened.
	detail, err := repo.GetLessonDetail(ctx, lesson.ID)
	if err != nil {
		t.Fatalf("GetLessonDetail() error = %v", err)
	}
	if detail.Lesson.Status != core.LessonStatusCompleted {
		t.Fatalf("lesson status = %s, want completed", detail.Lesson.Status)
	}
}

// seedBookedLesson provisions an upfront order with the given lesson count
// and returns its first lesson.
func seedBookedLesson(t *testing.T, ctx context.Context, client *entgenerated.Client, instructorID uuid.UUID, lessonCount int) core.Lesson {
	t.Helper()

	schedule := NewScheduleRepository(client)
	bookings := NewBookingRepository(client)

	slot, err := schedule.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	series, err := schedule.HoldSeries(ctx, core.HoldSeriesParams{SlotID: slot.ID, Weeks: lessonCount})
	if err != nil {
		t.Fatalf("HoldSeries() error = %v", err)
	}

	order, lessons, _ := buildWeeklyOrder(instructorID, *series, int64(lessonCount)*3500)
	order.Mode = core.PaymentModeUpfront
	result, err := bookings.FinalizeOrder(ctx, order, lessons, nil, core.SlotStatusBooked)
	if err != nil {
		t.Fatalf("FinalizeOrder() error = %v", err)
	}
	return result.Lessons[0]
}
