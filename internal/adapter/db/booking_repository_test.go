package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

func TestBookingRepository_FinalizeOrderWeekly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t, ctx, "booking_finalize")
	defer client.Close()
	schedule := NewScheduleRepository(client)
	repo := NewBookingRepository(client)

	instructorID := uuid.New()
	anchor := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	slot, err := schedule.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         anchor,
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	series, err := schedule.HoldSeries(ctx, core.HoldSeriesParams{SlotID: slot.ID, Weeks: 5})
	if err != nil {
		t.Fatalf("HoldSeries() error = %v", err)
	}

	order, lessons, payments := buildWeeklyOrder(instructorID, *series, 17500)

	result, err := repo.FinalizeOrder(ctx, order, lessons, payments, core.SlotStatusReserved)
	if err != nil {
		t.Fatalf("FinalizeOrder() error = %v", err)
	}
	if result.Order.Status != core.OrderStatusPending {
		t.Fatalf("order status = %s, want pending", result.Order.Status)
	}
	if len(result.Lessons) != 5 {
		t.Fatalf("expected 5 lessons, got %d", len(result.Lessons))
	}

	// Lessons run weekly from the anchor: 10, 17, 24 June, 1, 8 July.
	wantDates := []time.Time{
		time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 17, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 24, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 8, 0, 0, 0, 0, time.UTC),
	}
	for i, lesson := range result.Lessons {
		if !lesson.Date.Equal(wantDates[i]) {
			t.Fatalf("lesson %d date = %v, want %v", i, lesson.Date, wantDates[i])
		}
		if lesson.AmountPence != 3500 {
			t.Fatalf("lesson %d amount = %d, want 3500", i, lesson.AmountPence)
		}
	}

	for _, id := range series.SlotIDs {
		got, err := schedule.GetSlot(ctx, id)
		if err != nil {
			t.Fatalf("GetSlot() error = %v", err)
		}
		if got.Status != core.SlotStatusReserved || got.Available {
			t.Fatalf("slot should be reserved/unavailable, got %s/%v", got.Status, got.Available)
		}
	}

	// Weekly dues land 24 hours before each lesson.
	due, err := repo.ListDuePayments(ctx, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ListDuePayments() error = %v", err)
	}
	if len(due) != 5 {
		t.Fatalf("expected 5 dues, got %d", len(due))
	}
	wantFirstDue := time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC)
	if !due[0].DueDate.Equal(wantFirstDue) {
		t.Fatalf("first due date = %v, want %v", due[0].DueDate, wantFirstDue)
	}
}

func TestBookingRepository_FinalizeOrderAtomic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t, ctx, "booking_atomic")
	defer client.Close()
	schedule := NewScheduleRepository(client)
	repo := NewBookingRepository(client)

	instructorID := uuid.New()
	anchor := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	slot, err := schedule.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         anchor,
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	series, err := schedule.HoldSeries(ctx, core.HoldSeriesParams{SlotID: slot.ID, Weeks: 2})
	if err != nil {
		t.Fatalf("HoldSeries() error = %v", err)
	}

	// Corrupt the series: second slot id points nowhere.
	series.SlotIDs[1] = uuid.New()
	order, lessons, payments := buildWeeklyOrder(instructorID, *series, 7000)

	if _, err := repo.FinalizeOrder(ctx, order, lessons, payments, core.SlotStatusReserved); !errors.Is(err, core.ErrInvalidSeries) {
		t.Fatalf("expected ErrInvalidSeries, got %v", err)
	}

	// Nothing was persisted and the real anchor slot stayed draft.
	if _, err := repo.GetOrder(ctx, order.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected no order persisted, got %v", err)
	}
	got, err := schedule.GetSlot(ctx, slot.ID)
	if err != nil {
		t.Fatalf("GetSlot() error = %v", err)
	}
	if got.Status != core.SlotStatusDraft {
		t.Fatalf("anchor slot should stay draft, got %s", got.Status)
	}
}

func TestBookingRepository_FinalizeOrderRejectsTamperedSeries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t, ctx, "booking_tampered")
	defer client.Close()
	schedule := NewScheduleRepository(client)
	repo := NewBookingRepository(client)

	instructorID := uuid.New()
	anchor := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	slot, err := schedule.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         anchor,
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	series, err := schedule.HoldSeries(ctx, core.HoldSeriesParams{SlotID: slot.ID, Weeks: 2})
	if err != nil {
		t.Fatalf("HoldSeries() error = %v", err)
	}

	cases := []struct {
		name   string
		tamper func(s *core.BookingSeries)
	}{
		{"shifted anchor date", func(s *core.BookingSeries) {
			s.AnchorDate = s.AnchorDate.AddDate(0, 0, 1)
		}},
		{"different interval", func(s *core.BookingSeries) {
			s.StartTime, s.EndTime = "11:00", "12:00"
		}},
		{"foreign instructor", func(s *core.BookingSeries) {
			s.InstructorID = uuid.New()
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tampered := *series
			tampered.SlotIDs = append([]uuid.UUID(nil), series.SlotIDs...)
			tc.tamper(&tampered)

			order, lessons, payments := buildWeeklyOrder(tampered.InstructorID, tampered, 7000)
			if _, err := repo.FinalizeOrder(ctx, order, lessons, payments, core.SlotStatusReserved); !errors.Is(err, core.ErrInvalidSeries) {
				t.Fatalf("expected ErrInvalidSeries, got %v", err)
			}
			if _, err := repo.GetOrder(ctx, order.ID); !errors.Is(err, core.ErrNotFound) {
				t.Fatalf("expected no order persisted, got %v", err)
			}
			got, err := schedule.GetSlot(ctx, slot.ID)
			if err != nil {
				t.Fatalf("GetSlot() error = %v", err)
			}
			if got.Status != core.SlotStatusDraft {
				t.Fatalf("anchor slot should stay draft, got %s", got.Status)
			}
		})
	}

	// The untampered series still finalizes.
	order, lessons, payments := buildWeeklyOrder(instructorID, *series, 7000)
	if _, err := repo.FinalizeOrder(ctx, order, lessons, payments, core.SlotStatusReserved); err != nil {
		t.Fatalf("FinalizeOrder() error = %v", err)
	}
}

func TestBookingRepository_ActivateOrderIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t, ctx, "booking_activate")
	defer client.Close()
	schedule := NewScheduleRepository(client)
	repo := NewBookingRepository(client)

	instructorID := uuid.New()
	slot, err := schedule.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	series, err := schedule.HoldSeries(ctx, core.HoldSeriesParams{SlotID: slot.ID, Weeks: 1})
	if err != nil {
		t.Fatalf("HoldSeries() error = %v", err)
	}

	order, lessons, _ := buildWeeklyOrder(instructorID, *series, 3500)
	order.Mode = core.PaymentModeUpfront
	if _, err := repo.FinalizeOrder(ctx, order, lessons, nil, core.SlotStatusBooked); err != nil {
		t.Fatalf("FinalizeOrder() error = %v", err)
	}

	activated, err := repo.ActivateOrder(ctx, order.ID, "pay_123")
	if err != nil {
		t.Fatalf("ActivateOrder() error = %v", err)
	}
	if activated.Status != core.OrderStatusActive || activated.PaymentRef != "pay_123" {
		t.Fatalf("unexpected order after activation: %+v", activated)
	}

	// Replay keeps the original payment reference.
	again, err := repo.ActivateOrder(ctx, order.ID, "pay_456")
	if err != nil {
		t.Fatalf("ActivateOrder() replay error = %v", err)
	}
	if again.Status != core.OrderStatusActive || again.PaymentRef != "pay_123" {
		t.Fatalf("replay should be a no-op, got %+v", again)
	}
}

func TestBookingRepository_InvoiceLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t, ctx, "booking_invoice")
	defer client.Close()
	schedule := NewScheduleRepository(client)
	repo := NewBookingRepository(client)

	instructorID := uuid.New()
	slot, err := schedule.CreateSlot(ctx, core.CreateSlotParams{
		InstructorID: instructorID,
		Date:         time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	series, err := schedule.HoldSeries(ctx, core.HoldSeriesParams{SlotID: slot.ID, Weeks: 1})
	if err != nil {
		t.Fatalf("HoldSeries() error = %v", err)
	}

	order, lessons, payments := buildWeeklyOrder(instructorID, *series, 3500)
	if _, err := repo.FinalizeOrder(ctx, order, lessons, payments, core.SlotStatusReserved); err != nil {
		t.Fatalf("FinalizeOrder() error = %v", err)
	}

	due, err := repo.ListDuePayments(ctx, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ListDuePayments() error = %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("expected 1 due, got %d", len(due))
	}

	if err := repo.SetInvoiceRef(ctx, due[0].ID, "in_abc"); err != nil {
		t.Fatalf("SetInvoiceRef() error = %v", err)
	}

	// An invoiced due is no longer listed.
	due, err = repo.ListDuePayments(ctx, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ListDuePayments() error = %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("invoiced due should not be listed, got %d", len(due))
	}

	paidAt := time.Date(2026, 6, 9, 12, 0, 0, 0, time.UTC)
	paid, err := repo.MarkInvoicePaid(ctx, "in_abc", paidAt)
	if err != nil {
		t.Fatalf("MarkInvoicePaid() error = %v", err)
	}
	if paid.Status != core.PaymentStatusPaid || paid.PaidAt == nil || !paid.PaidAt.Equal(paidAt) {
		t.Fatalf("unexpected payment after settle: %+v", paid)
	}

	if _, err := repo.MarkInvoicePaid(ctx, "in_unknown", paidAt); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown invoice, got %v", err)
	}
}

// buildWeeklyOrder assembles the structs FinalizeOrder persists, priced by
// floor division with weekly dues 24 hours ahead of each lesson.
func buildWeeklyOrder(instructorID uuid.UUID, series core.BookingSeries, totalPence int64) (core.Order, []core.Lesson, []core.LessonPayment) {
	count := len(series.SlotIDs)
	perLesson := totalPence / int64(count)

	order := core.Order{
		ID:           uuid.New(),
		StudentID:    uuid.New(),
		InstructorID: instructorID,
		Package: core.PackageSnapshot{
			Name:             "Weekly package",
			TotalPricePence:  totalPence,
			LessonPricePence: perLesson,
			LessonCount:      count,
		},
		Mode:   core.PaymentModeWeekly,
		Status: core.OrderStatusPending,
	}

	lessons := make([]core.Lesson, 0, count)
	payments := make([]core.LessonPayment, 0, count)
	for i, slotID := range series.SlotIDs {
		id := slotID
		lessonID := uuid.New()
		date := series.AnchorDate.AddDate(0, 0, 7*i)
		lessons = append(lessons, core.Lesson{
			ID:           lessonID,
			OrderID:      order.ID,
			InstructorID: instructorID,
			SlotID:       &id,
			Date:         date,
			StartTime:    series.StartTime,
			EndTime:      series.EndTime,
			AmountPence:  perLesson,
		})
		payments = append(payments, core.LessonPayment{
			LessonID:    lessonID,
			AmountPence: perLesson,
			DueDate:     date.Add(-24 * time.Hour),
		})
	}
	return order, lessons, payments
}
