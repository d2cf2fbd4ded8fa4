package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/drivekit/drivekit/internal/adapter/db/ent/generated"
	entday "github.com/drivekit/drivekit/internal/adapter/db/ent/generated/calendarday"
	entlesson "github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	entslot "github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/drivekit/drivekit/internal/core"
)

// ScheduleRepository persists calendar days and time slots using Ent.
// Overlap checks and series holds run inside transactions so that concurrent
// claims on the same interval serialize at the storage layer.
type ScheduleRepository struct {
	client *entgenerated.Client
}

// NewScheduleRepository constructs an Ent-backed schedule repository.
func NewScheduleRepository(client *entgenerated.Client) *ScheduleRepository {
	return &ScheduleRepository{client: client}
}

var _ core.ScheduleRepository = (*ScheduleRepository)(nil)

// CreateSlot inserts a new open slot, finding or creating the calendar day
// for (instructor, date) and rejecting intervals that overlap any existing
// slot on that day regardless of its status.
func (r *ScheduleRepository) CreateSlot(ctx context.Context, params core.CreateSlotParams) (*core.TimeSlot, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	date := dateOnly(params.Date)

	day, err := findOrCreateDay(ctx, tx, params.InstructorID, date)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	conflict, err := tx.TimeSlot.Query().
		Where(
			entslot.DayIDEQ(day.ID),
			entslot.StartTimeLT(params.EndTime),
			entslot.EndTimeGT(params.StartTime),
		).
		Exist(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if conflict {
		_ = tx.Rollback()
		return nil, core.ErrSlotOverlap
	}

	row, err := tx.TimeSlot.Create().
		SetDayID(day.ID).
		SetInstructorID(params.InstructorID).
		SetDate(date).
		SetStartTime(params.StartTime).
		SetEndTime(params.EndTime).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return toDomainSlot(row), nil
}

// GetSlot fetches a slot by id.
func (r *ScheduleRepository) GetSlot(ctx context.Context, id uuid.UUID) (*core.TimeSlot, error) {
	row, err := r.client.TimeSlot.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainSlot(row), nil
}

// DeleteSlot removes a slot that no lesson references, garbage-collecting
// the owning day when it becomes empty.
func (r *ScheduleRepository) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	row, err := tx.TimeSlot.Get(ctx, id)
	if err != nil {
		_ = tx.Rollback()
		if entgenerated.IsNotFound(err) {
			return core.ErrNotFound
		}
		return err
	}

	booked, err := tx.Lesson.Query().
		Where(entlesson.SlotIDEQ(id)).
		Exist(ctx)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if booked {
		_ = tx.Rollback()
		return core.ErrSlotHasLessons
	}

	if err := tx.TimeSlot.DeleteOneID(id).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := collectEmptyDay(ctx, tx, row.DayID); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// MoveSlot reschedules a slot, reassigning it to the destination day when the
// date changes and re-validating the overlap rule there excluding itself.
func (r *ScheduleRepository) MoveSlot(ctx context.Context, params core.MoveSlotParams) (*core.TimeSlot, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	row, err := tx.TimeSlot.Get(ctx, params.SlotID)
	if err != nil {
		_ = tx.Rollback()
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}

	date := dateOnly(params.Date)
	originDayID := row.DayID
	destDayID := originDayID

	if !row.Date.Equal(date) {
		destDay, err := findOrCreateDay(ctx, tx, row.InstructorID, date)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		destDayID = destDay.ID
	}

	conflict, err := tx.TimeSlot.Query().
		Where(
			entslot.DayIDEQ(destDayID),
			entslot.IDNEQ(params.SlotID),
			entslot.StartTimeLT(params.EndTime),
			entslot.EndTimeGT(params.StartTime),
		).
		Exist(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if conflict {
		_ = tx.Rollback()
		return nil, core.ErrSlotOverlap
	}

	update := tx.TimeSlot.UpdateOneID(params.SlotID).
		SetDayID(destDayID).
		SetDate(date).
		SetStartTime(params.StartTime).
		SetEndTime(params.EndTime)
	if params.Available != nil {
		update.SetIsAvailable(*params.Available)
	}

	row, err = update.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if destDayID != originDayID {
		if err := collectEmptyDay(ctx, tx, originDayID); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return toDomainSlot(row), nil
}

// ListOpenSlots returns the instructor's days within [from, to] with their
// open, available slots ordered by start time. Days whose slots are all
// claimed still appear, with an empty slot list.
func (r *ScheduleRepository) ListOpenSlots(ctx context.Context, instructorID uuid.UUID, from, to time.Time) ([]core.DayAvailability, error) {
	rows, err := r.client.CalendarDay.Query().
		Where(
			entday.InstructorIDEQ(instructorID),
			entday.DateGTE(dateOnly(from)),
			entday.DateLTE(dateOnly(to)),
		).
		WithSlots(func(sq *entgenerated.TimeSlotQuery) {
			sq.Where(
				entslot.IsAvailable(true),
				entslot.StatusEQ(string(core.SlotStatusOpen)),
			).
				Order(entslot.ByStartTime())
		}).
		Order(entday.ByDate()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(day *entgenerated.CalendarDay, _ int) core.DayAvailability {
		return core.DayAvailability{
			Date: day.Date,
			Slots: lo.Map(day.Edges.Slots, func(s *entgenerated.TimeSlot, _ int) core.TimeSlot {
				return *toDomainSlot(s)
			}),
		}
	}), nil
}

// HoldSeries claims the chosen slot as a draft and synthesizes draft slots
// for the remaining weeks of the series. Exactly one of two racing holds on
// the same slot succeeds; the loser sees ErrSlotUnavailable.
func (r *ScheduleRepository) HoldSeries(ctx context.Context, params core.HoldSeriesParams) (*core.BookingSeries, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	claimed, err := tx.TimeSlot.Update().
		Where(
			entslot.IDEQ(params.SlotID),
			entslot.StatusEQ(string(core.SlotStatusOpen)),
			entslot.IsAvailable(true),
		).
		SetStatus(string(core.SlotStatusDraft)).
		SetIsAvailable(false).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if claimed == 0 {
		exists, existErr := tx.TimeSlot.Query().Where(entslot.IDEQ(params.SlotID)).Exist(ctx)
		_ = tx.Rollback()
		if existErr != nil {
			return nil, existErr
		}
		if !exists {
			return nil, core.ErrNotFound
		}
		return nil, core.ErrSlotUnavailable
	}

	anchor, err := tx.TimeSlot.Get(ctx, params.SlotID)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	series := &core.BookingSeries{
		InstructorID: anchor.InstructorID,
		AnchorDate:   anchor.Date,
		StartTime:    anchor.StartTime,
		EndTime:      anchor.EndTime,
		SlotIDs:      []uuid.UUID{anchor.ID},
	}

	for week := 1; week < params.Weeks; week++ {
		date := anchor.Date.AddDate(0, 0, 7*week)

		day, err := findOrCreateDay(ctx, tx, anchor.InstructorID, date)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}

		conflict, err := tx.TimeSlot.Query().
			Where(
				entslot.DayIDEQ(day.ID),
				entslot.StartTimeLT(anchor.EndTime),
				entslot.EndTimeGT(anchor.StartTime),
			).
			Exist(ctx)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		if conflict {
			_ = tx.Rollback()
			return nil, core.ErrSlotOverlap
		}

		row, err := tx.TimeSlot.Create().
			SetDayID(day.ID).
			SetInstructorID(anchor.InstructorID).
			SetDate(date).
			SetStartTime(anchor.StartTime).
			SetEndTime(anchor.EndTime).
			SetStatus(string(core.SlotStatusDraft)).
			SetIsAvailable(false).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		series.SlotIDs = append(series.SlotIDs, row.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return series, nil
}

// SweepDrafts deletes draft slots created before the cutoff and removes any
// days left empty. Returns the number of slots deleted.
func (r *ScheduleRepository) SweepDrafts(ctx context.Context, cutoff time.Time) (int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, err
	}

	n, err := tx.TimeSlot.Delete().
		Where(
			entslot.StatusEQ(string(core.SlotStatusDraft)),
			entslot.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	if _, err := tx.CalendarDay.Delete().
		Where(entday.Not(entday.HasSlots())).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

func findOrCreateDay(ctx context.Context, tx *entgenerated.Tx, instructorID uuid.UUID, date time.Time) (*entgenerated.CalendarDay, error) {
	day, err := tx.CalendarDay.Query().
		Where(
			entday.InstructorIDEQ(instructorID),
			entday.DateEQ(date),
		).
		Only(ctx)
	if err == nil {
		return day, nil
	}
	if !entgenerated.IsNotFound(err) {
		return nil, err
	}

	return tx.CalendarDay.Create().
		SetInstructorID(instructorID).
		SetDate(date).
		Save(ctx)
}

func collectEmptyDay(ctx context.Context, tx *entgenerated.Tx, dayID uuid.UUID) error {
	remaining, err := tx.TimeSlot.Query().
		Where(entslot.DayIDEQ(dayID)).
		Exist(ctx)
	if err != nil {
		return err
	}
	if remaining {
		return nil
	}
	return tx.CalendarDay.DeleteOneID(dayID).Exec(ctx)
}

func toDomainSlot(row *entgenerated.TimeSlot) *core.TimeSlot {
	if row == nil {
		return nil
	}
	return &core.TimeSlot{
		ID:           row.ID,
		DayID:        row.DayID,
		InstructorID: row.InstructorID,
		Date:         row.Date,
		StartTime:    row.StartTime,
		EndTime:      row.EndTime,
		Available:    row.IsAvailable,
		Status:       core.SlotStatus(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
