package db

import (
	"context"
	"time"

	"github.com/google/uuid"

	entgenerated "github.com/drivekit/drivekit/internal/adapter/db/ent/generated"
	entlesson "github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	entslot "github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/drivekit/drivekit/internal/core"
)

// LessonRepository persists the sign-off pipeline using Ent.
type LessonRepository struct {
	client *entgenerated.Client
}

// NewLessonRepository constructs an Ent-backed lesson repository.
func NewLessonRepository(client *entgenerated.Client) *LessonRepository {
	return &LessonRepository{client: client}
}

var _ core.LessonRepository = (*LessonRepository)(nil)

// GetLessonDetail loads a lesson with the context the sign-off guards need:
// its order's payment mode, the weekly due when one exists, and whether a
// payout is already on file.
func (r *LessonRepository) GetLessonDetail(ctx context.Context, lessonID uuid.UUID) (*core.LessonDetail, error) {
	row, err := r.client.Lesson.Query().
		Where(entlesson.IDEQ(lessonID)).
		WithOrder().
		WithPayment().
		WithPayout().
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}

	detail := &core.LessonDetail{
		Lesson:    *toDomainLesson(row),
		HasPayout: row.Edges.Payout != nil,
	}
	if row.Edges.Order != nil {
		detail.StudentID = row.Edges.Order.StudentID
		detail.Mode = core.PaymentMode(row.Edges.Order.PaymentMode)
	}
	if row.Edges.Payment != nil {
		detail.Payment = toDomainPayment(row.Edges.Payment)
	}
	return detail, nil
}

// CompleteLesson runs the sign-off transaction: the lesson moves from pending
// to completed exactly once, its slot is marked completed when it still
// exists, a pending payout is inserted under the one-payout-per-lesson
// constraint, and the order flips to completed when no pending lessons
// remain. The external transfer is never part of this transaction.
func (r *LessonRepository) CompleteLesson(ctx context.Context, lessonID, instructorID uuid.UUID, now time.Time) (*core.SignOffResult, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	claimed, err := tx.Lesson.Update().
		Where(
			entlesson.IDEQ(lessonID),
			entlesson.InstructorIDEQ(instructorID),
			entlesson.StatusEQ(string(core.LessonStatusPending)),
		).
		SetStatus(string(core.LessonStatusCompleted)).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if claimed == 0 {
		_ = tx.Rollback()
		exists, err := r.client.Lesson.Query().
			Where(entlesson.IDEQ(lessonID), entlesson.InstructorIDEQ(instructorID)).
			Exist(ctx)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, core.ErrNotFound
		}
		return nil, core.ErrLessonAlreadyCompleted
	}

	lessonRow, err := tx.Lesson.Get(ctx, lessonID)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	// A slot removed after booking is tolerated: the lesson record carries
	// its own copy of the schedule.
	if lessonRow.SlotID != nil {
		if _, err := tx.TimeSlot.Update().
			Where(entslot.IDEQ(*lessonRow.SlotID)).
			SetStatus(string(core.SlotStatusCompleted)).
			Save(ctx); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}

	payoutRow, err := tx.Payout.Create().
		SetLessonID(lessonID).
		SetInstructorID(instructorID).
		SetAmountPence(lessonRow.AmountPence).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if entgenerated.IsConstraintError(err) {
			return nil, core.ErrPayoutAlreadyProcessed
		}
		return nil, err
	}

	pendingLeft, err := tx.Lesson.Query().
		Where(
			entlesson.OrderIDEQ(lessonRow.OrderID),
			entlesson.StatusEQ(string(core.LessonStatusPending)),
		).
		Exist(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	orderCompleted := false
	if !pendingLeft {
		if err := tx.Order.UpdateOneID(lessonRow.OrderID).
			SetStatus(string(core.OrderStatusCompleted)).
			Exec(ctx); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		orderCompleted = true
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &core.SignOffResult{
		Lesson:         *toDomainLesson(lessonRow),
		Payout:         *toDomainPayout(payoutRow),
		OrderCompleted: orderCompleted,
	}, nil
}

// SettlePayout records a successful transfer against a pending payout.
func (r *LessonRepository) SettlePayout(ctx context.Context, payoutID uuid.UUID, transferRef string, paidAt time.Time) (*core.Payout, error) {
	row, err := r.client.Payout.UpdateOneID(payoutID).
		SetStatus(string(core.PayoutStatusPaid)).
		SetTransferRef(transferRef).
		SetPaidAt(paidAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainPayout(row), nil
}

// FailPayout records a transfer failure. The payout stays on file as the
// failure record; the lesson remains completed.
func (r *LessonRepository) FailPayout(ctx context.Context, payoutID uuid.UUID) (*core.Payout, error) {
	row, err := r.client.Payout.UpdateOneID(payoutID).
		SetStatus(string(core.PayoutStatusFailed)).
		Save(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainPayout(row), nil
}

func toDomainPayout(row *entgenerated.Payout) *core.Payout {
	if row == nil {
		return nil
	}
	payout := &core.Payout{
		ID:           row.ID,
		LessonID:     row.LessonID,
		InstructorID: row.InstructorID,
		AmountPence:  row.AmountPence,
		Status:       core.PayoutStatus(row.Status),
		TransferRef:  row.TransferRef,
		CreatedAt:    row.CreatedAt,
	}
	if row.PaidAt != nil {
		t := *row.PaidAt
		payout.PaidAt = &t
	}
	return payout
}
