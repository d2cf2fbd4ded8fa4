package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PayoutStatus is the state of one instructor transfer.
type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "pending"
	PayoutStatusPaid    PayoutStatus = "paid"
	PayoutStatusFailed  PayoutStatus = "failed"
)

// Valid reports whether the status is known.
func (s PayoutStatus) Valid() bool {
	switch s {
	case PayoutStatusPending, PayoutStatusPaid, PayoutStatusFailed:
		return true
	}
	return false
}

// Payout is the transfer record for one completed lesson. At most one payout
// ever exists per lesson; a failed payout stays on file as the failure record.
type Payout struct {
	ID           uuid.UUID
	LessonID     uuid.UUID
	InstructorID uuid.UUID
	AmountPence  int64
	Status       PayoutStatus
	TransferRef  string
	PaidAt       *time.Time
	CreatedAt    time.Time
}

// LessonDetail is the loaded view the sign-off pipeline runs its guards
// against: the lesson, its order's payment mode and status, the weekly due
// when one exists, and whether a payout already exists.
type LessonDetail struct {
	Lesson    Lesson
	StudentID uuid.UUID
	Mode      PaymentMode
	Payment   *LessonPayment
	HasPayout bool
}

// SignOffResult is the outcome of a committed sign-off transaction. Payout is
// pending at commit time and settles (or fails) once the external transfer
// returns.
type SignOffResult struct {
	Lesson         Lesson
	Payout         Payout
	OrderCompleted bool
}

// LessonRepository persists the sign-off pipeline. CompleteLesson is one
// tight transaction: lesson completed, slot completed (no-op when the slot is
// gone), pending payout inserted under the one-payout-per-lesson constraint,
// and the order completion recomputed. The external transfer happens after
// commit; SettlePayout and FailPayout record its outcome.
type LessonRepository interface {
	GetLessonDetail(ctx context.Context, lessonID uuid.UUID) (*LessonDetail, error)
	CompleteLesson(ctx context.Context, lessonID, instructorID uuid.UUID, now time.Time) (*SignOffResult, error)
	SettlePayout(ctx context.Context, payoutID uuid.UUID, transferRef string, paidAt time.Time) (*Payout, error)
	FailPayout(ctx context.Context, payoutID uuid.UUID) (*Payout, error)
}

// SignOffService exposes the lesson completion and payout use case.
type SignOffService interface {
	SignOffLesson(ctx context.Context, lessonID, instructorID uuid.UUID) (*SignOffResult, error)
}
