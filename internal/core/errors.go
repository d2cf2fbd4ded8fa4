package core

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound indicates the referenced slot, order, lesson or payment does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation represents user input validation failures.
	ErrValidation = errors.New("validation error")
	// ErrSlotOverlap indicates a slot interval collides with an existing slot on the same day.
	ErrSlotOverlap = errors.New("time slot overlaps an existing slot")
	// ErrSlotHasLessons indicates a slot cannot be deleted while lessons reference it.
	ErrSlotHasLessons = errors.New("time slot has booked lessons")
	// ErrSlotUnavailable indicates a slot cannot be held because it is no longer open.
	ErrSlotUnavailable = errors.New("time slot is no longer available")
	// ErrInvalidSeries indicates a booking series references slots that are missing or not held as draft.
	ErrInvalidSeries = errors.New("booking series is not confirmable")
	// ErrLessonAlreadyCompleted indicates a sign-off was attempted on a non-pending lesson.
	ErrLessonAlreadyCompleted = errors.New("lesson already completed")
	// ErrInstructorNotOnboarded indicates the instructor has not finished payment onboarding
	// or is not payout-eligible.
	ErrInstructorNotOnboarded = errors.New("instructor has not completed payout onboarding")
	// ErrPaymentNotReceived indicates a weekly lesson payment is still outstanding.
	ErrPaymentNotReceived = errors.New("lesson payment not received")
	// ErrPayoutAlreadyProcessed indicates the lesson already owns a payout.
	ErrPayoutAlreadyProcessed = errors.New("payout already processed for lesson")
	// ErrTransferFailed indicates the external payout transfer was rejected.
	ErrTransferFailed = errors.New("payout transfer failed")
)

// PaymentNotReceivedError reports an outstanding weekly payment together with
// its due date so callers can surface it to the instructor.
type PaymentNotReceivedError struct {
	DueDate time.Time
}

func (e *PaymentNotReceivedError) Error() string {
	return fmt.Sprintf("lesson payment not received, due %s", e.DueDate.Format("02 Jan 2006"))
}

func (e *PaymentNotReceivedError) Unwrap() error { return ErrPaymentNotReceived }

// TransferFailedError carries the processor's rejection reason. The lesson
// completion that preceded the transfer is already committed when this error
// is returned; only the payout is marked failed.
type TransferFailedError struct {
	Reason string
}

func (e *TransferFailedError) Error() string {
	return fmt.Sprintf("payout transfer failed: %s", e.Reason)
}

func (e *TransferFailedError) Unwrap() error { return ErrTransferFailed }
