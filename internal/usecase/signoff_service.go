package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

// SignOffService runs the lesson completion and payout pipeline.
type SignOffService struct {
	lessons     core.LessonRepository
	instructors core.InstructorRepository
	processor   core.PaymentProcessor
	notifier    core.Notifier
	logger      *slog.Logger
	now         func() time.Time
}

// NewSignOffService constructs a SignOffService.
func NewSignOffService(
	lessons core.LessonRepository,
	instructors core.InstructorRepository,
	processor core.PaymentProcessor,
	notifier core.Notifier,
	logger *slog.Logger,
) *SignOffService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SignOffService{
		lessons:     lessons,
		instructors: instructors,
		processor:   processor,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *SignOffService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.SignOffService = (*SignOffService)(nil)

// SignOffLesson completes a delivered lesson and pays the instructor out.
// Guards run in a fixed order: the lesson must still be pending, the
// instructor must be able to receive payouts, a weekly lesson must have its
// due paid, and no payout may already exist. The completion transaction
// commits before the external transfer runs; a failed transfer leaves the
// lesson completed and the payout on file as failed.
func (s *SignOffService) SignOffLesson(ctx context.Context, lessonID, instructorID uuid.UUID) (*core.SignOffResult, error) {
	if lessonID == uuid.Nil || instructorID == uuid.Nil {
		return nil, fmt.Errorf("%w: lesson and instructor ids required", core.ErrValidation)
	}

	detail, err := s.lessons.GetLessonDetail(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if detail.Lesson.InstructorID != instructorID {
		return nil, core.ErrNotFound
	}
	if detail.Lesson.Status != core.LessonStatusPending {
		return nil, core.ErrLessonAlreadyCompleted
	}

	instructor, err := s.instructors.Get(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	if !instructor.Onboarded() {
		return nil, core.ErrInstructorNotOnboarded
	}

	if detail.Mode == core.PaymentModeWeekly {
		if detail.Payment == nil || detail.Payment.Status != core.PaymentStatusPaid {
			// A weekly lesson without a due row still owes at the
			// definitional due date, 24 hours before the lesson.
			notReceived := &core.PaymentNotReceivedError{
				DueDate: detail.Lesson.Date.Add(-invoiceLeadTime),
			}
			if detail.Payment != nil {
				notReceived.DueDate = detail.Payment.DueDate
			}
			return nil, notReceived
		}
	}
	if detail.HasPayout {
		return nil, core.ErrPayoutAlreadyProcessed
	}

	now := s.now().UTC()
	result, err := s.lessons.CompleteLesson(ctx, lessonID, instructorID, now)
	if err != nil {
		return nil, err
	}

	transferRef, err := s.processor.CreateTransfer(ctx, core.TransferParams{
		AccountRef:  instructor.AccountRef,
		AmountPence: result.Payout.AmountPence,
		LessonID:    lessonID,
	})
	if err != nil {
		if failed, failErr := s.lessons.FailPayout(ctx, result.Payout.ID); failErr != nil {
			s.logger.ErrorContext(ctx, "record payout failure",
				slog.String("payout_id", result.Payout.ID.String()),
				slog.Any("error", failErr),
			)
		} else {
			result.Payout = *failed
		}
		return nil, &core.TransferFailedError{Reason: err.Error()}
	}

	settled, err := s.lessons.SettlePayout(ctx, result.Payout.ID, transferRef, s.now().UTC())
	if err != nil {
		return nil, err
	}
	result.Payout = *settled

	s.recordActivity(ctx, detail, instructor, result)

	if err := s.notifier.SendFeedbackRequest(ctx, result.Lesson, detail.StudentID, *instructor); err != nil {
		s.logger.WarnContext(ctx, "feedback request not sent",
			slog.String("lesson_id", lessonID.String()),
			slog.Any("error", err),
		)
	}
	return result, nil
}

// recordActivity appends feed entries for both actors. Failures are logged
// and never surfaced to the caller.
func (s *SignOffService) recordActivity(ctx context.Context, detail *core.LessonDetail, instructor *core.Instructor, result *core.SignOffResult) {
	date := result.Lesson.Date.Format("2006-01-02")
	meta := map[string]string{
		"lesson_id": result.Lesson.ID.String(),
		"payout_id": result.Payout.ID.String(),
	}

	entries := []core.ActivityEntry{
		{
			Actor:    core.ActorRef{Kind: core.ActorKindInstructor, ID: instructor.ID},
			Category: "lesson_completed",
			Message:  fmt.Sprintf("Signed off lesson on %s", date),
			Meta:     meta,
		},
		{
			Actor:    core.ActorRef{Kind: core.ActorKindStudent, ID: detail.StudentID},
			Category: "lesson_completed",
			Message:  fmt.Sprintf("Lesson on %s completed by %s", date, instructor.Name),
			Meta:     meta,
		},
	}
	for _, entry := range entries {
		if err := s.instructors.LogActivity(ctx, entry); err != nil {
			s.logger.WarnContext(ctx, "activity entry not recorded",
				slog.String("actor_kind", string(entry.Actor.Kind)),
				slog.Any("error", err),
			)
		}
	}
}
