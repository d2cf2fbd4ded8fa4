package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

func onboardedInstructor(id uuid.UUID) *core.Instructor {
	return &core.Instructor{
		ID:                 id,
		Name:               "Pat Instructor",
		AccountRef:         "acct_1",
		OnboardingComplete: true,
		ChargesEnabled:     true,
		PayoutsEnabled:     true,
	}
}

func pendingDetail(lessonID, instructorID uuid.UUID, mode core.PaymentMode) *core.LessonDetail {
	return &core.LessonDetail{
		Lesson: core.Lesson{
			ID:           lessonID,
			InstructorID: instructorID,
			Date:         time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			AmountPence:  3500,
			Status:       core.LessonStatusPending,
		},
		StudentID: uuid.New(),
		Mode:      mode,
	}
}

func TestSignOffService_Success(t *testing.T) {
	lessonID := uuid.New()
	instructorID := uuid.New()
	payoutID := uuid.New()

	var transferred core.TransferParams
	var activities []core.ActivityEntry
	notified := false

	lessons := &stubLessonRepo{
		getLessonDetailFn: func(ctx context.Context, id uuid.UUID) (*core.LessonDetail, error) {
			return pendingDetail(lessonID, instructorID, core.PaymentModeUpfront), nil
		},
		completeLessonFn: func(ctx context.Context, id, instructor uuid.UUID, now time.Time) (*core.SignOffResult, error) {
			return &core.SignOffResult{
				Lesson: core.Lesson{ID: lessonID, InstructorID: instructorID, Status: core.LessonStatusCompleted, Date: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)},
				Payout: core.Payout{ID: payoutID, LessonID: lessonID, AmountPence: 3500, Status: core.PayoutStatusPending},
			}, nil
		},
		settlePayoutFn: func(ctx context.Context, id uuid.UUID, transferRef string, paidAt time.Time) (*core.Payout, error) {
			return &core.Payout{ID: id, LessonID: lessonID, AmountPence: 3500, Status: core.PayoutStatusPaid, TransferRef: transferRef}, nil
		},
	}
	instructors := &stubInstructorRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Instructor, error) {
			return onboardedInstructor(instructorID), nil
		},
		logActivityFn: func(ctx context.Context, entry core.ActivityEntry) error {
			activities = append(activities, entry)
			return nil
		},
	}
	processor := &stubProcessor{
		createTransferFn: func(ctx context.Context, params core.TransferParams) (string, error) {
			transferred = params
			return "tr_99", nil
		},
	}
	notifier := notifierFunc(func(ctx context.Context, lesson core.Lesson, studentID uuid.UUID, instructor core.Instructor) error {
		notified = true
		return nil
	})

	service := NewSignOffService(lessons, instructors, processor, notifier, nil)

	result, err := service.SignOffLesson(context.Background(), lessonID, instructorID)
	if err != nil {
		t.Fatalf("SignOffLesson() error = %v", err)
	}
	if result.Payout.Status != core.PayoutStatusPaid || result.Payout.TransferRef != "tr_99" {
		t.Fatalf("unexpected payout: %+v", result.Payout)
	}
	if transferred.AccountRef != "acct_1" || transferred.AmountPence != 3500 {
		t.Fatalf("unexpected transfer params: %+v", transferred)
	}
	if len(activities) != 2 {
		t.Fatalf("expected 2 activity entries, got %d", len(activities))
	}
	if activities[0].Actor.Kind != core.ActorKindInstructor || activities[1].Actor.Kind != core.ActorKindStudent {
		t.Fatalf("unexpected actor kinds: %s, %s", activities[0].Actor.Kind, activities[1].Actor.Kind)
	}
	if !notified {
		t.Fatal("feedback request was not sent")
	}
}

func TestSignOffService_Preconditions(t *testing.T) {
	lessonID := uuid.New()
	instructorID := uuid.New()

	cases := []struct {
		name       string
		detail     func() *core.LessonDetail
		instructor func() *core.Instructor
		wantErr    error
	}{
		{
			"already completed",
			func() *core.LessonDetail {
				d := pendingDetail(lessonID, instructorID, core.PaymentModeUpfront)
				d.Lesson.Status = core.LessonStatusCompleted
				return d
			},
			func() *core.Instructor { return onboardedInstructor(instructorID) },
			core.ErrLessonAlreadyCompleted,
		},
		{
			"not onboarded",
			func() *core.LessonDetail { return pendingDetail(lessonID, instructorID, core.PaymentModeUpfront) },
			func() *core.Instructor {
				i := onboardedInstructor(instructorID)
				i.PayoutsEnabled = false
				return i
			},
			core.ErrInstructorNotOnboarded,
		},
		{
			"weekly payment outstanding",
			func() *core.LessonDetail {
				d := pendingDetail(lessonID, instructorID, core.PaymentModeWeekly)
				d.Payment = &core.LessonPayment{Status: core.PaymentStatusDue, DueDate: time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC)}
				return d
			},
			func() *core.Instructor { return onboardedInstructor(instructorID) },
			core.ErrPaymentNotReceived,
		},
		{
			"payout exists",
			func() *core.LessonDetail {
				d := pendingDetail(lessonID, instructorID, core.PaymentModeUpfront)
				d.HasPayout = true
				return d
			},
			func() *core.Instructor { return onboardedInstructor(instructorID) },
			core.ErrPayoutAlreadyProcessed,
		},
	}

	for _, tc := range cases {
		lessons := &stubLessonRepo{
			getLessonDetailFn: func(ctx context.Context, id uuid.UUID) (*core.LessonDetail, error) {
				return tc.detail(), nil
			},
			completeLessonFn: func(ctx context.Context, id, instructor uuid.UUID, now time.Time) (*core.SignOffResult, error) {
				return nil, errors.New("should not be called")
			},
		}
		instructors := &stubInstructorRepo{
			getFn: func(ctx context.Context, id uuid.UUID) (*core.Instructor, error) {
				return tc.instructor(), nil
			},
		}
		service := NewSignOffService(lessons, instructors, &stubProcessor{}, notifierFunc(nil), nil)

		_, err := service.SignOffLesson(context.Background(), lessonID, instructorID)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestSignOffService_PaymentNotReceivedCarriesDueDate(t *testing.T) {
	lessonID := uuid.New()
	instructorID := uuid.New()
	dueDate := time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC)

	lessons := &stubLessonRepo{
		getLessonDetailFn: func(ctx context.Context, id uuid.UUID) (*core.LessonDetail, error) {
			d := pendingDetail(lessonID, instructorID, core.PaymentModeWeekly)
			d.Payment = &core.LessonPayment{Status: core.PaymentStatusDue, DueDate: dueDate}
			return d, nil
		},
	}
	instructors := &stubInstructorRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Instructor, error) {
			return onboardedInstructor(instructorID), nil
		},
	}
	service := NewSignOffService(lessons, instructors, &stubProcessor{}, notifierFunc(nil), nil)

	_, err := service.SignOffLesson(context.Background(), lessonID, instructorID)
	var notReceived *core.PaymentNotReceivedError
	if !errors.As(err, &notReceived) {
		t.Fatalf("expected PaymentNotReceivedError, got %v", err)
	}
	if !notReceived.DueDate.Equal(dueDate) {
		t.Fatalf("due date = %v, want %v", notReceived.DueDate, dueDate)
	}
}

func TestSignOffService_PaymentNotReceivedWithoutDueRow(t *testing.T) {
	lessonID := uuid.New()
	instructorID := uuid.New()

	lessons := &stubLessonRepo{
		getLessonDetailFn: func(ctx context.Context, id uuid.UUID) (*core.LessonDetail, error) {
			// Weekly lesson with no payment row at all.
			return pendingDetail(lessonID, instructorID, core.PaymentModeWeekly), nil
		},
	}
	instructors := &stubInstructorRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Instructor, error) {
			return onboardedInstructor(instructorID), nil
		},
	}
	service := NewSignOffService(lessons, instructors, &stubProcessor{}, notifierFunc(nil), nil)

	_, err := service.SignOffLesson(context.Background(), lessonID, instructorID)
	var notReceived *core.PaymentNotReceivedError
	if !errors.As(err, &notReceived) {
		t.Fatalf("expected PaymentNotReceivedError, got %v", err)
	}
	// Falls back to 24 hours before the lesson.
	want := time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC)
	if !notReceived.DueDate.Equal(want) {
		t.Fatalf("due date = %v, want %v", notReceived.DueDate, want)
	}
}

func TestSignOffService_TransferFailureLeavesLessonCompleted(t *testing.T) {
	lessonID := uuid.New()
	instructorID := uuid.New()
	payoutID := uuid.New()

	completed := false
	failed := false
	settled := false

	lessons := &stubLessonRepo{
		getLessonDetailFn: func(ctx context.Context, id uuid.UUID) (*core.LessonDetail, error) {
			return pendingDetail(lessonID, instructorID, core.PaymentModeUpfront), nil
		},
		completeLessonFn: func(ctx context.Context, id, instructor uuid.UUID, now time.Time) (*core.SignOffResult, error) {
			completed = true
			return &core.SignOffResult{
				Lesson: core.Lesson{ID: lessonID, Status: core.LessonStatusCompleted},
				Payout: core.Payout{ID: payoutID, Status: core.PayoutStatusPending, AmountPence: 3500},
			}, nil
		},
		failPayoutFn: func(ctx context.Context, id uuid.UUID) (*core.Payout, error) {
			failed = true
			return &core.Payout{ID: id, Status: core.PayoutStatusFailed}, nil
		},
		settlePayoutFn: func(ctx context.Context, id uuid.UUID, transferRef string, paidAt time.Time) (*core.Payout, error) {
			settled = true
			return nil, errors.New("should not be called")
		},
	}
	instructors := &stubInstructorRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Instructor, error) {
			return onboardedInstructor(instructorID), nil
		},
	}
	processor := &stubProcessor{
		createTransferFn: func(ctx context.Context, params core.TransferParams) (string, error) {
			return "", errors.New("gateway said no")
		},
	}
	service := NewSignOffService(lessons, instructors, processor, notifierFunc(nil), nil)

	_, err := service.SignOffLesson(context.Background(), lessonID, instructorID)
	var transferErr *core.TransferFailedError
	if !errors.As(err, &transferErr) {
		t.Fatalf("expected TransferFailedError, got %v", err)
	}
	if !completed {
		t.Fatal("completion transaction should have run before the transfer")
	}
	if !failed {
		t.Fatal("payout should be marked failed")
	}
	if settled {
		t.Fatal("payout must not be settled after a failed transfer")
	}
}

type stubLessonRepo struct {
	getLessonDetailFn func(ctx context.Context, lessonID uuid.UUID) (*core.LessonDetail, error)
	completeLessonFn  func(ctx context.Context, lessonID, instructorID uuid.UUID, now time.Time) (*core.SignOffResult, error)
	settlePayoutFn    func(ctx context.Context, payoutID uuid.UUID, transferRef string, paidAt time.Time) (*core.Payout, error)
	failPayoutFn      func(ctx context.Context, payoutID uuid.UUID) (*core.Payout, error)
}

func (s *stubLessonRepo) GetLessonDetail(ctx context.Context, lessonID uuid.UUID) (*core.LessonDetail, error) {
	if s.getLessonDetailFn != nil {
		return s.getLessonDetailFn(ctx, lessonID)
	}
	return nil, core.ErrNotFound
}

func (s *stubLessonRepo) CompleteLesson(ctx context.Context, lessonID, instructorID uuid.UUID, now time.Time) (*core.SignOffResult, error) {
	if s.completeLessonFn != nil {
		return s.completeLessonFn(ctx, lessonID, instructorID, now)
	}
	return nil, nil
}

func (s *stubLessonRepo) SettlePayout(ctx context.Context, payoutID uuid.UUID, transferRef string, paidAt time.Time) (*core.Payout, error) {
	if s.settlePayoutFn != nil {
		return s.settlePayoutFn(ctx, payoutID, transferRef, paidAt)
	}
	return &core.Payout{ID: payoutID, Status: core.PayoutStatusPaid, TransferRef: transferRef}, nil
}

func (s *stubLessonRepo) FailPayout(ctx context.Context, payoutID uuid.UUID) (*core.Payout, error) {
	if s.failPayoutFn != nil {
		return s.failPayoutFn(ctx, payoutID)
	}
	return &core.Payout{ID: payoutID, Status: core.PayoutStatusFailed}, nil
}

type stubInstructorRepo struct {
	getFn                 func(ctx context.Context, id uuid.UUID) (*core.Instructor, error)
	createFn              func(ctx context.Context, instructor core.Instructor) (*core.Instructor, error)
	getByAccountRefFn     func(ctx context.Context, ref string) (*core.Instructor, error)
	setAccountRefFn       func(ctx context.Context, id uuid.UUID, ref string) error
	updateAccountStatusFn func(ctx context.Context, id uuid.UUID, onboardingComplete, chargesEnabled, payoutsEnabled bool) error
	logActivityFn         func(ctx context.Context, entry core.ActivityEntry) error
}

func (s *stubInstructorRepo) Get(ctx context.Context, id uuid.UUID) (*core.Instructor, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubInstructorRepo) Create(ctx context.Context, instructor core.Instructor) (*core.Instructor, error) {
	if s.createFn != nil {
		return s.createFn(ctx, instructor)
	}
	return &instructor, nil
}

func (s *stubInstructorRepo) GetByAccountRef(ctx context.Context, ref string) (*core.Instructor, error) {
	if s.getByAccountRefFn != nil {
		return s.getByAccountRefFn(ctx, ref)
	}
	return nil, core.ErrNotFound
}

func (s *stubInstructorRepo) SetAccountRef(ctx context.Context, id uuid.UUID, ref string) error {
	if s.setAccountRefFn != nil {
		return s.setAccountRefFn(ctx, id, ref)
	}
	return nil
}

func (s *stubInstructorRepo) UpdateAccountStatus(ctx context.Context, id uuid.UUID, onboardingComplete, chargesEnabled, payoutsEnabled bool) error {
	if s.updateAccountStatusFn != nil {
		return s.updateAccountStatusFn(ctx, id, onboardingComplete, chargesEnabled, payoutsEnabled)
	}
	return nil
}

func (s *stubInstructorRepo) LogActivity(ctx context.Context, entry core.ActivityEntry) error {
	if s.logActivityFn != nil {
		return s.logActivityFn(ctx, entry)
	}
	return nil
}

type notifierFunc func(ctx context.Context, lesson core.Lesson, studentID uuid.UUID, instructor core.Instructor) error

func (f notifierFunc) SendFeedbackRequest(ctx context.Context, lesson core.Lesson, studentID uuid.UUID, instructor core.Instructor) error {
	if f != nil {
		return f(ctx, lesson, studentID, instructor)
	}
	return nil
}
