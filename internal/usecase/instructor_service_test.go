package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

func TestInstructorService_RegisterInstructor(t *testing.T) {
	var created core.Instructor
	repo := &stubInstructorRepo{
		createFn: func(ctx context.Context, instructor core.Instructor) (*core.Instructor, error) {
			created = instructor
			return &instructor, nil
		},
	}
	service := NewInstructorService(repo, &stubProcessor{})

	instructor, err := service.RegisterInstructor(context.Background(), core.RegisterInstructorParams{
		Name:  "  Jo Driver  ",
		Email: "jo@example.com",
	})
	if err != nil {
		t.Fatalf("RegisterInstructor() error = %v", err)
	}
	if instructor.Name != "Jo Driver" {
		t.Fatalf("name = %q, want trimmed %q", instructor.Name, "Jo Driver")
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected a generated id")
	}
}

func TestInstructorService_RegisterInstructorValidation(t *testing.T) {
	service := NewInstructorService(&stubInstructorRepo{}, &stubProcessor{})

	cases := []struct {
		name   string
		params core.RegisterInstructorParams
	}{
		{"empty name", core.RegisterInstructorParams{Email: "jo@example.com"}},
		{"empty email", core.RegisterInstructorParams{Name: "Jo"}},
		{"malformed email", core.RegisterInstructorParams{Name: "Jo", Email: "not-an-email"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.RegisterInstructor(context.Background(), tc.params); !errors.Is(err, core.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestInstructorService_AttachPayoutAccount(t *testing.T) {
	instructorID := uuid.New()
	state := core.Instructor{ID: instructorID, Name: "Jo", Email: "jo@example.com"}

	repo := &stubInstructorRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Instructor, error) {
			if id != instructorID {
				return nil, core.ErrNotFound
			}
			snap := state
			return &snap, nil
		},
		setAccountRefFn: func(ctx context.Context, id uuid.UUID, ref string) error {
			state.AccountRef = ref
			return nil
		},
		updateAccountStatusFn: func(ctx context.Context, id uuid.UUID, onboardingComplete, chargesEnabled, payoutsEnabled bool) error {
			state.OnboardingComplete = onboardingComplete
			state.ChargesEnabled = chargesEnabled
			state.PayoutsEnabled = payoutsEnabled
			return nil
		},
	}
	processor := &stubProcessor{
		retrieveAccountFn: func(ctx context.Context, accountRef string) (*core.PayoutAccount, error) {
			return &core.PayoutAccount{
				Ref:              accountRef,
				DetailsSubmitted: true,
				ChargesEnabled:   true,
				PayoutsEnabled:   true,
			}, nil
		},
	}
	service := NewInstructorService(repo, processor)

	instructor, err := service.AttachPayoutAccount(context.Background(), instructorID, "acct_77")
	if err != nil {
		t.Fatalf("AttachPayoutAccount() error = %v", err)
	}
	if instructor.AccountRef != "acct_77" {
		t.Fatalf("account ref = %q, want acct_77", instructor.AccountRef)
	}
	if !instructor.Onboarded() {
		t.Fatal("expected instructor to be payout-eligible after attach")
	}
}

func TestInstructorService_AttachPayoutAccountUnknownInstructor(t *testing.T) {
	service := NewInstructorService(&stubInstructorRepo{}, &stubProcessor{})
	if _, err := service.AttachPayoutAccount(context.Background(), uuid.New(), "acct_77"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
