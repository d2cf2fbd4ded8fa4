package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

func TestInstructorRepository_OnboardingLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t, ctx, "instructor_lifecycle")
	defer client.Close()
	repo := NewInstructorRepository(client)

	created, err := repo.Create(ctx, core.Instructor{
		ID:    uuid.New(),
		Name:  "Jo Driver",
		Email: "jo@example.com",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Onboarded() {
		t.Fatal("fresh instructor must not be payout-eligible")
	}

	if err := repo.SetAccountRef(ctx, created.ID, "acct_77"); err != nil {
		t.Fatalf("SetAccountRef() error = %v", err)
	}
	if err := repo.UpdateAccountStatus(ctx, created.ID, true, true, true); err != nil {
		t.Fatalf("UpdateAccountStatus() error = %v", err)
	}

	got, err := repo.GetByAccountRef(ctx, "acct_77")
	if err != nil {
		t.Fatalf("GetByAccountRef() error = %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("resolved instructor = %s, want %s", got.ID, created.ID)
	}
	if !got.Onboarded() {
		t.Fatal("instructor should be payout-eligible after onboarding flags set")
	}

	if _, err := repo.GetByAccountRef(ctx, "acct_unknown"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown account ref, got %v", err)
	}
}

func TestInstructorRepository_LogActivity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t, ctx, "instructor_activity")
	defer client.Close()
	repo := NewInstructorRepository(client)

	entry := core.ActivityEntry{
		Actor:    core.ActorRef{Kind: core.ActorKindInstructor, ID: uuid.New()},
		Category: "lesson_completed",
		Message:  "Signed off lesson on 2026-06-10",
		Meta:     map[string]string{"lesson_id": uuid.NewString()},
	}
	if err := repo.LogActivity(ctx, entry); err != nil {
		t.Fatalf("LogActivity() error = %v", err)
	}

	n, err := client.ActivityLog.Query().Count(ctx)
	if err != nil {
		t.Fatalf("counting activity rows: %v", err)
	}
	if n != 1 {
		t.Fatalf("activity rows = %d, want 1", n)
	}

	bad := entry
	bad.Actor.Kind = "robot"
	if err := repo.LogActivity(ctx, bad); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown actor kind, got %v", err)
	}
}
