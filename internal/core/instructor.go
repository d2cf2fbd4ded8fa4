package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Instructor carries the payout-eligibility state the sign-off pipeline
// checks and the external payout-account reference webhooks key on.
type Instructor struct {
	ID                 uuid.UUID
	Name               string
	Email              string
	AccountRef         string
	OnboardingComplete bool
	ChargesEnabled     bool
	PayoutsEnabled     bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Onboarded reports whether the instructor can receive payouts.
func (i *Instructor) Onboarded() bool {
	return i.OnboardingComplete && i.PayoutsEnabled
}

// ActorKind tags which entity type an activity entry belongs to.
type ActorKind string

const (
	ActorKindInstructor ActorKind = "instructor"
	ActorKindStudent    ActorKind = "student"
)

// Valid reports whether the kind is known.
func (k ActorKind) Valid() bool {
	return k == ActorKindInstructor || k == ActorKindStudent
}

// ActorRef identifies the subject of an activity entry as a closed tagged
// union of the two actor kinds.
type ActorRef struct {
	Kind ActorKind
	ID   uuid.UUID
}

// ActivityEntry is one line in an actor's activity feed.
type ActivityEntry struct {
	ID        uuid.UUID
	Actor     ActorRef
	Category  string
	Message   string
	Meta      map[string]string
	CreatedAt time.Time
}

// InstructorRepository persists instructors and their activity feed.
type InstructorRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*Instructor, error)
	Create(ctx context.Context, instructor Instructor) (*Instructor, error)
	GetByAccountRef(ctx context.Context, ref string) (*Instructor, error)
	SetAccountRef(ctx context.Context, id uuid.UUID, ref string) error
	UpdateAccountStatus(ctx context.Context, id uuid.UUID, onboardingComplete, chargesEnabled, payoutsEnabled bool) error
	LogActivity(ctx context.Context, entry ActivityEntry) error
}

// RegisterInstructorParams is the input to instructor registration.
type RegisterInstructorParams struct {
	Name  string
	Email string
}

// InstructorService exposes instructor registration and payout-account
// onboarding.
type InstructorService interface {
	RegisterInstructor(ctx context.Context, params RegisterInstructorParams) (*Instructor, error)
	AttachPayoutAccount(ctx context.Context, instructorID uuid.UUID, accountRef string) (*Instructor, error)
	GetInstructor(ctx context.Context, instructorID uuid.UUID) (*Instructor, error)
}

// Notifier delivers best-effort messages after a sign-off commits. Failures
// are logged by callers and never propagated.
type Notifier interface {
	SendFeedbackRequest(ctx context.Context, lesson Lesson, studentID uuid.UUID, instructor Instructor) error
}
