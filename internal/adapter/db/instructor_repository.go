package db

import (
	"context"

	"github.com/google/uuid"

	entgenerated "github.com/drivekit/drivekit/internal/adapter/db/ent/generated"
	entinstructor "github.com/drivekit/drivekit/internal/adapter/db/ent/generated/instructor"
	"github.com/drivekit/drivekit/internal/core"
)

// InstructorRepository persists instructors and their activity feed using Ent.
type InstructorRepository struct {
	client *entgenerated.Client
}

// NewInstructorRepository constructs an Ent-backed instructor repository.
func NewInstructorRepository(client *entgenerated.Client) *InstructorRepository {
	return &InstructorRepository{client: client}
}

var _ core.InstructorRepository = (*InstructorRepository)(nil)

// Get fetches an instructor by id.
func (r *InstructorRepository) Get(ctx context.Context, id uuid.UUID) (*core.Instructor, error) {
	row, err := r.client.Instructor.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainInstructor(row), nil
}

// Create inserts a new instructor.
func (r *InstructorRepository) Create(ctx context.Context, instructor core.Instructor) (*core.Instructor, error) {
	create := r.client.Instructor.Create().
		SetName(instructor.Name).
		SetEmail(instructor.Email).
		SetAccountRef(instructor.AccountRef)
	if instructor.ID != uuid.Nil {
		create.SetID(instructor.ID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		if entgenerated.IsConstraintError(err) {
			return nil, core.ErrValidation
		}
		return nil, err
	}
	return toDomainInstructor(row), nil
}

// GetByAccountRef resolves the instructor an inbound account event points at.
func (r *InstructorRepository) GetByAccountRef(ctx context.Context, ref string) (*core.Instructor, error) {
	row, err := r.client.Instructor.Query().
		Where(entinstructor.AccountRefEQ(ref)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainInstructor(row), nil
}

// SetAccountRef stamps the external payout-account reference on an instructor.
func (r *InstructorRepository) SetAccountRef(ctx context.Context, id uuid.UUID, ref string) error {
	err := r.client.Instructor.UpdateOneID(id).
		SetAccountRef(ref).
		Exec(ctx)
	if entgenerated.IsNotFound(err) {
		return core.ErrNotFound
	}
	return err
}

// UpdateAccountStatus mirrors an account event's capability flags.
func (r *InstructorRepository) UpdateAccountStatus(ctx context.Context, id uuid.UUID, onboardingComplete, chargesEnabled, payoutsEnabled bool) error {
	err := r.client.Instructor.UpdateOneID(id).
		SetOnboardingComplete(onboardingComplete).
		SetChargesEnabled(chargesEnabled).
		SetPayoutsEnabled(payoutsEnabled).
		Exec(ctx)
	if entgenerated.IsNotFound(err) {
		return core.ErrNotFound
	}
	return err
}

// LogActivity appends one entry to an actor's activity feed.
func (r *InstructorRepository) LogActivity(ctx context.Context, entry core.ActivityEntry) error {
	if !entry.Actor.Kind.Valid() {
		return core.ErrValidation
	}
	create := r.client.ActivityLog.Create().
		SetActorKind(string(entry.Actor.Kind)).
		SetActorID(entry.Actor.ID).
		SetCategory(entry.Category).
		SetMessage(entry.Message)
	if entry.Meta != nil {
		create.SetMeta(entry.Meta)
	}
	return create.Exec(ctx)
}

func toDomainInstructor(row *entgenerated.Instructor) *core.Instructor {
	if row == nil {
		return nil
	}
	return &core.Instructor{
		ID:                 row.ID,
		Name:               row.Name,
		Email:              row.Email,
		AccountRef:         row.AccountRef,
		OnboardingComplete: row.OnboardingComplete,
		ChargesEnabled:     row.ChargesEnabled,
		PayoutsEnabled:     row.PayoutsEnabled,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}
