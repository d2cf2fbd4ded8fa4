package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

// InstructorService handles instructor registration and payout-account
// onboarding.
type InstructorService struct {
	instructors core.InstructorRepository
	processor   core.PaymentProcessor
}

// NewInstructorService constructs an InstructorService.
func NewInstructorService(instructors core.InstructorRepository, processor core.PaymentProcessor) *InstructorService {
	return &InstructorService{
		instructors: instructors,
		processor:   processor,
	}
}

var _ core.InstructorService = (*InstructorService)(nil)

// RegisterInstructor creates a new instructor record. Payout onboarding
// happens separately through AttachPayoutAccount.
func (s *InstructorService) RegisterInstructor(ctx context.Context, params core.RegisterInstructorParams) (*core.Instructor, error) {
	name := strings.TrimSpace(params.Name)
	email := strings.TrimSpace(params.Email)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", core.ErrValidation)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email required", core.ErrValidation)
	}
	return s.instructors.Create(ctx, core.Instructor{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
	})
}

// AttachPayoutAccount links an external payout account to an instructor and
// mirrors the account's capability flags. Later account events keep the
// flags current.
func (s *InstructorService) AttachPayoutAccount(ctx context.Context, instructorID uuid.UUID, accountRef string) (*core.Instructor, error) {
	if instructorID == uuid.Nil {
		return nil, fmt.Errorf("%w: instructor id required", core.ErrValidation)
	}
	if accountRef == "" {
		return nil, fmt.Errorf("%w: account reference required", core.ErrValidation)
	}
	if _, err := s.instructors.Get(ctx, instructorID); err != nil {
		return nil, err
	}

	account, err := s.processor.RetrieveAccount(ctx, accountRef)
	if err != nil {
		return nil, err
	}

	if err := s.instructors.SetAccountRef(ctx, instructorID, account.Ref); err != nil {
		return nil, err
	}
	if err := s.instructors.UpdateAccountStatus(ctx, instructorID,
		account.DetailsSubmitted,
		account.ChargesEnabled,
		account.PayoutsEnabled,
	); err != nil {
		return nil, err
	}
	return s.instructors.Get(ctx, instructorID)
}

// GetInstructor fetches an instructor by id.
func (s *InstructorService) GetInstructor(ctx context.Context, instructorID uuid.UUID) (*core.Instructor, error) {
	if instructorID == uuid.Nil {
		return nil, fmt.Errorf("%w: instructor id required", core.ErrValidation)
	}
	return s.instructors.Get(ctx, instructorID)
}
