package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

// InstructorHandler serves instructor registration and payout onboarding.
type InstructorHandler struct {
	instructors core.InstructorService
}

// NewInstructorHandler constructs an InstructorHandler.
func NewInstructorHandler(instructors core.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructors: instructors}
}

// Routes mounts the instructor endpoints.
func (h *InstructorHandler) Routes(r chi.Router) {
	r.Post("/instructors", h.register)
	r.Get("/instructors/{instructorID}", h.get)
	r.Post("/instructors/{instructorID}/payout-account", h.attachPayoutAccount)
}

type instructorResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	AccountRef         string    `json:"account_ref,omitempty"`
	OnboardingComplete bool      `json:"onboarding_complete"`
	PayoutsEnabled     bool      `json:"payouts_enabled"`
}

func toInstructorResponse(instructor core.Instructor) instructorResponse {
	return instructorResponse{
		ID:                 instructor.ID,
		Name:               instructor.Name,
		Email:              instructor.Email,
		AccountRef:         instructor.AccountRef,
		OnboardingComplete: instructor.OnboardingComplete,
		PayoutsEnabled:     instructor.PayoutsEnabled,
	}
}

func (h *InstructorHandler) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: malformed request body", core.ErrValidation))
		return
	}

	instructor, err := h.instructors.RegisterInstructor(r.Context(), core.RegisterInstructorParams{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInstructorResponse(*instructor))
}

func (h *InstructorHandler) get(w http.ResponseWriter, r *http.Request) {
	instructorID, err := parseID(chi.URLParam(r, "instructorID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	instructor, err := h.instructors.GetInstructor(r.Context(), instructorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInstructorResponse(*instructor))
}

func (h *InstructorHandler) attachPayoutAccount(w http.ResponseWriter, r *http.Request) {
	instructorID, err := parseID(chi.URLParam(r, "instructorID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		AccountRef string `json:"account_ref"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: malformed request body", core.ErrValidation))
		return
	}

	instructor, err := h.instructors.AttachPayoutAccount(r.Context(), instructorID, req.AccountRef)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInstructorResponse(*instructor))
}
