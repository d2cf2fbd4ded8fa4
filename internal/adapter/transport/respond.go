package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/drivekit/drivekit/internal/core"
)

// errorBody is the JSON shape every error response carries.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps domain errors onto HTTP statuses: validation and overlap
// problems are unprocessable, missing records are 404, state-machine
// preconditions conflict, and a failed transfer surfaces as a bad gateway.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, "internal"

	switch {
	case errors.Is(err, core.ErrSlotOverlap):
		status, code = http.StatusUnprocessableEntity, "slot_overlap"
	case errors.Is(err, core.ErrValidation):
		status, code = http.StatusUnprocessableEntity, "validation"
	case errors.Is(err, core.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, core.ErrSlotHasLessons):
		status, code = http.StatusConflict, "slot_has_lessons"
	case errors.Is(err, core.ErrSlotUnavailable):
		status, code = http.StatusConflict, "slot_unavailable"
	case errors.Is(err, core.ErrInvalidSeries):
		status, code = http.StatusConflict, "invalid_series"
	case errors.Is(err, core.ErrLessonAlreadyCompleted):
		status, code = http.StatusConflict, "lesson_already_completed"
	case errors.Is(err, core.ErrInstructorNotOnboarded):
		status, code = http.StatusConflict, "instructor_not_onboarded"
	case errors.Is(err, core.ErrPaymentNotReceived):
		status, code = http.StatusConflict, "payment_not_received"
	case errors.Is(err, core.ErrPayoutAlreadyProcessed):
		status, code = http.StatusConflict, "payout_already_processed"
	case errors.Is(err, core.ErrTransferFailed):
		status, code = http.StatusBadGateway, "transfer_failed"
	}

	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeJSON(w, status, errorBody{Error: "internal error", Code: code})
		return
	}
	writeJSON(w, status, errorBody{Error: err.Error(), Code: code})
}
