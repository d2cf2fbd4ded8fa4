package transport

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/drivekit/drivekit/internal/core"
)

// maxWebhookBody bounds how much of a delivery is read.
const maxWebhookBody = 1 << 20

// WebhookHandler receives payment processor deliveries.
type WebhookHandler struct {
	webhooks core.WebhookService
}

// NewWebhookHandler constructs a WebhookHandler.
func NewWebhookHandler(webhooks core.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// Routes mounts the webhook endpoint.
func (h *WebhookHandler) Routes(r chi.Router) {
	r.Post("/webhooks/payments", h.receive)
}

// receive verifies and applies one delivery. Replays answer 200 with an
// already_processed status so the sender stops retrying.
func (h *WebhookHandler) receive(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: unreadable payload", core.ErrValidation))
		return
	}

	outcome, err := h.webhooks.ProcessEvent(r.Context(), payload, r.Header.Get("X-Signature"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := "processed"
	if outcome.Duplicate {
		status = "already_processed"
	}
	writeJSON(w, http.StatusOK, struct {
		EventID string `json:"event_id"`
		Status  string `json:"status"`
	}{
		EventID: outcome.EventID,
		Status:  status,
	})
}
