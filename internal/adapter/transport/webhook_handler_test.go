package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/drivekit/drivekit/internal/core"
)

type stubWebhookService struct {
	outcomes map[string]bool
	err      error
}

func (s *stubWebhookService) ProcessEvent(ctx context.Context, payload []byte, signature string) (*core.WebhookOutcome, error) {
	if s.err != nil {
		return nil, s.err
	}
	var envelope struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(payload, &envelope)
	duplicate := s.outcomes[envelope.ID]
	if s.outcomes == nil {
		s.outcomes = make(map[string]bool)
	}
	s.outcomes[envelope.ID] = true
	return &core.WebhookOutcome{EventID: envelope.ID, Type: core.EventCheckoutCompleted, Duplicate: duplicate}, nil
}

func newWebhookRouter(svc core.WebhookService) http.Handler {
	r := chi.NewRouter()
	NewWebhookHandler(svc).Routes(r)
	return r
}

func TestWebhookHandler_ProcessAndReplay(t *testing.T) {
	t.Parallel()

	router := newWebhookRouter(&stubWebhookService{})
	body := []byte(`{"id":"evt_1","type":"checkout_completed"}`)

	deliver := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", bytes.NewReader(body))
		req.Header.Set("X-Signature", "sig")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := deliver()
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var first struct {
		EventID string `json:"event_id"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &first); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if first.EventID != "evt_1" || first.Status != "processed" {
		t.Fatalf("unexpected response: %+v", first)
	}

	// The replay still answers 200 so the sender stops retrying.
	rec = deliver()
	if rec.Code != http.StatusOK {
		t.Fatalf("replay status = %d, want 200", rec.Code)
	}
	var second struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if second.Status != "already_processed" {
		t.Fatalf("replay status = %q, want already_processed", second.Status)
	}
}

func TestWebhookHandler_BadSignature(t *testing.T) {
	t.Parallel()

	router := newWebhookRouter(&stubWebhookService{err: core.ErrValidation})

	req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("X-Signature", "forged")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
