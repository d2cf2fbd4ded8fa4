package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

type stubScheduleService struct {
	availabilityFn func(ctx context.Context, instructorID uuid.UUID, from, to time.Time) (*core.Availability, error)
}

func (s *stubScheduleService) PublishSlot(ctx context.Context, params core.CreateSlotParams) (*core.TimeSlot, error) {
	return nil, core.ErrValidation
}

func (s *stubScheduleService) RemoveSlot(ctx context.Context, id uuid.UUID) error {
	return core.ErrNotFound
}

func (s *stubScheduleService) MoveSlot(ctx context.Context, params core.MoveSlotParams) (*core.TimeSlot, error) {
	return nil, core.ErrNotFound
}

func (s *stubScheduleService) Availability(ctx context.Context, instructorID uuid.UUID, from, to time.Time) (*core.Availability, error) {
	if s.availabilityFn != nil {
		return s.availabilityFn(ctx, instructorID, from, to)
	}
	return &core.Availability{DefaultSelected: -1}, nil
}

func (s *stubScheduleService) HoldSeries(ctx context.Context, params core.HoldSeriesParams) (*core.BookingSeries, error) {
	return nil, core.ErrNotFound
}

func (s *stubScheduleService) SweepAbandonedDrafts(ctx context.Context) (int, error) {
	return 0, nil
}

func TestScheduleHandler_AvailabilityWindows(t *testing.T) {
	t.Parallel()

	fixedNow := time.Date(2026, 6, 8, 14, 30, 0, 0, time.UTC)
	instructorID := uuid.New()

	var capturedFrom, capturedTo time.Time
	svc := &stubScheduleService{
		availabilityFn: func(ctx context.Context, id uuid.UUID, from, to time.Time) (*core.Availability, error) {
			capturedFrom, capturedTo = from, to
			return &core.Availability{DefaultSelected: -1}, nil
		},
	}
	handler := NewScheduleHandler(svc)
	handler.WithClock(func() time.Time { return fixedNow })
	router := chi.NewRouter()
	handler.Routes(router)

	query := func(window string) {
		target := "/instructors/" + instructorID.String() + "/availability"
		if window != "" {
			target += "?window=" + window
		}
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp struct {
			DefaultSelected int `json:"default_selected"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.DefaultSelected != -1 {
			t.Fatalf("default_selected = %d, want -1", resp.DefaultSelected)
		}
	}

	query("")
	if !capturedFrom.Equal(fixedNow) {
		t.Fatalf("window start = %v, want %v", capturedFrom, fixedNow)
	}
	if !capturedTo.Equal(fixedNow.AddDate(0, 0, 10)) {
		t.Fatalf("public window end = %v, want %v", capturedTo, fixedNow.AddDate(0, 0, 10))
	}

	query("calendar")
	if !capturedTo.Equal(fixedNow.AddDate(0, 0, 30)) {
		t.Fatalf("calendar window end = %v, want %v", capturedTo, fixedNow.AddDate(0, 0, 30))
	}
}
