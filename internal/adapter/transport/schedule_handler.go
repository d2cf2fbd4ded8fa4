package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/drivekit/drivekit/internal/core"
)

const dateLayout = "2006-01-02"

// Availability horizons in days. The public funnel sees a short window; an
// instructor's own calendar sees a month.
const (
	publicHorizonDays   = 10
	calendarHorizonDays = 30
)

// ScheduleHandler serves the slot store and availability endpoints.
type ScheduleHandler struct {
	schedule core.ScheduleService
	now      func() time.Time
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(schedule core.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		schedule: schedule,
		now:      time.Now,
	}
}

// WithClock allows tests to override the clock used for availability windows.
func (h *ScheduleHandler) WithClock(fn func() time.Time) {
	if fn != nil {
		h.now = fn
	}
}

// Routes mounts the schedule endpoints.
func (h *ScheduleHandler) Routes(r chi.Router) {
	r.Post("/slots", h.publishSlot)
	r.Delete("/slots/{slotID}", h.removeSlot)
	r.Patch("/slots/{slotID}", h.moveSlot)
	r.Post("/slots/{slotID}/hold", h.holdSeries)
	r.Get("/instructors/{instructorID}/availability", h.availability)
}

type slotResponse struct {
	ID           uuid.UUID `json:"id"`
	InstructorID uuid.UUID `json:"instructor_id"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Available    bool      `json:"available"`
	Status       string    `json:"status"`
}

func toSlotResponse(slot core.TimeSlot) slotResponse {
	return slotResponse{
		ID:           slot.ID,
		InstructorID: slot.InstructorID,
		Date:         slot.Date.Format(dateLayout),
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
		Available:    slot.Available,
		Status:       string(slot.Status),
	}
}

func (h *ScheduleHandler) publishSlot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InstructorID uuid.UUID `json:"instructor_id"`
		Date         string    `json:"date"`
		StartTime    string    `json:"start_time"`
		EndTime      string    `json:"end_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: malformed request body", core.ErrValidation))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slot, err := h.schedule.PublishSlot(r.Context(), core.CreateSlotParams{
		InstructorID: req.InstructorID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSlotResponse(*slot))
}

func (h *ScheduleHandler) removeSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := parseID(chi.URLParam(r, "slotID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.schedule.RemoveSlot(r.Context(), slotID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ScheduleHandler) moveSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := parseID(chi.URLParam(r, "slotID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Date      string `json:"date"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		Available *bool  `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: malformed request body", core.ErrValidation))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slot, err := h.schedule.MoveSlot(r.Context(), core.MoveSlotParams{
		SlotID:    slotID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Available: req.Available,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSlotResponse(*slot))
}

func (h *ScheduleHandler) holdSeries(w http.ResponseWriter, r *http.Request) {
	slotID, err := parseID(chi.URLParam(r, "slotID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Weeks int `json:"weeks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: malformed request body", core.ErrValidation))
		return
	}

	series, err := h.schedule.HoldSeries(r.Context(), core.HoldSeriesParams{
		SlotID: slotID,
		Weeks:  req.Weeks,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		InstructorID uuid.UUID   `json:"instructor_id"`
		AnchorDate   string      `json:"anchor_date"`
		StartTime    string      `json:"start_time"`
		EndTime      string      `json:"end_time"`
		SlotIDs      []uuid.UUID `json:"slot_ids"`
	}{
		InstructorID: series.InstructorID,
		AnchorDate:   series.AnchorDate.Format(dateLayout),
		StartTime:    series.StartTime,
		EndTime:      series.EndTime,
		SlotIDs:      series.SlotIDs,
	})
}

func (h *ScheduleHandler) availability(w http.ResponseWriter, r *http.Request) {
	instructorID, err := parseID(chi.URLParam(r, "instructorID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	horizon := publicHorizonDays
	if r.URL.Query().Get("window") == "calendar" {
		horizon = calendarHorizonDays
	}
	from := h.now().UTC()
	to := from.AddDate(0, 0, horizon)

	availability, err := h.schedule.Availability(r.Context(), instructorID, from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}

	type dayResponse struct {
		Date  string         `json:"date"`
		Slots []slotResponse `json:"slots"`
	}
	writeJSON(w, http.StatusOK, struct {
		Days            []dayResponse `json:"days"`
		DefaultSelected int           `json:"default_selected"`
	}{
		Days: lo.Map(availability.Days, func(day core.DayAvailability, _ int) dayResponse {
			return dayResponse{
				Date:  day.Date.Format(dateLayout),
				Slots: lo.Map(day.Slots, func(slot core.TimeSlot, _ int) slotResponse { return toSlotResponse(slot) }),
			}
		}),
		DefaultSelected: availability.DefaultSelected,
	})
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed id %q", core.ErrValidation, raw)
	}
	return id, nil
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", core.ErrValidation)
	}
	return date, nil
}
