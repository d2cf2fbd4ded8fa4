package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/drivekit/drivekit/internal/core"
)

// BookingHandler serves the order lifecycle and sign-off endpoints.
type BookingHandler struct {
	bookings core.BookingService
	signoff  core.SignOffService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings core.BookingService, signoff core.SignOffService) *BookingHandler {
	return &BookingHandler{bookings: bookings, signoff: signoff}
}

// Routes mounts the booking endpoints.
func (h *BookingHandler) Routes(r chi.Router) {
	r.Post("/orders", h.finalizeOrder)
	r.Get("/orders/{orderID}", h.getOrder)
	r.Post("/orders/{orderID}/checkout", h.prepareCheckout)
	r.Post("/lessons/{lessonID}/signoff", h.signOffLesson)
}

type lessonResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	AmountPence int64     `json:"amount_pence"`
	Status      string    `json:"status"`
}

func toLessonResponse(lesson core.Lesson) lessonResponse {
	return lessonResponse{
		ID:          lesson.ID,
		Date:        lesson.Date.Format(dateLayout),
		StartTime:   lesson.StartTime,
		EndTime:     lesson.EndTime,
		AmountPence: lesson.AmountPence,
		Status:      string(lesson.Status),
	}
}

func (h *BookingHandler) finalizeOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID    uuid.UUID `json:"student_id"`
		InstructorID uuid.UUID `json:"instructor_id"`
		Mode         string    `json:"mode"`
		Package      struct {
			Name            string `json:"name"`
			TotalPricePence int64  `json:"total_price_pence"`
			LessonCount     int    `json:"lesson_count"`
		} `json:"package"`
		Series struct {
			AnchorDate string      `json:"anchor_date"`
			StartTime  string      `json:"start_time"`
			EndTime    string      `json:"end_time"`
			SlotIDs    []uuid.UUID `json:"slot_ids"`
		} `json:"series"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: malformed request body", core.ErrValidation))
		return
	}
	anchor, err := parseDate(req.Series.AnchorDate)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.bookings.FinalizeOrder(r.Context(), core.FinalizeOrderParams{
		StudentID:    req.StudentID,
		InstructorID: req.InstructorID,
		Mode:         core.PaymentMode(req.Mode),
		Package: core.PackageSnapshot{
			Name:            req.Package.Name,
			TotalPricePence: req.Package.TotalPricePence,
			LessonCount:     req.Package.LessonCount,
		},
		Series: core.BookingSeries{
			InstructorID: req.InstructorID,
			AnchorDate:   anchor,
			StartTime:    req.Series.StartTime,
			EndTime:      req.Series.EndTime,
			SlotIDs:      req.Series.SlotIDs,
		},
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		OrderID uuid.UUID        `json:"order_id"`
		Status  string           `json:"status"`
		Mode    string           `json:"mode"`
		Lessons []lessonResponse `json:"lessons"`
	}{
		OrderID: result.Order.ID,
		Status:  string(result.Order.Status),
		Mode:    string(result.Order.Mode),
		Lessons: lo.Map(result.Lessons, func(lesson core.Lesson, _ int) lessonResponse {
			return toLessonResponse(lesson)
		}),
	})
}

func (h *BookingHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseID(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	order, lessons, err := h.bookings.GetOrderLessons(r.Context(), orderID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		OrderID     uuid.UUID        `json:"order_id"`
		Status      string           `json:"status"`
		Mode        string           `json:"mode"`
		PackageName string           `json:"package_name"`
		TotalPence  int64            `json:"total_price_pence"`
		Lessons     []lessonResponse `json:"lessons"`
	}{
		OrderID:     order.ID,
		Status:      string(order.Status),
		Mode:        string(order.Mode),
		PackageName: order.Package.Name,
		TotalPence:  order.Package.TotalPricePence,
		Lessons: lo.Map(lessons, func(lesson core.Lesson, _ int) lessonResponse {
			return toLessonResponse(lesson)
		}),
	})
}

func (h *BookingHandler) prepareCheckout(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseID(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: malformed request body", core.ErrValidation))
		return
	}

	session, err := h.bookings.PrepareCheckout(r.Context(), orderID, req.Email, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		CheckoutRef string `json:"checkout_ref"`
		CheckoutURL string `json:"checkout_url"`
	}{
		CheckoutRef: session.Ref,
		CheckoutURL: session.URL,
	})
}

func (h *BookingHandler) signOffLesson(w http.ResponseWriter, r *http.Request) {
	lessonID, err := parseID(chi.URLParam(r, "lessonID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		InstructorID uuid.UUID `json:"instructor_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: malformed request body", core.ErrValidation))
		return
	}

	result, err := h.signoff.SignOffLesson(r.Context(), lessonID, req.InstructorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Lesson         lessonResponse `json:"lesson"`
		PayoutStatus   string         `json:"payout_status"`
		OrderCompleted bool           `json:"order_completed"`
	}{
		Lesson:         toLessonResponse(result.Lesson),
		PayoutStatus:   string(result.Payout.Status),
		OrderCompleted: result.OrderCompleted,
	})
}
