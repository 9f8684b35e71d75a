package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

type AttendanceController struct {
	Logger  *slog.Logger
	Service domain.AttendanceService
}

func NewAttendanceController(logger *slog.Logger, svc domain.AttendanceService) *AttendanceController {
	return &AttendanceController{
		Logger:  logger,
		Service: svc,
	}
}

// MarkAttendanceRequest is the request body for POST /events/{eventID}/attendance.
type MarkAttendanceRequest struct {
	StudentID string `json:"student_id"`
	Status    string `json:"status"`
}

// Validate implements helpers.Validator.
func (r *MarkAttendanceRequest) Validate() []string {
	var errs []string
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.StudentID == "" {
		errs = append(errs, "student_id is required")
	}
	if !domain.AttendanceStatus(r.Status).Valid() {
		errs = append(errs, "status must be 'present' or 'absent'")
	}
	return errs
}

// Mark godoc
// @Summary Mark a student's attendance for an event
// @Description Records or overwrites the attendance status. Fails for events that have not happened yet and for students who are not registered.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body controllers.MarkAttendanceRequest true "Student and status"
// @Success 204 "Attendance recorded"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: invalid_state (event not started, or student not registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/attendance [post]
func (c *AttendanceController) Mark(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}

	var req MarkAttendanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	err := c.Service.Mark(r.Context(), eventID, req.StudentID, domain.AttendanceStatus(req.Status))
	if err != nil {
		var notStarted *domain.EventNotStartedError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.As(err, &notStarted):
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeInvalidState, notStarted.Error())
		case errors.Is(err, domain.ErrNotRegistered):
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeInvalidState, "student is not registered for this event")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListForEvent godoc
// @Summary List attendance for an event
// @Description Returns every registered student with the recorded status, defaulting to absent for unmarked students, ordered by name.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an array of attendance entries"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/attendance [get]
func (c *AttendanceController) ListForEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}

	entries, err := c.Service.ListForEvent(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}
