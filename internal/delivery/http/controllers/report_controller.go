package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"campusevents/internal/adapters/export"
	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

type ReportController struct {
	Logger  *slog.Logger
	Service domain.ReportService
}

func NewReportController(logger *slog.Logger, svc domain.ReportService) *ReportController {
	return &ReportController{
		Logger:  logger,
		Service: svc,
	}
}

// Statistics godoc
// @Summary Get registration and attendance statistics for an event
// @Description Returns registered count, attended count, and attendance percentage (0 when nobody is registered).
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an EventStatistics object"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/statistics [get]
func (c *ReportController) Statistics(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}

	stats, err := c.Service.Statistics(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}

// ExportRoster godoc
// @Summary Export the attendance sheet for an event as CSV
// @Description Streams a CSV with header "Student ID, Student Name, Attendance Status". Returns 404 when the event has no registrations.
// @Tags reports
// @Produce text/csv
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {string} string "CSV body"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/attendance/export [get]
func (c *ReportController) ExportRoster(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}

	entries, err := c.Service.ExportRoster(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrNothingToExport):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no registrations to export")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=event_%s_attendance.csv", eventID))
	if err := export.WriteAttendanceCSV(w, entries); err != nil {
		c.Logger.ErrorContext(r.Context(), "csv export failed", "event_id", eventID, "err", err)
	}
}
