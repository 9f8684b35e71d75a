package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
	"campusevents/internal/services"
)

type NotificationController struct {
	Logger       *slog.Logger
	Events       domain.EventService
	Registration domain.RegistrationService
	Notifier     domain.NotificationService
}

func NewNotificationController(
	logger *slog.Logger,
	events domain.EventService,
	registration domain.RegistrationService,
	notifier domain.NotificationService,
) *NotificationController {
	return &NotificationController{
		Logger:       logger,
		Events:       events,
		Registration: registration,
		Notifier:     notifier,
	}
}

// NotifyRequest is the request body for POST /events/{eventID}/notify.
type NotifyRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate implements helpers.Validator.
func (r *NotifyRequest) Validate() []string {
	r.Subject = strings.TrimSpace(r.Subject)
	if r.Subject == "" {
		return []string{"subject is required"}
	}
	return nil
}

// NotifyScheduledResponse acknowledges a scheduled dispatch.
type NotifyScheduledResponse struct {
	Recipients int `json:"recipients"`
}

// Notify godoc
// @Summary Email every registered student of an event
// @Description Schedules one email per registered student and returns immediately; delivery runs in the background with a bounded worker pool. The response reports how many recipients were scheduled.
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body controllers.NotifyRequest true "Subject and optional custom message"
// @Success 202 {object} helpers.APIResponse "data is a NotifyScheduledResponse"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event missing or roster empty)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/notify [post]
func (c *NotificationController) Notify(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}

	var req NotifyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	event, err := c.Events.Get(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	roster, err := c.Registration.ListRoster(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if len(roster) == 0 {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no registered students to notify")
		return
	}

	recipients := make([]string, 0, len(roster))
	for _, entry := range roster {
		recipients = append(recipients, entry.Email)
	}

	body := services.EventNotificationBody(event, req.Message)
	logger := c.Logger
	c.Notifier.Dispatch(recipients, req.Subject, body, func(result domain.DispatchResult) {
		logger.Info("event notification finished",
			"event_id", eventID,
			"success", result.SuccessCount,
			"failed", result.FailCount,
		)
	})

	helpers.WriteJSONSuccess(w, http.StatusAccepted, NotifyScheduledResponse{Recipients: len(recipients)})
}
