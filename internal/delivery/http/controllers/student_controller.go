package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

type StudentController struct {
	Logger  *slog.Logger
	Service domain.StudentService
}

func NewStudentController(logger *slog.Logger, svc domain.StudentService) *StudentController {
	return &StudentController{
		Logger:  logger,
		Service: svc,
	}
}

// AddStudentRequest is the request body for POST /students.
type AddStudentRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Course string `json:"course"`
	Year   int    `json:"year"`
}

// Validate implements helpers.Validator.
func (r *AddStudentRequest) Validate() []string {
	var errs []string
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	if r.ID == "" {
		errs = append(errs, "id is required")
	}
	if r.Name == "" {
		errs = append(errs, "name is required")
	}
	if r.Email == "" {
		errs = append(errs, "email is required")
	}
	if r.Year <= 0 {
		errs = append(errs, "year must be a positive number")
	}
	return errs
}

// Add godoc
// @Summary Add a student to the directory
// @Description Creates a student record with a caller-supplied ID. Admin only.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.AddStudentRequest true "Student fields"
// @Success 201 {object} helpers.APIResponse "data is the created Student"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate ID or email)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students [post]
func (c *StudentController) Add(w http.ResponseWriter, r *http.Request) {
	var req AddStudentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	student, err := c.Service.Add(r.Context(), req.ID, req.Name, req.Email, req.Course, req.Year)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateStudent):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "student with this ID already exists")
		case errors.Is(err, domain.ErrDuplicateEmail):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "a student with this email already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, student)
}

// List godoc
// @Summary List all students
// @Description Returns all students ordered by name.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of Students"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students [get]
func (c *StudentController) List(w http.ResponseWriter, r *http.Request) {
	students, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, students)
}
