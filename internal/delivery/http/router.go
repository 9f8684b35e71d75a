package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

// Controllers bundles every controller the router wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Event        *controllers.EventController
	Student      *controllers.StudentController
	Registration *controllers.RegistrationController
	Attendance   *controllers.AttendanceController
	Report       *controllers.ReportController
	Notification *controllers.NotificationController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(c Controllers, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()

	authed := middleware.RequireAuth(verifier)
	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return authed(middleware.RequireRole(domain.RoleAdmin)(next))
	}

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("POST /auth/users", admin(c.Auth.CreateUser))

	// Events
	mux.HandleFunc("POST /events", admin(c.Event.Create))
	mux.HandleFunc("GET /events", authed(c.Event.List))
	mux.HandleFunc("GET /events/{eventID}", authed(c.Event.Get))

	// Students
	mux.HandleFunc("POST /students", admin(c.Student.Add))
	mux.HandleFunc("GET /students", authed(c.Student.List))

	// Registrations
	mux.HandleFunc("POST /events/{eventID}/registrations", authed(c.Registration.Register))
	mux.HandleFunc("DELETE /events/{eventID}/registrations/{studentID}", authed(c.Registration.Cancel))
	mux.HandleFunc("GET /events/{eventID}/roster", authed(c.Registration.ListRoster))

	// Attendance
	mux.HandleFunc("POST /events/{eventID}/attendance", authed(c.Attendance.Mark))
	mux.HandleFunc("GET /events/{eventID}/attendance", authed(c.Attendance.ListForEvent))

	// Reports
	mux.HandleFunc("GET /events/{eventID}/statistics", authed(c.Report.Statistics))
	mux.HandleFunc("GET /events/{eventID}/attendance/export", authed(c.Report.ExportRoster))

	// Notifications
	mux.HandleFunc("POST /events/{eventID}/notify", admin(c.Notification.Notify))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
