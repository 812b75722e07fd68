package http

import (
	"net/http"

	"clinic-queue-api/internal/delivery/http/handler"
	"clinic-queue-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	analyticsHandler   *handler.AnalyticsHandler
	noShowHandler      *handler.NoShowHandler
	requestLogger      *middleware.RequestLoggerMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	analyticsHandler *handler.AnalyticsHandler,
	noShowHandler *handler.NoShowHandler,
	requestLogger *middleware.RequestLoggerMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		analyticsHandler:   analyticsHandler,
		noShowHandler:      noShowHandler,
		requestLogger:      requestLogger,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.RegisterPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)

	// Analytics
	analytics := api.PathPrefix("/analytics").Subrouter()
	analytics.HandleFunc("/summary", r.analyticsHandler.GetSummary).Methods(http.MethodGet)
	analytics.HandleFunc("/by-day", r.analyticsHandler.GetByDay).Methods(http.MethodGet)

	// No-show prediction
	api.HandleFunc("/predict/no-show/{id}", r.noShowHandler.PredictNoShow).Methods(http.MethodGet)

	r.router.Use(r.requestLogger.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
