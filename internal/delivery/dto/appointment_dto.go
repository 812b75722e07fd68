package dto

import (
	"time"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID   int       `json:"patient_id" validate:"required,min=1"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          int       `json:"id"`
	PatientID   int       `json:"patient_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
