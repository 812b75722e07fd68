package repository

import (
	"context"
	"time"

	"clinic-queue-api/internal/domain/entity"
)

// DayStatusCount is one aggregation row of the by-day analytics query:
// the number of appointments in one status on one calendar date.
type DayStatusCount struct {
	Day    string
	Status string
	Count  int64
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id int) (*entity.Appointment, error)
	ExistsForPatientAt(ctx context.Context, patientID int, scheduledAt time.Time) (bool, error)
	ListAll(ctx context.Context) ([]entity.Appointment, error)
	UpdateStatusFrom(ctx context.Context, id int, from, to entity.AppointmentStatus) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByDayAndStatus(ctx context.Context, since time.Time) ([]DayStatusCount, error)
}
