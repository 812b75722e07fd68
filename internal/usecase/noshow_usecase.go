package usecase

import (
	"context"
	"math"
	"time"

	"clinic-queue-api/internal/delivery/dto"
	"clinic-queue-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const noShowModelName = "heuristic-baseline-v1"

type NoShowUsecase interface {
	Predict(ctx context.Context, appointmentID int) (*dto.NoShowPredictionResponse, error)
}

type noShowUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewNoShowUsecase(log *logrus.Logger, appointmentRepo repository.AppointmentRepository) NoShowUsecase {
	return &noShowUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// Predict scores the chance the patient misses the appointment.
// Stateless baseline heuristic over the slot time and current status;
// nothing is persisted or learned.
func (u *noShowUsecase) Predict(ctx context.Context, appointmentID int) (*dto.NoShowPredictionResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, &NotFoundError{Entity: "Appointment", ID: appointmentID}
	}

	score := 0.20
	var factors []string

	// Early morning slots miss more often
	if appointment.ScheduledAt.Hour() < 9 {
		score += 0.20
		factors = append(factors, "morning_slot")
	}

	if appointment.ScheduledAt.Weekday() == time.Monday {
		score += 0.15
		factors = append(factors, "monday")
	}

	if appointment.IsScheduled() {
		score += 0.10
		factors = append(factors, "scheduled_state")
	}

	if score > 0.95 {
		score = 0.95
	}

	return &dto.NoShowPredictionResponse{
		AppointmentID:     appointment.ID,
		NoShowProbability: math.Round(score*1000) / 10,
		Model:             noShowModelName,
		Explanation:       factors,
	}, nil
}
