package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-queue-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestNoShowUsecase_Predict_AllFactors(t *testing.T) {
	// 2026-02-16 is a Monday; 08:00 is a morning slot
	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*entity.Appointment, error) {
			return &entity.Appointment{
				ID:          id,
				PatientID:   1,
				ScheduledAt: time.Date(2026, 2, 16, 8, 0, 0, 0, time.UTC),
				Status:      entity.AppointmentStatusScheduled,
			}, nil
		},
	}

	u := NewNoShowUsecase(newTestLogger(), appointmentRepo)
	prediction, err := u.Predict(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, prediction.AppointmentID)
	assert.InDelta(t, 65.0, prediction.NoShowProbability, 1e-9)
	assert.Equal(t, "heuristic-baseline-v1", prediction.Model)
	assert.Equal(t, []string{"morning_slot", "monday", "scheduled_state"}, prediction.Explanation)
}

func TestNoShowUsecase_Predict_BaselineOnly(t *testing.T) {
	// Wednesday afternoon, already completed: nothing raises the base score
	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*entity.Appointment, error) {
			return &entity.Appointment{
				ID:          id,
				PatientID:   1,
				ScheduledAt: time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC),
				Status:      entity.AppointmentStatusCompleted,
			}, nil
		},
	}

	u := NewNoShowUsecase(newTestLogger(), appointmentRepo)
	prediction, err := u.Predict(context.Background(), 3)

	assert.NoError(t, err)
	assert.InDelta(t, 20.0, prediction.NoShowProbability, 1e-9)
	assert.Empty(t, prediction.Explanation)
}

func TestNoShowUsecase_Predict_AppointmentNotFound(t *testing.T) {
	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*entity.Appointment, error) {
			return nil, nil
		},
	}

	u := NewNoShowUsecase(newTestLogger(), appointmentRepo)
	prediction, err := u.Predict(context.Background(), 404)

	assert.Nil(t, prediction)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Appointment", notFound.Entity)
}
