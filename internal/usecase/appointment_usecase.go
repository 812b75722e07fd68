package usecase

import (
	"context"
	"errors"

	"clinic-queue-api/internal/converter"
	"clinic-queue-api/internal/delivery/dto"
	"clinic-queue-api/internal/domain/entity"
	"clinic-queue-api/internal/domain/repository"
	"clinic-queue-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, appointmentID int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	analyticsCache  *service.AnalyticsCacheService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	analyticsCache *service.AnalyticsCacheService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		analyticsCache:  analyticsCache,
	}
}

// Create books an appointment for an existing patient.
//
// Flow:
// 1. Validate the patient exists
// 2. Check the (patient, scheduled_at) slot is free
// 3. Insert with status "scheduled"
// The unique index on (patient_id, scheduled_at) backstops step 2: when two
// concurrent creations race past the pre-check, one insert fails with a
// duplicated-key error and is reported as a conflict.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, &NotFoundError{Entity: "Patient", ID: req.PatientID}
	}

	// Slot equality is exact-instant, compared in UTC
	scheduledAt := req.ScheduledAt.UTC()

	exists, err := u.appointmentRepo.ExistsForPatientAt(ctx, req.PatientID, scheduledAt)
	if err != nil {
		u.log.Warnf("Failed to check existing appointment: %+v", err)
		return nil, err
	}
	if exists {
		return nil, &ConflictError{PatientID: req.PatientID, ScheduledAt: scheduledAt}
	}

	appointment := &entity.Appointment{
		PatientID:   req.PatientID,
		ScheduledAt: scheduledAt,
		Status:      entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{PatientID: req.PatientID, ScheduledAt: scheduledAt}
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.analyticsCache.Invalidate(ctx)

	u.log.Infof("Appointment created: id=%d, patient=%d, at=%s", appointment.ID, appointment.PatientID, scheduledAt)
	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus moves an appointment along the status transition graph.
//
// An unknown target status is rejected before the appointment lookup, so a
// bad status on a nonexistent id still reads as an invalid transition.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	newStatus, ok := entity.ParseAppointmentStatus(req.Status)
	if !ok {
		return nil, &InvalidTransitionError{From: "unknown", To: req.Status}
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, &NotFoundError{Entity: "Appointment", ID: appointmentID}
	}

	if !appointment.Status.CanTransitionTo(newStatus) {
		return nil, &InvalidTransitionError{From: string(appointment.Status), To: string(newStatus)}
	}

	rows, err := u.appointmentRepo.UpdateStatusFrom(ctx, appointmentID, appointment.Status, newStatus)
	if err != nil {
		u.log.Warnf("Failed to update appointment %d status: %+v", appointmentID, err)
		return nil, err
	}
	if rows == 0 {
		// Lost a race with a concurrent transition; report against the
		// status that actually won.
		current, err := u.appointmentRepo.FindByID(ctx, appointmentID)
		if err != nil {
			return nil, err
		}
		from := "unknown"
		if current != nil {
			from = string(current.Status)
		}
		return nil, &InvalidTransitionError{From: from, To: string(newStatus)}
	}

	appointment.Status = newStatus
	u.analyticsCache.Invalidate(ctx)

	u.log.Infof("Appointment status updated: id=%d, status=%s", appointmentID, newStatus)
	return converter.AppointmentToResponse(appointment), nil
}

// List returns all appointments ordered by scheduled time
func (u *appointmentUsecase) List(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.ListAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
