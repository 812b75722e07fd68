package usecase

import (
	"context"

	"clinic-queue-api/internal/converter"
	"clinic-queue-api/internal/delivery/dto"
	"clinic-queue-api/internal/domain/entity"
	"clinic-queue-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	Register(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

// Register creates a patient record. The store assigns the id.
func (u *patientUsecase) Register(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		Name: req.Name,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient registered: id=%d", patient.ID)
	return converter.PatientToResponse(patient), nil
}

// List returns all patients ordered by id
func (u *patientUsecase) List(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.ListAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}
