package repository

import (
	"context"

	"clinic-queue-api/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id int) (*entity.Patient, error)
	ListAll(ctx context.Context) ([]entity.Patient, error)
}
