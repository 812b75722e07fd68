package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"clinic-queue-api/internal/domain/entity"
	"clinic-queue-api/internal/domain/repository"
)

// Compile-time checks that the mocks satisfy the repository interfaces
var _ repository.PatientRepository = (*MockPatientRepository)(nil)
var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

// MockPatientRepository is a function-field mock of PatientRepository
type MockPatientRepository struct {
	CreateFunc   func(ctx context.Context, patient *entity.Patient) error
	FindByIDFunc func(ctx context.Context, id int) (*entity.Patient, error)
	ListAllFunc  func(ctx context.Context) ([]entity.Patient, error)
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id int) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) ListAll(ctx context.Context) ([]entity.Patient, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

// MockAppointmentRepository is a function-field mock of AppointmentRepository.
// Call counters track the methods whose invocation order matters to the
// lifecycle engine.
type MockAppointmentRepository struct {
	CreateFunc              func(ctx context.Context, appointment *entity.Appointment) error
	FindByIDFunc            func(ctx context.Context, id int) (*entity.Appointment, error)
	ExistsForPatientAtFunc  func(ctx context.Context, patientID int, scheduledAt time.Time) (bool, error)
	ListAllFunc             func(ctx context.Context) ([]entity.Appointment, error)
	UpdateStatusFromFunc    func(ctx context.Context, id int, from, to entity.AppointmentStatus) (int64, error)
	CountByStatusFunc       func(ctx context.Context) (map[string]int64, error)
	CountByDayAndStatusFunc func(ctx context.Context, since time.Time) ([]repository.DayStatusCount, error)

	CreateCallCount           int32
	FindByIDCallCount         int32
	UpdateStatusFromCallCount int32
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	atomic.AddInt32(&m.FindByIDCallCount, 1)
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) ExistsForPatientAt(ctx context.Context, patientID int, scheduledAt time.Time) (bool, error) {
	if m.ExistsForPatientAtFunc != nil {
		return m.ExistsForPatientAtFunc(ctx, patientID, scheduledAt)
	}
	return false, nil
}

func (m *MockAppointmentRepository) ListAll(ctx context.Context) ([]entity.Appointment, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) UpdateStatusFrom(ctx context.Context, id int, from, to entity.AppointmentStatus) (int64, error) {
	atomic.AddInt32(&m.UpdateStatusFromCallCount, 1)
	if m.UpdateStatusFromFunc != nil {
		return m.UpdateStatusFromFunc(ctx, id, from, to)
	}
	return 1, nil
}

func (m *MockAppointmentRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[string]int64{}, nil
}

func (m *MockAppointmentRepository) CountByDayAndStatus(ctx context.Context, since time.Time) ([]repository.DayStatusCount, error) {
	if m.CountByDayAndStatusFunc != nil {
		return m.CountByDayAndStatusFunc(ctx, since)
	}
	return nil, nil
}
