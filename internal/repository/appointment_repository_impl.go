package repository

import (
	"context"
	"errors"
	"time"

	"clinic-queue-api/internal/domain/entity"
	domainRepo "clinic-queue-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) ExistsForPatientAt(ctx context.Context, patientID int, scheduledAt time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("patient_id = ? AND scheduled_at = ?", patientID, scheduledAt).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) ListAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).Order("scheduled_at ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatusFrom applies a status transition ONLY while the row still holds
// the status the caller validated against.
// Returns affected rows: 1 = transition applied, 0 = a concurrent update won
// the race (prevents conflicting transitions on the same appointment).
func (r *appointmentRepository) UpdateStatusFrom(ctx context.Context, id int, from, to entity.AppointmentStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *appointmentRepository) CountByDayAndStatus(ctx context.Context, since time.Time) ([]domainRepo.DayStatusCount, error) {
	var rows []domainRepo.DayStatusCount
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("TO_CHAR(scheduled_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, status, COUNT(*) AS count").
		Where("scheduled_at >= ?", since).
		Group("day, status").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
