package usecase

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDaysRange is returned when an analytics window falls outside [1, 90]
var ErrInvalidDaysRange = errors.New("days must be between 1 and 90")

// NotFoundError signals that a referenced entity does not exist
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConflictError signals a duplicate (patient, scheduled_at) appointment slot
type ConflictError struct {
	PatientID   int
	ScheduledAt time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("appointment conflict for patient=%d at %s", e.PatientID, e.ScheduledAt.Format(time.RFC3339))
}

// InvalidTransitionError signals an illegal or unknown status move
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s -> %s", e.From, e.To)
}
