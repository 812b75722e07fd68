package entity

import (
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCheckedIn AppointmentStatus = "checked_in"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// allowedTransitions is the directed edge set of the appointment state
// machine. An absent edge is forbidden, including self-transitions.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusScheduled: {AppointmentStatusCheckedIn, AppointmentStatusCancelled},
	AppointmentStatusCheckedIn: {AppointmentStatusCompleted, AppointmentStatusCancelled},
	AppointmentStatusCompleted: {},
	AppointmentStatusCancelled: {},
}

// ParseAppointmentStatus validates a raw status string against the four
// enumerated values.
func ParseAppointmentStatus(raw string) (AppointmentStatus, bool) {
	switch s := AppointmentStatus(raw); s {
	case AppointmentStatusScheduled, AppointmentStatusCheckedIn,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return s, true
	}
	return "", false
}

// CanTransitionTo reports whether moving from s to target is a legal edge
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, t := range allowedTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions
func (s AppointmentStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// Appointment links a patient to a scheduled time slot with a lifecycle status
type Appointment struct {
	ID          int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int               `gorm:"not null;index;uniqueIndex:idx_appointments_patient_slot" json:"patient_id"`
	ScheduledAt time.Time         `gorm:"type:timestamptz;not null;uniqueIndex:idx_appointments_patient_slot" json:"scheduled_at"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled checks if the appointment has not been acted on yet
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsTerminal checks if the appointment reached an absorbing status
func (a *Appointment) IsTerminal() bool {
	return a.Status.IsTerminal()
}
