package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentStatus(t *testing.T) {
	tests := []struct {
		raw   string
		want  AppointmentStatus
		valid bool
	}{
		{"scheduled", AppointmentStatusScheduled, true},
		{"checked_in", AppointmentStatusCheckedIn, true},
		{"completed", AppointmentStatusCompleted, true},
		{"cancelled", AppointmentStatusCancelled, true},
		{"no_show", "", false},
		{"SCHEDULED", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseAppointmentStatus(tt.raw)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	statuses := []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusCheckedIn,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	}

	legal := map[AppointmentStatus][]AppointmentStatus{
		AppointmentStatusScheduled: {AppointmentStatusCheckedIn, AppointmentStatusCancelled},
		AppointmentStatusCheckedIn: {AppointmentStatusCompleted, AppointmentStatusCancelled},
	}

	// Every (from, to) pair must match the transition table exactly,
	// self-transitions included.
	for _, from := range statuses {
		for _, to := range statuses {
			want := false
			for _, allowed := range legal[from] {
				if allowed == to {
					want = true
				}
			}
			assert.Equalf(t, want, from.CanTransitionTo(to), "transition %s -> %s", from, to)
		}
	}
}

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	assert.False(t, AppointmentStatusScheduled.IsTerminal())
	assert.False(t, AppointmentStatusCheckedIn.IsTerminal())
	assert.True(t, AppointmentStatusCompleted.IsTerminal())
	assert.True(t, AppointmentStatusCancelled.IsTerminal())
}

func TestAppointmentStatus_TerminalStatesAreAbsorbing(t *testing.T) {
	targets := []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusCheckedIn,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	}

	for _, terminal := range []AppointmentStatus{AppointmentStatusCompleted, AppointmentStatusCancelled} {
		for _, to := range targets {
			assert.Falsef(t, terminal.CanTransitionTo(to), "terminal %s must not transition to %s", terminal, to)
		}
	}
}

func TestAppointment_StatusHelpers(t *testing.T) {
	appointment := &Appointment{Status: AppointmentStatusScheduled}
	assert.True(t, appointment.IsScheduled())
	assert.False(t, appointment.IsTerminal())

	appointment.Status = AppointmentStatusCancelled
	assert.False(t, appointment.IsScheduled())
	assert.True(t, appointment.IsTerminal())
}
