package appointment

import (
	"fmt"
	"testing"
	"time"

	"healthverse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memApptRepo is an in-memory AppointmentRepository keyed by ID.
type memApptRepo struct {
	appts map[string]*models.Appointment
}

func newMemApptRepo(appts ...*models.Appointment) *memApptRepo {
	m := &memApptRepo{appts: make(map[string]*models.Appointment)}
	for _, a := range appts {
		m.appts[a.ID] = a
	}
	return m
}

func (m *memApptRepo) Create(appt *models.Appointment) error {
	m.appts[appt.ID] = appt
	return nil
}

func (m *memApptRepo) GetByID(id string) (*models.Appointment, error) {
	appt, ok := m.appts[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s not found", id)
	}
	copied := *appt
	return &copied, nil
}

func (m *memApptRepo) GetByPatient(patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memApptRepo) GetByDoctor(doctorID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memApptRepo) GetAll() ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		out = append(out, *a)
	}
	return out, nil
}

func (m *memApptRepo) UpdateStatus(id, status string) error {
	appt, ok := m.appts[id]
	if !ok {
		return fmt.Errorf("appointment %s not found", id)
	}
	appt.Status = status
	return nil
}

func slotInPast() (string, string) {
	start := time.Now().Add(-3 * time.Hour)
	return start.Format("2006-01-02"), start.Format("15:04")
}

func slotInFuture() (string, string) {
	start := time.Now().Add(48 * time.Hour)
	return start.Format("2006-01-02"), "10:00"
}

func TestCheckInOnlyFromConfirmed(t *testing.T) {
	tests := []struct {
		status  string
		wantErr bool
	}{
		{models.AppointmentConfirmed, false},
		{models.AppointmentCheckedIn, true},
		{models.AppointmentCompleted, true},
		{models.AppointmentCancelled, true},
	}

	for _, tc := range tests {
		t.Run(tc.status, func(t *testing.T) {
			repo := newMemApptRepo(&models.Appointment{ID: "a1", Status: tc.status})
			svc := &DefaultAppointmentService{Repo: repo}

			err := svc.CheckIn("a1")
			if tc.wantErr {
				require.Error(t, err)
				got, _ := repo.GetByID("a1")
				assert.Equal(t, tc.status, got.Status)
			} else {
				require.NoError(t, err)
				got, _ := repo.GetByID("a1")
				assert.Equal(t, models.AppointmentCheckedIn, got.Status)
			}
		})
	}
}

func TestCancelRejectsTerminalStates(t *testing.T) {
	svc := &DefaultAppointmentService{Repo: newMemApptRepo(
		&models.Appointment{ID: "done", PatientID: "pat-1", Status: models.AppointmentCompleted},
		&models.Appointment{ID: "gone", PatientID: "pat-1", Status: models.AppointmentCancelled},
		&models.Appointment{ID: "open", PatientID: "pat-1", Status: models.AppointmentConfirmed},
	)}

	assert.Error(t, svc.Cancel("done", "pat-1", models.RolePatient))
	assert.Error(t, svc.Cancel("gone", "pat-1", models.RolePatient))
	require.NoError(t, svc.Cancel("open", "pat-1", models.RolePatient))
}

func TestCancelEnforcesOwnership(t *testing.T) {
	newSvc := func() (*DefaultAppointmentService, *memApptRepo) {
		repo := newMemApptRepo(&models.Appointment{
			ID: "a1", PatientID: "pat-1", Status: models.AppointmentConfirmed,
		})
		return &DefaultAppointmentService{Repo: repo}, repo
	}

	t.Run("another patient is rejected", func(t *testing.T) {
		svc, repo := newSvc()
		err := svc.Cancel("a1", "pat-2", models.RolePatient)
		require.ErrorIs(t, err, ErrNotAppointmentOwner)
		got, _ := repo.GetByID("a1")
		assert.Equal(t, models.AppointmentConfirmed, got.Status)
	})

	t.Run("owning patient may cancel", func(t *testing.T) {
		svc, repo := newSvc()
		require.NoError(t, svc.Cancel("a1", "pat-1", models.RolePatient))
		got, _ := repo.GetByID("a1")
		assert.Equal(t, models.AppointmentCancelled, got.Status)
	})

	t.Run("front desk may cancel any", func(t *testing.T) {
		for _, role := range []string{models.RoleReceptionist, models.RoleAdmin} {
			svc, repo := newSvc()
			require.NoError(t, svc.Cancel("a1", "staff-1", role))
			got, _ := repo.GetByID("a1")
			assert.Equal(t, models.AppointmentCancelled, got.Status)
		}
	})

	t.Run("doctor without ownership is rejected", func(t *testing.T) {
		svc, _ := newSvc()
		err := svc.Cancel("a1", "doc-1", models.RoleDoctor)
		require.ErrorIs(t, err, ErrNotAppointmentOwner)
	})
}

func TestFinalizeCompletesPastAppointments(t *testing.T) {
	date, slot := slotInPast()
	repo := newMemApptRepo(&models.Appointment{
		ID: "a1", Status: models.AppointmentCheckedIn, Date: date, Time: slot,
	})
	svc := &DefaultAppointmentService{Repo: repo}

	require.NoError(t, svc.Finalize("a1"))
	got, _ := repo.GetByID("a1")
	assert.Equal(t, models.AppointmentCompleted, got.Status)
}

func TestFinalizeSkipsTerminalAppointments(t *testing.T) {
	date, slot := slotInPast()
	repo := newMemApptRepo(&models.Appointment{
		ID: "a1", Status: models.AppointmentCancelled, Date: date, Time: slot,
	})
	svc := &DefaultAppointmentService{Repo: repo}

	require.NoError(t, svc.Finalize("a1"))
	got, _ := repo.GetByID("a1")
	assert.Equal(t, models.AppointmentCancelled, got.Status)
}

func TestFinalizeRefusesFutureSlots(t *testing.T) {
	date, slot := slotInFuture()
	repo := newMemApptRepo(&models.Appointment{
		ID: "a1", Status: models.AppointmentConfirmed, Date: date, Time: slot,
	})
	svc := &DefaultAppointmentService{Repo: repo}

	require.Error(t, svc.Finalize("a1"))
	got, _ := repo.GetByID("a1")
	assert.Equal(t, models.AppointmentConfirmed, got.Status)
}
